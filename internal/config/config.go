package config

import (
	"flag"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string            `yaml:"env" env-default:"local"`
	HTTP        HTTPConfig        `yaml:"http"`
	Content     ContentConfig     `yaml:"content"`
	FileStorage FileStorageConfig `yaml:"file_storage"`
	Admin       AdminConfig       `yaml:"admin"`
}

type HTTPConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port" env-default:"8080"`
}

type ContentConfig struct {
	Path string `yaml:"path" env-default:"content/site.json"`
}

type FileStorageConfig struct {
	BaseDir string `yaml:"base_dir" env-default:"public/uploads"`
	BaseURL string `yaml:"base_url" env-default:"/uploads"`
	MaxSize int64  `yaml:"max_size"`
}

// AdminConfig держит секреты единственного администратора.
// Оба значения приходят только из окружения.
type AdminConfig struct {
	Password    string `env:"ADMIN_PASSWORD" env-default:"changeme"`
	TokenSecret string `env:"ADMIN_TOKEN_SECRET" env-default:"local-secret"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
