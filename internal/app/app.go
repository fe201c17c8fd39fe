package app

import (
	"log/slog"

	httpapp "corpsite/internal/app/http"
	"corpsite/internal/config"
	authservice "corpsite/internal/services/auth_service"
	contentservice "corpsite/internal/services/content_service"
	imageservice "corpsite/internal/services/image_service"
	"corpsite/internal/storage/contentstore"
	filestorage "corpsite/internal/storage/filestorage"
	httprouters "corpsite/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server
}

func New(log *slog.Logger, cfg *config.Config) *App {
	store, err := contentstore.New(cfg.Content.Path)
	if err != nil {
		panic(err)
	}

	uploads, err := filestorage.NewLocalFileStorage(cfg.FileStorage.BaseDir, cfg.FileStorage.BaseURL)
	if err != nil {
		panic(err)
	}

	authService := authservice.New(log, cfg.Admin.Password, cfg.Admin.TokenSecret)
	contentService := contentservice.New(log, store)
	imageService := imageservice.New(log, uploads, cfg.FileStorage.MaxSize)

	routers := httprouters.NewRouter(log, contentService, authService, imageService, cfg.Env == "prod")

	server := httpapp.New(log, cfg.HTTP.Host, cfg.HTTP.Port, routers, authService, httpapp.StaticTrees{
		UploadsDir: cfg.FileStorage.BaseDir,
		AdminDir:   "web/admin",
		PublicDir:  "web/public",
	})

	return &App{
		HTTPServer: server,
	}
}
