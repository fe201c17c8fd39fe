package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	mw "corpsite/internal/middleware"
	httprouters "corpsite/internal/transport/http"

	"github.com/arl/statsviz"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "corpsite/docs"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type StaticTrees struct {
	UploadsDir string
	AdminDir   string
	PublicDir  string
}

type Server struct {
	m       *http.ServeMux
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	static  StaticTrees
	host    string
	port    string
}

func New(log *slog.Logger, host, port string, routers *httprouters.Routers, verifier mw.TokenVerifier, static StaticTrees) *Server {
	e := echo.New()
	e.HideBanner = true

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	e.Use(mw.PrometheusMetrics)

	// Граница авторизации до любых хендлеров
	e.Use(mw.AccessGate(verifier))

	mux := http.NewServeMux()
	err := statsviz.Register(mux)
	if err != nil {
		log.Info("Statsviz start with error", slog.Any("error:", err.Error()))
	}

	return &Server{
		m:       mux,
		log:     log,
		e:       e,
		routers: routers,
		static:  static,
		host:    host,
		port:    port,
	}
}

// Handler отдает собранный HTTP-хендлер (используется в тестах)
func (s *Server) Handler() http.Handler {
	return s.e
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf(":%s", s.port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", op, "http server")

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

func (s *Server) BuildRouters() {
	loginLimiter := mw.NewLoginLimiter()

	api := s.e.Group("/api")
	{
		api.GET("/content", s.routers.GetContent)
		api.PUT("/content", s.routers.ReplaceContent)
		api.POST("/upload", s.routers.UploadImage)

		admin := api.Group("/admin")
		{
			admin.POST("/login", s.routers.Login, loginLimiter.Limit)
			admin.POST("/logout", s.routers.Logout)
		}
	}

	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	debug := s.e.Group("/debug")
	{
		debug.GET("/statsviz/", echo.WrapHandler(s.m))
		debug.GET("/statsviz/*", echo.WrapHandler(s.m))
	}

	swagger := s.e.Group("/swag")
	{
		swagger.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	// Статика: загрузки, админские страницы и публичные ассеты
	s.e.Static("/uploads", s.static.UploadsDir)
	s.e.Static("/admin", s.static.AdminDir)
	s.e.Static("/", s.static.PublicDir)
}
