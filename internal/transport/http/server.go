package http

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"corpsite/internal/domain/models"
	"corpsite/internal/lib/logger/sl"
	"corpsite/internal/metrics"
	mw "corpsite/internal/middleware"
	imageservice "corpsite/internal/services/image_service"
	"corpsite/internal/transport/http/dto/request"
	"corpsite/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

const authCookieMaxAge = 24 * time.Hour

type ContentService interface {
	GetContent(ctx context.Context) (*models.SiteContent, error)
	ReplaceContent(ctx context.Context, content *models.SiteContent) error
}

type AuthService interface {
	Login(password string) (string, error)
	VerifyToken(token string) bool
}

type ImageService interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader) (*models.UploadedAsset, error)
}

type Routers struct {
	log            *slog.Logger
	ContentService ContentService
	AuthService    AuthService
	ImageService   ImageService

	// Secure включает Secure-флаг на cookie (prod за TLS)
	Secure bool
}

func NewRouter(log *slog.Logger, contentService ContentService, authService AuthService, imageService ImageService, secure bool) *Routers {
	return &Routers{
		log:            log,
		ContentService: contentService,
		AuthService:    authService,
		ImageService:   imageService,
		Secure:         secure,
	}
}

// GetContent godoc
// @Summary Полный документ контента сайта
// @Description Возвращает весь агрегат SiteContent из хранилища
// @Tags Контент
// @Produce json
// @Success 200 {object} models.SiteContent "Текущий контент"
// @Failure 500 {object} response.ErrorResponse "Ошибка чтения контента"
// @Router /api/content [get]
func (r *Routers) GetContent(c echo.Context) error {
	const op = "http.routers.GetContent"

	log := r.log.With(
		slog.String("op", op),
	)

	content, err := r.ContentService.GetContent(c.Request().Context())
	if err != nil {
		log.Error("failed to read content", sl.Err(err))

		return c.JSON(http.StatusInternalServerError, response.Error("failed to read content"))
	}

	return c.JSON(http.StatusOK, content)
}

// ReplaceContent godoc
// @Summary Полная замена контента сайта
// @Description Перезаписывает весь документ SiteContent. Частичных обновлений нет.
// @Tags Контент
// @Accept json
// @Produce json
// @Param request body models.SiteContent true "Полный документ"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse "Невалидный JSON"
// @Failure 500 {object} response.ErrorResponse "Ошибка записи контента"
// @Router /api/content [put]
func (r *Routers) ReplaceContent(c echo.Context) error {
	const op = "http.routers.ReplaceContent"

	log := r.log.With(
		slog.String("op", op),
	)

	var content models.SiteContent

	if err := c.Bind(&content); err != nil {
		log.Warn("failed to bind content payload", sl.Err(err))

		return c.JSON(http.StatusBadRequest, response.Error("invalid content payload"))
	}

	if err := r.ContentService.ReplaceContent(c.Request().Context(), &content); err != nil {
		log.Error("failed to replace content", sl.Err(err))

		return c.JSON(http.StatusInternalServerError, response.Error("failed to update content"))
	}

	metrics.ContentWritesTotal.Inc()

	return c.JSON(http.StatusOK, response.OK())
}

// UploadImage godoc
// @Summary Загрузка изображения
// @Description Сохраняет оригинал и производные webp/avif, возвращает три пути
// @Tags Медиа
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Файл изображения"
// @Success 200 {object} response.UploadResponse
// @Failure 400 {object} response.ErrorResponse "Файл отсутствует или не изображение"
// @Failure 500 {object} response.ErrorResponse "Ошибка сохранения или кодирования"
// @Router /api/upload [post]
func (r *Routers) UploadImage(c echo.Context) error {
	const op = "http.routers.UploadImage"

	log := r.log.With(
		slog.String("op", op),
	)

	startTime := time.Now()
	defer func() {
		log.Info("Request completed",
			"duration", time.Since(startTime))
	}()

	file, err := c.FormFile("file")
	if err != nil {
		log.Warn("Empty file in request",
			"error", err.Error())

		metrics.ImageUploadsTotal.WithLabelValues("missing_file").Inc()

		return c.JSON(http.StatusBadRequest, response.Error("file is required"))
	}

	log.Debug("Got file for upload",
		"filename", file.Filename,
		"size", file.Size,
		"mime_type", file.Header.Get("Content-Type"))

	asset, err := r.ImageService.UploadImage(c.Request().Context(), file)
	if err != nil {
		if errors.Is(err, imageservice.ErrUnsupportedType) || errors.Is(err, imageservice.ErrMissingFile) {
			metrics.ImageUploadsTotal.WithLabelValues("rejected").Inc()

			return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
		}

		log.Error("Error upload image",
			"error", err.Error(),
			"filename", file.Filename)

		metrics.ImageUploadsTotal.WithLabelValues("failed").Inc()

		return c.JSON(http.StatusInternalServerError, response.Error("failed to process image"))
	}

	log.Info("Upload successfull",
		"asset_id", asset.ID,
		"file_size", asset.FileSize,
		"duration", time.Since(startTime))

	metrics.ImageUploadsTotal.WithLabelValues("ok").Inc()

	return c.JSON(http.StatusOK, response.UploadResponse{
		Original: asset.OriginalPath,
		Webp:     asset.WebpPath,
		Avif:     asset.AvifPath,
	})
}

// Login godoc
// @Summary Вход администратора
// @Description Проверяет пароль и ставит cookie admin-auth с детерминированным токеном
// @Tags Администратор
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Пароль администратора"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse "Неверный формат запроса"
// @Failure 401 {object} response.ErrorResponse "Неверный пароль"
// @Router /api/admin/login [post]
func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"

	log := r.log.With(
		slog.String("op", op),
	)

	var req request.LoginRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("invalid request format"))
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid login request format")

		return c.JSON(http.StatusBadRequest, response.Error("invalid request format"))
	}

	token, err := r.AuthService.Login(req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, response.Error("invalid password"))
	}

	c.SetCookie(r.authCookie(token, int(authCookieMaxAge.Seconds())))

	return c.JSON(http.StatusOK, response.OK())
}

// Logout godoc
// @Summary Выход администратора
// @Description Сбрасывает cookie admin-auth
// @Tags Администратор
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /api/admin/logout [post]
func (r *Routers) Logout(c echo.Context) error {
	c.SetCookie(r.authCookie("", -1))

	return c.JSON(http.StatusOK, response.OK())
}

func (r *Routers) authCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     mw.AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.Secure,
	}
}
