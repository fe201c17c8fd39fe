package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"

	"corpsite/internal/lib/authtoken"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService аутентифицирует единственного администратора.
// There are no accounts and no session storage: the password lives in the
// environment and the token is recomputed from it on every check.
type AuthService struct {
	log      *slog.Logger
	password string
	secret   string
}

func New(log *slog.Logger, password, secret string) *AuthService {
	return &AuthService{
		log:      log,
		password: password,
		secret:   secret,
	}
}

// CheckPassword сравнивает пароль с настроенным секретом
func (a *AuthService) CheckPassword(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(a.password)) == 1
}

// IssueToken выводит детерминированный токен из пароля и серверного секрета
func (a *AuthService) IssueToken(password string) string {
	return authtoken.New(password, a.secret)
}

// VerifyToken пересчитывает ожидаемый токен и сравнивает с переданным
func (a *AuthService) VerifyToken(token string) bool {
	if token == "" {
		return false
	}

	expected := authtoken.New(a.password, a.secret)

	return authtoken.Equal(token, expected)
}

// Login проверяет пароль и выпускает токен
func (a *AuthService) Login(password string) (string, error) {
	const op = "auth_service.Login"

	log := a.log.With(
		slog.String("op", op),
	)

	log.Info("attempting to login admin")

	if !a.CheckPassword(password) {
		log.Warn("invalid admin password")

		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	log.Info("admin logged in successfully")

	return a.IssueToken(password), nil
}
