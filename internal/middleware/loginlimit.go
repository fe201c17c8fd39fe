package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"
)

const (
	maxLoginAttempts = 10
	attemptWindow    = 15 * time.Minute
)

// LoginLimiter считает только неудачные входы: 401 от хендлера увеличивает
// счетчик по IP, успешный вход сбрасывает его.
type LoginLimiter struct {
	attempts *cache.Cache
}

func NewLoginLimiter() *LoginLimiter {
	return &LoginLimiter{
		attempts: cache.New(attemptWindow, 2*attemptWindow),
	}
}

// Limit отклоняет попытки входа сверх лимита на один IP
func (l *LoginLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ip := c.RealIP()

		if count, found := l.attempts.Get(ip); found && count.(int) >= maxLoginAttempts {
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many login attempts"})
		}

		err := next(c)

		switch c.Response().Status {
		case http.StatusUnauthorized:
			if _, incErr := l.attempts.IncrementInt(ip, 1); incErr != nil {
				l.attempts.Set(ip, 1, cache.DefaultExpiration)
			}
		case http.StatusOK:
			l.attempts.Delete(ip)
		}

		return err
	}
}
