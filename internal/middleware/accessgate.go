package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// AuthCookieName имя cookie с токеном администратора
const AuthCookieName = "admin-auth"

const (
	loginPath        = "/admin/login"
	adminContentPath = "/admin/content"
)

// Защищенные API-префиксы; все остальное под /api публично
var protectedAPIPrefixes = []string{"/api/content", "/api/upload"}

// TokenVerifier проверяет токен администратора
type TokenVerifier interface {
	VerifyToken(token string) bool
}

// AccessGate — граница авторизации, срабатывающая до любого хендлера.
// UI paths bounce to the login page when the cookie is missing or wrong;
// API paths get a structured 401 instead, since the caller is a program.
// An already authenticated admin is redirected off the login page.
func AccessGate(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			var token string
			if cookie, err := c.Cookie(AuthCookieName); err == nil {
				token = cookie.Value
			}

			authenticated := verifier.VerifyToken(token)

			if isProtectedAdminPath(path) || isProtectedAPI(path) {
				if !authenticated {
					if isProtectedAPI(path) {
						return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
					}

					return c.Redirect(http.StatusFound, loginPath)
				}
			}

			if strings.HasPrefix(path, loginPath) && authenticated {
				return c.Redirect(http.StatusFound, adminContentPath)
			}

			return next(c)
		}
	}
}

func isProtectedAdminPath(path string) bool {
	return strings.HasPrefix(path, "/admin") && !strings.HasPrefix(path, loginPath)
}

func isProtectedAPI(path string) bool {
	for _, prefix := range protectedAPIPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}
