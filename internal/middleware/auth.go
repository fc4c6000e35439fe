package middleware

import (
	"strings"

	"github.com/azor-ahai1/SwapSpace/config"
	"github.com/azor-ahai1/SwapSpace/pkg/errs"
	"github.com/azor-ahai1/SwapSpace/pkg/response"
	"github.com/azor-ahai1/SwapSpace/pkg/utils"
	"github.com/labstack/echo/v4"
)

const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"

	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserName  = "userName"
)

// IsLoggedIn validates the access token from the session cookie (or a
// bearer header as a fallback) and stashes the caller's identity on the
// echo context.
func IsLoggedIn(conf *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := extractToken(c)
			if tokenString == "" {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn)
			}

			userID, claims, err := utils.ParseToken(tokenString, conf.JWTConfig.AccessTokenSecret)
			if err != nil {
				return response.WriteErrorResponse(c, err)
			}

			c.Set(ContextUserID, userID)
			if email, ok := claims["email"].(string); ok {
				c.Set(ContextUserEmail, email)
			}
			if name, ok := claims["name"].(string); ok {
				c.Set(ContextUserName, name)
			}

			return next(c)
		}
	}
}

func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

// UserID returns the authenticated caller id set by IsLoggedIn.
func UserID(c echo.Context) string {
	userID, _ := c.Get(ContextUserID).(string)
	return userID
}
