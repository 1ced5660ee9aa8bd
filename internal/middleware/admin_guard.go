package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

//contextに入っているis_adminを確認します。

func AdminGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawID := c.Get(CtxUserIDKey)
			if _, ok := rawID.(int64); !ok {
				return notAuthenticatedJSON(c)
			}

			//一般ユーザーは拒否、管理者だけ許可
			isAdmin, ok := c.Get(CtxIsAdminKey).(bool)
			if !ok || !isAdmin {
				return c.JSON(http.StatusForbidden, authErrorResponse{Message: "Forbidden"})
			}

			return next(c)
		}
	}
}
