package handler

import (
	"net/http"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// エラーは全てこの形
type ErrorResponse struct {
	Message string `json:"message"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Message: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "An error occurred"})
}

// 認証ミドルウェアが入れたuser_idを取り出す
func getUserIDFromContext(c echo.Context) (int64, bool) {
	userID, ok := c.Get(middleware.CtxUserIDKey).(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}
