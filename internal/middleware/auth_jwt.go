package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"app/internal/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	CtxUserIDKey  = "user_id"  // int64
	CtxIsAdminKey = "is_admin" // bool
)

// 認証エラー時は一律この形で返す
type authErrorResponse struct {
	Message string `json:"message"`
}

func notAuthenticatedJSON(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, authErrorResponse{Message: "Not authenticated"})
}

// bearerAuth用のJWT検証ミドルウェア。
func AuthJWT(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Authorizationヘッダを取得
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return notAuthenticatedJSON(c)
			}

			//Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return notAuthenticatedJSON(c)
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return notAuthenticatedJSON(c)
			}

			//JWTをパースして検証する
			token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil || token == nil || !token.Valid {
				return notAuthenticatedJSON(c)
			}

			//claimsを取り出す
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return notAuthenticatedJSON(c)
			}

			//user_idを取り出す
			userID, err := parseUserID(claims["sub"])
			if err != nil || userID <= 0 {
				return notAuthenticatedJSON(c)
			}

			//管理者フラグ（無ければfalse）
			isAdmin := parseBool(claims["is_admin"])

			//contextへ保存
			c.Set(CtxUserIDKey, userID)
			c.Set(CtxIsAdminKey, isAdmin)

			return next(c)
		}
	}
}

// user_idをint64に変換する
func parseUserID(v interface{}) (int64, error) {
	switch t := v.(type) {
	case float64:
		return int64(t), nil
	case string:
		return strconv.ParseInt(t, 10, 64)
	default:
		return 0, errors.New("invalid sub")
	}
}

func parseBool(v interface{}) bool {
	b, ok := v.(bool)
	if !ok {
		return false
	}
	return b
}
