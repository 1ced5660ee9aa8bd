package handler

import (
	"errors"
	"net/http"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"
	auth "app/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	registerUC *auth.RegisterUserUsecase // 会員登録usecase
	loginUC    *auth.LoginUsecase        // ログインusecase
	userRepo   repository.UserRepository // GET /user 用
}

// DIコンストラクタ
func NewAuthHandler(
	registerUC *auth.RegisterUserUsecase,
	loginUC *auth.LoginUsecase,
	userRepo repository.UserRepository,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		userRepo:   userRepo,
	}
}

// /register, /login は認証不要。/user は認証必須
func (h *AuthHandler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/register", h.register)
	g.POST("/login", h.login)
}

func (h *AuthHandler) RegisterAuthedRoutes(g *echo.Group) {
	g.GET("/user", h.currentUser)
}

// /register のリクエストボディ。
type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// /login のリクエストボディ。
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	User      model.User `json:"user"`
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expiresAt"`
}

func (h *AuthHandler) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid body"})
	}

	out, err := h.registerUC.Execute(c.Request().Context(), auth.RegisterUserInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidUsername):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid username"})
		case errors.Is(err, auth.ErrInvalidEmailFormat):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid email format"})
		case errors.Is(err, auth.ErrPasswordTooShort):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Password must be at least 8 characters"})
		case errors.Is(err, auth.ErrWeakPassword):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Password is too weak"})
		case errors.Is(err, auth.ErrUsernameAlreadyExists):
			return c.JSON(http.StatusConflict, ErrorResponse{Message: "Username already exists"})
		case errors.Is(err, auth.ErrEmailAlreadyExists):
			return c.JSON(http.StatusConflict, ErrorResponse{Message: "Email already exists"})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "An error occurred"})
		}
	}

	return c.JSON(http.StatusCreated, out.User)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid body"})
	}

	out, err := h.loginUC.Execute(c.Request().Context(), auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			//usernameの有無は漏らさない
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "An error occurred"})
	}

	return c.JSON(http.StatusOK, loginResponse{
		User:      out.User,
		Token:     out.AccessToken,
		ExpiresAt: out.ExpiresAt,
	})
}

// GET /user ログイン中ユーザーのプロフィール
func (h *AuthHandler) currentUser(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Not authenticated"})
	}

	user, err := h.userRepo.FindByID(c.Request().Context(), userID)
	if errors.Is(err, repository.ErrNotFound) {
		//トークンは有効だがユーザーが消えている
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Not authenticated"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "An error occurred"})
	}

	return c.JSON(http.StatusOK, user.Sanitized())
}
