package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type BannerHandler struct {
	uc *usecase.BannerUsecase
}

// DI
func NewBannerHandler(uc *usecase.BannerUsecase) *BannerHandler {
	return &BannerHandler{uc: uc}
}

func (h *BannerHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/banners", h.list)
}

func (h *BannerHandler) RegisterAdminRoutes(g *echo.Group) {
	g.POST("/banners", h.adminCreate)
}

// activeなバナーだけ返す
func (h *BannerHandler) list(c echo.Context) error {
	out, err := h.uc.ListActiveBanners(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

type BannerCreateRequest struct {
	Image  string `json:"image"`
	Link   string `json:"link"`
	Active bool   `json:"active"`
}

func (h *BannerHandler) adminCreate(c echo.Context) error {
	var req BannerCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid body"})
	}

	out, err := h.uc.AdminCreateBanner(c.Request().Context(), usecase.AdminBannerInput{
		Image:  req.Image,
		Link:   req.Link,
		Active: req.Active,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
