package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	uc *usecase.CategoryUsecase
}

// DI
func NewCategoryHandler(uc *usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/categories", h.list)
}

func (h *CategoryHandler) RegisterAdminRoutes(g *echo.Group) {
	g.POST("/categories", h.adminCreate)
}

func (h *CategoryHandler) list(c echo.Context) error {
	out, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

type CategoryCreateRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

func (h *CategoryHandler) adminCreate(c echo.Context) error {
	var req CategoryCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid body"})
	}

	out, err := h.uc.AdminCreateCategory(c.Request().Context(), usecase.AdminCategoryInput{
		Name:  req.Name,
		Image: req.Image,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
