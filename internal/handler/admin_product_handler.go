package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 商品管理（管理者のみ）
type AdminProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewAdminProductHandler(uc *usecase.ProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

func (h *AdminProductHandler) RegisterAdminRoutes(g *echo.Group) {
	g.POST("/products", h.create)
	g.PUT("/products/:id", h.update)
	g.DELETE("/products/:id", h.delete)
}

type AdminProductRequest struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	DiscountPrice      *float64 `json:"discountPrice"`
	DiscountPercentage *int64   `json:"discountPercentage"`
	Stock              int64    `json:"stock"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images"`
}

func (r AdminProductRequest) toInput() usecase.AdminProductInput {
	return usecase.AdminProductInput{
		Title:              r.Title,
		Description:        r.Description,
		Price:              r.Price,
		DiscountPrice:      r.DiscountPrice,
		DiscountPercentage: r.DiscountPercentage,
		Stock:              r.Stock,
		Brand:              r.Brand,
		Category:           r.Category,
		Thumbnail:          r.Thumbnail,
		Images:             r.Images,
	}
}

func (h *AdminProductHandler) create(c echo.Context) error {
	var req AdminProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid body"})
	}

	out, err := h.uc.AdminCreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *AdminProductHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid id"})
	}

	var req AdminProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid body"})
	}

	out, err := h.uc.AdminUpdateProduct(c.Request().Context(), id, req.toInput())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminProductHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid id"})
	}

	if err := h.uc.AdminDeleteProduct(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
