package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AddressHandler struct {
	uc *usecase.AddressUsecase
}

// DI
func NewAddressHandler(uc *usecase.AddressUsecase) *AddressHandler {
	return &AddressHandler{uc: uc}
}

func (h *AddressHandler) RegisterAuthedRoutes(g *echo.Group) {
	g.GET("/addresses", h.list)
	g.POST("/addresses", h.create)
}

type AddressCreateRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	IsDefault   bool   `json:"isDefault"`
	AddressType string `json:"addressType"`
}

func (h *AddressHandler) list(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Not authenticated"})
	}

	out, err := h.uc.ListMyAddresses(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AddressHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Not authenticated"})
	}

	var req AddressCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid body"})
	}

	out, err := h.uc.CreateAddress(c.Request().Context(), userID, usecase.CreateAddressInput{
		Name:        req.Name,
		Phone:       req.Phone,
		AddressLine: req.AddressLine,
		City:        req.City,
		State:       req.State,
		Pincode:     req.Pincode,
		IsDefault:   req.IsDefault,
		AddressType: req.AddressType,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
