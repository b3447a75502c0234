package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jzProg/nd035-c4-ecommence-app/internal/usecase"
)

// /api/cartのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type ModifyCartRequest struct {
	Username string `json:"username"`
	ItemID   int64  `json:"itemId"`
	Quantity int64  `json:"quantity"`
}

// /api/cart/... を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/cart")

	g.POST("/addToCart", h.addToCart)
	g.POST("/removeFromCart", h.removeFromCart)
}

func (h *CartHandler) addToCart(c echo.Context) error {
	var req ModifyCartRequest
	if err := c.Bind(&req); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	out, err := h.uc.AddToCart(c.Request().Context(), usecase.ModifyCartInput{
		Username: req.Username,
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) removeFromCart(c echo.Context) error {
	var req ModifyCartRequest
	if err := c.Bind(&req); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	out, err := h.uc.RemoveFromCart(c.Request().Context(), usecase.ModifyCartInput{
		Username: req.Username,
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
