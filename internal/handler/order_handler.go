package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jzProg/nd035-c4-ecommence-app/internal/usecase"
)

// /api/orderのHTTP
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// /api/order/... を登録
func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/order")

	g.POST("/submit/:username", h.submit)
	g.GET("/history/:username", h.history)
}

func (h *OrderHandler) submit(c echo.Context) error {
	out, err := h.uc.Submit(c.Request().Context(), c.Param("username"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) history(c echo.Context) error {
	out, err := h.uc.GetOrdersForUser(c.Request().Context(), c.Param("username"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
