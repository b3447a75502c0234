package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jzProg/nd035-c4-ecommence-app/internal/usecase"
)

// /api/itemのHTTP（読み取り専用）
type ItemHandler struct {
	uc *usecase.ItemUsecase
}

// DI
func NewItemHandler(uc *usecase.ItemUsecase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// /api/item/... を登録
func (h *ItemHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/item")

	g.GET("", h.getItems)
	g.GET("/name/:name", h.getItemsByName)
	g.GET("/:id", h.getItemByID)
}

func (h *ItemHandler) getItems(c echo.Context) error {
	out, err := h.uc.GetAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ItemHandler) getItemByID(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	out, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ItemHandler) getItemsByName(c echo.Context) error {
	out, err := h.uc.GetByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
