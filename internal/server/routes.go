package server

import (
	"github.com/labstack/echo/v4"

	"github.com/jzProg/nd035-c4-ecommence-app/internal/handler"
)

func RegisterRoutes(
	e *echo.Echo,
	userH *handler.UserHandler,
	itemH *handler.ItemHandler,
	cartH *handler.CartHandler,
	orderH *handler.OrderHandler,
) {
	userH.RegisterRoutes(e)
	itemH.RegisterRoutes(e)
	cartH.RegisterRoutes(e)
	orderH.RegisterRoutes(e)
}
