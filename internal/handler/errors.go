package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jzProg/nd035-c4-ecommence-app/internal/usecase"
)

// 失敗レスポンスはステータスコードのみ（ボディなし）。
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.NoContent(he.Status)
	}

	//500
	return c.NoContent(http.StatusInternalServerError)
}
