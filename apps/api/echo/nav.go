package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/colegiosanjose/portal/core/nav"
)

func registerNavAPI(g *echo.Group) {
	g.GET("/nav", menu)
}

// menu returns the sidebar of the portal `path` belongs to.
func menu(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, nav.MenuAt(ctx.QueryParam("path")))
}
