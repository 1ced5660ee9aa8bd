package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// New はecho本体を組み立てる。ルート登録はroutes.go側
func New(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	//panicでプロセスを落とさない
	e.Use(echomw.Recover())

	RegisterRoutes(e, deps)

	return e
}

// Start はサーバーを起動する
func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
