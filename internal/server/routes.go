package server

import (
	"app/internal/config"
	"app/internal/handler"
	"app/internal/middleware"

	"github.com/labstack/echo/v4"
)

// ルート登録に必要なhandler一式
type Deps struct {
	Cfg config.Config

	Auth         *handler.AuthHandler
	Product      *handler.ProductHandler
	Category     *handler.CategoryHandler
	Banner       *handler.BannerHandler
	Cart         *handler.CartHandler
	Order        *handler.OrderHandler
	Review       *handler.ReviewHandler
	Address      *handler.AddressHandler
	AdminProduct *handler.AdminProductHandler
	AdminOrder   *handler.AdminOrderHandler
}

// /api 以下に3つのグループを作る。
//
//	public: 認証なし
//	authed: JWT必須
//	admin : JWT + 管理者のみ
func RegisterRoutes(e *echo.Echo, d Deps) {
	public := e.Group("/api")

	authed := e.Group("/api")
	authed.Use(middleware.AuthJWT(d.Cfg))

	admin := e.Group("/api/admin")
	admin.Use(middleware.AuthJWT(d.Cfg))
	admin.Use(middleware.AdminGuard())

	d.Auth.RegisterPublicRoutes(public)
	d.Auth.RegisterAuthedRoutes(authed)

	d.Product.RegisterPublicRoutes(public)
	d.Category.RegisterPublicRoutes(public)
	d.Banner.RegisterPublicRoutes(public)
	d.Review.RegisterPublicRoutes(public)

	d.Cart.RegisterAuthedRoutes(authed)
	d.Order.RegisterAuthedRoutes(authed)
	d.Review.RegisterAuthedRoutes(authed)
	d.Address.RegisterAuthedRoutes(authed)

	d.AdminProduct.RegisterAdminRoutes(admin)
	d.AdminOrder.RegisterAdminRoutes(admin)
	d.Category.RegisterAdminRoutes(admin)
	d.Banner.RegisterAdminRoutes(admin)
}
