package server

import (
	"tshirtshop/internal/config"
	"tshirtshop/internal/handler"

	"github.com/labstack/echo/v4"
)

// Handlers はルート登録に必要なハンドラ一式
type Handlers struct {
	Catalog  *handler.CatalogHandler
	Cart     *handler.ShoppingCartHandler
	Customer *handler.CustomerHandler
	Order    *handler.OrderHandler
	Stripe   *handler.StripeHandler
}

// RegisterRoutes は全ルートを登録する
func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	g := e.Group("/api/v1")

	h.Catalog.RegisterRoutes(g, cfg)
	h.Cart.RegisterRoutes(g)
	h.Customer.RegisterRoutes(g, cfg)
	h.Order.RegisterRoutes(g, cfg)
	h.Stripe.RegisterRoutes(g, cfg)
}
