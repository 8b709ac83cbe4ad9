package handler

import (
	"net/http"

	"tshirtshop/internal/apperr"
	"tshirtshop/internal/config"
	"tshirtshop/internal/middleware"
	"tshirtshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 注文のHTTP。全ルート要ログイン。
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(g *echo.Group, cfg config.Config) {
	auth := middleware.AuthJWT(cfg)
	g.POST("/orders", h.createOrder, auth)
	g.GET("/orders/:order_id", h.getOrderDetails, auth)
	g.GET("/orders/shortDetail/:order_id", h.getOrderShortDetail, auth)
	g.GET("/orders/inCustomer", h.listOrdersForCustomer, auth)
}

type CreateOrderRequest struct {
	CartID     string `json:"cart_id"`
	ShippingID int64  `json:"shipping_id"`
	TaxID      int64  `json:"tax_id"`
}

func (h *OrderHandler) createOrder(c echo.Context) error {
	customerID, ok := middleware.CustomerIDFromContext(c)
	if !ok {
		return writeError(c, apperr.New(apperr.AUT02))
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apperr.WithField(apperr.COM02, "body"))
	}

	out, err := h.uc.CreateOrder(c.Request().Context(), customerID, usecase.CreateOrderInput{
		CartID:     req.CartID,
		ShippingID: req.ShippingID,
		TaxID:      req.TaxID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) getOrderDetails(c echo.Context) error {
	orderID, appErr := pathID(c, "order_id")
	if appErr != nil {
		return writeError(c, appErr)
	}

	out, err := h.uc.GetOrderDetails(c.Request().Context(), orderID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) getOrderShortDetail(c echo.Context) error {
	orderID, appErr := pathID(c, "order_id")
	if appErr != nil {
		return writeError(c, appErr)
	}

	out, err := h.uc.GetOrderShortDetail(c.Request().Context(), orderID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) listOrdersForCustomer(c echo.Context) error {
	customerID, ok := middleware.CustomerIDFromContext(c)
	if !ok {
		return writeError(c, apperr.New(apperr.AUT02))
	}

	out, err := h.uc.ListOrdersForCustomer(c.Request().Context(), customerID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
