package handler

import (
	"net/http"

	"tshirtshop/internal/apperr"
	"tshirtshop/internal/config"
	"tshirtshop/internal/middleware"
	"tshirtshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 決済のHTTP。チャージは要ログイン、Webhookは公開。
type StripeHandler struct {
	uc *usecase.PaymentUsecase
}

func NewStripeHandler(uc *usecase.PaymentUsecase) *StripeHandler {
	return &StripeHandler{uc: uc}
}

func (h *StripeHandler) RegisterRoutes(g *echo.Group, cfg config.Config) {
	g.POST("/stripe/charge", h.charge, middleware.AuthJWT(cfg))
	g.POST("/stripe/webhooks", h.webhooks)
}

type ChargeRequest struct {
	StripeToken string `json:"stripeToken"`
	OrderID     int64  `json:"order_id"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
}

func (h *StripeHandler) charge(c echo.Context) error {
	if _, ok := middleware.CustomerIDFromContext(c); !ok {
		return writeError(c, apperr.New(apperr.AUT02))
	}

	var req ChargeRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apperr.WithField(apperr.COM02, "body"))
	}

	out, err := h.uc.Charge(c.Request().Context(), usecase.ChargeInput{
		StripeToken: req.StripeToken,
		OrderID:     req.OrderID,
		Description: req.Description,
		Amount:      req.Amount,
		Currency:    req.Currency,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// 受信確認のみ。検証や処理は行わない。
func (h *StripeHandler) webhooks(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"received": "true"})
}
