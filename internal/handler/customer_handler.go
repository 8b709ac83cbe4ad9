package handler

import (
	"net/http"

	"tshirtshop/internal/apperr"
	"tshirtshop/internal/config"
	"tshirtshop/internal/middleware"
	"tshirtshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 顧客のHTTP。登録とログインは公開、それ以外は本人のみ。
type CustomerHandler struct {
	uc *usecase.CustomerUsecase
}

func NewCustomerHandler(uc *usecase.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

func (h *CustomerHandler) RegisterRoutes(g *echo.Group, cfg config.Config) {
	auth := middleware.AuthJWT(cfg)
	g.POST("/customers", h.register)
	g.POST("/customers/login", h.login)
	g.POST("/customers/facebook", h.facebookLogin)
	g.GET("/customer", h.getCustomer, auth)
	g.PUT("/customer/update", h.updateCustomer, auth)
	g.PUT("/customers/address", h.updateAddress, auth)
	g.PUT("/customers/creditCard", h.updateCreditCard, auth)
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *CustomerHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apperr.WithField(apperr.COM02, "body"))
	}

	out, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *CustomerHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apperr.WithField(apperr.COM02, "body"))
	}

	out, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type FacebookLoginRequest struct {
	AccessToken string `json:"access_token"`
}

func (h *CustomerHandler) facebookLogin(c echo.Context) error {
	var req FacebookLoginRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apperr.WithField(apperr.COM02, "body"))
	}

	out, err := h.uc.FacebookLogin(c.Request().Context(), req.AccessToken)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) getCustomer(c echo.Context) error {
	customerID, ok := middleware.CustomerIDFromContext(c)
	if !ok {
		return writeError(c, apperr.New(apperr.AUT02))
	}

	out, err := h.uc.GetCustomer(c.Request().Context(), customerID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type UpdateCustomerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	DayPhone string `json:"day_phone"`
	EvePhone string `json:"eve_phone"`
	MobPhone string `json:"mob_phone"`
}

func (h *CustomerHandler) updateCustomer(c echo.Context) error {
	customerID, ok := middleware.CustomerIDFromContext(c)
	if !ok {
		return writeError(c, apperr.New(apperr.AUT02))
	}

	var req UpdateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apperr.WithField(apperr.COM02, "body"))
	}

	out, err := h.uc.UpdateCustomer(c.Request().Context(), customerID, usecase.UpdateCustomerInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		DayPhone: req.DayPhone,
		EvePhone: req.EvePhone,
		MobPhone: req.MobPhone,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type UpdateAddressRequest struct {
	Address1         string `json:"address_1"`
	Address2         string `json:"address_2"`
	City             string `json:"city"`
	Region           string `json:"region"`
	PostalCode       string `json:"postal_code"`
	Country          string `json:"country"`
	ShippingRegionID int64  `json:"shipping_region_id"`
}

func (h *CustomerHandler) updateAddress(c echo.Context) error {
	customerID, ok := middleware.CustomerIDFromContext(c)
	if !ok {
		return writeError(c, apperr.New(apperr.AUT02))
	}

	var req UpdateAddressRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apperr.WithField(apperr.COM02, "body"))
	}

	out, err := h.uc.UpdateAddress(c.Request().Context(), customerID, usecase.UpdateAddressInput{
		Address1:         req.Address1,
		Address2:         req.Address2,
		City:             req.City,
		Region:           req.Region,
		PostalCode:       req.PostalCode,
		Country:          req.Country,
		ShippingRegionID: req.ShippingRegionID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type UpdateCreditCardRequest struct {
	CreditCard string `json:"credit_card"`
}

func (h *CustomerHandler) updateCreditCard(c echo.Context) error {
	customerID, ok := middleware.CustomerIDFromContext(c)
	if !ok {
		return writeError(c, apperr.New(apperr.AUT02))
	}

	var req UpdateCreditCardRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apperr.WithField(apperr.COM02, "body"))
	}

	out, err := h.uc.UpdateCreditCard(c.Request().Context(), customerID, req.CreditCard)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
