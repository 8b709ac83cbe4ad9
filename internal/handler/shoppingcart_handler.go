package handler

import (
	"net/http"

	"tshirtshop/internal/apperr"
	"tshirtshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /shoppingcart のHTTP。認証不要（cart_id を知っている者が操作できる）。
type ShoppingCartHandler struct {
	uc *usecase.CartUsecase
}

func NewShoppingCartHandler(uc *usecase.CartUsecase) *ShoppingCartHandler {
	return &ShoppingCartHandler{uc: uc}
}

func (h *ShoppingCartHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/shoppingcart/generateUniqueId", h.generateUniqueID)
	g.POST("/shoppingcart/add", h.addItem)
	g.GET("/shoppingcart/:cart_id", h.listItems)
	g.PUT("/shoppingcart/update/:item_id", h.updateQuantity)
	g.DELETE("/shoppingcart/empty/:cart_id", h.emptyCart)
	g.DELETE("/shoppingcart/removeProduct/:item_id", h.removeItem)
	g.GET("/shoppingcart/moveToCart/:item_id", h.moveToCart)
	g.GET("/shoppingcart/totalAmount/:cart_id", h.totalAmount)
	g.GET("/shoppingcart/saveForLater/:item_id", h.saveForLater)
	g.GET("/shoppingcart/getSaved/:cart_id", h.getSaved)
}

func (h *ShoppingCartHandler) generateUniqueID(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"cart_id": h.uc.GenerateCartID()})
}

type AddCartItemRequest struct {
	CartID     string `json:"cart_id"`
	ProductID  int64  `json:"product_id"`
	Attributes string `json:"attributes"`
	Quantity   *int64 `json:"quantity"`
}

func (h *ShoppingCartHandler) addItem(c echo.Context) error {
	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apperr.WithField(apperr.COM02, "body"))
	}

	out, err := h.uc.AddItem(c.Request().Context(), usecase.AddItemInput{
		CartID:     req.CartID,
		ProductID:  req.ProductID,
		Attributes: req.Attributes,
		Quantity:   req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ShoppingCartHandler) listItems(c echo.Context) error {
	out, err := h.uc.ListItems(c.Request().Context(), c.Param("cart_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type UpdateCartItemRequest struct {
	Quantity *int64 `json:"quantity"`
}

func (h *ShoppingCartHandler) updateQuantity(c echo.Context) error {
	itemID, appErr := pathID(c, "item_id")
	if appErr != nil {
		return writeError(c, appErr)
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apperr.WithField(apperr.COM02, "body"))
	}

	out, err := h.uc.UpdateQuantity(c.Request().Context(), itemID, usecase.UpdateQuantityInput{
		Quantity: req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ShoppingCartHandler) emptyCart(c echo.Context) error {
	if err := h.uc.EmptyCart(c.Request().Context(), c.Param("cart_id")); err != nil {
		return writeError(c, err)
	}
	//空配列を返す（空にした結果のカート）
	return c.JSON(http.StatusOK, []struct{}{})
}

func (h *ShoppingCartHandler) removeItem(c echo.Context) error {
	itemID, appErr := pathID(c, "item_id")
	if appErr != nil {
		return writeError(c, appErr)
	}

	if err := h.uc.RemoveItem(c.Request().Context(), itemID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Item removed"})
}

func (h *ShoppingCartHandler) moveToCart(c echo.Context) error {
	itemID, appErr := pathID(c, "item_id")
	if appErr != nil {
		return writeError(c, appErr)
	}

	if err := h.uc.MoveToCart(c.Request().Context(), itemID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Item moved to cart"})
}

func (h *ShoppingCartHandler) totalAmount(c echo.Context) error {
	out, err := h.uc.TotalAmount(c.Request().Context(), c.Param("cart_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ShoppingCartHandler) saveForLater(c echo.Context) error {
	itemID, appErr := pathID(c, "item_id")
	if appErr != nil {
		return writeError(c, appErr)
	}

	if err := h.uc.SaveForLater(c.Request().Context(), itemID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Item saved for later"})
}

func (h *ShoppingCartHandler) getSaved(c echo.Context) error {
	out, err := h.uc.GetSaved(c.Request().Context(), c.Param("cart_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
