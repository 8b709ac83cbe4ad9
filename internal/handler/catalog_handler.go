package handler

import (
	"net/http"

	"tshirtshop/internal/apperr"
	"tshirtshop/internal/config"
	"tshirtshop/internal/middleware"
	"tshirtshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// カタログ参照系（部門/カテゴリ/商品/属性/税/配送）のHTTP
type CatalogHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// 公開カタログのルートを登録
func (h *CatalogHandler) RegisterRoutes(g *echo.Group, cfg config.Config) {
	g.GET("/departments", h.listDepartments)
	g.GET("/departments/:id", h.getDepartment)

	g.GET("/categories", h.listCategories)
	g.GET("/categories/:id", h.getCategory)
	g.GET("/categories/inDepartment/:id", h.categoriesInDepartment)
	g.GET("/categories/inProduct/:id", h.categoriesInProduct)

	g.GET("/products", h.listProducts)
	g.GET("/products/:id", h.getProduct)
	g.GET("/products/:id/details", h.getProductDetails)
	g.GET("/products/:id/locations", h.getProductLocations)
	g.GET("/products/:id/reviews", h.listReviews)
	g.POST("/products/:id/reviews", h.postReview, middleware.AuthJWT(cfg))
	g.GET("/products/inCategory/:id", h.productsInCategory)
	g.GET("/products/inDepartment/:id", h.productsInDepartment)

	g.GET("/attributes", h.listAttributes)
	g.GET("/attributes/:id", h.getAttribute)
	g.GET("/attributes/values/:id", h.listAttributeValues)
	g.GET("/attributes/inProduct/:id", h.attributesInProduct)

	g.GET("/tax", h.listTaxes)
	g.GET("/tax/:id", h.getTax)

	g.GET("/shipping/regions", h.listShippingRegions)
	g.GET("/shipping/regions/:id", h.shippingsInRegion)
}

func (h *CatalogHandler) listDepartments(c echo.Context) error {
	in, appErr := pageInput(c)
	if appErr != nil {
		return writeError(c, appErr)
	}

	out, err := h.uc.ListDepartments(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) getDepartment(c echo.Context) error {
	id, appErr := pathID(c, "id")
	if appErr != nil {
		return writeError(c, appErr)
	}

	out, err := h.uc.GetDepartment(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) listCategories(c echo.Context) error {
	in, appErr := pageInput(c)
	if appErr != nil {
		return writeError(c, appErr)
	}

	out, err := h.uc.ListCategories(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) getCategory(c echo.Context) error {
	id, appErr := pathID(c, "id")
	if appErr != nil {
		return writeError(c, appErr)
	}

	out, err := h.uc.GetCategory(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) categoriesInDepartment(c echo.Context) error {
	id, appErr := pathID(c, "id")
	if appErr != nil {
		return writeError(c, appErr)
	}

	out, err := h.uc.ListCategoriesInDepartment(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) categoriesInProduct(c echo.Context) error {
	id, appErr := pathID(c, "id")
	if appErr != nil {
		return writeError(c, appErr)
	}

	out, err := h.uc.ListCategoriesOfProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) listProducts(c echo.Context) error {
	in, appErr := pageInput(c)
	if appErr != nil {
		return writeError(c, appErr)
	}

	out, err := h.uc.ListProducts(c.Request().Context(), usecase.ProductListInput{
		PageInput: in,
		Q:         c.QueryParam("query_string"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) getProduct(c echo.Context) error {
	id, appErr := pathID(c, "id")
	if appErr != nil {
		return writeError(c, appErr)
	}

	out, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// /products/:id/details は一覧と同じ項目のフラット版
func (h *CatalogHandler) getProductDetails(c echo.Context) error {
	return h.getProduct(c)
}

func (h *CatalogHandler) getProductLocations(c echo.Context) error {
	id, appErr := pathID(c, "id")
	if appErr != nil {
		return writeError(c, appErr)
	}

	out, err := h.uc.GetProductLocations(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) listReviews(c echo.Context) error {
	id, appErr := pathID(c, "id")
	if appErr != nil {
		return writeError(c, appErr)
	}

	out, err := h.uc.ListReviews(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type PostReviewRequest struct {
	Review string `json:"review"`
	Rating int16  `json:"rating"`
}

func (h *CatalogHandler) postReview(c echo.Context) error {
	customerID, ok := middleware.CustomerIDFromContext(c)
	if !ok {
		return writeError(c, apperr.New(apperr.AUT02))
	}

	id, appErr := pathID(c, "id")
	if appErr != nil {
		return writeError(c, appErr)
	}

	var req PostReviewRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apperr.WithField(apperr.COM02, "body"))
	}

	out, err := h.uc.CreateReview(c.Request().Context(), customerID, id, usecase.CreateReviewInput{
		Review: req.Review,
		Rating: req.Rating,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CatalogHandler) productsInCategory(c echo.Context) error {
	id, appErr := pathID(c, "id")
	if appErr != nil {
		return writeError(c, appErr)
	}
	in, appErr := pageInput(c)
	if appErr != nil {
		return writeError(c, appErr)
	}

	out, err := h.uc.ListProductsInCategory(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) productsInDepartment(c echo.Context) error {
	id, appErr := pathID(c, "id")
	if appErr != nil {
		return writeError(c, appErr)
	}
	in, appErr := pageInput(c)
	if appErr != nil {
		return writeError(c, appErr)
	}

	out, err := h.uc.ListProductsInDepartment(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) listAttributes(c echo.Context) error {
	in, appErr := pageInput(c)
	if appErr != nil {
		return writeError(c, appErr)
	}

	out, err := h.uc.ListAttributes(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) getAttribute(c echo.Context) error {
	id, appErr := pathID(c, "id")
	if appErr != nil {
		return writeError(c, appErr)
	}

	out, err := h.uc.GetAttribute(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) listAttributeValues(c echo.Context) error {
	id, appErr := pathID(c, "id")
	if appErr != nil {
		return writeError(c, appErr)
	}

	out, err := h.uc.ListAttributeValues(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) attributesInProduct(c echo.Context) error {
	id, appErr := pathID(c, "id")
	if appErr != nil {
		return writeError(c, appErr)
	}

	out, err := h.uc.ListAttributesOfProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) listTaxes(c echo.Context) error {
	out, err := h.uc.ListTaxes(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) getTax(c echo.Context) error {
	id, appErr := pathID(c, "id")
	if appErr != nil {
		return writeError(c, appErr)
	}

	out, err := h.uc.GetTax(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) listShippingRegions(c echo.Context) error {
	out, err := h.uc.ListShippingRegions(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) shippingsInRegion(c echo.Context) error {
	id, appErr := pathID(c, "id")
	if appErr != nil {
		return writeError(c, appErr)
	}

	out, err := h.uc.ListShippingsInRegion(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
