package repository

import (
	"context"

	"tshirtshop/internal/domain/model"
)

// 一覧系の共通ページング
type ListQuery struct {
	Page  int
	Limit int
}

func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

type DepartmentRepository interface {
	List(ctx context.Context, q ListQuery) ([]model.Department, int64, error)
	FindByID(ctx context.Context, departmentID int64) (model.Department, error)
}

type CategoryRepository interface {
	List(ctx context.Context, q ListQuery) ([]model.Category, int64, error)
	FindByID(ctx context.Context, categoryID int64) (model.Category, error)
	ListByDepartmentID(ctx context.Context, departmentID int64) ([]model.Category, error)
	ListByProductID(ctx context.Context, productID int64) ([]model.Category, error)
}

type AttributeRepository interface {
	List(ctx context.Context, q ListQuery) ([]model.Attribute, int64, error)
	FindByID(ctx context.Context, attributeID int64) (model.Attribute, error)
	ListValues(ctx context.Context, attributeID int64) ([]model.AttributeValue, error)
	// 商品に付いた属性値を属性名込みで返す
	ListByProductID(ctx context.Context, productID int64) ([]ProductAttributeValue, error)
}

// attributes/inProduct のレスポンス行
type ProductAttributeValue struct {
	AttributeName    string `json:"attribute_name"`
	AttributeValueID int64  `json:"attribute_value_id"`
	AttributeValue   string `json:"attribute_value"`
}

type TaxRepository interface {
	List(ctx context.Context) ([]model.Tax, error)
	FindByID(ctx context.Context, taxID int64) (model.Tax, error)
}

type ShippingRepository interface {
	ListRegions(ctx context.Context) ([]model.ShippingRegion, error)
	// 地域内の配送方法
	ListByRegionID(ctx context.Context, shippingRegionID int64) ([]model.Shipping, error)
	FindByID(ctx context.Context, shippingID int64) (model.Shipping, error)
}
