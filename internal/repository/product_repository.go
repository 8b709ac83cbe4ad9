package repository

import (
	"context"

	"tshirtshop/internal/domain/model"
)

// 商品一覧の検索条件
type ProductListQuery struct {
	Page  int
	Limit int
	// query_string 検索（名前・説明の部分一致）
	Q string
}

// 商品の読み取り。カタログは参照のみでCRUDの書き込みは持たない。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, productID int64) (model.Product, error)
	ListByCategoryID(ctx context.Context, categoryID int64, q ListQuery) ([]model.Product, int64, error)
	ListByDepartmentID(ctx context.Context, departmentID int64, q ListQuery) ([]model.Product, int64, error)
}

type ReviewRepository interface {
	ListByProductID(ctx context.Context, productID int64) ([]model.Review, error)
	Create(ctx context.Context, r model.Review) (model.Review, error)
}
