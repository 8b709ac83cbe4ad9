package repository

import (
	"context"

	"tshirtshop/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	ListByCustomerID(ctx context.Context, customerID int64) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	// 決済完了を記録（status=paid, auth_code, reference）
	MarkPaid(ctx context.Context, orderID int64, authCode string, reference string) error
}

type OrderDetailRepository interface {
	CreateBulk(ctx context.Context, orderID int64, details []model.OrderDetail) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderDetail, error)
}

type AuditRepository interface {
	Create(ctx context.Context, a model.Audit) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.Audit, error)
}
