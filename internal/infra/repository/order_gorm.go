package repository

import (
	"context"
	"errors"

	"tshirtshop/internal/domain/model"
	repo "tshirtshop/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) ListByCustomerID(ctx context.Context, customerID int64) ([]model.Order, error) {
	var items []model.Order
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("order_id desc").
		Find(&items).Error
	if err != nil {
		return []model.Order{}, err
	}
	return items, nil
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return 0, err
	}
	return order.OrderID, nil
}

// 決済完了を記録
func (r *OrderGormRepository) MarkPaid(ctx context.Context, orderID int64, authCode string, reference string) error {
	res := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("order_id = ?", orderID).
		Updates(map[string]interface{}{
			"status":    model.OrderStatusPaid,
			"auth_code": authCode,
			"reference": reference,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

type OrderDetailGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderDetailGormRepository(db *gorm.DB) *OrderDetailGormRepository {
	return &OrderDetailGormRepository{db: db}
}

// 注文明細を一括作成
func (r *OrderDetailGormRepository) CreateBulk(ctx context.Context, orderID int64, details []model.OrderDetail) error {
	if len(details) == 0 {
		return nil
	}
	for i := range details {
		details[i].OrderID = orderID
	}
	return r.db.WithContext(ctx).Create(&details).Error
}

func (r *OrderDetailGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderDetail, error) {
	var items []model.OrderDetail
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("item_id asc").
		Find(&items).Error
	if err != nil {
		return []model.OrderDetail{}, err
	}
	return items, nil
}

type AuditGormRepository struct {
	db *gorm.DB
}

// DI
func NewAuditGormRepository(db *gorm.DB) *AuditGormRepository {
	return &AuditGormRepository{db: db}
}

func (r *AuditGormRepository) Create(ctx context.Context, a model.Audit) error {
	return r.db.WithContext(ctx).Create(&a).Error
}

func (r *AuditGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.Audit, error) {
	var items []model.Audit
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("audit_id asc").
		Find(&items).Error
	if err != nil {
		return []model.Audit{}, err
	}
	return items, nil
}
