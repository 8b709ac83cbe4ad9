package repository

import (
	"context"

	"tshirtshop/internal/domain/model"
)

type CustomerRepository interface {
	FindByID(ctx context.Context, customerID int64) (model.Customer, error)
	FindByEmail(ctx context.Context, email string) (model.Customer, error)
	Create(ctx context.Context, c model.Customer) (model.Customer, error)
	Update(ctx context.Context, c model.Customer) error
}
