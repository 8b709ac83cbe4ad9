package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"tshirtshop/internal/apperr"
	"tshirtshop/internal/domain/model"
	"tshirtshop/internal/notify"
	repo "tshirtshop/internal/repository"

	"github.com/shopspring/decimal"
)

// 監査ログのコード
const (
	auditCodeOrderPlaced = 1
	auditCodeOrderPaid   = 2
)

type OrderUsecase struct {
	tx              repo.TransactionManager
	orderRepo       repo.OrderRepository
	orderDetailRepo repo.OrderDetailRepository
	shippingRepo    repo.ShippingRepository
	taxRepo         repo.TaxRepository
	customerRepo    repo.CustomerRepository
	mailer          notify.Mailer
	clock           Clock
}

func NewOrderUsecase(
	tx repo.TransactionManager,
	orderRepo repo.OrderRepository,
	orderDetailRepo repo.OrderDetailRepository,
	shippingRepo repo.ShippingRepository,
	taxRepo repo.TaxRepository,
	customerRepo repo.CustomerRepository,
	mailer notify.Mailer,
	clock Clock,
) *OrderUsecase {
	return &OrderUsecase{
		tx:              tx,
		orderRepo:       orderRepo,
		orderDetailRepo: orderDetailRepo,
		shippingRepo:    shippingRepo,
		taxRepo:         taxRepo,
		customerRepo:    customerRepo,
		mailer:          mailer,
		clock:           clock,
	}
}

type CreateOrderInput struct {
	CartID     string
	ShippingID int64
	TaxID      int64
}

type CreateOrderOutput struct {
	OrderID int64 `json:"order_id"`
}

// カートを注文に変換する。
// 合計計算→注文作成→明細スナップショット→カート明細削除までを1トランザクションで行い、
// 確認メールはトランザクションの外でbest-effort送信する。
func (u *OrderUsecase) CreateOrder(ctx context.Context, customerID int64, in CreateOrderInput) (CreateOrderOutput, error) {
	if customerID <= 0 {
		return CreateOrderOutput{}, apperr.New(apperr.AUT02)
	}
	if strings.TrimSpace(in.CartID) == "" {
		return CreateOrderOutput{}, apperr.WithField(apperr.COM01, "cart_id")
	}

	//shipping_id / tax_id の存在確認
	if _, err := u.shippingRepo.FindByID(ctx, in.ShippingID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CreateOrderOutput{}, apperr.WithField(apperr.COM02, "shipping_id")
		}
		return CreateOrderOutput{}, apperr.New(apperr.COM00)
	}
	if _, err := u.taxRepo.FindByID(ctx, in.TaxID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CreateOrderOutput{}, apperr.WithField(apperr.COM02, "tax_id")
		}
		return CreateOrderOutput{}, apperr.New(apperr.COM00)
	}

	var orderID int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		items, err := r.CartItems().ListActiveByCartID(ctx, in.CartID)
		if err != nil {
			return apperr.New(apperr.COM00)
		}
		if len(items) == 0 {
			return apperr.New(apperr.SHP01)
		}

		//明細スナップショットと合計
		now := u.clock.Now()
		total := decimal.Zero
		details := make([]model.OrderDetail, 0, len(items))

		for _, it := range items {
			p, err := r.Products().FindByID(ctx, it.ProductID)
			if err != nil {
				if errors.Is(err, repo.ErrNotFound) {
					return apperr.New(apperr.PRO01)
				}
				return apperr.New(apperr.COM00)
			}

			unit := p.UnitPrice()
			total = total.Add(unit.Mul(decimal.NewFromInt(it.Quantity)))

			details = append(details, model.OrderDetail{
				ProductID:   it.ProductID,
				Attributes:  it.Attributes,
				ProductName: p.Name,
				Quantity:    it.Quantity,
				UnitCost:    unit,
			})
		}

		orderID, err = r.Orders().Create(ctx, model.Order{
			TotalAmount: total,
			CreatedOn:   now,
			Status:      model.OrderStatusCreated,
			CustomerID:  customerID,
			ShippingID:  in.ShippingID,
			TaxID:       in.TaxID,
		})
		if err != nil {
			return apperr.New(apperr.COM00)
		}

		if err := r.OrderDetails().CreateBulk(ctx, orderID, details); err != nil {
			return apperr.New(apperr.COM00)
		}

		if err := r.Audits().Create(ctx, model.Audit{
			OrderID:   orderID,
			CreatedOn: now,
			Message:   "Order placed",
			Code:      auditCodeOrderPlaced,
		}); err != nil {
			return apperr.New(apperr.COM00)
		}

		//同じカートで二度注文できないよう明細を消す
		if err := r.CartItems().DeleteByCartID(ctx, in.CartID); err != nil {
			return apperr.New(apperr.COM00)
		}

		return nil
	})
	if err != nil {
		return CreateOrderOutput{}, err
	}

	//確認メールはbest-effort。失敗しても注文は成立している。
	if c, err := u.customerRepo.FindByID(ctx, customerID); err == nil {
		if err := u.mailer.SendOrderConfirmation(c.Email, c.Name, orderID); err != nil {
			log.Printf("order %d: confirmation mail failed: %v", orderID, err)
		}
	}

	return CreateOrderOutput{OrderID: orderID}, nil
}

type OrderDetailRow struct {
	OrderID     int64           `json:"order_id"`
	ProductID   int64           `json:"product_id"`
	Attributes  string          `json:"attributes"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// 注文を1件取得する。
func (u *OrderUsecase) GetOrder(ctx context.Context, orderID int64) (model.Order, error) {
	o, err := u.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, apperr.New(apperr.ORD01)
	}
	if err != nil {
		return model.Order{}, apperr.New(apperr.COM00)
	}
	return o, nil
}

// 注文明細の一覧。明細が無ければ ORD_02。
func (u *OrderUsecase) GetOrderDetails(ctx context.Context, orderID int64) ([]OrderDetailRow, error) {
	details, err := u.orderDetailRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, apperr.New(apperr.COM00)
	}
	if len(details) == 0 {
		return nil, apperr.New(apperr.ORD02)
	}

	rows := make([]OrderDetailRow, 0, len(details))
	for _, d := range details {
		rows = append(rows, OrderDetailRow{
			OrderID:     d.OrderID,
			ProductID:   d.ProductID,
			Attributes:  d.Attributes,
			ProductName: d.ProductName,
			Quantity:    d.Quantity,
			UnitCost:    d.UnitCost,
			Subtotal:    d.UnitCost.Mul(decimal.NewFromInt(d.Quantity)),
		})
	}
	return rows, nil
}

type OrderShortDetail struct {
	OrderID     int64           `json:"order_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedOn   time.Time       `json:"created_on"`
	ShippedOn   *time.Time      `json:"shipped_on"`
	Status      int             `json:"status"`
	Name        string          `json:"name"`
}

// 注文の概要（顧客名付き）。
func (u *OrderUsecase) GetOrderShortDetail(ctx context.Context, orderID int64) (OrderShortDetail, error) {
	o, err := u.GetOrder(ctx, orderID)
	if err != nil {
		return OrderShortDetail{}, err
	}

	name := ""
	if c, err := u.customerRepo.FindByID(ctx, o.CustomerID); err == nil {
		name = c.Name
	}

	return OrderShortDetail{
		OrderID:     o.OrderID,
		TotalAmount: o.TotalAmount,
		CreatedOn:   o.CreatedOn,
		ShippedOn:   o.ShippedOn,
		Status:      o.Status,
		Name:        name,
	}, nil
}

// ログイン中の顧客の注文一覧。
func (u *OrderUsecase) ListOrdersForCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	if customerID <= 0 {
		return nil, apperr.New(apperr.AUT02)
	}

	orders, err := u.orderRepo.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, apperr.New(apperr.COM00)
	}
	return orders, nil
}
