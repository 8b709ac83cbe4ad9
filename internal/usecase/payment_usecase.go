package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"tshirtshop/internal/apperr"
	"tshirtshop/internal/domain/model"
	"tshirtshop/internal/payment"
	repo "tshirtshop/internal/repository"
)

type PaymentUsecase struct {
	charger   payment.Charger
	orderRepo repo.OrderRepository
	auditRepo repo.AuditRepository
	clock     Clock
}

func NewPaymentUsecase(
	charger payment.Charger,
	orderRepo repo.OrderRepository,
	auditRepo repo.AuditRepository,
	clock Clock,
) *PaymentUsecase {
	return &PaymentUsecase{
		charger:   charger,
		orderRepo: orderRepo,
		auditRepo: auditRepo,
		clock:     clock,
	}
}

type ChargeInput struct {
	StripeToken string
	OrderID     int64
	Description string
	// 最小通貨単位
	Amount   int64
	Currency string
}

// 注文に課金する。成功したら注文に auth_code / reference を記録する。
// プロバイダ呼び出しは同期・リトライなし。失敗はそのまま呼び出し側へ返す。
func (u *PaymentUsecase) Charge(ctx context.Context, in ChargeInput) (payment.Receipt, error) {
	if strings.TrimSpace(in.StripeToken) == "" {
		return payment.Receipt{}, apperr.WithField(apperr.COM01, "stripeToken")
	}
	if in.OrderID <= 0 {
		return payment.Receipt{}, apperr.WithField(apperr.COM01, "order_id")
	}
	if in.Amount <= 0 {
		return payment.Receipt{}, apperr.WithMessage(apperr.COM02, "The amount must be positive")
	}

	currency := in.Currency
	if currency == "" {
		currency = "usd"
	}

	order, err := u.orderRepo.FindByID(ctx, in.OrderID)
	if errors.Is(err, repo.ErrNotFound) {
		return payment.Receipt{}, apperr.New(apperr.ORD01)
	}
	if err != nil {
		return payment.Receipt{}, apperr.New(apperr.COM00)
	}

	receipt, err := u.charger.Charge(ctx, payment.ChargeInput{
		Token:       in.StripeToken,
		OrderID:     order.OrderID,
		Description: in.Description,
		Amount:      in.Amount,
		Currency:    currency,
	})
	if err != nil {
		//payment.Error はhandlerがエンベロープに変換する
		return payment.Receipt{}, err
	}

	//auth_codeはcharge ID、referenceはbalance transaction
	if err := u.orderRepo.MarkPaid(ctx, order.OrderID, receipt.ID, receipt.BalanceTransaction); err != nil {
		return payment.Receipt{}, apperr.New(apperr.COM00)
	}

	//監査はbest-effort。課金は既に成立している。
	if err := u.auditRepo.Create(ctx, model.Audit{
		OrderID:   order.OrderID,
		CreatedOn: u.clock.Now(),
		Message:   "Charge succeeded: " + receipt.ID,
		Code:      auditCodeOrderPaid,
	}); err != nil {
		log.Printf("order %d: charge audit failed: %v", order.OrderID, err)
	}

	return receipt, nil
}
