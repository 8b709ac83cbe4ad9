package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"tshirtshop/internal/apperr"
	"tshirtshop/internal/domain/model"
	"tshirtshop/internal/payment"
	repo "tshirtshop/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mock: Charger
// =====================

type MockCharger struct {
	mock.Mock
}

func (m *MockCharger) Charge(ctx context.Context, in payment.ChargeInput) (payment.Receipt, error) {
	args := m.Called(ctx, in)
	r, _ := args.Get(0).(payment.Receipt)
	return r, args.Error(1)
}

func newPaymentUsecaseForTest(charger *MockCharger, orderRepo *MockOrderRepository, auditRepo *MockAuditRepository) *PaymentUsecase {
	return NewPaymentUsecase(charger, orderRepo, auditRepo, &fixedClock{t: time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)})
}

func TestCharge(t *testing.T) {
	charger := &MockCharger{}
	orderRepo := &MockOrderRepository{}
	auditRepo := &MockAuditRepository{}
	uc := newPaymentUsecaseForTest(charger, orderRepo, auditRepo)

	orderRepo.On("FindByID", mock.Anything, int64(100)).Return(model.Order{OrderID: 100}, nil)
	//currency省略はusdに倒す
	charger.On("Charge", mock.Anything, payment.ChargeInput{
		Token: "tok_visa", OrderID: 100, Description: "Order 100", Amount: 2999, Currency: "usd",
	}).Return(payment.Receipt{ID: "ch_1", Status: "succeeded", Amount: 2999, Currency: "usd", Paid: true, BalanceTransaction: "txn_1"}, nil)
	//auth_codeはcharge ID、referenceはbalance transaction
	orderRepo.On("MarkPaid", mock.Anything, int64(100), "ch_1", "txn_1").Return(nil)
	auditRepo.On("Create", mock.Anything, mock.MatchedBy(func(a model.Audit) bool {
		return a.OrderID == 100 && a.Code == auditCodeOrderPaid
	})).Return(nil)

	receipt, err := uc.Charge(context.Background(), ChargeInput{
		StripeToken: "tok_visa", OrderID: 100, Description: "Order 100", Amount: 2999,
	})

	assert.NoError(t, err)
	assert.Equal(t, "ch_1", receipt.ID)
	assert.True(t, receipt.Paid)
	orderRepo.AssertExpectations(t)
	charger.AssertExpectations(t)
}

func TestCharge_AuditFailureDoesNotFailCharge(t *testing.T) {
	charger := &MockCharger{}
	orderRepo := &MockOrderRepository{}
	auditRepo := &MockAuditRepository{}
	uc := newPaymentUsecaseForTest(charger, orderRepo, auditRepo)

	orderRepo.On("FindByID", mock.Anything, int64(100)).Return(model.Order{OrderID: 100}, nil)
	charger.On("Charge", mock.Anything, mock.Anything).Return(payment.Receipt{ID: "ch_1", Status: "succeeded", Paid: true}, nil)
	orderRepo.On("MarkPaid", mock.Anything, int64(100), "ch_1", "").Return(nil)
	auditRepo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	receipt, err := uc.Charge(context.Background(), ChargeInput{
		StripeToken: "tok_visa", OrderID: 100, Amount: 2999,
	})

	//監査の失敗は課金結果に影響しない
	assert.NoError(t, err)
	assert.Equal(t, "ch_1", receipt.ID)
}

func TestCharge_Validation(t *testing.T) {
	uc := newPaymentUsecaseForTest(&MockCharger{}, &MockOrderRepository{}, &MockAuditRepository{})

	_, err := uc.Charge(context.Background(), ChargeInput{OrderID: 100, Amount: 2999})
	e, _ := apperr.As(err)
	assert.Equal(t, "COM_01", e.Code)
	assert.Equal(t, "stripeToken", e.Field)

	_, err = uc.Charge(context.Background(), ChargeInput{StripeToken: "tok_visa", Amount: 2999})
	e, _ = apperr.As(err)
	assert.Equal(t, "COM_01", e.Code)
	assert.Equal(t, "order_id", e.Field)

	_, err = uc.Charge(context.Background(), ChargeInput{StripeToken: "tok_visa", OrderID: 100})
	e, _ = apperr.As(err)
	assert.Equal(t, "COM_02", e.Code)
	assert.Equal(t, "The amount must be positive", e.Message)
}

func TestCharge_UnknownOrder(t *testing.T) {
	charger := &MockCharger{}
	orderRepo := &MockOrderRepository{}
	uc := newPaymentUsecaseForTest(charger, orderRepo, &MockAuditRepository{})

	orderRepo.On("FindByID", mock.Anything, int64(404)).Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.Charge(context.Background(), ChargeInput{StripeToken: "tok_visa", OrderID: 404, Amount: 2999})
	e, _ := apperr.As(err)
	assert.Equal(t, "ORD_01", e.Code)
}

func TestCharge_ProviderErrorPassesThrough(t *testing.T) {
	charger := &MockCharger{}
	orderRepo := &MockOrderRepository{}
	uc := newPaymentUsecaseForTest(charger, orderRepo, &MockAuditRepository{})

	orderRepo.On("FindByID", mock.Anything, int64(100)).Return(model.Order{OrderID: 100}, nil)
	cardErr := &payment.Error{Message: "Your card was declined", Status: http.StatusPaymentRequired, Type: "card_error", Code: "card_declined"}
	charger.On("Charge", mock.Anything, mock.Anything).Return(payment.Receipt{}, cardErr)

	_, err := uc.Charge(context.Background(), ChargeInput{StripeToken: "tok_chargeDeclined", OrderID: 100, Amount: 2999})

	//プロバイダのエラーはそのまま返る（handlerがエンベロープにする）
	assert.Same(t, cardErr, err)
	orderRepo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
