package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"tshirtshop/internal/apperr"
	"tshirtshop/internal/domain/model"
	repo "tshirtshop/internal/repository"
	"tshirtshop/internal/social"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newCustomerUsecaseForTest(customerRepo *MockCustomerRepository, fb *MockTokenVerifier) *CustomerUsecase {
	return NewCustomerUsecase(
		customerRepo,
		NewBcryptPasswordHasher(bcrypt.MinCost),
		NewBcryptPasswordVerifier(),
		&stubIssuer{token: "test-token"},
		fb,
		&fixedClock{t: time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)},
	)
}

func TestRegister(t *testing.T) {
	customerRepo := &MockCustomerRepository{}
	uc := newCustomerUsecaseForTest(customerRepo, &MockTokenVerifier{})

	customerRepo.On("FindByEmail", mock.Anything, "taro@example.com").Return(model.Customer{}, repo.ErrNotFound)
	customerRepo.On("Create", mock.Anything, mock.MatchedBy(func(c model.Customer) bool {
		//パスワードはハッシュで保存される
		return c.Name == "Taro" && c.Email == "taro@example.com" && c.Password != "secret" && c.ShippingRegionID == 1
	})).Return(model.Customer{CustomerID: 7, Name: "Taro", Email: "taro@example.com"}, nil)

	out, err := uc.Register(context.Background(), RegisterInput{Name: "Taro", Email: "taro@example.com", Password: "secret"})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), out.Customer.Schema.CustomerID)
	assert.Equal(t, "Bearer test-token", out.AccessToken)
	assert.Equal(t, "24h", out.ExpiresIn)
	customerRepo.AssertExpectations(t)
}

func TestRegister_Validation(t *testing.T) {
	uc := newCustomerUsecaseForTest(&MockCustomerRepository{}, &MockTokenVerifier{})

	cases := []struct {
		name      string
		in        RegisterInput
		wantCode  string
		wantField string
	}{
		{"名前なし", RegisterInput{Email: "a@b.co", Password: "x"}, "USR_02", "name"},
		{"メールなし", RegisterInput{Name: "Taro", Password: "x"}, "USR_02", "email"},
		{"パスワードなし", RegisterInput{Name: "Taro", Email: "a@b.co"}, "USR_02", "password"},
		{"名前が長すぎ", RegisterInput{Name: strings.Repeat("a", 51), Email: "a@b.co", Password: "x"}, "USR_07", "name"},
		{"メールが長すぎ", RegisterInput{Name: "Taro", Email: strings.Repeat("a", 95) + "@ex.com", Password: "x"}, "USR_07", "email"},
		{"メール形式不正", RegisterInput{Name: "Taro", Email: "not-an-email", Password: "x"}, "USR_03", "email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Register(context.Background(), tc.in)
			e, ok := apperr.As(err)
			assert.True(t, ok)
			assert.Equal(t, tc.wantCode, e.Code)
			assert.Equal(t, tc.wantField, e.Field)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	customerRepo := &MockCustomerRepository{}
	uc := newCustomerUsecaseForTest(customerRepo, &MockTokenVerifier{})

	customerRepo.On("FindByEmail", mock.Anything, "taro@example.com").Return(model.Customer{CustomerID: 7}, nil)

	_, err := uc.Register(context.Background(), RegisterInput{Name: "Taro", Email: "taro@example.com", Password: "x"})
	e, _ := apperr.As(err)
	assert.Equal(t, "USR_04", e.Code)
}

func TestLogin(t *testing.T) {
	customerRepo := &MockCustomerRepository{}
	uc := newCustomerUsecaseForTest(customerRepo, &MockTokenVerifier{})

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	customerRepo.On("FindByEmail", mock.Anything, "taro@example.com").Return(model.Customer{
		CustomerID: 7, Email: "taro@example.com", Password: string(hashed), CreditCard: "4242424242424242",
	}, nil)

	out, err := uc.Login(context.Background(), LoginInput{Email: "taro@example.com", Password: "secret"})

	assert.NoError(t, err)
	assert.Equal(t, "Bearer test-token", out.AccessToken)
	//カード番号は下4桁以外マスクされる
	assert.Equal(t, "xxxxxxxxxxxx4242", out.Customer.Schema.CreditCard)
}

func TestLogin_UnknownEmail(t *testing.T) {
	customerRepo := &MockCustomerRepository{}
	uc := newCustomerUsecaseForTest(customerRepo, &MockTokenVerifier{})

	customerRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(model.Customer{}, repo.ErrNotFound)

	_, err := uc.Login(context.Background(), LoginInput{Email: "ghost@example.com", Password: "x"})
	e, _ := apperr.As(err)
	assert.Equal(t, "USR_05", e.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	customerRepo := &MockCustomerRepository{}
	uc := newCustomerUsecaseForTest(customerRepo, &MockTokenVerifier{})

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	customerRepo.On("FindByEmail", mock.Anything, "taro@example.com").Return(model.Customer{
		CustomerID: 7, Password: string(hashed),
	}, nil)

	_, err := uc.Login(context.Background(), LoginInput{Email: "taro@example.com", Password: "wrong"})
	e, _ := apperr.As(err)
	assert.Equal(t, "USR_01", e.Code)
}

func TestFacebookLogin_CreatesCustomerOnFirstLogin(t *testing.T) {
	customerRepo := &MockCustomerRepository{}
	fb := &MockTokenVerifier{}
	uc := newCustomerUsecaseForTest(customerRepo, fb)

	fb.On("Verify", mock.Anything, "fb-token").Return(social.Identity{ID: "fb123", Name: "Taro", Email: "taro@example.com"}, nil)
	customerRepo.On("FindByEmail", mock.Anything, "taro@example.com").Return(model.Customer{}, repo.ErrNotFound)
	customerRepo.On("Create", mock.Anything, mock.MatchedBy(func(c model.Customer) bool {
		return c.Name == "Taro" && c.Email == "taro@example.com"
	})).Return(model.Customer{CustomerID: 8, Name: "Taro", Email: "taro@example.com"}, nil)

	out, err := uc.FacebookLogin(context.Background(), "fb-token")

	assert.NoError(t, err)
	assert.Equal(t, int64(8), out.Customer.Schema.CustomerID)
	customerRepo.AssertExpectations(t)
}

func TestFacebookLogin_InvalidToken(t *testing.T) {
	fb := &MockTokenVerifier{}
	uc := newCustomerUsecaseForTest(&MockCustomerRepository{}, fb)

	fb.On("Verify", mock.Anything, "bad").Return(social.Identity{}, social.ErrInvalidToken)

	_, err := uc.FacebookLogin(context.Background(), "bad")
	e, _ := apperr.As(err)
	assert.Equal(t, "COM_02", e.Code)
	assert.Equal(t, "Invalid access token", e.Message)
}

func TestFacebookLogin_MissingToken(t *testing.T) {
	uc := newCustomerUsecaseForTest(&MockCustomerRepository{}, &MockTokenVerifier{})

	_, err := uc.FacebookLogin(context.Background(), " ")
	e, _ := apperr.As(err)
	assert.Equal(t, "COM_01", e.Code)
	assert.Equal(t, "access_token", e.Field)
}

func TestUpdateCustomer_InvalidPhone(t *testing.T) {
	uc := newCustomerUsecaseForTest(&MockCustomerRepository{}, &MockTokenVerifier{})

	_, err := uc.UpdateCustomer(context.Background(), 7, UpdateCustomerInput{
		Name: "Taro", Email: "taro@example.com", DayPhone: "bad-phone",
	})
	e, _ := apperr.As(err)
	assert.Equal(t, "USR_06", e.Code)
	assert.Equal(t, "day_phone", e.Field)
}

func TestUpdateAddress_RequiredFields(t *testing.T) {
	uc := newCustomerUsecaseForTest(&MockCustomerRepository{}, &MockTokenVerifier{})

	_, err := uc.UpdateAddress(context.Background(), 7, UpdateAddressInput{
		City: "Tokyo", Region: "Kanto", PostalCode: "100-0001", Country: "JP", ShippingRegionID: 2,
	})
	e, _ := apperr.As(err)
	assert.Equal(t, "USR_02", e.Code)
	assert.Equal(t, "address_1", e.Field)
}

func TestUpdateAddress_InvalidShippingRegion(t *testing.T) {
	uc := newCustomerUsecaseForTest(&MockCustomerRepository{}, &MockTokenVerifier{})

	_, err := uc.UpdateAddress(context.Background(), 7, UpdateAddressInput{
		Address1: "1-1-1", City: "Tokyo", Region: "Kanto", PostalCode: "100-0001", Country: "JP",
	})
	e, _ := apperr.As(err)
	assert.Equal(t, "USR_09", e.Code)
}

func TestUpdateCreditCard(t *testing.T) {
	customerRepo := &MockCustomerRepository{}
	uc := newCustomerUsecaseForTest(customerRepo, &MockTokenVerifier{})

	customerRepo.On("FindByID", mock.Anything, int64(7)).Return(model.Customer{CustomerID: 7}, nil)
	customerRepo.On("Update", mock.Anything, mock.MatchedBy(func(c model.Customer) bool {
		return c.CreditCard == "4242-4242-4242-4242"
	})).Return(nil)

	out, err := uc.UpdateCreditCard(context.Background(), 7, "4242-4242-4242-4242")

	assert.NoError(t, err)
	assert.Equal(t, "xxxx-xxxx-xxxx-4242", out.CreditCard)
}

func TestUpdateCreditCard_Invalid(t *testing.T) {
	uc := newCustomerUsecaseForTest(&MockCustomerRepository{}, &MockTokenVerifier{})

	_, err := uc.UpdateCreditCard(context.Background(), 7, "1111111111111111")
	e, _ := apperr.As(err)
	assert.Equal(t, "USR_08", e.Code)

	_, err = uc.UpdateCreditCard(context.Background(), 7, "")
	e, _ = apperr.As(err)
	assert.Equal(t, "COM_02", e.Code)
	assert.Equal(t, "credit_card", e.Field)
}
