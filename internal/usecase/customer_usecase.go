package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"tshirtshop/internal/apperr"
	"tshirtshop/internal/domain/model"
	repo "tshirtshop/internal/repository"
	"tshirtshop/internal/social"
	"tshirtshop/internal/validator"

	"golang.org/x/crypto/bcrypt"
)

// 現在の時間
type Clock interface {
	Now() time.Time
}

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

// JWTを発行する約束
type TokenIssuer interface {
	Issue(customerID int64, now time.Time) (token string, expiresAt time.Time, err error)
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type BcryptPasswordVerifier struct{}

func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

type CustomerUsecase struct {
	customerRepo repo.CustomerRepository
	hasher       PasswordHasher
	verifier     PasswordVerifier
	issuer       TokenIssuer
	socialAuth   social.TokenVerifier
	clock        Clock
}

func NewCustomerUsecase(
	customerRepo repo.CustomerRepository,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	socialAuth social.TokenVerifier,
	clock Clock,
) *CustomerUsecase {
	return &CustomerUsecase{
		customerRepo: customerRepo,
		hasher:       hasher,
		verifier:     verifier,
		issuer:       issuer,
		socialAuth:   socialAuth,
		clock:        clock,
	}
}

// 登録・ログインの共通レスポンス
type AuthOutput struct {
	Customer    CustomerSchema `json:"customer"`
	AccessToken string         `json:"accessToken"`
	ExpiresIn   string         `json:"expires_in"`
}

// customer: {schema: {...}} の形
type CustomerSchema struct {
	Schema model.Customer `json:"schema"`
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// 会員登録。成功時はすぐ使えるトークンも返す。
func (u *CustomerUsecase) Register(ctx context.Context, in RegisterInput) (AuthOutput, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)

	if name == "" {
		return AuthOutput{}, apperr.WithField(apperr.USR02, "name")
	}
	if email == "" {
		return AuthOutput{}, apperr.WithField(apperr.USR02, "email")
	}
	if in.Password == "" {
		return AuthOutput{}, apperr.WithField(apperr.USR02, "password")
	}
	if len(name) > 50 {
		return AuthOutput{}, apperr.WithField(apperr.USR07, "name")
	}
	if len(email) > 100 {
		return AuthOutput{}, apperr.WithField(apperr.USR07, "email")
	}
	if !validator.ValidateEmail(email) {
		return AuthOutput{}, apperr.New(apperr.USR03)
	}

	//email重複チェック。最終防衛はDBのユニーク制約。
	if _, err := u.customerRepo.FindByEmail(ctx, email); err == nil {
		return AuthOutput{}, apperr.New(apperr.USR04)
	} else if !errors.Is(err, repo.ErrNotFound) {
		return AuthOutput{}, apperr.New(apperr.COM00)
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return AuthOutput{}, apperr.New(apperr.COM00)
	}

	created, err := u.customerRepo.Create(ctx, model.Customer{
		Name:             name,
		Email:            email,
		Password:         hashed,
		ShippingRegionID: 1,
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return AuthOutput{}, apperr.New(apperr.USR04)
	}
	if err != nil {
		return AuthOutput{}, apperr.New(apperr.COM00)
	}

	return u.authOutput(created)
}

type LoginInput struct {
	Email    string
	Password string
}

// ログイン。メール未登録は404、パスワード不一致は400で返す。
func (u *CustomerUsecase) Login(ctx context.Context, in LoginInput) (AuthOutput, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return AuthOutput{}, apperr.WithField(apperr.USR02, "email")
	}
	if in.Password == "" {
		return AuthOutput{}, apperr.WithField(apperr.USR02, "password")
	}

	c, err := u.customerRepo.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return AuthOutput{}, apperr.New(apperr.USR05)
	}
	if err != nil {
		return AuthOutput{}, apperr.New(apperr.COM00)
	}

	if !u.verifier.Verify(in.Password, c.Password) {
		return AuthOutput{}, apperr.New(apperr.USR01)
	}

	return u.authOutput(c)
}

// Facebookログイン。初回は顧客を作る。
func (u *CustomerUsecase) FacebookLogin(ctx context.Context, accessToken string) (AuthOutput, error) {
	if strings.TrimSpace(accessToken) == "" {
		return AuthOutput{}, apperr.WithField(apperr.COM01, "access_token")
	}

	id, err := u.socialAuth.Verify(ctx, accessToken)
	if err != nil {
		if errors.Is(err, social.ErrInvalidToken) {
			return AuthOutput{}, apperr.WithMessage(apperr.COM02, "Invalid access token")
		}
		return AuthOutput{}, apperr.New(apperr.COM00)
	}
	if id.Email == "" {
		return AuthOutput{}, apperr.WithMessage(apperr.COM02, "The provider did not return an email")
	}

	c, err := u.customerRepo.FindByEmail(ctx, id.Email)
	if errors.Is(err, repo.ErrNotFound) {
		//初回ログイン。ローカルパスワードは持たないのでトークンを種にする
		hashed, herr := u.hasher.Hash(id.ID + accessToken)
		if herr != nil {
			return AuthOutput{}, apperr.New(apperr.COM00)
		}
		c, err = u.customerRepo.Create(ctx, model.Customer{
			Name:             id.Name,
			Email:            id.Email,
			Password:         hashed,
			ShippingRegionID: 1,
		})
		if err != nil {
			return AuthOutput{}, apperr.New(apperr.COM00)
		}
	} else if err != nil {
		return AuthOutput{}, apperr.New(apperr.COM00)
	}

	return u.authOutput(c)
}

// トークン付きレスポンスを組み立てる
func (u *CustomerUsecase) authOutput(c model.Customer) (AuthOutput, error) {
	token, _, err := u.issuer.Issue(c.CustomerID, u.clock.Now())
	if err != nil {
		return AuthOutput{}, apperr.New(apperr.COM00)
	}

	c.CreditCard = model.MaskCreditCard(c.CreditCard)
	return AuthOutput{
		Customer:    CustomerSchema{Schema: c},
		AccessToken: "Bearer " + token,
		ExpiresIn:   "24h",
	}, nil
}

// ログイン中の顧客を返す。
func (u *CustomerUsecase) GetCustomer(ctx context.Context, customerID int64) (model.Customer, error) {
	c, err := u.customerRepo.FindByID(ctx, customerID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Customer{}, apperr.New(apperr.USR05)
	}
	if err != nil {
		return model.Customer{}, apperr.New(apperr.COM00)
	}
	c.CreditCard = model.MaskCreditCard(c.CreditCard)
	return c, nil
}

type UpdateCustomerInput struct {
	Name     string
	Email    string
	Password string
	DayPhone string
	EvePhone string
	MobPhone string
}

// プロフィール更新。
func (u *CustomerUsecase) UpdateCustomer(ctx context.Context, customerID int64, in UpdateCustomerInput) (model.Customer, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)

	if name == "" {
		return model.Customer{}, apperr.WithField(apperr.USR02, "name")
	}
	if email == "" {
		return model.Customer{}, apperr.WithField(apperr.USR02, "email")
	}
	if len(name) > 50 {
		return model.Customer{}, apperr.WithField(apperr.USR07, "name")
	}
	if len(email) > 100 {
		return model.Customer{}, apperr.WithField(apperr.USR07, "email")
	}
	if !validator.ValidateEmail(email) {
		return model.Customer{}, apperr.New(apperr.USR03)
	}

	for field, phone := range map[string]string{
		"day_phone": in.DayPhone,
		"eve_phone": in.EvePhone,
		"mob_phone": in.MobPhone,
	} {
		if phone != "" && !validator.ValidatePhone(phone) {
			return model.Customer{}, apperr.WithField(apperr.USR06, field)
		}
	}

	c, err := u.customerRepo.FindByID(ctx, customerID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Customer{}, apperr.New(apperr.USR05)
	}
	if err != nil {
		return model.Customer{}, apperr.New(apperr.COM00)
	}

	c.Name = name
	c.Email = email
	c.DayPhone = in.DayPhone
	c.EvePhone = in.EvePhone
	c.MobPhone = in.MobPhone

	if in.Password != "" {
		hashed, err := u.hasher.Hash(in.Password)
		if err != nil {
			return model.Customer{}, apperr.New(apperr.COM00)
		}
		c.Password = hashed
	}

	if err := u.customerRepo.Update(ctx, c); err != nil {
		return model.Customer{}, apperr.New(apperr.COM00)
	}

	c.CreditCard = model.MaskCreditCard(c.CreditCard)
	return c, nil
}

type UpdateAddressInput struct {
	Address1         string
	Address2         string
	City             string
	Region           string
	PostalCode       string
	Country          string
	ShippingRegionID int64
}

// 住所更新。
func (u *CustomerUsecase) UpdateAddress(ctx context.Context, customerID int64, in UpdateAddressInput) (model.Customer, error) {
	required := []struct {
		field string
		value string
	}{
		{"address_1", in.Address1},
		{"city", in.City},
		{"region", in.Region},
		{"postal_code", in.PostalCode},
		{"country", in.Country},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return model.Customer{}, apperr.WithField(apperr.USR02, r.field)
		}
	}
	if in.ShippingRegionID <= 0 {
		return model.Customer{}, apperr.New(apperr.USR09)
	}

	c, err := u.customerRepo.FindByID(ctx, customerID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Customer{}, apperr.New(apperr.USR05)
	}
	if err != nil {
		return model.Customer{}, apperr.New(apperr.COM00)
	}

	c.Address1 = in.Address1
	c.Address2 = in.Address2
	c.City = in.City
	c.Region = in.Region
	c.PostalCode = in.PostalCode
	c.Country = in.Country
	c.ShippingRegionID = in.ShippingRegionID

	if err := u.customerRepo.Update(ctx, c); err != nil {
		return model.Customer{}, apperr.New(apperr.COM00)
	}

	c.CreditCard = model.MaskCreditCard(c.CreditCard)
	return c, nil
}

// カード番号の登録。形式チェックだけ行い、保存は平文のまま
// （デモ用途。本番ならトークン化したものだけを預かる）。
func (u *CustomerUsecase) UpdateCreditCard(ctx context.Context, customerID int64, creditCard string) (model.Customer, error) {
	if strings.TrimSpace(creditCard) == "" {
		return model.Customer{}, apperr.WithField(apperr.COM02, "credit_card")
	}
	if !validator.ValidateCreditCard(creditCard) {
		return model.Customer{}, apperr.New(apperr.USR08)
	}

	c, err := u.customerRepo.FindByID(ctx, customerID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Customer{}, apperr.New(apperr.USR05)
	}
	if err != nil {
		return model.Customer{}, apperr.New(apperr.COM00)
	}

	c.CreditCard = creditCard
	if err := u.customerRepo.Update(ctx, c); err != nil {
		return model.Customer{}, apperr.New(apperr.COM00)
	}

	c.CreditCard = model.MaskCreditCard(c.CreditCard)
	return c, nil
}
