package main

import (
	"log"
	"strconv"
	"time"

	"tshirtshop/internal/config"
	"tshirtshop/internal/domain/model"
	"tshirtshop/internal/handler"
	"tshirtshop/internal/infra/db"
	infraRepo "tshirtshop/internal/infra/repository"
	"tshirtshop/internal/notify"
	"tshirtshop/internal/payment"
	"tshirtshop/internal/server"
	"tshirtshop/internal/social"
	"tshirtshop/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(customerID int64, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(customerID, 10),
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Department{},
		&model.Category{},
		&model.Product{},
		&model.ProductCategory{},
		&model.Attribute{},
		&model.AttributeValue{},
		&model.ProductAttribute{},
		&model.Customer{},
		&model.ShoppingCartItem{},
		&model.ShippingRegion{},
		&model.Shipping{},
		&model.Tax{},
		&model.Order{},
		&model.OrderDetail{},
		&model.Audit{},
		&model.Review{},
	); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	departmentRepo := infraRepo.NewDepartmentGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	attributeRepo := infraRepo.NewAttributeGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	taxRepo := infraRepo.NewTaxGormRepository(gormDB)
	shippingRepo := infraRepo.NewShippingGormRepository(gormDB)
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderDetailRepo := infraRepo.NewOrderDetailGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := usecase.NewBcryptPasswordHasher(12)
	verifier := usecase.NewBcryptPasswordVerifier()

	//JWT issuer（24時間）
	issuer := &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: 24 * time.Hour,
	}

	//外部サービス
	fbVerifier := social.NewFacebookVerifier()
	stripeClient := payment.NewStripeClient(cfg.StripeAPIKey)
	mailer := notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.MailFrom)

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(departmentRepo, categoryRepo, productRepo, attributeRepo, reviewRepo, taxRepo, shippingRepo, clock)
	cartUC := usecase.NewCartUsecase(cartItemRepo, productRepo, idGen)
	customerUC := usecase.NewCustomerUsecase(customerRepo, hasher, verifier, issuer, fbVerifier, clock)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo, orderDetailRepo, shippingRepo, taxRepo, customerRepo, mailer, clock)
	paymentUC := usecase.NewPaymentUsecase(stripeClient, orderRepo, auditRepo, clock)

	//Handler生成
	handlers := server.Handlers{
		Catalog:  handler.NewCatalogHandler(catalogUC),
		Cart:     handler.NewShoppingCartHandler(cartUC),
		Customer: handler.NewCustomerHandler(customerUC),
		Order:    handler.NewOrderHandler(orderUC),
		Stripe:   handler.NewStripeHandler(paymentUC),
	}

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(addr, cfg, handlers); err != nil {
		log.Fatal(err)
	}
}
