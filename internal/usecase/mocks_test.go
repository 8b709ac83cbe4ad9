package usecase

import (
	"context"
	"time"

	"tshirtshop/internal/domain/model"
	repo "tshirtshop/internal/repository"
	"tshirtshop/internal/social"

	"github.com/stretchr/testify/mock"
)

// =====================
// 共通の部品（Clock / IDGenerator）
// =====================

type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.t
}

type fixedIDGen struct {
	id string
}

func (g *fixedIDGen) NewID() string {
	return g.id
}

// =====================
// Mock: CartItemRepository
// =====================

type MockCartItemRepository struct {
	mock.Mock
}

func (m *MockCartItemRepository) ListActiveByCartID(ctx context.Context, cartID string) ([]model.ShoppingCartItem, error) {
	args := m.Called(ctx, cartID)
	items, _ := args.Get(0).([]model.ShoppingCartItem)
	return items, args.Error(1)
}

func (m *MockCartItemRepository) ListSavedByCartID(ctx context.Context, cartID string) ([]model.ShoppingCartItem, error) {
	args := m.Called(ctx, cartID)
	items, _ := args.Get(0).([]model.ShoppingCartItem)
	return items, args.Error(1)
}

func (m *MockCartItemRepository) FindByID(ctx context.Context, itemID int64) (model.ShoppingCartItem, error) {
	args := m.Called(ctx, itemID)
	item, _ := args.Get(0).(model.ShoppingCartItem)
	return item, args.Error(1)
}

func (m *MockCartItemRepository) Add(ctx context.Context, item model.ShoppingCartItem, replaceQty bool) (model.ShoppingCartItem, error) {
	args := m.Called(ctx, item, replaceQty)
	created, _ := args.Get(0).(model.ShoppingCartItem)
	return created, args.Error(1)
}

func (m *MockCartItemRepository) UpdateQuantity(ctx context.Context, itemID int64, quantity int64) error {
	args := m.Called(ctx, itemID, quantity)
	return args.Error(0)
}

func (m *MockCartItemRepository) SetBuyNow(ctx context.Context, itemID int64, buyNow int16) error {
	args := m.Called(ctx, itemID, buyNow)
	return args.Error(0)
}

func (m *MockCartItemRepository) DeleteByID(ctx context.Context, itemID int64) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockCartItemRepository) DeleteByCartID(ctx context.Context, cartID string) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

// =====================
// Mock: ProductRepository
// =====================

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) FindByID(ctx context.Context, productID int64) (model.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) ListByCategoryID(ctx context.Context, categoryID int64, q repo.ListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, categoryID, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) ListByDepartmentID(ctx context.Context, departmentID int64, q repo.ListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, departmentID, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

// =====================
// Mock: CustomerRepository
// =====================

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, customerID int64) (model.Customer, error) {
	args := m.Called(ctx, customerID)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerRepository) FindByEmail(ctx context.Context, email string) (model.Customer, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Customer)
	return created, args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c model.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// =====================
// Mock: OrderRepository / OrderDetailRepository / AuditRepository
// =====================

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListByCustomerID(ctx context.Context, customerID int64) ([]model.Order, error) {
	args := m.Called(ctx, customerID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) MarkPaid(ctx context.Context, orderID int64, authCode string, reference string) error {
	args := m.Called(ctx, orderID, authCode, reference)
	return args.Error(0)
}

type MockOrderDetailRepository struct {
	mock.Mock
}

func (m *MockOrderDetailRepository) CreateBulk(ctx context.Context, orderID int64, details []model.OrderDetail) error {
	args := m.Called(ctx, orderID, details)
	return args.Error(0)
}

func (m *MockOrderDetailRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderDetail, error) {
	args := m.Called(ctx, orderID)
	details, _ := args.Get(0).([]model.OrderDetail)
	return details, args.Error(1)
}

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Create(ctx context.Context, a model.Audit) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAuditRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.Audit, error) {
	args := m.Called(ctx, orderID)
	audits, _ := args.Get(0).([]model.Audit)
	return audits, args.Error(1)
}

// =====================
// Mock: TaxRepository / ShippingRepository
// =====================

type MockTaxRepository struct {
	mock.Mock
}

func (m *MockTaxRepository) List(ctx context.Context) ([]model.Tax, error) {
	args := m.Called(ctx)
	taxes, _ := args.Get(0).([]model.Tax)
	return taxes, args.Error(1)
}

func (m *MockTaxRepository) FindByID(ctx context.Context, taxID int64) (model.Tax, error) {
	args := m.Called(ctx, taxID)
	tax, _ := args.Get(0).(model.Tax)
	return tax, args.Error(1)
}

type MockShippingRepository struct {
	mock.Mock
}

func (m *MockShippingRepository) ListRegions(ctx context.Context) ([]model.ShippingRegion, error) {
	args := m.Called(ctx)
	regions, _ := args.Get(0).([]model.ShippingRegion)
	return regions, args.Error(1)
}

func (m *MockShippingRepository) ListByRegionID(ctx context.Context, shippingRegionID int64) ([]model.Shipping, error) {
	args := m.Called(ctx, shippingRegionID)
	shippings, _ := args.Get(0).([]model.Shipping)
	return shippings, args.Error(1)
}

func (m *MockShippingRepository) FindByID(ctx context.Context, shippingID int64) (model.Shipping, error) {
	args := m.Called(ctx, shippingID)
	s, _ := args.Get(0).(model.Shipping)
	return s, args.Error(1)
}

// =====================
// Mock: DepartmentRepository / CategoryRepository
// =====================

type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) List(ctx context.Context, q repo.ListQuery) ([]model.Department, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Department)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockDepartmentRepository) FindByID(ctx context.Context, departmentID int64) (model.Department, error) {
	args := m.Called(ctx, departmentID)
	d, _ := args.Get(0).(model.Department)
	return d, args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context, q repo.ListQuery) ([]model.Category, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Category)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, categoryID int64) (model.Category, error) {
	args := m.Called(ctx, categoryID)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *MockCategoryRepository) ListByDepartmentID(ctx context.Context, departmentID int64) ([]model.Category, error) {
	args := m.Called(ctx, departmentID)
	items, _ := args.Get(0).([]model.Category)
	return items, args.Error(1)
}

func (m *MockCategoryRepository) ListByProductID(ctx context.Context, productID int64) ([]model.Category, error) {
	args := m.Called(ctx, productID)
	items, _ := args.Get(0).([]model.Category)
	return items, args.Error(1)
}

// =====================
// Mock: AttributeRepository / ReviewRepository
// =====================

type MockAttributeRepository struct {
	mock.Mock
}

func (m *MockAttributeRepository) List(ctx context.Context, q repo.ListQuery) ([]model.Attribute, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Attribute)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockAttributeRepository) FindByID(ctx context.Context, attributeID int64) (model.Attribute, error) {
	args := m.Called(ctx, attributeID)
	a, _ := args.Get(0).(model.Attribute)
	return a, args.Error(1)
}

func (m *MockAttributeRepository) ListValues(ctx context.Context, attributeID int64) ([]model.AttributeValue, error) {
	args := m.Called(ctx, attributeID)
	items, _ := args.Get(0).([]model.AttributeValue)
	return items, args.Error(1)
}

func (m *MockAttributeRepository) ListByProductID(ctx context.Context, productID int64) ([]repo.ProductAttributeValue, error) {
	args := m.Called(ctx, productID)
	items, _ := args.Get(0).([]repo.ProductAttributeValue)
	return items, args.Error(1)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) ListByProductID(ctx context.Context, productID int64) ([]model.Review, error) {
	args := m.Called(ctx, productID)
	items, _ := args.Get(0).([]model.Review)
	return items, args.Error(1)
}

func (m *MockReviewRepository) Create(ctx context.Context, r model.Review) (model.Review, error) {
	args := m.Called(ctx, r)
	created, _ := args.Get(0).(model.Review)
	return created, args.Error(1)
}

// =====================
// Tx: モックをそのまま束ねて渡す
// =====================

type fakeTxRepos struct {
	orders       repo.OrderRepository
	orderDetails repo.OrderDetailRepository
	cartItems    repo.CartItemRepository
	products     repo.ProductRepository
	audits       repo.AuditRepository
}

func (r *fakeTxRepos) Orders() repo.OrderRepository             { return r.orders }
func (r *fakeTxRepos) OrderDetails() repo.OrderDetailRepository { return r.orderDetails }
func (r *fakeTxRepos) CartItems() repo.CartItemRepository       { return r.cartItems }
func (r *fakeTxRepos) Products() repo.ProductRepository         { return r.products }
func (r *fakeTxRepos) Audits() repo.AuditRepository             { return r.audits }

// トランザクションなしでfnを呼ぶだけのTransactionManager
type fakeTxManager struct {
	repos *fakeTxRepos
}

func (m *fakeTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.repos)
}

// =====================
// Mock: Mailer / TokenVerifier（social）
// =====================

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendOrderConfirmation(to string, name string, orderID int64) error {
	args := m.Called(to, name, orderID)
	return args.Error(0)
}

type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) Verify(ctx context.Context, accessToken string) (social.Identity, error) {
	args := m.Called(ctx, accessToken)
	id, _ := args.Get(0).(social.Identity)
	return id, args.Error(1)
}

// =====================
// Stub: TokenIssuer
// =====================

type stubIssuer struct {
	token string
}

func (i *stubIssuer) Issue(customerID int64, now time.Time) (string, time.Time, error) {
	return i.token, now.Add(24 * time.Hour), nil
}
