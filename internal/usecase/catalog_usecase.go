package usecase

import (
	"context"
	"errors"

	"tshirtshop/internal/apperr"
	"tshirtshop/internal/domain/model"
	repo "tshirtshop/internal/repository"
)

// CatalogUsecase はカタログ参照系（部門/カテゴリ/商品/属性/税/配送）。
// 読み取り専用で、書き込みはレビュー投稿だけ。
type CatalogUsecase struct {
	departmentRepo repo.DepartmentRepository
	categoryRepo   repo.CategoryRepository
	productRepo    repo.ProductRepository
	attributeRepo  repo.AttributeRepository
	reviewRepo     repo.ReviewRepository
	taxRepo        repo.TaxRepository
	shippingRepo   repo.ShippingRepository
	clock          Clock
}

func NewCatalogUsecase(
	departmentRepo repo.DepartmentRepository,
	categoryRepo repo.CategoryRepository,
	productRepo repo.ProductRepository,
	attributeRepo repo.AttributeRepository,
	reviewRepo repo.ReviewRepository,
	taxRepo repo.TaxRepository,
	shippingRepo repo.ShippingRepository,
	clock Clock,
) *CatalogUsecase {
	return &CatalogUsecase{
		departmentRepo: departmentRepo,
		categoryRepo:   categoryRepo,
		productRepo:    productRepo,
		attributeRepo:  attributeRepo,
		reviewRepo:     reviewRepo,
		taxRepo:        taxRepo,
		shippingRepo:   shippingRepo,
		clock:          clock,
	}
}

// 一覧系の共通入力（page/limit は handler がデフォルトを入れる）
type PageInput struct {
	Page  int
	Limit int
	// 説明文をこの長さで切って "..." を付ける。0なら切らない。
	DescriptionLength int
}

func (in PageInput) listQuery() repo.ListQuery {
	return repo.ListQuery{Page: in.Page, Limit: in.Limit}
}

func (in PageInput) validate() error {
	if in.Page < 1 {
		return apperr.WithField(apperr.COM02, "page")
	}
	if in.Limit < 1 || in.Limit > 200 {
		return apperr.WithField(apperr.COM02, "limit")
	}
	return nil
}

// 説明文の切り詰め。マルチバイトを壊さないようruneで数える
func truncateDescription(s string, length int) string {
	if length <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	return string(runes[:length]) + "..."
}

type DepartmentListOutput struct {
	Items []model.Department `json:"items"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

func (u *CatalogUsecase) ListDepartments(ctx context.Context, in PageInput) (DepartmentListOutput, error) {
	if err := in.validate(); err != nil {
		return DepartmentListOutput{}, err
	}

	items, total, err := u.departmentRepo.List(ctx, in.listQuery())
	if err != nil {
		return DepartmentListOutput{}, apperr.New(apperr.COM00)
	}
	return DepartmentListOutput{Items: items, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

func (u *CatalogUsecase) GetDepartment(ctx context.Context, departmentID int64) (model.Department, error) {
	d, err := u.departmentRepo.FindByID(ctx, departmentID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Department{}, apperr.New(apperr.DEP02)
	}
	if err != nil {
		return model.Department{}, apperr.New(apperr.COM00)
	}
	return d, nil
}

type CategoryListOutput struct {
	Items []model.Category `json:"items"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

func (u *CatalogUsecase) ListCategories(ctx context.Context, in PageInput) (CategoryListOutput, error) {
	if err := in.validate(); err != nil {
		return CategoryListOutput{}, err
	}

	items, total, err := u.categoryRepo.List(ctx, in.listQuery())
	if err != nil {
		return CategoryListOutput{}, apperr.New(apperr.COM00)
	}
	return CategoryListOutput{Items: items, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

func (u *CatalogUsecase) GetCategory(ctx context.Context, categoryID int64) (model.Category, error) {
	c, err := u.categoryRepo.FindByID(ctx, categoryID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Category{}, apperr.New(apperr.CAT01)
	}
	if err != nil {
		return model.Category{}, apperr.New(apperr.COM00)
	}
	return c, nil
}

// 部門内のカテゴリ。部門が無ければ DEP_02。
func (u *CatalogUsecase) ListCategoriesInDepartment(ctx context.Context, departmentID int64) ([]model.Category, error) {
	if _, err := u.departmentRepo.FindByID(ctx, departmentID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.New(apperr.DEP02)
		}
		return nil, apperr.New(apperr.COM00)
	}

	items, err := u.categoryRepo.ListByDepartmentID(ctx, departmentID)
	if err != nil {
		return nil, apperr.New(apperr.COM00)
	}
	return items, nil
}

// 商品が属するカテゴリ。
func (u *CatalogUsecase) ListCategoriesOfProduct(ctx context.Context, productID int64) ([]model.Category, error) {
	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.New(apperr.PRO01)
		}
		return nil, apperr.New(apperr.COM00)
	}

	items, err := u.categoryRepo.ListByProductID(ctx, productID)
	if err != nil {
		return nil, apperr.New(apperr.COM00)
	}
	return items, nil
}

type ProductListInput struct {
	PageInput
	// query_string 検索
	Q string
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

func (u *CatalogUsecase) ListProducts(ctx context.Context, in ProductListInput) (ProductListOutput, error) {
	if err := in.validate(); err != nil {
		return ProductListOutput{}, err
	}

	items, total, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Page:  in.Page,
		Limit: in.Limit,
		Q:     in.Q,
	})
	if err != nil {
		return ProductListOutput{}, apperr.New(apperr.COM00)
	}

	for i := range items {
		items[i].Description = truncateDescription(items[i].Description, in.DescriptionLength)
	}
	return ProductListOutput{Items: items, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

func (u *CatalogUsecase) GetProduct(ctx context.Context, productID int64) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, apperr.New(apperr.PRO01)
	}
	if err != nil {
		return model.Product{}, apperr.New(apperr.COM00)
	}
	return p, nil
}

func (u *CatalogUsecase) ListProductsInCategory(ctx context.Context, categoryID int64, in PageInput) (ProductListOutput, error) {
	if err := in.validate(); err != nil {
		return ProductListOutput{}, err
	}
	if _, err := u.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ProductListOutput{}, apperr.New(apperr.CAT01)
		}
		return ProductListOutput{}, apperr.New(apperr.COM00)
	}

	items, total, err := u.productRepo.ListByCategoryID(ctx, categoryID, in.listQuery())
	if err != nil {
		return ProductListOutput{}, apperr.New(apperr.COM00)
	}
	for i := range items {
		items[i].Description = truncateDescription(items[i].Description, in.DescriptionLength)
	}
	return ProductListOutput{Items: items, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

func (u *CatalogUsecase) ListProductsInDepartment(ctx context.Context, departmentID int64, in PageInput) (ProductListOutput, error) {
	if err := in.validate(); err != nil {
		return ProductListOutput{}, err
	}
	if _, err := u.departmentRepo.FindByID(ctx, departmentID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ProductListOutput{}, apperr.New(apperr.DEP02)
		}
		return ProductListOutput{}, apperr.New(apperr.COM00)
	}

	items, total, err := u.productRepo.ListByDepartmentID(ctx, departmentID, in.listQuery())
	if err != nil {
		return ProductListOutput{}, apperr.New(apperr.COM00)
	}
	for i := range items {
		items[i].Description = truncateDescription(items[i].Description, in.DescriptionLength)
	}
	return ProductListOutput{Items: items, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

// 商品の売り場（カテゴリと部門の組）
type ProductLocation struct {
	CategoryID     int64  `json:"category_id"`
	CategoryName   string `json:"category_name"`
	DepartmentID   int64  `json:"department_id"`
	DepartmentName string `json:"department_name"`
}

func (u *CatalogUsecase) GetProductLocations(ctx context.Context, productID int64) ([]ProductLocation, error) {
	cats, err := u.ListCategoriesOfProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	out := make([]ProductLocation, 0, len(cats))
	for _, c := range cats {
		d, err := u.departmentRepo.FindByID(ctx, c.DepartmentID)
		if err != nil {
			return nil, apperr.New(apperr.COM00)
		}
		out = append(out, ProductLocation{
			CategoryID:     c.CategoryID,
			CategoryName:   c.Name,
			DepartmentID:   d.DepartmentID,
			DepartmentName: d.Name,
		})
	}
	return out, nil
}

type AttributeListOutput struct {
	Items []model.Attribute `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

func (u *CatalogUsecase) ListAttributes(ctx context.Context, in PageInput) (AttributeListOutput, error) {
	if err := in.validate(); err != nil {
		return AttributeListOutput{}, err
	}

	items, total, err := u.attributeRepo.List(ctx, in.listQuery())
	if err != nil {
		return AttributeListOutput{}, apperr.New(apperr.COM00)
	}
	return AttributeListOutput{Items: items, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

func (u *CatalogUsecase) GetAttribute(ctx context.Context, attributeID int64) (model.Attribute, error) {
	a, err := u.attributeRepo.FindByID(ctx, attributeID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Attribute{}, apperr.WithMessage(apperr.COM02, "Don't exist attribute with this ID")
	}
	if err != nil {
		return model.Attribute{}, apperr.New(apperr.COM00)
	}
	return a, nil
}

func (u *CatalogUsecase) ListAttributeValues(ctx context.Context, attributeID int64) ([]model.AttributeValue, error) {
	if _, err := u.GetAttribute(ctx, attributeID); err != nil {
		return nil, err
	}

	items, err := u.attributeRepo.ListValues(ctx, attributeID)
	if err != nil {
		return nil, apperr.New(apperr.COM00)
	}
	return items, nil
}

func (u *CatalogUsecase) ListAttributesOfProduct(ctx context.Context, productID int64) ([]repo.ProductAttributeValue, error) {
	items, err := u.attributeRepo.ListByProductID(ctx, productID)
	if err != nil {
		return nil, apperr.New(apperr.COM00)
	}
	return items, nil
}

func (u *CatalogUsecase) ListReviews(ctx context.Context, productID int64) ([]model.Review, error) {
	if _, err := u.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	items, err := u.reviewRepo.ListByProductID(ctx, productID)
	if err != nil {
		return nil, apperr.New(apperr.COM00)
	}
	return items, nil
}

type CreateReviewInput struct {
	Review string
	Rating int16
}

// レビュー投稿（要ログイン）。
func (u *CatalogUsecase) CreateReview(ctx context.Context, customerID int64, productID int64, in CreateReviewInput) (model.Review, error) {
	if customerID <= 0 {
		return model.Review{}, apperr.New(apperr.AUT02)
	}
	if in.Review == "" {
		return model.Review{}, apperr.WithField(apperr.COM01, "review")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return model.Review{}, apperr.WithMessage(apperr.COM02, "The rating must be between 1 and 5")
	}
	if _, err := u.GetProduct(ctx, productID); err != nil {
		return model.Review{}, err
	}

	created, err := u.reviewRepo.Create(ctx, model.Review{
		CustomerID: customerID,
		ProductID:  productID,
		Review:     in.Review,
		Rating:     in.Rating,
		CreatedOn:  u.clock.Now(),
	})
	if err != nil {
		return model.Review{}, apperr.New(apperr.COM00)
	}
	return created, nil
}

func (u *CatalogUsecase) ListTaxes(ctx context.Context) ([]model.Tax, error) {
	items, err := u.taxRepo.List(ctx)
	if err != nil {
		return nil, apperr.New(apperr.COM00)
	}
	return items, nil
}

func (u *CatalogUsecase) GetTax(ctx context.Context, taxID int64) (model.Tax, error) {
	t, err := u.taxRepo.FindByID(ctx, taxID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Tax{}, apperr.WithStatus(apperr.COM02, "Don't exist tax with this ID", 404)
	}
	if err != nil {
		return model.Tax{}, apperr.New(apperr.COM00)
	}
	return t, nil
}

func (u *CatalogUsecase) ListShippingRegions(ctx context.Context) ([]model.ShippingRegion, error) {
	items, err := u.shippingRepo.ListRegions(ctx)
	if err != nil {
		return nil, apperr.New(apperr.COM00)
	}
	return items, nil
}

// 地域内の配送方法一覧。
func (u *CatalogUsecase) ListShippingsInRegion(ctx context.Context, shippingRegionID int64) ([]model.Shipping, error) {
	items, err := u.shippingRepo.ListByRegionID(ctx, shippingRegionID)
	if err != nil {
		return nil, apperr.New(apperr.COM00)
	}
	return items, nil
}
