package repository

import (
	"context"
	"errors"

	"tshirtshop/internal/domain/model"
	repo "tshirtshop/internal/repository"

	"gorm.io/gorm"
)

type DepartmentGormRepository struct {
	db *gorm.DB
}

// DI
func NewDepartmentGormRepository(db *gorm.DB) *DepartmentGormRepository {
	return &DepartmentGormRepository{db: db}
}

func (r *DepartmentGormRepository) List(ctx context.Context, q repo.ListQuery) ([]model.Department, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Department{}).Count(&total).Error; err != nil {
		return []model.Department{}, 0, err
	}

	var items []model.Department
	err := r.db.WithContext(ctx).
		Order("department_id asc").
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&items).Error
	if err != nil {
		return []model.Department{}, 0, err
	}
	return items, total, nil
}

func (r *DepartmentGormRepository) FindByID(ctx context.Context, departmentID int64) (model.Department, error) {
	var d model.Department
	err := r.db.WithContext(ctx).Where("department_id = ?", departmentID).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Department{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Department{}, err
	}
	return d, nil
}

type CategoryGormRepository struct {
	db *gorm.DB
}

// DI
func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{db: db}
}

func (r *CategoryGormRepository) List(ctx context.Context, q repo.ListQuery) ([]model.Category, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Category{}).Count(&total).Error; err != nil {
		return []model.Category{}, 0, err
	}

	var items []model.Category
	err := r.db.WithContext(ctx).
		Order("category_id asc").
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&items).Error
	if err != nil {
		return []model.Category{}, 0, err
	}
	return items, total, nil
}

func (r *CategoryGormRepository) FindByID(ctx context.Context, categoryID int64) (model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Category{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Category{}, err
	}
	return c, nil
}

func (r *CategoryGormRepository) ListByDepartmentID(ctx context.Context, departmentID int64) ([]model.Category, error) {
	var items []model.Category
	err := r.db.WithContext(ctx).
		Where("department_id = ?", departmentID).
		Order("category_id asc").
		Find(&items).Error
	if err != nil {
		return []model.Category{}, err
	}
	return items, nil
}

// 商品が属するカテゴリ（product_category 経由）
func (r *CategoryGormRepository) ListByProductID(ctx context.Context, productID int64) ([]model.Category, error) {
	var items []model.Category
	err := r.db.WithContext(ctx).
		Joins("JOIN product_category pc ON pc.category_id = category.category_id").
		Where("pc.product_id = ?", productID).
		Order("category.category_id asc").
		Find(&items).Error
	if err != nil {
		return []model.Category{}, err
	}
	return items, nil
}

type AttributeGormRepository struct {
	db *gorm.DB
}

// DI
func NewAttributeGormRepository(db *gorm.DB) *AttributeGormRepository {
	return &AttributeGormRepository{db: db}
}

func (r *AttributeGormRepository) List(ctx context.Context, q repo.ListQuery) ([]model.Attribute, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Attribute{}).Count(&total).Error; err != nil {
		return []model.Attribute{}, 0, err
	}

	var items []model.Attribute
	err := r.db.WithContext(ctx).
		Order("attribute_id asc").
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&items).Error
	if err != nil {
		return []model.Attribute{}, 0, err
	}
	return items, total, nil
}

func (r *AttributeGormRepository) FindByID(ctx context.Context, attributeID int64) (model.Attribute, error) {
	var a model.Attribute
	err := r.db.WithContext(ctx).Where("attribute_id = ?", attributeID).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Attribute{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Attribute{}, err
	}
	return a, nil
}

func (r *AttributeGormRepository) ListValues(ctx context.Context, attributeID int64) ([]model.AttributeValue, error) {
	var items []model.AttributeValue
	err := r.db.WithContext(ctx).
		Where("attribute_id = ?", attributeID).
		Order("attribute_value_id asc").
		Find(&items).Error
	if err != nil {
		return []model.AttributeValue{}, err
	}
	return items, nil
}

// 商品に付いた属性値を属性名込みで返す
func (r *AttributeGormRepository) ListByProductID(ctx context.Context, productID int64) ([]repo.ProductAttributeValue, error) {
	var rows []repo.ProductAttributeValue
	err := r.db.WithContext(ctx).
		Table("attribute_value av").
		Select("a.name AS attribute_name, av.attribute_value_id, av.value AS attribute_value").
		Joins("JOIN attribute a ON a.attribute_id = av.attribute_id").
		Joins("JOIN product_attribute pa ON pa.attribute_value_id = av.attribute_value_id").
		Where("pa.product_id = ?", productID).
		Order("av.attribute_value_id asc").
		Scan(&rows).Error
	if err != nil {
		return []repo.ProductAttributeValue{}, err
	}
	return rows, nil
}

type TaxGormRepository struct {
	db *gorm.DB
}

// DI
func NewTaxGormRepository(db *gorm.DB) *TaxGormRepository {
	return &TaxGormRepository{db: db}
}

func (r *TaxGormRepository) List(ctx context.Context) ([]model.Tax, error) {
	var items []model.Tax
	if err := r.db.WithContext(ctx).Order("tax_id asc").Find(&items).Error; err != nil {
		return []model.Tax{}, err
	}
	return items, nil
}

func (r *TaxGormRepository) FindByID(ctx context.Context, taxID int64) (model.Tax, error) {
	var t model.Tax
	err := r.db.WithContext(ctx).Where("tax_id = ?", taxID).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Tax{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Tax{}, err
	}
	return t, nil
}

type ShippingGormRepository struct {
	db *gorm.DB
}

// DI
func NewShippingGormRepository(db *gorm.DB) *ShippingGormRepository {
	return &ShippingGormRepository{db: db}
}

func (r *ShippingGormRepository) ListRegions(ctx context.Context) ([]model.ShippingRegion, error) {
	var items []model.ShippingRegion
	if err := r.db.WithContext(ctx).Order("shipping_region_id asc").Find(&items).Error; err != nil {
		return []model.ShippingRegion{}, err
	}
	return items, nil
}

func (r *ShippingGormRepository) ListByRegionID(ctx context.Context, shippingRegionID int64) ([]model.Shipping, error) {
	var items []model.Shipping
	err := r.db.WithContext(ctx).
		Where("shipping_region_id = ?", shippingRegionID).
		Order("shipping_id asc").
		Find(&items).Error
	if err != nil {
		return []model.Shipping{}, err
	}
	return items, nil
}

func (r *ShippingGormRepository) FindByID(ctx context.Context, shippingID int64) (model.Shipping, error) {
	var s model.Shipping
	err := r.db.WithContext(ctx).Where("shipping_id = ?", shippingID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Shipping{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Shipping{}, err
	}
	return s, nil
}
