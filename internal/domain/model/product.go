package model

import "github.com/shopspring/decimal"

// 商品。price と discounted_price は独立した金額カラム。
type Product struct {
	ProductID       int64           `gorm:"primaryKey;autoIncrement;column:product_id" json:"product_id"`
	Name            string          `gorm:"type:varchar(100);not null" json:"name"`
	Description     string          `gorm:"type:varchar(1000);not null" json:"description"`
	Price           decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	DiscountedPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"discounted_price"`
	Image           string          `gorm:"type:varchar(150)" json:"image"`
	Image2          string          `gorm:"type:varchar(150);column:image_2" json:"image_2"`
	Thumbnail       string          `gorm:"type:varchar(150)" json:"thumbnail"`
	Display         int16           `gorm:"not null;default:0" json:"display"`
}

func (Product) TableName() string { return "product" }

// 計算に使う単価。price が0のときだけ discounted_price に倒す。
func (p Product) UnitPrice() decimal.Decimal {
	if p.Price.IsZero() {
		return p.DiscountedPrice
	}
	return p.Price
}

// 商品とカテゴリの紐付け
type ProductCategory struct {
	ProductID  int64 `gorm:"primaryKey;column:product_id" json:"product_id"`
	CategoryID int64 `gorm:"primaryKey;column:category_id" json:"category_id"`
}

func (ProductCategory) TableName() string { return "product_category" }
