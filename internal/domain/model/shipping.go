package model

import "github.com/shopspring/decimal"

// 配送方法（地域ごとの配送手段と料金）
type Shipping struct {
	ShippingID       int64           `gorm:"primaryKey;autoIncrement;column:shipping_id" json:"shipping_id"`
	ShippingType     string          `gorm:"type:varchar(100);not null;column:shipping_type" json:"shipping_type"`
	ShippingCost     decimal.Decimal `gorm:"type:numeric(10,2);not null;column:shipping_cost" json:"shipping_cost"`
	ShippingRegionID int64           `gorm:"not null;index;column:shipping_region_id" json:"shipping_region_id"`
}

func (Shipping) TableName() string { return "shipping" }

// 配送地域
type ShippingRegion struct {
	ShippingRegionID   int64  `gorm:"primaryKey;autoIncrement;column:shipping_region_id" json:"shipping_region_id"`
	ShippingRegionName string `gorm:"type:varchar(100);not null;column:shipping_region" json:"shipping_region"`
}

func (ShippingRegion) TableName() string { return "shipping_region" }

// 税区分
type Tax struct {
	TaxID         int64           `gorm:"primaryKey;autoIncrement;column:tax_id" json:"tax_id"`
	TaxType       string          `gorm:"type:varchar(100);not null;column:tax_type" json:"tax_type"`
	TaxPercentage decimal.Decimal `gorm:"type:numeric(10,2);not null;column:tax_percentage" json:"tax_percentage"`
}

func (Tax) TableName() string { return "tax" }
