package model

import "time"

// 商品レビュー
type Review struct {
	ReviewID   int64     `gorm:"primaryKey;autoIncrement;column:review_id" json:"review_id"`
	CustomerID int64     `gorm:"not null;index;column:customer_id" json:"customer_id"`
	ProductID  int64     `gorm:"not null;index;column:product_id" json:"product_id"`
	Review     string    `gorm:"type:text;not null" json:"review"`
	Rating     int16     `gorm:"not null" json:"rating"`
	CreatedOn  time.Time `gorm:"not null;column:created_on" json:"created_on"`
}

func (Review) TableName() string { return "review" }
