package model

import "time"

// buy_now の値。1が買い物中、0が「あとで買う」。
const (
	BuyNowSaved  = 0
	BuyNowActive = 1
)

// カート明細。cart_id はカート実体への外部キーではなく、
// 同じ文字列を共有する行の集まりがひとつのカートになる。
// (cart_id, product_id) にユニーク制約を張って重複登録を防ぐ。
type ShoppingCartItem struct {
	ItemID     int64     `gorm:"primaryKey;autoIncrement;column:item_id" json:"item_id"`
	CartID     string    `gorm:"type:varchar(64);not null;index;uniqueIndex:uq_cart_product;column:cart_id" json:"cart_id"`
	ProductID  int64     `gorm:"not null;uniqueIndex:uq_cart_product;column:product_id" json:"product_id"`
	Attributes string    `gorm:"type:varchar(1000);not null" json:"attributes"`
	Quantity   int64     `gorm:"not null" json:"quantity"`
	BuyNow     int16     `gorm:"not null;default:1;column:buy_now" json:"buy_now"`
	AddedOn    time.Time `gorm:"not null;column:added_on" json:"added_on"`
}

func (ShoppingCartItem) TableName() string { return "shopping_cart" }
