package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文ステータス（整数コード）
const (
	OrderStatusCreated = 0
	OrderStatusShipped = 1
	OrderStatusPaid    = 2
)

// 注文。注文作成APIからしか作られない（空の注文は存在しない）。
type Order struct {
	OrderID     int64           `gorm:"primaryKey;autoIncrement;column:order_id" json:"order_id"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	CreatedOn   time.Time       `gorm:"not null;column:created_on" json:"created_on"`
	ShippedOn   *time.Time      `gorm:"column:shipped_on" json:"shipped_on"`
	Status      int             `gorm:"not null;default:0" json:"status"`
	Comments    string          `gorm:"type:varchar(255)" json:"comments"`
	CustomerID  int64           `gorm:"not null;index;column:customer_id" json:"customer_id"`
	AuthCode    string          `gorm:"type:varchar(50);column:auth_code" json:"auth_code"`
	Reference   string          `gorm:"type:varchar(50)" json:"reference"`
	ShippingID  int64           `gorm:"column:shipping_id" json:"shipping_id"`
	TaxID       int64           `gorm:"column:tax_id" json:"tax_id"`
}

func (Order) TableName() string { return "orders" }

// 注文明細。注文時点の商品名・単価を非正規化して写す。
// あとから商品が編集されても過去の注文は変わらない。
type OrderDetail struct {
	ItemID      int64           `gorm:"primaryKey;autoIncrement;column:item_id" json:"item_id"`
	OrderID     int64           `gorm:"not null;index;column:order_id" json:"order_id"`
	ProductID   int64           `gorm:"not null;column:product_id" json:"product_id"`
	Attributes  string          `gorm:"type:varchar(1000);not null" json:"attributes"`
	ProductName string          `gorm:"type:varchar(100);not null;column:product_name" json:"product_name"`
	Quantity    int64           `gorm:"not null" json:"quantity"`
	UnitCost    decimal.Decimal `gorm:"type:numeric(10,2);not null;column:unit_cost" json:"unit_cost"`
}

func (OrderDetail) TableName() string { return "order_detail" }

// 注文の監査ログ
type Audit struct {
	AuditID   int64     `gorm:"primaryKey;autoIncrement;column:audit_id" json:"audit_id"`
	OrderID   int64     `gorm:"not null;index;column:order_id" json:"order_id"`
	CreatedOn time.Time `gorm:"not null;column:created_on" json:"created_on"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Code      int       `gorm:"not null" json:"code"`
}

func (Audit) TableName() string { return "audit" }
