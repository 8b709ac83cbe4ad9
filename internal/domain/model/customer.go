package model

// 顧客。認証IDと1:1で、住所とカード番号もこの行に持つ。
type Customer struct {
	CustomerID       int64  `gorm:"primaryKey;autoIncrement;column:customer_id" json:"customer_id"`
	Name             string `gorm:"type:varchar(50);not null" json:"name"`
	Email            string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Password         string `gorm:"type:varchar(100);not null" json:"-"`
	CreditCard       string `gorm:"type:text" json:"credit_card"`
	Address1         string `gorm:"type:varchar(100);column:address_1" json:"address_1"`
	Address2         string `gorm:"type:varchar(100);column:address_2" json:"address_2"`
	City             string `gorm:"type:varchar(100)" json:"city"`
	Region           string `gorm:"type:varchar(100)" json:"region"`
	PostalCode       string `gorm:"type:varchar(100)" json:"postal_code"`
	Country          string `gorm:"type:varchar(100)" json:"country"`
	ShippingRegionID int64  `gorm:"not null;default:1;column:shipping_region_id" json:"shipping_region_id"`
	DayPhone         string `gorm:"type:varchar(100)" json:"day_phone"`
	EvePhone         string `gorm:"type:varchar(100)" json:"eve_phone"`
	MobPhone         string `gorm:"type:varchar(100)" json:"mob_phone"`
}

func (Customer) TableName() string { return "customer" }

// レスポンスに出すときはカード番号を下4桁以外マスクする
func MaskCreditCard(num string) string {
	digits := 0
	for _, r := range num {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits <= 4 {
		return num
	}
	seen := 0
	out := []rune(num)
	for i, r := range out {
		if r >= '0' && r <= '9' {
			seen++
			if seen <= digits-4 {
				out[i] = 'x'
			}
		}
	}
	return string(out)
}
