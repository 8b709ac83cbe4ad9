package model

// 部門
type Department struct {
	DepartmentID int64  `gorm:"primaryKey;autoIncrement;column:department_id" json:"department_id"`
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	Description  string `gorm:"type:varchar(1000)" json:"description"`
}

func (Department) TableName() string { return "department" }

// カテゴリ（部門に属する）
type Category struct {
	CategoryID   int64  `gorm:"primaryKey;autoIncrement;column:category_id" json:"category_id"`
	DepartmentID int64  `gorm:"not null;index;column:department_id" json:"department_id"`
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	Description  string `gorm:"type:varchar(1000)" json:"description"`
}

func (Category) TableName() string { return "category" }

// 属性（Size / Color など）
type Attribute struct {
	AttributeID int64  `gorm:"primaryKey;autoIncrement;column:attribute_id" json:"attribute_id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
}

func (Attribute) TableName() string { return "attribute" }

// 属性値（S / M / L など）
type AttributeValue struct {
	AttributeValueID int64  `gorm:"primaryKey;autoIncrement;column:attribute_value_id" json:"attribute_value_id"`
	AttributeID      int64  `gorm:"not null;index;column:attribute_id" json:"attribute_id"`
	Value            string `gorm:"type:varchar(100);not null" json:"value"`
}

func (AttributeValue) TableName() string { return "attribute_value" }

// 商品と属性値の紐付け
type ProductAttribute struct {
	ProductID        int64 `gorm:"primaryKey;column:product_id" json:"product_id"`
	AttributeValueID int64 `gorm:"primaryKey;column:attribute_value_id" json:"attribute_value_id"`
}

func (ProductAttribute) TableName() string { return "product_attribute" }
