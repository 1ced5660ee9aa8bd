package model

// 配送先住所
type Address struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"not null;index" json:"userId"`

	//宛名
	Name string `gorm:"type:varchar(255);not null" json:"name"`

	//電話番号
	Phone string `gorm:"type:varchar(30);not null" json:"phone"`

	AddressLine string `gorm:"type:varchar(255);not null" json:"addressLine"`
	City        string `gorm:"type:varchar(255);not null" json:"city"`
	State       string `gorm:"type:varchar(100);not null" json:"state"`
	Pincode     string `gorm:"type:varchar(20);not null" json:"pincode"`

	//このユーザーのデフォルト住所か
	IsDefault bool `gorm:"not null;default:false" json:"isDefault"`

	//HOME / WORK など
	AddressType string `gorm:"type:varchar(20);not null;default:'HOME'" json:"addressType"`
}
