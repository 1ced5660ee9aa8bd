package model

type Category struct {
	ID    int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"type:varchar(255);not null;index" json:"name"`
	Image string `gorm:"type:text;not null" json:"image"`
}
