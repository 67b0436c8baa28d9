package model

// ProductType — справочник типов изделий. Имя глобально уникально.
type ProductType struct {
	ID          int64   `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;uniqueIndex;not null"`
	Description *string `gorm:"size:255"`
}
