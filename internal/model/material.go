package model

// Material — справочник материалов. Имя глобально уникально (точное совпадение).
type Material struct {
	ID          int64   `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;uniqueIndex;not null"`
	Description *string `gorm:"size:255"`
}
