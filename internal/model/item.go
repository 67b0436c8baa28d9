package model

// Item — изготавливаемое изделие.
//
// MaterialID и ProductTypeID проверяются на существование только при создании;
// справочная запись может быть удалена позже, «повисшая» ссылка допустима.
// Намеренно без FK-констрейнтов в БД, чтобы не менять это поведение.
//
// PDFPath == nil означает состояние Pending: строка вставлена, но паспорт
// ещё не сгенерирован (или генерация упала и ждёт повторного update).
type Item struct {
	ID            int64 `gorm:"primaryKey"`
	MaterialID    int64 `gorm:"not null;index"`
	ProductTypeID int64 `gorm:"not null;index"`

	Width  float64 `gorm:"not null"`
	Height float64 `gorm:"not null"`

	PDFPath *string `gorm:"size:255"`
}
