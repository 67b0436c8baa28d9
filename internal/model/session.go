package model

import "time"

// Session — выданный при логине bearer-токен.
// Строка удаляется при logout; сам JWT при этом остаётся криптографически
// валидным до embedded expiry — это текущее поведение, не баг.
type Session struct {
	ID     int64 `gorm:"primaryKey"`
	UserID int64 `gorm:"not null;index"` // ссылка на users.id

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Token     string    `gorm:"size:255;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
