package model

// User — зарегистрированный пользователь сервиса.
// Password хранит bcrypt-хеш, не сам пароль.
type User struct {
	ID       int64  `gorm:"primaryKey"`
	Username string `gorm:"size:50;uniqueIndex;not null"`
	Password string `gorm:"size:255;not null"`
}
