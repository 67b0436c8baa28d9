package repo

import (
	"Fabrika/internal/model"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// InitDB открывает соединение с БД и прогоняет автомиграции.
// По DSN выбирается драйвер: postgres для URL-схем postgres://,
// иначе SQLite (чистый Go, modernc.org/sqlite).
// TranslateError включён, чтобы нарушение уникального индекса приходило
// как gorm.ErrDuplicatedKey независимо от драйвера.
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		dial = postgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Session{},
		&model.Material{},
		&model.ProductType{},
		&model.Item{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
