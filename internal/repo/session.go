package repo

import (
	"Fabrika/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionRepository — контракт доступа к Session.
type SessionRepository interface {
	// CreateSession сохраняет выданный токен. Повторная вставка того же
	// значения токена ничего не делает: уникальность держит индекс БД.
	CreateSession(ctx context.Context, s *model.Session) error

	// GetByToken ищет сессию по точному значению токена.
	// Если не найдена — gorm.ErrRecordNotFound.
	GetByToken(ctx context.Context, token string) (*model.Session, error)

	// DeleteSession удаляет строку сессии по id.
	DeleteSession(ctx context.Context, id int64) error
}

type sessionRepo struct {
	db *gorm.DB
}

// NewSessionRepository создаёт реализацию репозитория для Session.
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) CreateSession(ctx context.Context, s *model.Session) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoNothing: true,
	}).Create(s).Error
}

func (r *sessionRepo) GetByToken(ctx context.Context, token string) (*model.Session, error) {
	var s model.Session
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepo) DeleteSession(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Session{}, id).Error
}
