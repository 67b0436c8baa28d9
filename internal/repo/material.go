package repo

import (
	"Fabrika/internal/model"
	"context"

	"gorm.io/gorm"
)

// MaterialRepository — контракт доступа к справочнику материалов.
type MaterialRepository interface {
	// Create вставляет материал. Дубликат имени — gorm.ErrDuplicatedKey.
	Create(ctx context.Context, m *model.Material) error

	// GetByID ищет материал по id. Если не найден — gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id int64) (*model.Material, error)

	// List возвращает все материалы.
	List(ctx context.Context) ([]model.Material, error)

	// Update сохраняет изменённую запись. Дубликат имени — gorm.ErrDuplicatedKey.
	Update(ctx context.Context, m *model.Material) error

	// Delete удаляет материал по id.
	Delete(ctx context.Context, id int64) error
}

type materialRepo struct {
	db *gorm.DB
}

// NewMaterialRepository создаёт реализацию репозитория для Material.
func NewMaterialRepository(db *gorm.DB) MaterialRepository {
	return &materialRepo{db: db}
}

func (r *materialRepo) Create(ctx context.Context, m *model.Material) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *materialRepo) GetByID(ctx context.Context, id int64) (*model.Material, error) {
	var m model.Material
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *materialRepo) List(ctx context.Context) ([]model.Material, error) {
	var ms []model.Material
	if err := r.db.WithContext(ctx).Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}
	return ms, nil
}

func (r *materialRepo) Update(ctx context.Context, m *model.Material) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *materialRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Material{}, id).Error
}
