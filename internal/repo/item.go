package repo

import (
	"Fabrika/internal/model"
	"context"

	"gorm.io/gorm"
)

// ItemRepository — контракт доступа к изделиям.
// Двухфазная запись (вставка строки, затем Save с путём паспорта) принадлежит
// сервисному слою; репозиторий даёт только отдельные коммиты.
type ItemRepository interface {
	Create(ctx context.Context, it *model.Item) error
	GetByID(ctx context.Context, id int64) (*model.Item, error)
	List(ctx context.Context) ([]model.Item, error)
	Save(ctx context.Context, it *model.Item) error
	Delete(ctx context.Context, id int64) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(ctx context.Context, it *model.Item) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *itemRepo) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	var it model.Item
	if err := r.db.WithContext(ctx).First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) List(ctx context.Context) ([]model.Item, error) {
	var its []model.Item
	if err := r.db.WithContext(ctx).Order("id").Find(&its).Error; err != nil {
		return nil, err
	}
	return its, nil
}

func (r *itemRepo) Save(ctx context.Context, it *model.Item) error {
	return r.db.WithContext(ctx).Save(it).Error
}

func (r *itemRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Item{}, id).Error
}
