package repo

import (
	"Fabrika/internal/model"
	"context"

	"gorm.io/gorm"
)

// ProductTypeRepository — контракт доступа к справочнику типов изделий.
// GetByName нужен сервису для предварительной проверки имени при создании.
type ProductTypeRepository interface {
	Create(ctx context.Context, pt *model.ProductType) error
	GetByID(ctx context.Context, id int64) (*model.ProductType, error)
	GetByName(ctx context.Context, name string) (*model.ProductType, error)
	List(ctx context.Context) ([]model.ProductType, error)
	Update(ctx context.Context, pt *model.ProductType) error
	Delete(ctx context.Context, id int64) error
}

type productTypeRepo struct {
	db *gorm.DB
}

// NewProductTypeRepository создаёт реализацию репозитория для ProductType.
func NewProductTypeRepository(db *gorm.DB) ProductTypeRepository {
	return &productTypeRepo{db: db}
}

func (r *productTypeRepo) Create(ctx context.Context, pt *model.ProductType) error {
	return r.db.WithContext(ctx).Create(pt).Error
}

func (r *productTypeRepo) GetByID(ctx context.Context, id int64) (*model.ProductType, error) {
	var pt model.ProductType
	if err := r.db.WithContext(ctx).First(&pt, id).Error; err != nil {
		return nil, err
	}
	return &pt, nil
}

func (r *productTypeRepo) GetByName(ctx context.Context, name string) (*model.ProductType, error) {
	var pt model.ProductType
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&pt).Error; err != nil {
		return nil, err
	}
	return &pt, nil
}

func (r *productTypeRepo) List(ctx context.Context) ([]model.ProductType, error) {
	var pts []model.ProductType
	if err := r.db.WithContext(ctx).Order("id").Find(&pts).Error; err != nil {
		return nil, err
	}
	return pts, nil
}

func (r *productTypeRepo) Update(ctx context.Context, pt *model.ProductType) error {
	return r.db.WithContext(ctx).Save(pt).Error
}

func (r *productTypeRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.ProductType{}, id).Error
}
