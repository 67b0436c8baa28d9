package service

import (
	"Fabrika/internal/model"
	"Fabrika/internal/repo"
	"context"
	"errors"

	"gorm.io/gorm"
)

// ProductTypeService — CRUD справочника типов изделий.
// В отличие от материалов, создание сначала читает имя и только потом
// вставляет. Между чтением и вставкой есть окно для конкурентной вставки
// того же имени; проигравший в этом окне всё равно получает конфликт
// от уникального индекса БД.
type ProductTypeService struct {
	productTypes repo.ProductTypeRepository
}

// NewProductTypeService создаёт сервис типов изделий.
func NewProductTypeService(productTypes repo.ProductTypeRepository) *ProductTypeService {
	return &ProductTypeService{productTypes: productTypes}
}

func (s *ProductTypeService) Create(ctx context.Context, name string, description *string) (*model.ProductType, error) {
	existing, err := s.productTypes.GetByName(ctx, name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	pt := &model.ProductType{Name: name, Description: description}
	if err := s.productTypes.Create(ctx, pt); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return pt, nil
}

func (s *ProductTypeService) Get(ctx context.Context, id int64) (*model.ProductType, error) {
	pt, err := s.productTypes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductTypeNotFound
		}
		return nil, err
	}
	return pt, nil
}

func (s *ProductTypeService) List(ctx context.Context) ([]model.ProductType, error) {
	return s.productTypes.List(ctx)
}

func (s *ProductTypeService) Update(ctx context.Context, id int64, name string, description *string) (*model.ProductType, error) {
	pt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	pt.Name = name
	pt.Description = description
	if err := s.productTypes.Update(ctx, pt); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return pt, nil
}

func (s *ProductTypeService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.productTypes.Delete(ctx, id)
}
