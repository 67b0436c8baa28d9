package service

import (
	"Fabrika/internal/model"
	"Fabrika/internal/repo"
	"context"
	"errors"

	"gorm.io/gorm"
)

// MaterialService — CRUD справочника материалов.
// Создание оптимистичное: вставляем сразу, конфликт имени ловим по
// нарушению уникального индекса при коммите (без пре-чека).
type MaterialService struct {
	materials repo.MaterialRepository
}

// NewMaterialService создаёт сервис материалов.
func NewMaterialService(materials repo.MaterialRepository) *MaterialService {
	return &MaterialService{materials: materials}
}

func (s *MaterialService) Create(ctx context.Context, name string, description *string) (*model.Material, error) {
	m := &model.Material{Name: name, Description: description}
	if err := s.materials.Create(ctx, m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return m, nil
}

func (s *MaterialService) Get(ctx context.Context, id int64) (*model.Material, error) {
	m, err := s.materials.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaterialNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *MaterialService) List(ctx context.Context) ([]model.Material, error) {
	return s.materials.List(ctx)
}

func (s *MaterialService) Update(ctx context.Context, id int64, name string, description *string) (*model.Material, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	m.Name = name
	m.Description = description
	if err := s.materials.Update(ctx, m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return m, nil
}

func (s *MaterialService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.materials.Delete(ctx, id)
}
