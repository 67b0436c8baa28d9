package service

import (
	"Fabrika/internal/model"
	"Fabrika/internal/repo"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Renderer — генератор паспорта изделия. Реализация живёт в internal/pdf.
type Renderer interface {
	// Render создаёт PDF для изделия и возвращает относительный путь файла.
	Render(itemID int64, width, height float64) (string, error)

	// Remove удаляет файл артефакта по сохранённому пути.
	// Отсутствующий файл не считается ошибкой.
	Remove(relPath string) error
}

// ItemService — workflow изделия: проверка ссылок на справочники,
// двухфазная запись (вставка строки, генерация паспорта, сохранение пути)
// и жизненный цикл файла артефакта.
//
// Две фазы намеренно не обёрнуты в одну транзакцию: между коммитами изделие
// видно читателям в состоянии Pending (pdf_path = null), и это нормальное
// переходное состояние, на которое полагаются клиенты.
type ItemService struct {
	items        repo.ItemRepository
	materials    repo.MaterialRepository
	productTypes repo.ProductTypeRepository
	renderer     Renderer
	logger       *zap.SugaredLogger
}

// NewItemService создаёт сервис изделий.
func NewItemService(
	items repo.ItemRepository,
	materials repo.MaterialRepository,
	productTypes repo.ProductTypeRepository,
	renderer Renderer,
	logger *zap.SugaredLogger,
) *ItemService {
	return &ItemService{
		items:        items,
		materials:    materials,
		productTypes: productTypes,
		renderer:     renderer,
		logger:       logger,
	}
}

// Create проверяет обе ссылки, вставляет строку с пустым pdf_path, генерирует
// паспорт и вторым коммитом записывает путь. Если генерация упала, строка
// остаётся в Pending и НЕ откатывается: клиент может повторить рендер
// обычным update по тому же id.
func (s *ItemService) Create(ctx context.Context, materialID, productTypeID int64, width, height float64) (*model.Item, error) {
	if _, err := s.materials.GetByID(ctx, materialID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaterialNotFound
		}
		return nil, err
	}
	if _, err := s.productTypes.GetByID(ctx, productTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductTypeNotFound
		}
		return nil, err
	}

	it := &model.Item{
		MaterialID:    materialID,
		ProductTypeID: productTypeID,
		Width:         width,
		Height:        height,
	}
	if err := s.items.Create(ctx, it); err != nil {
		return nil, err
	}

	relPath, err := s.renderer.Render(it.ID, width, height)
	if err != nil {
		s.logger.Errorw("item render failed, row stays pending", "item_id", it.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	it.PDFPath = &relPath
	if err := s.items.Save(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

// Get возвращает изделие по id. Pending-изделия видны с pdf_path = null.
func (s *ItemService) Get(ctx context.Context, id int64) (*model.Item, error) {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return it, nil
}

// List возвращает все изделия.
func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	return s.items.List(ctx)
}

// Update меняет поля и безусловно перегенерирует паспорт. Ссылки на
// справочники повторно НЕ проверяются, в отличие от Create.
// Старый файл паспорта остаётся на диске, только путь в строке
// указывает на новый файл. Сохранение происходит после успешного рендера;
// при падении рендера строка остаётся в прежнем закоммиченном состоянии.
func (s *ItemService) Update(ctx context.Context, id, materialID, productTypeID int64, width, height float64) (*model.Item, error) {
	it, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	it.MaterialID = materialID
	it.ProductTypeID = productTypeID
	it.Width = width
	it.Height = height

	relPath, err := s.renderer.Render(it.ID, width, height)
	if err != nil {
		s.logger.Errorw("item re-render failed, stored row unchanged", "item_id", it.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	it.PDFPath = &relPath
	if err := s.items.Save(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

// Delete убирает файл паспорта (best effort, отсутствие файла терпимо)
// и затем строку. Файл и строка не удаляются атомарно: артефакты производные
// и восстановимы, осиротевший файл или повисший путь — не коррупция.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	it, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if it.PDFPath != nil {
		if err := s.renderer.Remove(*it.PDFPath); err != nil {
			s.logger.Warnw("failed to remove item pdf", "item_id", it.ID, "path", *it.PDFPath, "error", err)
		}
	}

	return s.items.Delete(ctx, id)
}
