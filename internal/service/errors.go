package service

import (
	"errors"
	"fmt"
)

// Ошибки бизнес-слоя. Хендлеры отображают их в HTTP-статусы:
// ErrNotFound → 404, ErrDuplicateName/ErrLoginTaken → 400,
// ErrUnauthorized → 401, ErrSessionNotFound → 404, ErrRender → 500.
var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicateName   = errors.New("name already exists")
	ErrLoginTaken      = errors.New("username already exists")
	ErrUnauthorized    = errors.New("invalid credentials")
	ErrSessionNotFound = errors.New("session not found")
	ErrRender          = errors.New("render failed")
)

// Конкретизации ErrNotFound: хендлеру изделий нужно различать, какая именно
// ссылка не нашлась. errors.Is(err, ErrNotFound) остаётся истинным для всех.
var (
	ErrMaterialNotFound    = fmt.Errorf("material %w", ErrNotFound)
	ErrProductTypeNotFound = fmt.Errorf("product type %w", ErrNotFound)
	ErrItemNotFound        = fmt.Errorf("item %w", ErrNotFound)
)
