package handlers_test

import (
	"Fabrika/internal/config"
	"Fabrika/internal/handlers"
	"Fabrika/internal/model"
	"Fabrika/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Моки слоя хранения: хендлеры тестируются через полный стек
// router -> service -> repo, подменяется только БД и генератор PDF.

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSessionRepo struct{ mock.Mock }

func (m *mockSessionRepo) CreateSession(ctx context.Context, s *model.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockSessionRepo) GetByToken(ctx context.Context, token string) (*model.Session, error) {
	args := m.Called(ctx, token)
	if s, ok := args.Get(0).(*model.Session); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSessionRepo) DeleteSession(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockMaterialRepo struct{ mock.Mock }

func (m *mockMaterialRepo) Create(ctx context.Context, mat *model.Material) error {
	return m.Called(ctx, mat).Error(0)
}

func (m *mockMaterialRepo) GetByID(ctx context.Context, id int64) (*model.Material, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Material); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMaterialRepo) List(ctx context.Context) ([]model.Material, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Material); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMaterialRepo) Update(ctx context.Context, mat *model.Material) error {
	return m.Called(ctx, mat).Error(0)
}

func (m *mockMaterialRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockProductTypeRepo struct{ mock.Mock }

func (m *mockProductTypeRepo) Create(ctx context.Context, pt *model.ProductType) error {
	return m.Called(ctx, pt).Error(0)
}

func (m *mockProductTypeRepo) GetByID(ctx context.Context, id int64) (*model.ProductType, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.ProductType); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductTypeRepo) GetByName(ctx context.Context, name string) (*model.ProductType, error) {
	args := m.Called(ctx, name)
	if v, ok := args.Get(0).(*model.ProductType); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductTypeRepo) List(ctx context.Context) ([]model.ProductType, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.ProductType); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductTypeRepo) Update(ctx context.Context, pt *model.ProductType) error {
	return m.Called(ctx, pt).Error(0)
}

func (m *mockProductTypeRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) Create(ctx context.Context, it *model.Item) error {
	return m.Called(ctx, it).Error(0)
}

func (m *mockItemRepo) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) List(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) Save(ctx context.Context, it *model.Item) error {
	return m.Called(ctx, it).Error(0)
}

func (m *mockItemRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockRenderer struct{ mock.Mock }

func (m *mockRenderer) Render(itemID int64, width, height float64) (string, error) {
	args := m.Called(itemID, width, height)
	return args.String(0), args.Error(1)
}

func (m *mockRenderer) Remove(relPath string) error {
	return m.Called(relPath).Error(0)
}

type testEnv struct {
	users        *mockUserRepo
	sessions     *mockSessionRepo
	materials    *mockMaterialRepo
	productTypes *mockProductTypeRepo
	items        *mockItemRepo
	renderer     *mockRenderer
	router       http.Handler
}

func newTestEnv() *testEnv {
	env := &testEnv{
		users:        new(mockUserRepo),
		sessions:     new(mockSessionRepo),
		materials:    new(mockMaterialRepo),
		productTypes: new(mockProductTypeRepo),
		items:        new(mockItemRepo),
		renderer:     new(mockRenderer),
	}

	logger := zap.NewNop().Sugar()
	tokens := service.NewTokenService("test-secret", 30)
	h := handlers.NewHandler(
		service.NewUserService(env.users, env.sessions, tokens),
		service.NewMaterialService(env.materials),
		service.NewProductTypeService(env.productTypes),
		service.NewItemService(env.items, env.materials, env.productTypes, env.renderer, logger),
		tokens,
		logger,
		&config.Config{},
	)
	env.router = h.Router
	return env
}

// do выполняет запрос к тестовому роутеру; body сериализуется в JSON.
func (env *testEnv) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

// detail достаёт поле "detail" из тела ответа.
func detail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Detail string `json:"detail"`
	}
	decodeJSON(t, rec, &resp)
	return resp.Detail
}
