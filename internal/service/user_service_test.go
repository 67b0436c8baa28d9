package service

import (
	"Fabrika/internal/model"
	"Fabrika/internal/repo"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// мок для repo.UserRepository
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

var _ repo.UserRepository = (*mockUserRepo)(nil)

// мок для repo.SessionRepository
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

var _ repo.SessionRepository = (*mockSessionRepo)(nil)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	// соль на каждый вызов: хеши одного пароля различаются
	hash2, err := HashPassword("secret")
	assert.NoError(t, err)
	assert.NotEqual(t, hash, hash2)

	assert.True(t, CheckPasswordHash("secret", hash))
	assert.True(t, CheckPasswordHash("secret", hash2))
	assert.False(t, CheckPasswordHash("other", hash))

	// битый хеш — false, без паники
	assert.False(t, CheckPasswordHash("secret", "not-a-bcrypt-hash"))
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("ok when username free", func(t *testing.T) {
		users := new(mockUserRepo)
		sessions := new(mockSessionRepo)
		svc := NewUserService(users, sessions, NewTokenService("s", 30))

		users.On("GetUserByUsername", mock.Anything, "john").Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()
		created := &model.User{ID: 10, Username: "john"}
		users.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			// в БД уходит bcrypt-хеш, не исходный пароль
			return u.Username == "john" && u.Password != "" && u.Password != "p@ss"
		})).Return(created, nil).Once()

		user, err := svc.Register(ctx, "john", "p@ss")
		assert.NoError(t, err)
		assert.Equal(t, int64(10), user.ID)
		users.AssertExpectations(t)
	})

	t.Run("conflict when username taken", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := NewUserService(users, new(mockSessionRepo), NewTokenService("s", 30))

		users.On("GetUserByUsername", mock.Anything, "john").Return(&model.User{ID: 1, Username: "john"}, nil).Once()

		user, err := svc.Register(ctx, "john", "p@ss")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrLoginTaken)
		users.AssertExpectations(t)
	})

	t.Run("conflict when insert loses the race", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := NewUserService(users, new(mockSessionRepo), NewTokenService("s", 30))

		users.On("GetUserByUsername", mock.Anything, "john").Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()
		users.On("CreateUser", mock.Anything, mock.Anything).Return((*model.User)(nil), gorm.ErrDuplicatedKey).Once()

		user, err := svc.Register(ctx, "john", "p@ss")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrLoginTaken)
		users.AssertExpectations(t)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := HashPassword("secret")
	tokens := NewTokenService("test-secret", 30)

	t.Run("ok with valid credentials", func(t *testing.T) {
		users := new(mockUserRepo)
		sessions := new(mockSessionRepo)
		svc := NewUserService(users, sessions, tokens)

		users.On("GetUserByUsername", mock.Anything, "alice").Return(&model.User{ID: 2, Username: "alice", Password: hash}, nil).Once()
		sessions.On("CreateSession", mock.Anything, mock.MatchedBy(func(s *model.Session) bool {
			return s.UserID == 2 && s.Token != ""
		})).Return(nil).Once()

		token, err := svc.Login(ctx, "alice", "secret")
		assert.NoError(t, err)

		// выданный токен самоописываемый: subject = id пользователя
		uid, err := tokens.Parse(token)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), uid)
		users.AssertExpectations(t)
		sessions.AssertExpectations(t)
	})

	t.Run("invalid password", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := NewUserService(users, new(mockSessionRepo), tokens)

		users.On("GetUserByUsername", mock.Anything, "alice").Return(&model.User{ID: 2, Username: "alice", Password: hash}, nil).Once()

		token, err := svc.Login(ctx, "alice", "wrong")
		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unknown user is indistinguishable", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := NewUserService(users, new(mockSessionRepo), tokens)

		users.On("GetUserByUsername", mock.Anything, "ghost").Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()

		token, err := svc.Login(ctx, "ghost", "whatever")
		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestUserService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes existing session", func(t *testing.T) {
		sessions := new(mockSessionRepo)
		svc := NewUserService(new(mockUserRepo), sessions, NewTokenService("s", 30))

		sessions.On("GetByToken", mock.Anything, "tok").Return(&model.Session{ID: 5, UserID: 1, Token: "tok"}, nil).Once()
		sessions.On("DeleteSession", mock.Anything, int64(5)).Return(nil).Once()

		assert.NoError(t, svc.Logout(ctx, "tok"))
		sessions.AssertExpectations(t)
	})

	t.Run("unknown or already revoked token", func(t *testing.T) {
		sessions := new(mockSessionRepo)
		svc := NewUserService(new(mockUserRepo), sessions, NewTokenService("s", 30))

		sessions.On("GetByToken", mock.Anything, "gone").Return((*model.Session)(nil), gorm.ErrRecordNotFound).Once()

		assert.ErrorIs(t, svc.Logout(ctx, "gone"), ErrSessionNotFound)
		sessions.AssertExpectations(t)
	})
}
