package service

import (
	"Fabrika/internal/model"
	"Fabrika/internal/repo"
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService — регистрация, логин и logout.
// Сессии пишутся при логине и удаляются при logout, но нигде не проверяются
// при авторизации запросов: отзыв убирает только строку в БД, сам JWT живёт
// до своего exp. Текущее поведение, сохранено сознательно.
type UserService struct {
	users    repo.UserRepository
	sessions repo.SessionRepository
	tokens   *TokenService
}

// NewUserService создаёт сервис пользователей.
func NewUserService(users repo.UserRepository, sessions repo.SessionRepository, tokens *TokenService) *UserService {
	return &UserService{users: users, sessions: sessions, tokens: tokens}
}

// HashPassword возвращает bcrypt-хеш пароля. Соль генерируется на каждый
// вызов, поэтому два хеша одного пароля различаются.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// CheckPasswordHash сравнивает пароль с хешом. Соль встроена в сам хеш,
// сравнение за константное время. На битом хеше — false, не паника.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Register создаёт пользователя. Занятый username — ErrLoginTaken.
func (s *UserService) Register(ctx context.Context, username, password string) (*model.User, error) {
	existing, err := s.users.GetUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrLoginTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.CreateUser(ctx, &model.User{Username: username, Password: hash})
	if err != nil {
		// проигравший гонку вставки получает тот же конфликт, что и при пре-чеке
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrLoginTaken
		}
		return nil, err
	}
	return user, nil
}

// Login проверяет учётные данные, выпускает токен и сохраняет сессию.
// Несуществующий пользователь и неверный пароль неразличимы для клиента.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUnauthorized
		}
		return "", err
	}
	if !CheckPasswordHash(password, user.Password) {
		return "", ErrUnauthorized
	}

	token, err := s.tokens.Mint(user.ID)
	if err != nil {
		return "", err
	}
	if err := s.sessions.CreateSession(ctx, &model.Session{UserID: user.ID, Token: token}); err != nil {
		return "", err
	}
	return token, nil
}

// Logout ищет сессию по точному значению токена и удаляет её.
// Неизвестный или уже отозванный токен — ErrSessionNotFound.
func (s *UserService) Logout(ctx context.Context, token string) error {
	sess, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	return s.sessions.DeleteSession(ctx, sess.ID)
}
