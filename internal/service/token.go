package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService выпускает и разбирает подписанные bearer-токены (JWT HS256).
// Токен самоописываемый: subject = id пользователя, exp = now + ttl.
type TokenService struct {
	secret string
	ttl    time.Duration
}

// NewTokenService создаёт сервис токенов с симметричным секретом.
func NewTokenService(secret string, expireMinutes int) *TokenService {
	return &TokenService{
		secret: secret,
		ttl:    time.Duration(expireMinutes) * time.Minute,
	}
}

// Mint выпускает подписанный токен для пользователя.
// Пустой секрет — ошибка конфигурации, а не тихий невалидный токен.
func (s *TokenService) Mint(userID int64) (string, error) {
	if s.secret == "" {
		return "", errors.New("token: signing secret is not configured")
	}
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}

// Parse проверяет подпись и срок действия, возвращает id пользователя.
func (s *TokenService) Parse(tokenString string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return 0, err
	}
	if !t.Valid {
		return 0, errors.New("token: invalid")
	}
	uid, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token: bad subject: %w", err)
	}
	return uid, nil
}
