// Package adminauth администраторская сессия: проверка пароля на сервере
// и выдача подписанного токена. Пароль никогда не покидает сервер -
// клиент хранит только JWT.
package adminauth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Claims полезная нагрузка администраторского токена
type Claims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// Service сервис администраторской аутентификации
type Service struct {
	password     string
	tokenSecret  []byte
	tokenTTL     time.Duration
	timeProvider func() time.Time
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(password, tokenSecret string, tokenTTL time.Duration, logger Logger) *Service {
	return &Service{
		password:     password,
		tokenSecret:  []byte(tokenSecret),
		tokenTTL:     tokenTTL,
		timeProvider: time.Now,
		logger:       logger,
	}
}

// Login проверяет пароль и возвращает подписанный токен.
// Сравнение пароля выполняется за константное время.
func (s *Service) Login(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		s.logger.Warn("Login: wrong admin password attempt")
		return "", ErrWrongPassword
	}

	now := s.timeProvider()
	claims := &Claims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.tokenSecret)
	if err != nil {
		return "", fmt.Errorf("%w: failed to sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: admin session issued, expires in %s", s.tokenTTL)
	return signed, nil
}

// ParseToken проверяет подпись и срок действия токена
func (s *Service) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.tokenSecret, nil
	})

	if err != nil || !token.Valid || !claims.Admin {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
