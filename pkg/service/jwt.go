package service

import (
	"errors"
	"time"

	apperrors "equipment-system/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type Claims struct {
	UserID         uint64 `json:"user_id"`
	IsRefreshToken bool   `json:"is_refresh_token"`
	jwt.RegisteredClaims
}

type JWTService interface {
	GenerateTokens(userID uint64, accessTTL, refreshTTL time.Duration) (string, string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type jwtService struct {
	secretKey       string
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
	logger          *zap.Logger
}

func NewJWTService(secretKey string, accessTTL, refreshTTL time.Duration, logger *zap.Logger) JWTService {
	return &jwtService{
		secretKey:       secretKey,
		accessTokenTTL:  accessTTL,
		refreshTokenTTL: refreshTTL,
		logger:          logger,
	}
}

func (s *jwtService) GenerateTokens(userID uint64, accessTTL, refreshTTL time.Duration) (string, string, error) {
	if accessTTL == 0 {
		accessTTL = s.accessTokenTTL
	}
	if refreshTTL == 0 {
		refreshTTL = s.refreshTokenTTL
	}

	accessToken, err := s.generate(userID, false, accessTTL)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := s.generate(userID, true, refreshTTL)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (s *jwtService) generate(userID uint64, isRefresh bool, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:         userID,
		IsRefreshToken: isRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

func (s *jwtService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidSigningMethod
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		s.logger.Warn("Ошибка разбора токена", zap.Error(err))
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
