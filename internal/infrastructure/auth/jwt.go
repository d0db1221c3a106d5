package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/telebill/telebill/internal/shared/biztime"
)

// DefaultExpDays is the admin token lifetime when none is configured.
const DefaultExpDays = 30

var ErrInvalidToken = errors.New("invalid token")

// Claims identify the admin a token was issued to. Subject repeats AdminID.
type Claims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret  []byte
	expDays int
	now     func() time.Time
}

func NewJWTService(secret string, expDays int) *JWTService {
	if expDays <= 0 {
		expDays = DefaultExpDays
	}
	return &JWTService{
		secret:  []byte(secret),
		expDays: expDays,
		now:     biztime.NowUTC,
	}
}

// Generate signs an HS256 token for the admin and returns it with its expiry.
func (s *JWTService) Generate(adminID, email string) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(time.Duration(s.expDays) * 24 * time.Hour)

	claims := &Claims{
		AdminID: adminID,
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, exp, nil
}

// Verify checks signature, algorithm and time claims.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.AdminID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ExpDays returns the token lifetime in days
func (s *JWTService) ExpDays() int {
	return s.expDays
}
