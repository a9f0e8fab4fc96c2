package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/models"
)

// Profile identifies the authenticated caller.
type Profile struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// Claims represents the JWT claims of the session token.
type Claims struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService handles session token creation and validation.
type TokenService struct {
	signingKey []byte
	expiry     time.Duration
}

// NewTokenService creates a token service signing with secret. Tokens are valid for expiry.
func NewTokenService(secret string, expiry time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	return &TokenService{
		signingKey: []byte(secret),
		expiry:     expiry,
	}, nil
}

// NewTokenServiceFromConfig creates the token service of the web server.
// Without a configured secret in dev mode, a random secret is generated and
// tokens do not survive a restart.
func NewTokenServiceFromConfig(cfg *config.Config) (*TokenService, error) {
	secret := cfg.Webserver.Session.TokenSecret

	if secret == "" && cfg.DevMode {
		var err error
		if secret, err = GenerateSecret(); err != nil {
			return nil, err
		}

		log.Warn().Msg("no token secret configured: using a random secret, sessions end on restart")
	}

	return NewTokenService(secret, cfg.Webserver.Session.ExpiryTime)
}

// GenerateSecret generates a new random signing secret.
func GenerateSecret() (string, error) {
	// 32 bytes = 256 bits
	b := make([]byte, 32) //nolint:mnd
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// Expiry returns how long issued tokens are valid.
func (s *TokenService) Expiry() time.Duration {
	return s.expiry
}

// Issue creates a signed token for the user.
func (s *TokenService) Issue(user *models.User) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		ID:       user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	})

	return token.SignedString(s.signingKey)
}

// Verify checks signature and expiry of the token and returns its profile.
func (s *TokenService) Verify(tokenString string) (*Profile, error) {
	if tokenString == "" {
		return nil, ErrTokenMissing
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}

		return s.signingKey, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}

		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.ID == 0 {
		return nil, ErrTokenInvalid
	}

	return &Profile{
		ID:       claims.ID,
		Username: claims.Username,
	}, nil
}
