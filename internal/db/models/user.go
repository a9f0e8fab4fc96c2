package models

import (
	"strings"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// User represents the administrator account of the site.
// Accounts are created by the seed process and never through the API.
type User struct {
	// ID is the unique identifier for the user.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Username is the unique username for login.
	Username string `gorm:"unique;size:100;not null" json:"username"`
	// Password is the Argon2id hashed password. Legacy bcrypt hashes are still accepted.
	Password string `gorm:"size:255;not null" json:"-"`
	// Email is the user's email address.
	Email string `gorm:"size:255" json:"email"`
	// CreatedAt is the timestamp when the user was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
// It uses the default Argon2id parameters for secure password hashing.
func HashPassword(password string) string {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash password: %v", err)
	}

	return hashedPassword
}

// isBcryptHash reports whether the hash was produced by bcrypt.
func isBcryptHash(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") ||
		strings.HasPrefix(hash, "$2b$") ||
		strings.HasPrefix(hash, "$2y$")
}

// VerifyPassword verifies a plaintext password against the user's stored hashed password.
// Returns true if the password matches, false otherwise.
func (u *User) VerifyPassword(password string) bool {
	if isBcryptHash(u.Password) {
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
	}

	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil {
		log.Error().Msgf("failed to verify password: %v", err)
		return false
	}

	return match
}
