// Package config provides configuration loading and validation:
// department hiring criteria, JWT settings and the admin API key.
package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// JWTConfig holds configuration for JWT token generation and validation.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig creates a new JWT configuration from environment variables.
// It reads JWT_SECRET (required) and JWT_EXPIRATION_HOURS (default: 24).
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	expirationStr := os.Getenv("JWT_EXPIRATION_HOURS")
	if expirationStr == "" {
		expirationStr = "24" // default
	}

	expirationHours, err := strconv.Atoi(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
	}
	if expirationHours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", expirationHours)
	}

	return &JWTConfig{
		Secret:          secret,
		ExpirationHours: expirationHours,
	}, nil
}

// AdminKeyConfig verifies the admin API key clients exchange for JWT
// tokens. Only the bcrypt hash of the key is configured; the plaintext
// key never lives in the environment.
type AdminKeyConfig struct {
	KeyHash    string
	BcryptCost int
}

// NewAdminKeyConfig creates admin key configuration from environment
// variables. It reads ADMIN_KEY_HASH (required) and BCRYPT_COST
// (default: 12, used only when hashing new keys).
func NewAdminKeyConfig() (*AdminKeyConfig, error) {
	keyHash := os.Getenv("ADMIN_KEY_HASH")
	if keyHash == "" {
		return nil, fmt.Errorf("ADMIN_KEY_HASH is required but not set")
	}

	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12" // default
	}
	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}
	if cost < 10 || cost > 14 {
		return nil, fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", cost)
	}

	return &AdminKeyConfig{KeyHash: keyHash, BcryptCost: cost}, nil
}

// VerifyKey checks a presented admin key against the configured hash.
func (c *AdminKeyConfig) VerifyKey(key string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.KeyHash), []byte(key)) == nil
}

// HashKey hashes a new admin key for storage in ADMIN_KEY_HASH.
func (c *AdminKeyConfig) HashKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash admin key: %w", err)
	}
	return string(hash), nil
}

// HashAdminKey hashes an admin key with the given bcrypt cost without
// requiring ADMIN_KEY_HASH to be set. Used by the key generation CLI.
func HashAdminKey(key string, cost int) (string, error) {
	if cost == 0 {
		cost = 12
	}
	if cost < 10 || cost > 14 {
		return "", fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", cost)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(key), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash admin key: %w", err)
	}
	return string(hash), nil
}
