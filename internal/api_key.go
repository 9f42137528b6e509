package internal

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

type APIKeyRepository interface {
	GetStatusByHash(ctx context.Context, keyHash string) (exists bool, isActive bool, err error)
}

type APIKeyValidator interface {
	Validate(ctx context.Context, rawKey string) (exists bool, isActive bool, err error)
}

type defaultAPIKeyValidator struct {
	repo        APIKeyRepository
	encodingKey string
}

func NewAPIKeyValidator(repo APIKeyRepository, encodingKey string) APIKeyValidator {
	return &defaultAPIKeyValidator{
		repo:        repo,
		encodingKey: strings.TrimSpace(encodingKey),
	}
}

func (v *defaultAPIKeyValidator) Validate(ctx context.Context, rawKey string) (exists bool, isActive bool, err error) {
	rawKey = strings.TrimSpace(rawKey)
	if rawKey == "" {
		return false, false, nil
	}

	return v.repo.GetStatusByHash(ctx, HashAPIKey(rawKey, v.encodingKey))
}

// HashAPIKey is the HMAC-SHA256 of the key, hex encoded. Only hashes are
// persisted.
func HashAPIKey(rawKey, encodingKey string) string {
	mac := hmac.New(sha256.New, []byte(strings.TrimSpace(encodingKey)))
	_, _ = mac.Write([]byte(strings.TrimSpace(rawKey)))
	return hex.EncodeToString(mac.Sum(nil))
}

// GenerateAPIKey returns a new random key for the local HTTP API.
func GenerateAPIKey() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return "ms_" + hex.EncodeToString(b), nil
}
