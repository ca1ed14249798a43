package logger

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

var hashSalt string

// InitHashSalt loads the log hash salt from the environment. In production,
// set LOG_HASH_SALT.
func InitHashSalt() {
	hashSalt = os.Getenv("LOG_HASH_SALT")
	if hashSalt == "" {
		hashSalt = "default-salt-change-in-production"
	}
}

// HashEmail creates a privacy-preserving hash of an email address so user
// actions can be traced in logs without exposing the address itself.
func HashEmail(email string) string {
	if email == "" {
		return "<empty>"
	}
	data := strings.ToLower(strings.TrimSpace(email)) + ":" + hashSalt
	hash := sha256.Sum256([]byte(data))
	// First 8 characters are enough to correlate log lines.
	return hex.EncodeToString(hash[:])[:8]
}

// HashID creates a privacy-preserving hash of an entity id.
func HashID(id string) string {
	if id == "" {
		return "<empty>"
	}
	hash := sha256.Sum256([]byte(id + ":" + hashSalt))
	return hex.EncodeToString(hash[:])[:8]
}

// SanitizeText redacts user-provided text while preserving length information
// for debugging.
func SanitizeText(text string) string {
	if text == "" {
		return "<empty>"
	}

	if len(text) <= 10 {
		return fmt.Sprintf("<%d chars>", len(text))
	}

	return fmt.Sprintf("%s...<%d chars>", text[:3], len(text))
}
