package utils

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var seededRand *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

// GenerateRedirectCode generates a random opaque code of fixed length
func GenerateRedirectCode(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[seededRand.Intn(len(charset))]
	}
	return string(b)
}

// GenerateSessionID generates a UUID string for tracking sessions
func GenerateSessionID() string {
	return uuid.NewString()
}
