package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"
)

// GenerateSecureToken returns n random bytes, base64url encoded without padding.
func GenerateSecureToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// UniqueFileName names a stored upload <unix-millis>-<random><ext>. Nothing
// from the client's own file name ends up in it except ext.
func UniqueFileName(at time.Time, ext string) (string, error) {
	suffix, err := GenerateSecureToken(6)
	if err != nil {
		return "", fmt.Errorf("generate file name: %w", err)
	}
	return fmt.Sprintf("%d-%s%s", at.UnixMilli(), suffix, ext), nil
}
