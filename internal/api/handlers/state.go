package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rohits-web03/travelstory/internal/utils"
)

const (
	stateTTL     = 10 * time.Minute
	stateSubject = "google-oauth-state"
)

type stateClaims struct {
	Nonce string `json:"nonce"`
	jwt.RegisteredClaims
}

// GenerateState creates a signed, short-lived OAuth state value. The random
// nonce keeps every state unique.
func GenerateState(secret []byte, ttl time.Duration) (string, error) {
	nonce, err := utils.GenerateSecureToken(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	now := time.Now()
	claims := &stateClaims{
		Nonce: nonce,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   stateSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// VerifyState checks the signature and expiry of a state from GenerateState.
func VerifyState(secret []byte, state string) error {
	claims := &stateClaims{}
	_, err := jwt.ParseWithClaims(state, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(stateSubject),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return fmt.Errorf("invalid state: %w", err)
	}
	if claims.Nonce == "" {
		return errors.New("invalid state: missing nonce")
	}
	return nil
}
