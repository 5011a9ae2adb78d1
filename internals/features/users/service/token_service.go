package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	userModel "kidride_backend/internals/features/users/model"
)

const accessTTLDefault = 24 * time.Hour

// IssueAccessToken mints a first-party HS256 access token for a user whose
// Google ID token was already verified.
func IssueAccessToken(secret string, u *userModel.UserModel) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": u.ID.String(),
		"iat": now.Unix(),
		"exp": now.Add(accessTTLDefault).Unix(),
	}
	if u.HouseholdID != nil {
		claims["household_id"] = u.HouseholdID.String()
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// ParseAccessToken verifies a first-party token and returns the user id.
func ParseAccessToken(secret, raw string) (uuid.UUID, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, errors.New("invalid token")
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.New("invalid token subject")
	}
	return id, nil
}
