package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

func (s *Service) keyFunc(token *jwt.Token) (any, error) {
	_, ok := token.Method.(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}

	return []byte(s.cfg.JWT.Secret), nil
}

func (s *Service) issueSessionToken(u entity.User) (string, error) {
	now := time.Now()

	claims := entity.SessionClaims{
		Identity: u.Identity(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Identity().IDString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWT.SessionTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	return token, nil
}

// ParseSessionToken verifies a bearer token. Password setup and reset tokens are rejected.
func (s *Service) ParseSessionToken(token string) (entity.Identity, error) {
	var claims entity.SessionClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, s.keyFunc, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entity.Identity{}, fmt.Errorf("session token: %w", entity.ErrTokenExpired)
		}

		return entity.Identity{}, fmt.Errorf("parse session token: %w: %w", entity.ErrUnauthorized, err)
	}

	if !parsed.Valid {
		return entity.Identity{}, fmt.Errorf("invalid session token: %w", entity.ErrUnauthorized)
	}

	if claims.Scope != "" {
		return entity.Identity{}, fmt.Errorf("token scope %q: %w", claims.Scope, entity.ErrUnauthorized)
	}

	if claims.Identity.ID == 0 || !claims.Identity.Role.Valid() {
		return entity.Identity{}, fmt.Errorf("session token identity: %w", entity.ErrUnauthorized)
	}

	return claims.Identity, nil
}

func (s *Service) issuePasswordToken(u entity.User, scope entity.TokenScope, ttl time.Duration) (string, error) {
	now := time.Now()

	jti, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("generate jti: %w", err)
	}

	claims := entity.PasswordTokenClaims{
		UserID:   u.ID,
		Username: u.Username,
		Scope:    scope,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	if u.Email != nil {
		claims.Email = *u.Email
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", scope, err)
	}

	return token, nil
}

func (s *Service) parsePasswordToken(token string) (entity.PasswordTokenClaims, uuid.UUID, error) {
	var claims entity.PasswordTokenClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, s.keyFunc, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return entity.PasswordTokenClaims{}, uuid.Nil, fmt.Errorf("parse password token: %w", entity.ErrInvalidToken)
	}

	if claims.Scope != entity.ScopeAccountSetup && claims.Scope != entity.ScopePasswordReset {
		return entity.PasswordTokenClaims{}, uuid.Nil, fmt.Errorf("scope %q: %w", claims.Scope, entity.ErrInvalidTokenScope)
	}

	jti, err := uuid.FromString(claims.RegisteredClaims.ID)
	if err != nil {
		return entity.PasswordTokenClaims{}, uuid.Nil, fmt.Errorf("token id: %w", entity.ErrInvalidToken)
	}

	return claims, jti, nil
}
