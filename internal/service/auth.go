package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

const auditPageAuth = "auth"

// Login checks the credentials of an active user and returns a session token.
func (s *Service) Login(ctx context.Context, username, password, fcmToken string) (string, error) {
	u, err := s.users.ActiveUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return "", entity.ErrInvalidCredentials
		}

		return "", fmt.Errorf("find user: %w", err)
	}

	if u.PasswordHash == nil {
		return "", entity.ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(password))
	if err != nil {
		return "", entity.ErrInvalidCredentials
	}

	if fcmToken != "" {
		err = s.users.UpdateFCMToken(ctx, u.ID, fcmToken)
		if err != nil {
			slog.ErrorContext(ctx, "failed to update fcm token", "user_id", u.ID, "error", err)
		}
	}

	return s.issueSessionToken(u)
}

// ChangePassword lets a user change their own password. Global roles may change anyone's.
func (s *Service) ChangePassword(ctx context.Context, caller entity.Identity, username, password string) error {
	if username != caller.Username && !caller.Role.Global() {
		return fmt.Errorf("change password of %s: %w", username, entity.ErrForbidden)
	}

	err := ValidatePassword(password)
	if err != nil {
		return err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}

	n, err := s.users.UpdatePassword(ctx, username, hash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if n == 0 {
		return entity.ErrUserNotFoundOrInact
	}

	s.recordAudit(ctx, caller, auditPageAuth, entity.AuditEventUpdate, username, map[string]string{"action": "password_change"})

	return nil
}

// SetupPassword consumes an account-setup or password-reset token. Each token works once.
func (s *Service) SetupPassword(ctx context.Context, token, password string) error {
	claims, jti, err := s.parsePasswordToken(token)
	if err != nil {
		return err
	}

	err = ValidatePassword(password)
	if err != nil {
		return err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}

	err = s.usedTokens.MarkTokenUsed(ctx, jti, claims.ExpiresAt.Time)
	if err != nil {
		return fmt.Errorf("consume token: %w", err)
	}

	n, err := s.users.UpdatePasswordByID(ctx, claims.UserID, hash)
	if err != nil {
		return fmt.Errorf("set password: %w", err)
	}

	if n == 0 {
		return entity.ErrUserNotFoundOrInact
	}

	s.recordAudit(ctx, entity.Identity{ID: claims.UserID, Username: claims.Username}, auditPageAuth,
		entity.AuditEventUpdate, claims.Username, map[string]string{"action": string(claims.Scope)})

	return nil
}

// ForgotPassword mails a reset link and returns the address it was sent to.
func (s *Service) ForgotPassword(ctx context.Context, username string) (string, error) {
	u, err := s.users.ActiveUserByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("find user %s: %w", username, err)
	}

	if u.Email == nil || *u.Email == "" {
		return "", fmt.Errorf("user %s has no email: %w", username, entity.ErrValidation)
	}

	token, err := s.issuePasswordToken(u, entity.ScopePasswordReset, s.cfg.JWT.ResetTTL)
	if err != nil {
		return "", err
	}

	err = s.sendPasswordMail(resetMail, u, token, s.cfg.JWT.ResetTTL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send password reset email", "user_id", u.ID, "error", err)
		return "", fmt.Errorf("send reset email: %w", err)
	}

	return *u.Email, nil
}

// Me returns the caller identity with the stations of their unit.
func (s *Service) Me(ctx context.Context, caller entity.Identity) (entity.Me, error) {
	me := entity.Me{Identity: caller, Stations: []int64{}}

	if caller.Unit == nil {
		return me, nil
	}

	stations, err := s.codeData.StationIDsForUnit(ctx, *caller.Unit)
	if err != nil {
		return entity.Me{}, fmt.Errorf("stations of unit %d: %w", *caller.Unit, err)
	}

	me.Stations = stations

	return me, nil
}

func (s *Service) CleanupUsedTokens(ctx context.Context) error {
	n, err := s.usedTokens.DeleteExpiredTokens(ctx)
	if err != nil {
		return fmt.Errorf("delete expired tokens: %w", err)
	}

	if n > 0 {
		slog.InfoContext(ctx, "expired used tokens removed", "count", n)
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}
