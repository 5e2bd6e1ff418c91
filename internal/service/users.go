package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

const auditPageUsers = "users"

func (s *Service) Users(ctx context.Context) ([]entity.UserView, error) {
	users, err := s.users.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

// CreateUser stores the account and mails a setup link. A mail failure does not undo the
// account; it is reported in SetupEmail.
func (s *Service) CreateUser(ctx context.Context, caller entity.Identity, in entity.UserInput) (entity.UserCreated, error) {
	in.Username = strings.TrimSpace(in.Username)

	err := ValidateUserInput(in)
	if err != nil {
		return entity.UserCreated{}, err
	}

	id, err := s.users.CreateUser(ctx, in, nil)
	if err != nil {
		return entity.UserCreated{}, fmt.Errorf("create user: %w", err)
	}

	s.recordAudit(ctx, caller, auditPageUsers, entity.AuditEventInsert, id, in)

	res := entity.UserCreated{
		WriteResult: entity.WriteResult{InsertID: id, AffectedRows: 1},
	}

	err = s.sendSetupMail(entity.User{
		ID:       id,
		Username: in.Username,
		FullName: in.FullName,
		Email:    in.Email,
		Role:     in.Role,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to send setup email", "user_id", id, "error", err)

		res.SetupEmail = entity.Delivery{Sent: false, Error: err.Error()}

		return res, nil
	}

	res.SetupEmail = entity.Delivery{Sent: true}

	return res, nil
}

func (s *Service) sendSetupMail(u entity.User) error {
	token, err := s.issuePasswordToken(u, entity.ScopeAccountSetup, s.cfg.JWT.SetupTTL)
	if err != nil {
		return err
	}

	return s.sendPasswordMail(setupMail, u, token, s.cfg.JWT.SetupTTL)
}

func (s *Service) UpdateUser(ctx context.Context, caller entity.Identity, id int64, in entity.UserInput) (entity.WriteResult, error) {
	in.Username = strings.TrimSpace(in.Username)

	err := ValidateUserInput(in)
	if err != nil {
		return entity.WriteResult{}, err
	}

	n, err := s.users.UpdateUser(ctx, id, in)
	if err != nil {
		return entity.WriteResult{}, fmt.Errorf("update user %d: %w", id, err)
	}

	s.recordAudit(ctx, caller, auditPageUsers, entity.AuditEventUpdate, id, in)

	return entity.WriteResult{AffectedRows: n}, nil
}

func (s *Service) SetUserStatus(ctx context.Context, caller entity.Identity, id int64, status int) (entity.WriteResult, error) {
	err := ValidateUserStatus(status)
	if err != nil {
		return entity.WriteResult{}, err
	}

	n, err := s.users.SetUserStatus(ctx, id, status)
	if err != nil {
		return entity.WriteResult{}, fmt.Errorf("set status of user %d: %w", id, err)
	}

	s.recordAudit(ctx, caller, auditPageUsers, entity.AuditEventUpdate, id, map[string]int{"status": status})

	return entity.WriteResult{AffectedRows: n}, nil
}

// CreateAdmin stores an active account with a password already set. It bootstraps the first
// administrator, who otherwise has nobody to send them a setup link.
func (s *Service) CreateAdmin(ctx context.Context, in entity.UserInput, password string) (int64, error) {
	in.Username = strings.TrimSpace(in.Username)

	if in.Role == "" {
		in.Role = entity.RoleAdmin
	}

	if in.Role != entity.RoleAdmin && in.Role != entity.RoleSuper {
		return 0, invalid("role", "must be ADMIN or SUPER")
	}

	active := entity.UserStatusActive
	in.Status = &active

	err := ValidateUserInput(in)
	if err != nil {
		return 0, err
	}

	err = ValidatePassword(password)
	if err != nil {
		return 0, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return 0, err
	}

	id, err := s.users.CreateUser(ctx, in, &hash)
	if err != nil {
		return 0, fmt.Errorf("create admin: %w", err)
	}

	s.recordAudit(ctx, entity.Identity{}, auditPageUsers, entity.AuditEventInsert, id, in)

	return id, nil
}
