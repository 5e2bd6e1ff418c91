package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

const (
	PasswordMinLen = 6
	// bcrypt ignores input past 72 bytes
	PasswordMaxLen = 72
	UsernameMaxLen = 100
	EmailMaxLen    = 150
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func invalid(field, reason string) error {
	return fmt.Errorf("%s %s: %w", field, reason, entity.ErrValidation)
}

func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < PasswordMinLen {
		return invalid("password", fmt.Sprintf("must be at least %d characters", PasswordMinLen))
	}

	if len(password) > PasswordMaxLen {
		return invalid("password", fmt.Sprintf("must be at most %d bytes", PasswordMaxLen))
	}

	return nil
}

func ValidateEmail(email string) error {
	if len(email) > EmailMaxLen {
		return invalid("email", "is too long")
	}

	if !emailRegexp.MatchString(email) || strings.Contains(email, "..") {
		return invalid("email", "has an invalid format")
	}

	return nil
}

func ValidateUserInput(in entity.UserInput) error {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return invalid("username", "is required")
	}

	if utf8.RuneCountInString(username) > UsernameMaxLen {
		return invalid("username", "is too long")
	}

	if !in.Role.Valid() {
		return invalid("role", fmt.Sprintf("%q is unknown", in.Role))
	}

	if in.Email != nil && *in.Email != "" {
		err := ValidateEmail(*in.Email)
		if err != nil {
			return err
		}
	}

	if in.Status != nil {
		err := ValidateUserStatus(*in.Status)
		if err != nil {
			return err
		}
	}

	return nil
}

func ValidateUserStatus(status int) error {
	if status != entity.UserStatusActive && status != entity.UserStatusInactive {
		return invalid("status", "must be 0 or 1")
	}

	return nil
}

func ValidateDeviceInput(in entity.DeviceInput) error {
	if in.HealthScore != nil && (*in.HealthScore < 0 || *in.HealthScore > 100) {
		return invalid("health_score", "must be between 0 and 100")
	}

	if in.PurchaseValue != nil && in.PurchaseValue.IsNegative() {
		return invalid("purchase_value", "must not be negative")
	}

	if in.PurchaseDate != nil && in.WarrantyExpireDate != nil && in.WarrantyExpireDate.Before(in.PurchaseDate.Time) {
		return invalid("warranty_expire_date", "is before purchase_date")
	}

	return nil
}
