package service_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
	"github.com/Surajsachintha/itams-haci-project/internal/service"
)

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"ok", "secret1", false},
		{"min length", "123456", false},
		{"too short", "12345", true},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 73), true},
		{"max length", strings.Repeat("a", 72), false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			err := service.ValidatePassword(test.password)
			if test.wantErr {
				require.ErrorIs(t, err, entity.ErrValidation)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email   string
		wantErr bool
	}{
		{"jdoe@example.com", false},
		{"j.doe+it@police.lk", false},
		{"jdoe@", true},
		{"jdoe@example", true},
		{"j..doe@example.com", true},
		{"@example.com", true},
	}

	for _, test := range tests {
		test := test
		t.Run(test.email, func(t *testing.T) {
			t.Parallel()

			err := service.ValidateEmail(test.email)
			if test.wantErr {
				require.ErrorIs(t, err, entity.ErrValidation)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestValidateUserInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      entity.UserInput
		wantErr bool
	}{
		{"ok", entity.UserInput{Username: "jdoe", Role: entity.RoleUser}, false},
		{"blank username", entity.UserInput{Username: "   ", Role: entity.RoleUser}, true},
		{"unknown role", entity.UserInput{Username: "jdoe", Role: "ROOT"}, true},
		{"bad email", entity.UserInput{Username: "jdoe", Role: entity.RoleUser, Email: ptr("nope")}, true},
		{"empty email", entity.UserInput{Username: "jdoe", Role: entity.RoleUser, Email: ptr("")}, false},
		{"bad status", entity.UserInput{Username: "jdoe", Role: entity.RoleUser, Status: ptr(2)}, true},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			err := service.ValidateUserInput(test.in)
			if test.wantErr {
				require.ErrorIs(t, err, entity.ErrValidation)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestValidateDeviceInput(t *testing.T) {
	t.Parallel()

	purchased := entity.NewDate(2024, 3, 1)

	tests := []struct {
		name    string
		in      entity.DeviceInput
		wantErr bool
	}{
		{"empty", entity.DeviceInput{}, false},
		{"health score", entity.DeviceInput{HealthScore: ptr(101)}, true},
		{"negative value", entity.DeviceInput{PurchaseValue: ptr(decimal.NewFromInt(-1))}, true},
		{"warranty before purchase", entity.DeviceInput{
			PurchaseDate:       &purchased,
			WarrantyExpireDate: ptr(entity.NewDate(2023, 3, 1)),
		}, true},
		{"warranty after purchase", entity.DeviceInput{
			PurchaseDate:       &purchased,
			WarrantyExpireDate: ptr(entity.NewDate(2027, 3, 1)),
			PurchaseValue:      ptr(decimal.RequireFromString("245000.50")),
			HealthScore:        ptr(90),
		}, false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			err := service.ValidateDeviceInput(test.in)
			if test.wantErr {
				require.ErrorIs(t, err, entity.ErrValidation)
				return
			}

			require.NoError(t, err)
		})
	}
}
