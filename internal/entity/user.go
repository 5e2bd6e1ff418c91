package entity

import "time"

const (
	UserStatusInactive = 0
	UserStatusActive   = 1
)

type User struct {
	ID           int64
	Username     string
	PasswordHash *string
	FullName     *string
	Email        *string
	Role         Role
	UnitID       *int64
	Status       int
	FCMToken     *string
}

func (u User) DisplayName() string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}

	return u.Username
}

func (u User) Identity() Identity {
	return Identity{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.DisplayName(),
		Role:     u.Role,
		Unit:     u.UnitID,
	}
}

type UserInput struct {
	Username      string  `json:"username"`
	RankID        *int64  `json:"rank_id"`
	RegNo         *string `json:"reg_no"`
	FullName      *string `json:"full_name"`
	ContactNumber *string `json:"contact_number"`
	Email         *string `json:"email"`
	UnitID        *int64  `json:"unit_id"`
	Role          Role    `json:"role"`
	Status        *int    `json:"status,omitempty"`
}

type UserView struct {
	ID            int64     `json:"id"`
	Username      string    `json:"username"`
	RankID        *int64    `json:"rank_id"`
	RankName      *string   `json:"rank_name"`
	RegNo         *string   `json:"reg_no"`
	FullName      *string   `json:"full_name"`
	ContactNumber *string   `json:"contact_number"`
	Email         *string   `json:"email"`
	UnitID        *int64    `json:"unit_id"`
	UnitName      *string   `json:"unit_name"`
	Role          Role      `json:"role"`
	Status        int       `json:"status"`
	CreateDate    time.Time `json:"create_date"`
}

type UserCreated struct {
	WriteResult
	SetupEmail Delivery `json:"setupEmail"`
}
