package models

import (
	"strings"
	"time"
)

type Role string

const (
	RoleRegular Role = "regular"
	RoleMaster  Role = "master"
)

func (r Role) Valid() bool {
	return r == RoleRegular || r == RoleMaster
}

func (r Role) IsMaster() bool { return r == RoleMaster }

type User struct {
	ID                 int64     `json:"id"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName"`
	Email              string    `json:"email"`
	RegistrationNumber string    `json:"registrationNumber"`
	PasswordHash       string    `json:"-"`
	Role               Role      `json:"role"`
	Active             bool      `json:"active"`
	TermsAccepted      bool      `json:"termsAccepted"`
	CreatedAt          time.Time `json:"createdAt"`
}

func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Identity is the snapshot of an authenticated user carried by a session.
type Identity struct {
	UserID             int64  `json:"id"`
	DisplayName        string `json:"name"`
	RegistrationNumber string `json:"registrationNumber"`
	Email              string `json:"email"`
	Role               Role   `json:"role"`
}

func (u *User) Identity() Identity {
	return Identity{
		UserID:             u.ID,
		DisplayName:        u.DisplayName(),
		RegistrationNumber: u.RegistrationNumber,
		Email:              u.Email,
		Role:               u.Role,
	}
}

// RegistrationInput is the raw account form, validated by the auth service.
type RegistrationInput struct {
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	Email              string `json:"email"`
	RegistrationNumber string `json:"registrationNumber"`
	Password           string `json:"password"`
	ConfirmPassword    string `json:"confirmPassword"`
	AcceptTerms        *bool  `json:"acceptTerms,omitempty"`
}
