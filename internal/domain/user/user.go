package user

import (
	"fmt"
	"strings"
	"time"
)

// User represents an account. Admins may create and manage any article;
// regular users read content and hold subscriptions.
type User struct {
	id           uint
	name         string
	email        string
	passwordHash string
	isAdmin      bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a new user with an already-hashed password.
func NewUser(name, email, passwordHash string, isAdmin bool) (*User, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now().UTC()
	return &User{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		isAdmin:      isAdmin,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence.
func ReconstructUser(id uint, name, email, passwordHash string, isAdmin bool, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		isAdmin:      isAdmin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) IsAdmin() bool {
	return u.isAdmin
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}
