package user

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrBlankName    = errors.New("user name must not be blank")
	ErrInvalidEmail = errors.New("invalid email address")
)

type User struct {
	id    uuid.UUID
	name  string
	email string
}

func NewUser(name, email string) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrBlankName
	}
	if !isPlausibleEmail(email) {
		return nil, ErrInvalidEmail
	}
	return &User{
		id:    uuid.New(),
		name:  name,
		email: email,
	}, nil
}

func ReconstructUser(id uuid.UUID, name, email string) *User {
	return &User{id: id, name: name, email: email}
}

// ApplyPatch ignores blank fields so partial updates leave the rest untouched.
func (u *User) ApplyPatch(name, email *string) error {
	if name != nil && strings.TrimSpace(*name) != "" {
		u.name = *name
	}
	if email != nil && strings.TrimSpace(*email) != "" {
		if !isPlausibleEmail(*email) {
			return ErrInvalidEmail
		}
		u.email = *email
	}
	return nil
}

func (u *User) ID() uuid.UUID { return u.id }
func (u *User) Name() string  { return u.name }
func (u *User) Email() string { return u.email }

// Structural check only; real validation happens at the binding layer.
func isPlausibleEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}
