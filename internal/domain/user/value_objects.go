package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrInvalidRole  = errors.New("invalid role")
	ErrEmptyName    = errors.New("name is required")
	ErrEmptyPhone   = errors.New("phone is required")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// Contact is the customer identity attached to a checkout attempt.
// Phone formats vary by carrier so only presence is enforced.
type Contact struct {
	name  string
	email Email
	phone string
}

func NewContact(name, email, phone string) (Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Contact{}, ErrEmptyName
	}

	e, err := NewEmail(email)
	if err != nil {
		return Contact{}, err
	}

	phone = strings.TrimSpace(phone)
	if phone == "" {
		return Contact{}, ErrEmptyPhone
	}

	return Contact{name: name, email: e, phone: phone}, nil
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Email() Email  { return c.email }
func (c Contact) Phone() string { return c.phone }
