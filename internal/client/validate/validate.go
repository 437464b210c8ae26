// Package validate checks the login and registration forms before anything
// is sent to the service.
package validate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MinFullNameLength = 3
	MinPasswordLength = 8
	MaxPasswordLength = 100

	PasswordPolicyMessage = "Password must be 8-100 characters long and contain at least one uppercase letter, one lowercase letter, and one digit."
)

var weakPasswords = map[string]struct{}{
	"Passw0rd":    {},
	"Password123": {},
	"password123": {},
	"12345678":    {},
}

// Error names the offending field and carries the message to show.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

type Registration struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Check validates r and returns the trimmed copy that should be submitted.
// Checks run in form order and stop at the first failure.
func (r Registration) Check() (Registration, error) {
	out := Registration{
		FullName:        strings.TrimSpace(r.FullName),
		Email:           strings.TrimSpace(r.Email),
		Password:        strings.TrimSpace(r.Password),
		ConfirmPassword: strings.TrimSpace(r.ConfirmPassword),
	}

	switch {
	case out.Email == "":
		return Registration{}, &Error{Field: "email", Message: "Please enter a valid email address"}
	case out.Password == "":
		return Registration{}, &Error{Field: "password", Message: "Please enter a password"}
	case out.FullName == "":
		return Registration{}, &Error{Field: "fullName", Message: "Please enter your full name"}
	case out.ConfirmPassword == "":
		return Registration{}, &Error{Field: "confirmPassword", Message: "Please confirm your password"}
	case utf8.RuneCountInString(out.FullName) < MinFullNameLength:
		return Registration{}, &Error{Field: "fullName", Message: "Full Name must be at least 3 characters long"}
	case out.Password != out.ConfirmPassword:
		return Registration{}, &Error{Field: "confirmPassword", Message: "Passwords do not match"}
	case !PasswordOK(out.Password):
		return Registration{}, &Error{Field: "password", Message: PasswordPolicyMessage}
	}
	return out, nil
}

type Login struct {
	Email    string
	Password string
}

// Check only requires both fields; the service does the real work. Values are
// returned as typed.
func (l Login) Check() (Login, error) {
	if strings.TrimSpace(l.Email) == "" {
		return Login{}, &Error{Field: "email", Message: "Please enter your email"}
	}
	if l.Password == "" {
		return Login{}, &Error{Field: "password", Message: "Please enter your password"}
	}
	return l, nil
}

// PasswordOK reports whether p satisfies the password policy.
func PasswordOK(p string) bool {
	if n := utf8.RuneCountInString(p); n < MinPasswordLength || n > MaxPasswordLength {
		return false
	}
	if _, weak := weakPasswords[p]; weak {
		return false
	}

	var upper, lower, digit bool
	for _, c := range p {
		switch {
		case unicode.IsSpace(c):
			return false
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= '0' && c <= '9':
			digit = true
		}
	}
	return upper && lower && digit
}
