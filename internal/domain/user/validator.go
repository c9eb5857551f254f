package user

import (
	"fmt"
	"net/mail"
	"unicode/utf8"

	"inotebook/internal/domain/validation"
)

const (
	MinNameLen     = 5
	MinPasswordLen = 8
)

type Validator interface {
	ValidateRegister(name, email, password string) error
	ValidateLogin(email, password string) error
}

type CredentialsValidator struct{}

func NewCredentialsValidator() *CredentialsValidator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) ValidateRegister(name, email, password string) error {
	var errs validation.Errors

	if utf8.RuneCountInString(name) < MinNameLen {
		errs.Add("name", fmt.Sprintf("name must be at least %d characters", MinNameLen))
	}
	if !validEmail(email) {
		errs.Add("email", "enter a valid e-mail address")
	}
	if len(password) < MinPasswordLen {
		errs.Add("password", fmt.Sprintf("password must be at least %d characters", MinPasswordLen))
	}

	return errs.AsError()
}

func (v *CredentialsValidator) ValidateLogin(email, password string) error {
	var errs validation.Errors

	if !validEmail(email) {
		errs.Add("email", "enter a valid e-mail address")
	}
	if password == "" {
		errs.Add("password", "password cannot be empty")
	}

	return errs.AsError()
}

// validEmail accepts plain addresses only, not the name-addr form
// ("Name <a@b.c>") that net/mail would otherwise allow.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
