package note

import (
	"fmt"
	"unicode/utf8"

	"inotebook/internal/domain/validation"
)

const (
	MinTitleLen       = 5
	MinDescriptionLen = 8
)

type Validator interface {
	ValidateCreate(title, description string) error
}

type FieldValidator struct{}

func NewFieldValidator() *FieldValidator {
	return &FieldValidator{}
}

func (v *FieldValidator) ValidateCreate(title, description string) error {
	var errs validation.Errors

	if utf8.RuneCountInString(title) < MinTitleLen {
		errs.Add("title", fmt.Sprintf("title must be at least %d characters", MinTitleLen))
	}
	if utf8.RuneCountInString(description) < MinDescriptionLen {
		errs.Add("description", fmt.Sprintf("description must be at least %d characters", MinDescriptionLen))
	}

	return errs.AsError()
}
