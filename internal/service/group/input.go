package group

import (
	"fmt"
	"unicode/utf8"

	"github.com/heartmarshall/minihosts/internal/domain"
)

// AddGroupInput holds the parameters for creating a group.
type AddGroupInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i AddGroupInput) Validate() error {
	if errs := validateName(i.Name); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RenameGroupInput holds the parameters for renaming a group.
type RenameGroupInput struct {
	ID   int
	Name string
}

// Validate checks all fields and collects all errors.
func (i RenameGroupInput) Validate() error {
	if errs := validateName(i.Name); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SetStatusInput holds the parameters for switching a group on or off.
type SetStatusInput struct {
	ID     int
	Status domain.Status
}

// Validate checks all fields and collects all errors.
func (i SetStatusInput) Validate() error {
	if !i.Status.IsValid() {
		return domain.NewValidationError("status", "must be ON or OFF")
	}
	return nil
}

// UpdateDetailInput holds the parameters for replacing the rule text of a group.
type UpdateDetailInput struct {
	ID      int
	Content string
}

func validateName(raw string) []domain.FieldError {
	var errs []domain.FieldError

	name := domain.NormalizeGroupName(raw)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	return errs
}

// validateList rejects records the group store cannot read back.
func validateList(list domain.GroupList) error {
	var errs []domain.FieldError
	for i, g := range list {
		if g.ID < 0 {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("[%d].id", i), Message: "must not be negative"})
		}
		if !g.Status.IsValid() {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("[%d].status", i), Message: "must be ON or OFF"})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
