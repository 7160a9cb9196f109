package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/xavierca1/leadscore/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func IsValidationError(err error) bool {
	_, ok := err.(ValidationError)
	return ok
}

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if input.Status != "" && !entity.ValidStatus(input.Status) {
		errors = append(errors, ValidationError{"status", "must be one of new, engaged, qualified, lost"})
	}

	return errors
}

func ValidateIngestEventInput(input IngestEventInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.EventType) == "" {
		errors = append(errors, ValidationError{"eventType", "is required"})
	}

	if input.Email != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			errors = append(errors, ValidationError{"email", "is invalid"})
		}
	}

	return errors
}
