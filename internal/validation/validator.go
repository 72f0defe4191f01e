package validation

import (
	"regexp"
	"strings"

	"github.com/newsroom-platform-api/internal/models"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,32}$`)
)

// FieldError represents a single validation error
type FieldError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidateNewUser validates a registration payload
func ValidateNewUser(user *models.User) []FieldError {
	var errs []FieldError

	if user.Username == "" {
		errs = append(errs, FieldError{Field: "username", Message: "username is required"})
	} else if !usernameRegex.MatchString(user.Username) {
		errs = append(errs, FieldError{Field: "username", Message: "username must be 3-32 characters (letters, digits, _.-)", Value: user.Username})
	}

	if user.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(user.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "invalid email format", Value: user.Email})
	}

	if user.Role == "" {
		errs = append(errs, FieldError{Field: "role", Message: "role is required"})
	} else if !models.ValidRoles[user.Role] {
		errs = append(errs, FieldError{Field: "role", Message: "role must be one of: reader, editor, journalist", Value: string(user.Role)})
	}

	return errs
}

// ValidateContentFields validates title and body of an article or newsletter
func ValidateContentFields(title, body string) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	} else if len(title) > 300 {
		errs = append(errs, FieldError{Field: "title", Message: "title must be at most 300 characters"})
	}

	if strings.TrimSpace(body) == "" {
		errs = append(errs, FieldError{Field: "body", Message: "body is required"})
	}

	return errs
}

// ValidateCommentBody validates a comment body
func ValidateCommentBody(body string) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(body) == "" {
		errs = append(errs, FieldError{Field: "body", Message: "body is required"})
	} else if len(body) > models.MaxCommentLength {
		errs = append(errs, FieldError{Field: "body", Message: "body exceeds maximum length"})
	}

	return errs
}
