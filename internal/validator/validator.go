package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fsnd-trivia/trivia-service/internal/models"
)

// ValidationError represents a single failed rule on a request field
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule,omitempty"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	if len(ve) == 1 {
		return fmt.Sprintf("validation failed: %s %s", ve[0].Field, ve[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(ve))
}

// Validator wraps struct-tag validation plus the business rules that tags
// cannot express.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator instance
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate validates a struct against its tags
func (v *Validator) Validate(s interface{}) ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var errors ValidationErrors
	for _, fieldErr := range err.(validator.ValidationErrors) {
		errors = append(errors, ValidationError{
			Field:   fieldErr.Field(),
			Message: errorMessage(fieldErr),
			Value:   fieldErr.Value(),
			Rule:    fieldErr.Tag(),
		})
	}
	return errors
}

// ValidateQuestionCreate validates question creation business rules
func (v *Validator) ValidateQuestionCreate(req *QuestionCreateRequest) ValidationErrors {
	errors := v.Validate(req)

	// Whitespace-only text passes the required tag but is still empty data.
	if strings.TrimSpace(req.Question) == "" {
		errors = append(errors, ValidationError{Field: "question", Message: "empty question data", Rule: "business_logic"})
	}
	if strings.TrimSpace(req.Answer) == "" {
		errors = append(errors, ValidationError{Field: "answer", Message: "empty answer data", Rule: "business_logic"})
	}
	if req.Difficulty < models.MinDifficulty || req.Difficulty > models.MaxDifficulty {
		errors = append(errors, ValidationError{
			Field:   "difficulty",
			Message: fmt.Sprintf("out of range value for difficulty, expected %d..%d", models.MinDifficulty, models.MaxDifficulty),
			Value:   req.Difficulty,
			Rule:    "business_logic",
		})
	}

	return errors
}

// ValidateLogin validates login/registration input
func (v *Validator) ValidateLogin(req *LoginRequest) ValidationErrors {
	errors := v.Validate(req)

	if strings.TrimSpace(req.Username) == "" {
		errors = append(errors, ValidationError{Field: "username", Message: "username required", Rule: "business_logic"})
	}
	if strings.TrimSpace(req.Password) == "" {
		errors = append(errors, ValidationError{Field: "password", Message: "password required", Rule: "business_logic"})
	}

	return errors
}

// ValidateUserUpdate checks an update map against the known user fields and
// rejects identity changes.
func (v *Validator) ValidateUserUpdate(userID uint, updates map[string]any) ValidationErrors {
	var errors ValidationErrors

	known := make(map[string]bool, len(models.UserFields))
	for _, field := range models.UserFields {
		known[field] = true
	}

	for key := range updates {
		if !known[key] {
			errors = append(errors, ValidationError{
				Field:   key,
				Message: fmt.Sprintf("unexpected data %s", key),
				Rule:    "business_logic",
			})
		}
	}

	if id, ok := updates[models.FieldID]; ok {
		if asUint, ok := toUint(id); !ok || asUint != userID {
			errors = append(errors, ValidationError{
				Field:   models.FieldID,
				Message: "illegal operation, unable to update id",
				Value:   id,
				Rule:    "business_logic",
			})
		}
	}

	return errors
}

func toUint(value any) (uint, bool) {
	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	case float64:
		if v < 0 || v != float64(uint(v)) {
			return 0, false
		}
		return uint(v), true
	default:
		return 0, false
	}
}

// errorMessage renders a human readable message for a tag failure
func errorMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("missing %s data", strings.ToLower(fieldErr.Field()))
	case "min":
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fieldErr.Param())
	default:
		return fmt.Sprintf("failed %s validation", fieldErr.Tag())
	}
}
