package content

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"council-portal-api/internal/models"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("validation failed")

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned by write operations whose input breaks a rule.
// It is raised before any remote call.
type ValidationError struct {
	Resource string       `json:"resource"`
	Fields   []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Resource, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// FeedbackInput is a citizen's feedback submission.
type FeedbackInput struct {
	Type    models.SuggestionType `json:"type" validate:"required,suggestion_type"`
	Message string                `json:"message" validate:"trimmin=5"`
}

// NewsInput is a notice published from the admin console.
type NewsInput struct {
	Title    string `json:"title" validate:"required,trimmin=5"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Category string `json:"category"`
	Link     string `json:"link"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// trimmin=N: at least N characters once surrounding whitespace is removed.
	_ = v.RegisterValidation("trimmin", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= n
	})
	_ = v.RegisterValidation("suggestion_type", func(fl validator.FieldLevel) bool {
		t := models.SuggestionType(fl.Field().String())
		for _, allowed := range models.SuggestionTypes {
			if t == allowed {
				return true
			}
		}
		return false
	})
	return v
}

// check validates in and converts rule violations into a *ValidationError.
func (a *Accessor) check(resource string, in any) error {
	err := a.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	ve := &ValidationError{Resource: resource}
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, FieldError{Field: fe.Field(), Message: describe(fe)})
	}
	return ve
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "trimmin":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "suggestion_type":
		names := make([]string, 0, len(models.SuggestionTypes))
		for _, t := range models.SuggestionTypes {
			names = append(names, string(t))
		}
		return "must be one of: " + strings.Join(names, ", ")
	default:
		return "is invalid"
	}
}
