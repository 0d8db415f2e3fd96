// Package validation checks candidate listings against the catalog's
// field constraints and reports violations as plain values.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/avolkov/rentals/internal/entities"
)

// Violation describes a single constraint failure on a candidate listing.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations is the (possibly empty) set of constraint failures.
type Violations []Violation

func (v Violations) String() string {
	if len(v) == 0 {
		return ""
	}
	parts := make([]string, 0, len(v))
	for _, violation := range v {
		parts = append(parts, violation.Field+": "+violation.Message)
	}
	return strings.Join(parts, "; ")
}

// Validator checks candidate listings. It never mutates its input.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate returns the constraint violations for a candidate listing,
// or an empty set when the candidate is acceptable.
func (v *Validator) Validate(listing *entities.Listing) Violations {
	err := v.validate.Struct(listing)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return Violations{{Field: "listing", Message: err.Error()}}
	}

	violations := make(Violations, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		violations = append(violations, Violation{
			Field:   strings.ToLower(fe.Field()),
			Message: messageForTag(fe),
		})
	}
	return violations
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	default:
		return "is invalid"
	}
}
