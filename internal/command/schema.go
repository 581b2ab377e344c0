package command

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Issue describes one field-level validation failure.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports why a raw command could not be coerced into a
// valid Command.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Field+": "+issue.Message)
	}
	return "invalid command: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report issues under json field names rather than Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseCommand validates and coerces raw LLM output into a Command.
// The schema is closed: unknown fields are rejected so malformed output
// cannot slip through. Failures are reported as a *ValidationError with
// field-level issues.
func ParseCommand(raw []byte) (*Command, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var cmd Command
	if err := dec.Decode(&cmd); err != nil {
		return nil, &ValidationError{Issues: []Issue{decodeIssue(err)}}
	}

	cmd.Parameters.Near = strings.TrimSpace(cmd.Parameters.Near)

	if err := validate.Struct(&cmd); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			issues := make([]Issue, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				issues = append(issues, Issue{Field: fe.Field(), Message: issueMessage(fe)})
			}
			return nil, &ValidationError{Issues: issues}
		}
		return nil, err
	}

	return &cmd, nil
}

func decodeIssue(err error) Issue {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return Issue{Field: typeErr.Field, Message: fmt.Sprintf("cannot decode %s value", typeErr.Value)}
	}
	return Issue{Field: "command", Message: err.Error()}
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Field() == "query" {
			return "query cannot be empty"
		}
		return "is required"
	case "eq", "oneof":
		return "must be one of: " + fe.Param()
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
