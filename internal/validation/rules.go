// Package validation provides custom validation rules for the application.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/hashcipher/internal/errors"
)

var (
	// algorithmRegex accepts names such as "sha512-256", "sha512/256", "aes-256-gcm" or "SHA3_256".
	algorithmRegex = regexp.MustCompile(`^[A-Za-z0-9_/-]{1,64}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Tag(apperrors.ErrInvalidInput, err.Error())
}

// AlgorithmName validates the shape of an algorithm name. Whether the name is
// actually supported is decided by the transform providers.
var AlgorithmName = validation.NewStringRuleWithError(
	func(s string) bool {
		return algorithmRegex.MatchString(s)
	},
	validation.NewError(
		"validation_algorithm_name",
		"must contain only letters, digits, '-' or '_' and be at most 64 characters",
	),
)

// MaxBytes validates that a string is at most n bytes long. Zero disables the check.
func MaxBytes(n int) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return validation.NewError("validation_max_bytes_type", "must be a string")
		}
		if n > 0 && len(s) > n {
			return validation.NewError(
				"validation_max_bytes",
				fmt.Sprintf("must be at most %d bytes", n),
			)
		}
		return nil
	})
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
