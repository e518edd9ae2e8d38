package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validation for Android-style app package names
	_ = v.RegisterValidation("app_package", validateAppPackage)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map.
// This prevents leaking internal struct names.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = fmt.Sprintf("%s is required", field)
		case "email":
			errs[field] = "Invalid email address"
		case "min":
			errs[field] = fmt.Sprintf("%s must be at least %s characters", field, e.Param())
		case "max":
			errs[field] = fmt.Sprintf("%s must be at most %s characters", field, e.Param())
		case "app_package":
			errs[field] = "Invalid app package name"
		case "gte":
			errs[field] = fmt.Sprintf("%s must be at least %s", field, e.Param())
		default:
			errs[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return errs
}

// appPackagePattern matches reverse-domain package names like
// com.example.app. A single bare segment is also accepted for testing
// clients.
var appPackagePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*(\.[a-zA-Z][a-zA-Z0-9_]*)*$`)

func validateAppPackage(fl validator.FieldLevel) bool {
	pkg := fl.Field().String()
	if pkg == "" || len(pkg) > 255 {
		return false
	}
	return appPackagePattern.MatchString(pkg)
}
