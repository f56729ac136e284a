package helpers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

type contextKey string

const (
	ContextKeyUserID   contextKey = "userID"
	ContextKeyUserName contextKey = "userName"
)

var (
	customerNameRegex = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	phoneNoRegex      = regexp.MustCompile(`^[0-9+\-\s()]+$`)
)

// NewValidator builds the validator used by handlers and the draft
// reconciler, with the field rules the order form enforces.
func NewValidator() *validator.Validate {
	v := validator.New()

	if err := v.RegisterValidation("customername", func(fl validator.FieldLevel) bool {
		return customerNameRegex.MatchString(fl.Field().String())
	}); err != nil {
		log.Printf("NewValidator: failed to register customername rule: %v", err)
	}

	if err := v.RegisterValidation("phoneno", func(fl validator.FieldLevel) bool {
		return phoneNoRegex.MatchString(fl.Field().String())
	}); err != nil {
		log.Printf("NewValidator: failed to register phoneno rule: %v", err)
	}

	return v
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s is required.", err.Field())
		case "min":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s.", err.Field(), err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s must be at most %s.", err.Field(), err.Param())
		case "customername":
			errorMessages[field] = fmt.Sprintf("%s can only contain letters and spaces.", err.Field())
		case "phoneno":
			errorMessages[field] = fmt.Sprintf("%s can only contain numbers, spaces, and symbols.", err.Field())
		default:
			errorMessages[field] = fmt.Sprintf("Validation %s failed on field %s.", err.Tag(), err.Field())
		}
	}
	return errorMessages
}
