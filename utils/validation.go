package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	emailRegex  = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	mobileRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

// fieldMessages overrides the generic message for a json field
var fieldMessages = map[string]string{
	"name":                "Name is required",
	"age":                 fmt.Sprintf("Age must be between %d and %d", MinPlayerAge, MaxPlayerAge),
	"mobile":              "Please provide a valid 10-digit mobile number",
	"email":               "Please provide a valid email",
	"district":            "District is required",
	"state":               "State is required",
	"role":                "Role must be one of Batsman, Bowler, All-rounder, Wicketkeeper",
	"status":              ErrInvalidStatus,
	"password":            fmt.Sprintf("Password must be at least %d characters", MinPasswordLength),
	"message":             "Message must be at least 10 characters",
	"registrationId":      "Registration ID is required",
	"paymentId":           "Payment ID is required",
	"razorpay_order_id":   "Razorpay order ID is required",
	"razorpay_payment_id": "Razorpay payment ID is required",
	"razorpay_signature":  "Razorpay signature is required",
}

// ValidateEmail reports whether s looks like an e-mail address
func ValidateEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// ValidateMobile reports whether s is a 10-digit mobile number
func ValidateMobile(s string) bool {
	return mobileRegex.MatchString(s)
}

// NormalizeEmail trims and lower-cases an address
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// BindingError turns a gin binding error into a 400 AppError with one
// message per offending field.
func BindingError(err error) *AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ValidationFailed(ErrValidation, map[string]string{"body": "Invalid request body: " + err.Error()})
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := jsonFieldName(fe)
		if msg, ok := fieldMessages[name]; ok {
			fields[name] = msg
			continue
		}
		fields[name] = defaultFieldMessage(name, fe)
	}
	return ValidationFailed(ErrValidation, fields)
}

// RegisterTagNames makes validation errors report json (or form) tag names
// instead of Go field names. Call once before serving requests.
func RegisterTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
}

func jsonFieldName(fe validator.FieldError) string {
	if fe.Field() == "" {
		return "body"
	}
	return fe.Field()
}

func defaultFieldMessage(name string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "email":
		return fmt.Sprintf("%s must be a valid email", name)
	case "min":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", name, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", name)
	}
	return fmt.Sprintf("%s is invalid", name)
}
