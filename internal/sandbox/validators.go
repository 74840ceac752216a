package sandbox

import (
	"crypto/rand"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const panLength = 16

// ValidateLuhn validates a card number using the Luhn algorithm
func ValidateLuhn(cardNumber string) error {
	if !isDigits(cardNumber) {
		return fmt.Errorf("invalid card number: must contain only digits")
	}
	if len(cardNumber) < 13 || len(cardNumber) > 19 {
		return fmt.Errorf("invalid card number length: must be 13-19 digits")
	}

	if luhnCheckDigit(cardNumber[:len(cardNumber)-1]) != cardNumber[len(cardNumber)-1] {
		return fmt.Errorf("invalid card number: failed Luhn check")
	}

	return nil
}

// GeneratePAN returns a random 16 digit card number starting with bin
// whose last digit is the Luhn check digit
func GeneratePAN(bin string) (string, error) {
	if !isDigits(bin) || bin == "" {
		return "", fmt.Errorf("bin must contain digits only")
	}

	fill := panLength - 1 - len(bin)
	if fill <= 0 {
		return "", fmt.Errorf("bin too long: %s", bin)
	}

	digits, err := randomDigits(fill)
	if err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}

	body := bin + digits
	return body + string(luhnCheckDigit(body)), nil
}

// randomDigits only keeps random bytes below 250 so every digit is equally likely
func randomDigits(count int) (string, error) {
	const threshold = 250
	var sb strings.Builder
	sb.Grow(count)
	buf := make([]byte, 32)
	for sb.Len() < count {
		n, err := rand.Read(buf)
		if err != nil {
			return "", err
		}
		for i := 0; i < n && sb.Len() < count; i++ {
			if buf[i] < threshold {
				sb.WriteByte('0' + buf[i]%10)
			}
		}
	}
	return sb.String(), nil
}

func luhnCheckDigit(body string) byte {
	sum, double := 0, true
	for i := len(body) - 1; i >= 0; i-- {
		d := int(body[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return '0' + byte((10-sum%10)%10)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// RequestValidator checks decoded request bodies against their validate tags
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator with the luhn rule registered.
// Field names in errors are the JSON names.
func NewRequestValidator() *RequestValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	//nolint:errcheck // the tag name is static and the function is non-nil
	v.RegisterValidation("luhn", validateLuhnField)

	return &RequestValidator{validate: v}
}

// Validate returns an invalid_request ServiceError describing the first failing field
func (rv *RequestValidator) Validate(req any) error {
	err := rv.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ServiceError{Code: ErrCodeInvalidRequest, Message: "invalid request", Err: err}
	}

	return &ServiceError{Code: ErrCodeInvalidRequest, Message: fieldMessage(fieldErrs[0])}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "luhn":
		return fmt.Sprintf("%s is not a valid card number", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func validateLuhnField(fl validator.FieldLevel) bool {
	return ValidateLuhn(fl.Field().String()) == nil
}
