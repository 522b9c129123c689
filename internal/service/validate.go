package service

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/ibeloyar/hotelportal/internal/model"
)

const (
	birthdayLayout    = "2006/01/02"
	birthdayISOLayout = "2006-01-02"

	invalidEmailMessage     = "please enter a valid e-mail address"
	passwordMismatchMessage = "passwords do not match"
	checkInPastMessage      = "check-in date must not be in the past"
	checkOutMessage         = "check-out date must be after check-in date"
)

var phonePattern = regexp.MustCompile(`^09\d{8}$`)

// newValidator - валидатор форм; ошибки адресуются по json-именам полей
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	custom := map[string]validator.Func{
		"alphanumdigits": isLettersAndDigits,
		"phone":          isPhone,
		"birthday":       isBirthday,
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}

	return v
}

// isLettersAndDigits accepts ASCII letters and digits only, with at least one of each.
func isLettersAndDigits(fl validator.FieldLevel) bool {
	var hasLetter, hasDigit bool

	for _, r := range fl.Field().String() {
		switch {
		case r > unicode.MaxASCII:
			return false
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			return false
		}
	}

	return hasLetter && hasDigit
}

func isPhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

func isBirthday(fl validator.FieldLevel) bool {
	_, err := parseBirthday(fl.Field().String())
	return err == nil
}

func parseBirthday(value string) (time.Time, error) {
	if t, err := time.Parse(birthdayLayout, value); err == nil {
		return t, nil
	}

	return time.Parse(birthdayISOLayout, value)
}

func (s *Service) validate(input any) *model.APIError {
	if err := s.validator.Struct(input); err != nil {
		return validationError(err)
	}

	return nil
}

// validateOrder checks the booking form and that the stay does not start before today.
func (s *Service) validateOrder(input model.OrderPostDTO) *model.APIError {
	if apiErr := s.validate(input); apiErr != nil {
		return apiErr
	}

	now := s.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if input.CheckInDate.Before(today) {
		return fieldError("checkInDate", checkInPastMessage)
	}

	return nil
}

func fieldError(field, message string) *model.APIError {
	return &model.APIError{
		Code:    http.StatusBadRequest,
		Message: model.ErrValidationMessage,
		Fields:  map[string]string{field: message},
	}
}

func validationError(err error) *model.APIError {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrValidationMessage,
		}
	}

	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		fields[fieldPath(fe)] = fieldMessage(fe)
	}

	return &model.APIError{
		Code:    http.StatusBadRequest,
		Message: model.ErrValidationMessage,
		Fields:  fields,
	}
}

// fieldPath drops the struct name: "SignupDTO.address.zipcode" -> "address.zipcode".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return invalidEmailMessage
	case "eqfield":
		return passwordMismatchMessage
	case "gtfield":
		return checkOutMessage
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "alphanumdigits":
		return "must contain both letters and digits"
	case "phone":
		return "invalid phone number"
	case "birthday":
		return "invalid date, expected YYYY/MM/DD"
	default:
		return "invalid value"
	}
}
