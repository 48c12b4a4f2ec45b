package validator

import (
	"fmt"
	"strings"
	"sync"

	"hotelops/errors"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
	})
	return instance
}

// ValidateStruct validate struct theo tag `validate`, trả về AppError VALIDATION_ERROR
func ValidateStruct(v interface{}) error {
	err := get().Struct(v)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewAppError(errors.ErrCodeValidation, "Dữ liệu không hợp lệ", err)
	}

	messages := make([]string, 0, len(fieldErrors))
	code := errors.ErrCodeValidation
	for _, fe := range fieldErrors {
		if fe.Tag() == "required" {
			code = errors.ErrCodeRequiredField
		}
		messages = append(messages, fieldMessage(fe))
	}
	return errors.NewAppError(code, strings.Join(messages, "; "), err)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s không được để trống", fe.Field())
	case "email":
		return fmt.Sprintf("%s không đúng định dạng email", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s phải là một trong: %s", fe.Field(), fe.Param())
	case "gte", "min":
		return fmt.Sprintf("%s phải >= %s", fe.Field(), fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s phải <= %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s không hợp lệ (%s)", fe.Field(), fe.Tag())
}
