package validation

import (
	"fmt"
	"strings"

	errors "github.com/docuflow/docuflow-cli/internal"
)

type ValidatorFunc func(interface{}) *errors.AppError

type FieldValidator struct {
	FieldName  string
	Value      interface{}
	Validators []ValidatorFunc
}

type ValidationBuilder struct {
	fields []FieldValidator
}

func NewValidator() *ValidationBuilder {
	return &ValidationBuilder{
		fields: make([]FieldValidator, 0),
	}
}

func (v *ValidationBuilder) Field(name string, value interface{}) *FieldValidator {
	fv := FieldValidator{
		FieldName:  name,
		Value:      value,
		Validators: make([]ValidatorFunc, 0),
	}
	v.fields = append(v.fields, fv)
	return &v.fields[len(v.fields)-1]
}

func (fv *FieldValidator) Required() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		switch v := value.(type) {
		case string:
			if strings.TrimSpace(v) == "" {
				return errors.NewFieldError(fv.FieldName)
			}
		case []string:
			if len(v) == 0 {
				return errors.NewFieldError(fv.FieldName)
			}
		case *string:
			if v == nil || strings.TrimSpace(*v) == "" {
				return errors.NewFieldError(fv.FieldName)
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) MinLength(min int) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		if v, ok := value.(string); ok && v != "" {
			if len(v) < min {
				message := fmt.Sprintf("%s must be at least %d characters", fv.FieldName, min)
				return errors.NewValidationError(message, errors.ErrCodeValidationFailed)
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) MaxLength(max int) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		if v, ok := value.(string); ok {
			if len(v) > max {
				message := fmt.Sprintf("%s must not exceed %d characters", fv.FieldName, max)
				return errors.NewValidationError(message, errors.ErrCodeValidationFailed)
			}
		}
		return nil
	})
	return fv
}

// Email checks the minimal shape the backend accepts; full validation is the
// server's job.
func (fv *FieldValidator) Email() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		if v, ok := value.(string); ok && v != "" {
			at := strings.Index(v, "@")
			if at < 1 || at == len(v)-1 || !strings.Contains(v[at:], ".") {
				message := fmt.Sprintf("%s must be a valid email address", fv.FieldName)
				return errors.NewValidationError(message, errors.ErrCodeValidationFailed)
			}
		}
		return nil
	})
	return fv
}

// Digits requires the value to be exactly n numeric digits, as OTP codes are.
func (fv *FieldValidator) Digits(n int) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		if v, ok := value.(string); ok && v != "" {
			if len(v) != n {
				message := fmt.Sprintf("%s must be %d digits", fv.FieldName, n)
				return errors.NewValidationError(message, errors.ErrCodeValidationFailed)
			}
			for _, r := range v {
				if r < '0' || r > '9' {
					message := fmt.Sprintf("%s must contain only digits", fv.FieldName)
					return errors.NewValidationError(message, errors.ErrCodeValidationFailed)
				}
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) Custom(validator func(interface{}) *errors.AppError) *FieldValidator {
	fv.Validators = append(fv.Validators, validator)
	return fv
}

// Validate runs all field validators and returns the first failure. Preflight
// checks gate network calls, so one clear message beats a collected list.
func (v *ValidationBuilder) Validate() *errors.AppError {
	for _, field := range v.fields {
		for _, validator := range field.Validators {
			if err := validator(field.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

func ValidateCredentials(email, password string) *errors.AppError {
	v := NewValidator()
	v.Field("email", email).Required().Email()
	v.Field("password", password).Required()
	return v.Validate()
}

func ValidateSignup(name, email, password, companyName string) *errors.AppError {
	v := NewValidator()
	v.Field("name", name).Required().MaxLength(100)
	v.Field("email", email).Required().Email()
	v.Field("password", password).Required().MinLength(6)
	v.Field("company_name", companyName).Required().MaxLength(100)
	return v.Validate()
}

func ValidateOTP(otp string) *errors.AppError {
	v := NewValidator()
	v.Field("otp", otp).Required().Digits(6)
	return v.Validate()
}
