package validation

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"dealswapify/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("listing_type", validateListingType)
	_ = v.RegisterValidation("listing_status", validateListingStatus)
	_ = v.RegisterValidation("media_type", validateMediaType)
	_ = v.RegisterValidation("currency", validateCurrency)
	_ = v.RegisterValidation("payment_method", validatePaymentMethod)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("non_negative_amount", validateNonNegativeAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatErrors turns validation errors into one readable message per field.
// Errors that are not validation errors produce a single generic entry.
func FormatErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		details = append(details, formatFieldError(fieldErr))
	}
	return details
}

func formatFieldError(fieldErr validator.FieldError) string {
	field := fieldErr.Field()
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fieldErr.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fieldErr.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "listing_type":
		return fmt.Sprintf("%s must be one of sale, donation, giveaway", field)
	case "listing_status":
		return fmt.Sprintf("%s must be one of active, sold, expired, rejected", field)
	case "media_type":
		return fmt.Sprintf("%s must be one of image, video", field)
	case "currency":
		return fmt.Sprintf("%s must be one of %s", field, strings.Join(models.Currencies, ", "))
	case "payment_method":
		return fmt.Sprintf("%s must be one of %s", field, strings.Join(models.PaymentMethods, ", "))
	case "positive_amount":
		return fmt.Sprintf("%s must be a positive amount", field)
	case "non_negative_amount":
		return fmt.Sprintf("%s must be a non-negative amount", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// Custom validation functions

func validateListingType(fl validator.FieldLevel) bool {
	return models.IsValidListingType(fl.Field().String())
}

func validateListingStatus(fl validator.FieldLevel) bool {
	return models.IsValidListingStatus(fl.Field().String())
}

func validateMediaType(fl validator.FieldLevel) bool {
	return models.IsValidMediaType(fl.Field().String())
}

func validateCurrency(fl validator.FieldLevel) bool {
	return slices.Contains(models.Currencies, strings.ToUpper(fl.Field().String()))
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	return models.IsValidPaymentMethod(fl.Field().String())
}

// validatePositiveAmount validates that an amount is greater than 0.
// Strings are parsed as decimals with at most 2 decimal places.
func validatePositiveAmount(fl validator.FieldLevel) bool {
	amount, ok := fieldAmount(fl.Field())
	return ok && amount.IsPositive()
}

// validateNonNegativeAmount validates that an amount is 0 or greater
func validateNonNegativeAmount(fl validator.FieldLevel) bool {
	amount, ok := fieldAmount(fl.Field())
	return ok && !amount.IsNegative()
}

func fieldAmount(field reflect.Value) (decimal.Decimal, bool) {
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(field.Int()), true
	case reflect.Float32, reflect.Float64:
		return decimal.NewFromFloat(field.Float()), true
	case reflect.String:
		amount, err := decimal.NewFromString(strings.TrimSpace(field.String()))
		if err != nil || amount.Exponent() < -2 {
			return decimal.Zero, false
		}
		return amount, true
	default:
		return decimal.Zero, false
	}
}
