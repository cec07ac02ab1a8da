package dietplan

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidProfile is matched by every ValidationError.
var ErrInvalidProfile = errors.New("invalid user profile")

// ErrPlanNotFound is returned by stores when no plan exists for an id.
var ErrPlanNotFound = errors.New("diet plan not found")

// ValidationError reports the first profile field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidProfile) true for any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidProfile
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(adultRanges, UserProfile{})
	return v
}

// Plausible adult body measurements. Children are exempt: their targets come
// from a fixed table and never from BMR.
const (
	minAdultAge, maxAdultAge       = 18, 100
	minAdultHeight, maxAdultHeight = 100, 250
	minAdultWeight, maxAdultWeight = 30, 300
)

// adultRanges keeps the BMR of every adult profile positive.
func adultRanges(sl validator.StructLevel) {
	p := sl.Current().Interface().(UserProfile)
	switch p.ProfileType {
	case Pregnant, Breastfeeding, Planning:
	default:
		return
	}

	for _, f := range []struct {
		name     string
		value    float64
		min, max float64
	}{
		{"age", p.Age, minAdultAge, maxAdultAge},
		{"height", p.Height, minAdultHeight, maxAdultHeight},
		{"weight", p.Weight, minAdultWeight, maxAdultWeight},
	} {
		if f.value < f.min {
			sl.ReportError(f.value, f.name, f.name, "min", strconv.FormatFloat(f.min, 'g', -1, 64))
			return
		}
		if f.value > f.max {
			sl.ReportError(f.value, f.name, f.name, "max", strconv.FormatFloat(f.max, 'g', -1, 64))
			return
		}
	}
}

// Validate checks the fields plan generation depends on.
func Validate(p UserProfile) error {
	// Non-finite values are rejected before the tag checks: +Inf passes gt=0.
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"age", p.Age},
		{"height", p.Height},
		{"weight", p.Weight},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ValidationError{Field: f.name, Reason: "must be a finite number"}
		}
	}

	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("failed to validate profile: %w", err)
	}

	fe := fieldErrs[0]
	return &ValidationError{Field: fe.Field(), Reason: reason(fe)}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be a positive number"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("%q is not one of [%s]", fe.Value(), fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
