package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"speak-byte/internal/domain"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

const (
	DefaultRankingLimit = 10
	MaxRankingLimit     = 100
	maxCourseIDLength   = 64

	notBlankTag = "notblank"
)

// Validator provides request validation functionality
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	validate := validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// report JSON field names instead of Go struct names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(notBlankTag, func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = validate.RegisterTranslation(notBlankTag, translator,
		func(ut.Translator) error { return nil },
		func(_ ut.Translator, fe validator.FieldError) string {
			return fmt.Sprintf("%s is required", fe.Field())
		})

	return &Validator{validate: validate, translator: translator}
}

// Struct validates a request DTO by its `validate` tags and returns
// domain.ValidationErrors, or nil when the struct is valid.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.NewInternalError("request validation failed", err)
	}

	out := make(domain.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, domain.ValidationError{
			Field:   fe.Field(),
			Code:    codeForTag(fe.Tag()),
			Message: fe.Translate(v.translator),
			Value:   valueString(fe.Value()),
		})
	}
	return out
}

// ValidateCourseID validates a course id path parameter
func (v *Validator) ValidateCourseID(courseID string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(courseID) == "" {
		errs = append(errs, domain.NewMissingFieldError("course_id"))
	} else if len(courseID) > maxCourseIDLength {
		errs = append(errs, domain.NewOutOfRangeError("course_id", len(courseID), 1, maxCourseIDLength))
	}
	return errs
}

// ValidateRankingLimit parses the optional limit query parameter.
func (v *Validator) ValidateRankingLimit(limitStr string) (int, domain.ValidationErrors) {
	if limitStr == "" {
		return DefaultRankingLimit, nil
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("limit", limitStr)}
	}
	if limit < 1 || limit > MaxRankingLimit {
		return 0, domain.ValidationErrors{domain.NewOutOfRangeError("limit", limit, 1, MaxRankingLimit)}
	}
	return limit, nil
}

func codeForTag(tag string) domain.ErrorCode {
	switch tag {
	case "required", notBlankTag:
		return domain.CodeMissingField
	case "min", "max", "gte", "lte", "gt", "lt", "len":
		return domain.CodeOutOfRange
	default:
		return domain.CodeInvalidFormat
	}
}

func valueString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		if len(val) > 50 {
			return val[:50]
		}
		return val
	default:
		return fmt.Sprint(val)
	}
}
