package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// errorMessages is a nested map of languages to validation tags to custom error messages.
var errorMessages = map[string]map[string]string{
	"en": {
		"required": "The field '%s' is required.",
		"gte":      "The field '%s' must be greater than or equal to %s.",
		"lte":      "The field '%s' must be less than or equal to %s.",
		"gt":       "The field '%s' must be greater than %s.",
		"min":      "The field '%s' must be at least %s.",
		"max":      "The field '%s' must be no more than %s.",
		"oneof":    "The field '%s' must be one of %s.",
	},
	"zh": {
		"required": "字段 '%s' 为必填项。",
		"gte":      "字段 '%s' 的值必须大于或等于 %s。",
		"lte":      "字段 '%s' 的值必须小于或等于 %s。",
		"gt":       "字段 '%s' 的值必须大于 %s。",
		"min":      "字段 '%s' 的值不能小于 %s。",
		"max":      "字段 '%s' 的值不能大于 %s。",
		"oneof":    "字段 '%s' 的值必须是 %s 之一。",
	},
}

// parseMessage constructs a friendly error message based on the validation tag and custom messages.
func parseMessage(jsonTag string, e validator.FieldError, lang ...string) string {
	msgLang := "en"
	if len(lang) > 0 {
		msgLang = lang[0]
	}
	if msgs, exists := errorMessages[msgLang]; exists {
		if msg, exists := msgs[e.Tag()]; exists {
			switch strings.Count(msg, "%s") {
			case 1:
				return fmt.Sprintf(msg, jsonTag)
			case 2:
				return fmt.Sprintf(msg, jsonTag, e.Param())
			}
		}
	}
	return fmt.Sprintf("Field '%s' is invalid: %s", jsonTag, e.Tag())
}

// ValidateStruct validates a struct pointer and returns a map of JSON field
// names to friendly error messages. An empty map means the struct is valid.
func ValidateStruct(s any, lang ...string) map[string]string {
	validationErrors := make(map[string]string)

	err := validate.Struct(s)
	if err == nil {
		return validationErrors
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		validationErrors[""] = err.Error()
		return validationErrors
	}

	structType := reflect.TypeOf(s)
	if structType.Kind() == reflect.Ptr {
		structType = structType.Elem()
	}
	for _, e := range validationErrs {
		jsonTag := e.StructField()
		if field, ok := structType.FieldByName(e.StructField()); ok {
			if tag := field.Tag.Get("json"); tag != "" && tag != "-" {
				jsonTag = strings.Split(tag, ",")[0]
			}
		}
		validationErrors[jsonTag] = parseMessage(jsonTag, e, lang...)
	}

	return validationErrors
}

// Join flattens ValidateStruct output into one deterministic message.
func Join(errs map[string]string) string {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, len(fields))
	for i, f := range fields {
		msgs[i] = errs[f]
	}
	return strings.Join(msgs, " ")
}
