// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"todoapp/internal/models"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		configure(v)
	}
}

func configure(v *validator.Validate) {
	v.RegisterTagNameFunc(fieldName)
	_ = v.RegisterValidation("hex_color", validateHexColor)
	_ = v.RegisterValidation("priority", validatePriority)
}

// fieldName reports fields by their wire name so messages read
// "limit must be at most 100" rather than naming the Go field.
func fieldName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return fld.Name
}

// IsHexColor reports whether s is a #RRGGBB color.
func IsHexColor(s string) bool {
	return hexColorRegex.MatchString(s)
}

func validateHexColor(fl validator.FieldLevel) bool {
	return IsHexColor(fl.Field().String())
}

func validatePriority(fl validator.FieldLevel) bool {
	return models.Priority(fl.Field().String()).IsValid()
}

// Message turns a binding error into a single client-facing sentence.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return describe(verrs[0])
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		if numErr.Func == "ParseBool" {
			return fmt.Sprintf("Invalid boolean %q", numErr.Num)
		}
		return fmt.Sprintf("Invalid number %q", numErr.Num)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field != "" {
			return fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type.String())
		}
		return "Request body has the wrong shape"
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return "Malformed JSON body"
	}

	if errors.Is(err, io.EOF) {
		return "Request body is required"
	}

	return "Invalid input"
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "hex_color":
		return "Invalid color format. Use hex format like #3B82F6"
	case "priority":
		return "Priority must be one of low, medium, high"
	}
	return field + " is invalid"
}
