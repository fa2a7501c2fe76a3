package util

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// credit: https://github.com/go-playground/validator/issues/559#issuecomment-976459959

func msgForTag(fe validator.FieldError, customField map[string]string) string {
	// convert to custom field if exist
	field := fe.Field()
	if name, ok := customField[field]; ok {
		field = name
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%v is required", field)
	case "file":
		return fmt.Sprintf("%v '%v' does not exist", field, fe.Value())
	case "pdfpath":
		return fmt.Sprintf("%v '%v' must be a pdf file", field, fe.Value())
	case "docxpath":
		return fmt.Sprintf("%v '%v' must be a docx file", field, fe.Value())
	case "nefield":
		return fmt.Sprintf("%v can't be the same as %v", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%v must be greater than %v", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%v must be greater than or equal to %v", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%v must be less than or equal to %v", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%v must be one of [%v]", field, fe.Param())
	case "hexcolor":
		return fmt.Sprintf("%v must be a hex color such as #FF0000", field)
	case "strNotEmpty":
		return fmt.Sprintf("%v must not be empty or contain only whitespace charaters", field)
	}

	log.Printf("Unknown tag: %v with error: %v", fe.Tag(), fe.Error())
	return fe.Error() // default error
}

/*
Extract error from validator and return the first error as a string
Usage: GenerateErrorMessagesAsString(err, map[string]string{"InputPath": "Input file"})
Example output: "Input file is required"
*/
func GenerateErrorMessagesAsString(err error, customField map[string]string) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		if len(ve) > 0 {
			return msgForTag(ve[0], customField)
		}
	}

	return err.Error()
}

func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("strNotEmpty", StrNotEmpty); err != nil {
		return err
	}
	if err := v.RegisterValidation("pdfpath", extValidator(".pdf")); err != nil {
		return err
	}
	if err := v.RegisterValidation("docxpath", extValidator(".docx")); err != nil {
		return err
	}
	return nil
}

// check if string is empty, after trimming spaces
// Usage: `validate:"strNotEmpty"`
func StrNotEmpty(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	return len(strings.TrimSpace(field.String())) > 0
}

// Usage: `validate:"pdfpath"`
func extValidator(ext string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return false
		}
		return HasExt(field.String(), ext)
	}
}
