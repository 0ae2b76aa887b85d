// Package web defines common components for a web application.
package web

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// JSONError provides type for explicit json encoded error response.
type JSONError struct {
	Error string `json:"error"`
}

// Error wraps a given err into json frinedly struct.
func Error(err error) JSONError {
	return JSONError{Error: err.Error()}
}

// ErrorMsg wraps a given message into json friendly struct.
func ErrorMsg(msg string) JSONError {
	return JSONError{Error: msg}
}

// GetErrorMsg returns a human readable message for the failed validation.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	}

	return fe.Field() + " is invalid"
}

// JSONTagName reports the json name of the struct field, so validation messages
// refer to request fields the way clients send them.
func JSONTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}

	if name == "" {
		return fld.Name
	}

	return name
}
