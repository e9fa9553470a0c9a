// Package validator accumulates field-level validation errors. Struct tags
// are checked with go-playground/validator and reported under the field's
// JSON name.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Messages recorded for the tags used by the catalog inputs.
const (
	MsgRequired = "must be provided"
	MsgEmail    = "must be a valid email address"
)

var validate = newValidate()

func newValidate() *playground.Validate {
	v := playground.New()

	// Report fields by their JSON name so messages match the request body.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// notblank rejects strings made only of whitespace.
	_ = v.RegisterValidation("notblank", func(fl playground.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Validator holds a map of field names to their validation error messages.
// A Validator with an empty Errors map is considered valid.
type Validator struct {
	Errors map[string]string
	keys   []string
}

// New creates and returns a fresh, empty Validator.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid returns true if the Errors map contains no entries.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records key as failing with the given message.
// If key already has an error it is not overwritten, so the first
// failure for a field is always the one that is reported.
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
		v.keys = append(v.keys, key)
	}
}

// Check adds an error for key with message only when ok is false.
// Use this as a single-line guard:
//
//	v.Check(len(title) > 0, "title", "must be provided")
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// Struct checks the validate tags of s and records one error per failing field.
func (v *Validator) Struct(s any) {
	err := validate.Struct(s)
	if err == nil {
		return
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		v.AddError("body", err.Error())
		return
	}
	for _, fe := range fieldErrs {
		v.AddError(fe.Field(), message(fe))
	}
}

func message(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return MsgRequired
	case "email":
		return MsgEmail
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed the %q check", fe.Tag())
	}
}

// Fields returns, in the order they were recorded, the keys whose error is message.
func (v *Validator) Fields(message string) []string {
	var fields []string
	for _, k := range v.keys {
		if v.Errors[k] == message {
			fields = append(fields, k)
		}
	}
	return fields
}

// String joins every recorded error as "key message" in recorded order.
func (v *Validator) String() string {
	parts := make([]string, 0, len(v.keys))
	for _, k := range v.keys {
		parts = append(parts, k+" "+v.Errors[k])
	}
	return strings.Join(parts, "; ")
}

// In returns true if value is present in the list slice.
func In(value string, list ...string) bool {
	for _, item := range list {
		if value == item {
			return true
		}
	}
	return false
}
