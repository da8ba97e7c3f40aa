package models

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ContactInput is a single contact form submission. It lives only for the
// duration of one request and is never stored.
type ContactInput struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required,email"`
	Message string `form:"message" validate:"required"`
}

// FieldError describes one invalid contact form field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationError is returned when a ContactInput fails validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = fmt.Sprintf("%s (%s)", f.Field, f.Rule)
	}
	return "invalid contact input: " + strings.Join(names, ", ")
}

// Has reports whether the named form field failed validation.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func contactValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// ContactInputFromForm builds a ContactInput from submitted form values.
func ContactInputFromForm(values url.Values) ContactInput {
	return ContactInput{
		Name:    values.Get("name"),
		Email:   values.Get("email"),
		Message: values.Get("message"),
	}
}

// Normalize trims surrounding whitespace from every field.
func (c ContactInput) Normalize() ContactInput {
	return ContactInput{
		Name:    strings.TrimSpace(c.Name),
		Email:   strings.TrimSpace(c.Email),
		Message: strings.TrimSpace(c.Message),
	}
}

// Validate checks presence of every field and the shape of the email.
func (c ContactInput) Validate() error {
	err := contactValidator().Struct(c.Normalize())
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate contact input: %w", err)
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return out
}

// Form encodes the input as the name/email/message form body.
func (c ContactInput) Form() url.Values {
	n := c.Normalize()
	return url.Values{
		"name":    {n.Name},
		"email":   {n.Email},
		"message": {n.Message},
	}
}
