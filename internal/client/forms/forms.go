// Package forms validates user input before it is sent to the API, using
// the same rules the server enforces so most mistakes are caught locally.
package forms

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoginForm carries login credentials.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// SignupForm carries the new-account fields. Confirm must repeat Password.
type SignupForm struct {
	Name     string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Confirm  string `validate:"required,eqfield=Password"`
}

// TaskForm carries the editable task fields.
type TaskForm struct {
	Title       string `validate:"required"`
	Description string
	Status      string `validate:"omitempty,oneof=Active Pending Completed"`
	Budget      int64  `validate:"min=0"`
}

// ProfileForm carries the editable profile fields.
type ProfileForm struct {
	Name  string `validate:"required,min=2"`
	Email string `validate:"required,email"`
}

// fieldMessages maps struct field + failed tag to a user-facing message.
var fieldMessages = map[string]string{
	"LoginForm.Email.required":     "Email is required",
	"LoginForm.Email.email":        "Invalid email address",
	"LoginForm.Password.required":  "Password is required",
	"LoginForm.Password.min":       "Password must be at least 6 characters",
	"SignupForm.Name.required":     "Full name is required",
	"SignupForm.Name.min":          "Name must be at least 2 characters",
	"SignupForm.Email.required":    "Email is required",
	"SignupForm.Email.email":       "Invalid email address",
	"SignupForm.Password.required": "Password is required",
	"SignupForm.Password.min":      "Password must be at least 8 characters",
	"SignupForm.Confirm.required":  "Please confirm your password",
	"SignupForm.Confirm.eqfield":   "Passwords do not match",
	"TaskForm.Title.required":      "Title is required",
	"TaskForm.Status.oneof":        "Invalid task status",
	"TaskForm.Budget.min":          "Budget cannot be negative",
	"ProfileForm.Name.required":    "Full name is required",
	"ProfileForm.Name.min":         "Name must be at least 2 characters",
	"ProfileForm.Email.required":   "Email is required",
	"ProfileForm.Email.email":      "Invalid email address",
}

// Validate checks the form and returns the message for the first failed
// rule, nil when the form is valid.
func Validate(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	key := fmt.Sprintf("%s.%s", fe.StructNamespace(), fe.Tag())
	if msg, ok := fieldMessages[key]; ok {
		return errors.New(msg)
	}
	return fmt.Errorf("invalid value for %s", fe.Field())
}
