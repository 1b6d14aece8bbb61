package forms

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoginForm(t *testing.T) {
	tests := []struct {
		name    string
		form    LoginForm
		wantErr string
	}{
		{"valid", LoginForm{Email: "a@b.co", Password: "s3cret"}, ""},
		{"missing email", LoginForm{Password: "s3cret"}, "Email is required"},
		{"bad email", LoginForm{Email: "not-an-email", Password: "s3cret"}, "Invalid email address"},
		{"short password", LoginForm{Email: "a@b.co", Password: "12345"}, "Password must be at least 6 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.form)
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestSignupForm(t *testing.T) {
	tests := []struct {
		name    string
		form    SignupForm
		wantErr string
	}{
		{"valid", SignupForm{Name: "Bob", Email: "b@b.co", Password: "longenough", Confirm: "longenough"}, ""},
		{"short name", SignupForm{Name: "B", Email: "b@b.co", Password: "longenough", Confirm: "longenough"}, "Name must be at least 2 characters"},
		{"short password", SignupForm{Name: "Bob", Email: "b@b.co", Password: "short12", Confirm: "short12"}, "Password must be at least 8 characters"},
		{"mismatch", SignupForm{Name: "Bob", Email: "b@b.co", Password: "longenough", Confirm: "different1"}, "Passwords do not match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.form)
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestTaskForm(t *testing.T) {
	require.NoError(t, Validate(TaskForm{Title: "Alpha", Status: "Active", Budget: 100}))
	require.NoError(t, Validate(TaskForm{Title: "Alpha"}))
	require.EqualError(t, Validate(TaskForm{Status: "Active"}), "Title is required")
	require.EqualError(t, Validate(TaskForm{Title: "Alpha", Status: "Done"}), "Invalid task status")
	require.EqualError(t, Validate(TaskForm{Title: "Alpha", Budget: -5}), "Budget cannot be negative")
}

func TestProfileForm(t *testing.T) {
	require.NoError(t, Validate(ProfileForm{Name: "Alice", Email: "a@b.co"}))
	require.EqualError(t, Validate(ProfileForm{Name: "A", Email: "a@b.co"}), "Name must be at least 2 characters")
	require.EqualError(t, Validate(ProfileForm{Name: "Alice", Email: "nope"}), "Invalid email address")
}
