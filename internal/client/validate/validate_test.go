package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordOK(t *testing.T) {
	tests := []struct {
		pw   string
		want bool
	}{
		{"Secret12", true},
		{"Str0ngPassword", true},
		{"Passw0rd", false},
		{"Password123", false},
		{"password123", false},
		{"12345678", false},
		{"Short1a", false},
		{"nouppercase1", false},
		{"NOLOWERCASE1", false},
		{"NoDigitsHere", false},
		{"Has Space1", false},
		{"Tab\tSep1a", false},
		{"A1" + strings.Repeat("b", 98), true},
		{"A1" + strings.Repeat("b", 99), false},
	}
	for _, tt := range tests {
		t.Run(tt.pw, func(t *testing.T) {
			assert.Equal(t, tt.want, PasswordOK(tt.pw))
		})
	}
}

func TestRegistration_Check(t *testing.T) {
	valid := Registration{FullName: "Ann Lee", Email: "ann@x.io", Password: "Secret12", ConfirmPassword: "Secret12"}

	tests := []struct {
		name      string
		mutate    func(r *Registration)
		wantField string
		wantMsg   string
	}{
		{"missing email", func(r *Registration) { r.Email = "  " }, "email", "Please enter a valid email address"},
		{"missing password", func(r *Registration) { r.Password = "" }, "password", "Please enter a password"},
		{"missing full name", func(r *Registration) { r.FullName = "" }, "fullName", "Please enter your full name"},
		{"missing confirm", func(r *Registration) { r.ConfirmPassword = " " }, "confirmPassword", "Please confirm your password"},
		{"short full name", func(r *Registration) { r.FullName = " Al " }, "fullName", "Full Name must be at least 3 characters long"},
		{"mismatch", func(r *Registration) { r.ConfirmPassword = "Secret13" }, "confirmPassword", "Passwords do not match"},
		{"weak password", func(r *Registration) { r.Password, r.ConfirmPassword = "Passw0rd", "Passw0rd" }, "password", PasswordPolicyMessage},
		{"policy", func(r *Registration) { r.Password, r.ConfirmPassword = "secret12", "secret12" }, "password", PasswordPolicyMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)

			_, err := r.Check()
			var verr *Error
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestRegistration_CheckTrims(t *testing.T) {
	got, err := Registration{
		FullName:        "  Ann Lee ",
		Email:           " ann@x.io ",
		Password:        " Secret12 ",
		ConfirmPassword: "Secret12  ",
	}.Check()
	require.NoError(t, err)
	assert.Equal(t, Registration{FullName: "Ann Lee", Email: "ann@x.io", Password: "Secret12", ConfirmPassword: "Secret12"}, got)
}

func TestLogin_Check(t *testing.T) {
	_, err := Login{Email: " ", Password: "x"}.Check()
	assert.EqualError(t, err, "Please enter your email")

	_, err = Login{Email: "ann@x.io"}.Check()
	assert.EqualError(t, err, "Please enter your password")

	got, err := Login{Email: " ann@x.io", Password: " pw "}.Check()
	require.NoError(t, err)
	assert.Equal(t, Login{Email: " ann@x.io", Password: " pw "}, got)
}
