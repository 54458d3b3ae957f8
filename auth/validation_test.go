package auth_test

import (
	"testing"

	"github.com/jrsteele09/go-profile-server/auth"
	"github.com/jrsteele09/go-profile-server/internal/errors"
	"github.com/jrsteele09/go-profile-server/internal/utils"
	"github.com/jrsteele09/go-profile-server/profiles"
	"github.com/stretchr/testify/require"
)

func TestValidator_Struct(t *testing.T) {
	v := auth.NewValidator()

	require.NoError(t, v.Struct(auth.LoginRequest{Email: "a@x.com", Password: "x"}))

	err := v.Struct(auth.RegisterRequest{})
	var ve *errors.ValidationError
	require.True(t, errors.As(err, &ve))
	require.Equal(t, []errors.FieldError{
		{Field: "name", Message: "Name is required"},
		{Field: "email", Message: "Email is required"},
		{Field: "password", Message: "Please enter a password with 6 or more characters"},
	}, ve.Fields)

	t.Run("empty required text", func(t *testing.T) {
		err := v.Struct(profiles.Input{Status: utils.Ptr(""), Skills: utils.Ptr("")})
		var ve *errors.ValidationError
		require.True(t, errors.As(err, &ve))
		require.Equal(t, []errors.FieldError{
			{Field: "status", Message: "Status is required"},
			{Field: "skills", Message: "Skills is required"},
		}, ve.Fields)
	})

	t.Run("login without password", func(t *testing.T) {
		require.NoError(t, v.Struct(auth.LoginRequest{Email: "a@x.com"}))
	})
}
