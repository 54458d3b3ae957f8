package errors_test

import (
	"fmt"
	"testing"

	apperrors "github.com/jrsteele09/go-profile-server/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestTaxonomy(t *testing.T) {
	t.Run("invalid credentials is unauthenticated, not not-found", func(t *testing.T) {
		require.ErrorIs(t, apperrors.ErrInvalidCredentials, apperrors.ErrUnauthenticated)
		require.NotErrorIs(t, apperrors.ErrInvalidCredentials, apperrors.ErrNotFound)
	})

	t.Run("token errors are invalid token", func(t *testing.T) {
		for _, err := range []error{apperrors.ErrTokenMalformed, apperrors.ErrTokenSignature, apperrors.ErrTokenExpired} {
			require.ErrorIs(t, err, apperrors.ErrInvalidToken)
			require.ErrorIs(t, err, apperrors.ErrUnauthenticated)
		}
	})

	t.Run("entry and profile not found", func(t *testing.T) {
		require.ErrorIs(t, apperrors.ErrEntryNotFound, apperrors.ErrNotFound)
		require.ErrorIs(t, apperrors.ErrProfileNotFound, apperrors.ErrNotFound)
	})
}

func TestValidationError(t *testing.T) {
	err := error(apperrors.NewValidationError("email", "must be a valid email address"))
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	require.Contains(t, err.Error(), "email: must be a valid email address")

	var ve *apperrors.ValidationError
	require.True(t, apperrors.As(fmt.Errorf("register: %w", err), &ve))
	require.Len(t, ve.Fields, 1)
}

func TestStoreError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := apperrors.StoreError("users.Insert", cause)
	require.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	require.ErrorIs(t, err, cause)
	require.NoError(t, apperrors.StoreError("noop", nil))
}

func TestWrapf(t *testing.T) {
	require.NoError(t, apperrors.Wrapf(nil, "ctx"))
	err := apperrors.Wrapf(apperrors.ErrConflict, "register %s", "a@x.com")
	require.ErrorIs(t, err, apperrors.ErrConflict)
	require.Equal(t, "register a@x.com: conflict", err.Error())
}
