package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusconnect/board/internal/auth"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("super-secret")
	require.NoError(t, err)
	require.NoError(t, auth.VerifyPassword("super-secret", hash))
	require.Error(t, auth.VerifyPassword("wrong", hash))
}
