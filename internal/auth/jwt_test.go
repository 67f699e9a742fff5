package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/onetech-shop/onetech-backend/pkg/types"
)

func testManager() *Manager {
	return NewManager("test-secret", time.Hour, "onetech-test")
}

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	m := testManager()
	u := &domain.User{ID: "u1", Email: "user@example.com", Name: "User", IsAdmin: true}

	token, err := m.Issue(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "onetech-test", claims.Issuer)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := testManager().Issue(&domain.User{ID: "u1", Email: "a@b.c"})
	require.NoError(t, err)

	other := NewManager("different-secret", time.Hour, "onetech-test")
	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestVerify_WrongIssuer(t *testing.T) {
	t.Parallel()

	token, err := NewManager("test-secret", time.Hour, "someone-else").Issue(&domain.User{ID: "u1"})
	require.NoError(t, err)

	_, err = testManager().Verify(token)
	assert.Error(t, err)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", -time.Minute, "onetech-test")
	token, err := m.Issue(&domain.User{ID: "u1"})
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestVerify_Garbage(t *testing.T) {
	t.Parallel()

	_, err := testManager().Verify("not-a-token")
	assert.Error(t, err)
}

func TestTokenFromHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "bearer with no token", header: "Bearer ", wantErr: true},
		{name: "lowercase scheme rejected", header: "bearer abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := TokenFromHeader(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
