package authz

import (
	"net/http"
	"testing"

	"github.com/moin-shk/imr-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		session *Session
		want    Classification
	}{
		{"no session", nil, Anonymous},
		{"user role", &Session{Email: "user@imr.com", Role: models.RoleUser}, AuthenticatedUser},
		{"unknown role", &Session{Email: "user@imr.com", Role: "EDITOR"}, AuthenticatedUser},
		{"admin role", &Session{Email: "admin@imr.com", Role: models.RoleAdmin}, Administrator},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.session))
		})
	}
}

func TestRequireAuthenticated(t *testing.T) {
	err := RequireAuthenticated(Anonymous)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusUnauthorized, err.Status)
	assert.Equal(t, "Unauthorized", err.Message)

	assert.Nil(t, RequireAuthenticated(AuthenticatedUser))
	assert.Nil(t, RequireAuthenticated(Administrator))
}

func TestRequireAdministrator(t *testing.T) {
	err := RequireAdministrator(Anonymous)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusUnauthorized, err.Status)

	err = RequireAdministrator(AuthenticatedUser)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusForbidden, err.Status)
	assert.Equal(t, "Forbidden - Admin access required", err.Message)

	assert.Nil(t, RequireAdministrator(Administrator))
}
