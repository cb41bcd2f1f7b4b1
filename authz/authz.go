// Package authz classifies the caller behind a request and decides
// whether an operation is allowed. Classification is derived from the
// session alone; every request is classified independently.
package authz

import (
	apiError "github.com/moin-shk/imr-portal/errors"
	"github.com/moin-shk/imr-portal/models"
)

// Session is what a resolved token yields: an opaque capability carrying
// the principal's identity and role.
type Session struct {
	Name  string
	Email string
	Role  string
}

type Classification int

const (
	Anonymous Classification = iota
	AuthenticatedUser
	Administrator
)

func (c Classification) String() string {
	switch c {
	case AuthenticatedUser:
		return "authenticated"
	case Administrator:
		return "administrator"
	default:
		return "anonymous"
	}
}

// Classify derives the caller classification from an optional session.
func Classify(s *Session) Classification {
	switch {
	case s == nil:
		return Anonymous
	case s.Role == models.RoleAdmin:
		return Administrator
	default:
		return AuthenticatedUser
	}
}

// RequireAuthenticated rejects anonymous callers.
func RequireAuthenticated(c Classification) *apiError.Error {
	if c == Anonymous {
		return apiError.ErrUnauthorized
	}
	return nil
}

// RequireAdministrator rejects anonymous callers as unauthorized and
// authenticated non-admins as forbidden.
func RequireAdministrator(c Classification) *apiError.Error {
	switch c {
	case Administrator:
		return nil
	case Anonymous:
		return apiError.ErrUnauthorized
	default:
		return apiError.ErrForbidden
	}
}
