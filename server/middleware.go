package server

import (
	"github.com/gin-gonic/gin"
	"github.com/moin-shk/imr-portal/authz"
	errs "github.com/moin-shk/imr-portal/errors"
	"github.com/moin-shk/imr-portal/server/response"
	"github.com/moin-shk/imr-portal/services/jwt"
)

// ResolveSession extracts the bearer token, if any, and attaches the
// resolved session to the context. No token means an anonymous caller;
// a token that is blacklisted or fails validation is rejected outright.
func (s *Server) ResolveSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := getTokenFromHeader(c)
		if accessToken == "" {
			c.Next()
			return
		}

		if s.AuthRepository.IsTokenInBlacklist(accessToken) {
			respondAndAbort(c, errs.ErrUnauthorized)
			return
		}

		claims, err := jwt.ValidateAndGetClaims(accessToken, s.Config.JWTSecret)
		if err != nil {
			respondAndAbort(c, errs.ErrUnauthorized)
			return
		}

		session := &authz.Session{
			Name:  stringClaim(claims["name"]),
			Email: stringClaim(claims["email"]),
			Role:  stringClaim(claims["role"]),
		}
		c.Set("session", session)
		c.Set("access_token", accessToken)
		c.Next()
	}
}

// RequireAuthenticated rejects anonymous callers with 401.
func (s *Server) RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := authz.Classify(sessionFromContext(c))
		if err := authz.RequireAuthenticated(caller); err != nil {
			respondAndAbort(c, err)
			return
		}
		c.Next()
	}
}

// RequireAdministrator rejects anonymous callers with 401 and
// authenticated non-admins with 403.
func (s *Server) RequireAdministrator() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := authz.Classify(sessionFromContext(c))
		if err := authz.RequireAdministrator(caller); err != nil {
			respondAndAbort(c, err)
			return
		}
		c.Next()
	}
}

// respondAndAbort writes the error response and aborts the Context
func respondAndAbort(c *gin.Context, e *errs.Error) {
	response.Err(c, e)
	c.Abort()
}

func sessionFromContext(c *gin.Context) *authz.Session {
	v, exists := c.Get("session")
	if !exists {
		return nil
	}
	session, ok := v.(*authz.Session)
	if !ok {
		return nil
	}
	return session
}

// getTokenFromHeader returns the token string in the authorization header
func getTokenFromHeader(c *gin.Context) string {
	authHeader := c.Request.Header.Get("Authorization")
	if len(authHeader) > 8 {
		return authHeader[7:]
	}
	return ""
}

func stringClaim(v interface{}) string {
	s, _ := v.(string)
	return s
}
