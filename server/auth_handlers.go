package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moin-shk/imr-portal/models"
	"github.com/moin-shk/imr-portal/server/response"
)

func (s *Server) handleSignup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Message(c, http.StatusBadRequest, err.Error())
			return
		}

		user, err := s.AuthService.SignupUser(&models.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			response.Err(c, err)
			return
		}

		response.JSON(c, http.StatusCreated, models.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		})
	}
}

func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Message(c, http.StatusBadRequest, err.Error())
			return
		}

		loginResponse, err := s.AuthService.LoginUser(&req)
		if err != nil {
			response.Err(c, err)
			return
		}
		response.JSON(c, http.StatusOK, loginResponse)
	}
}

func (s *Server) handleLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := ""
		if v, exists := c.Get("access_token"); exists {
			accessToken, _ = v.(string)
		}

		if err := s.AuthService.LogoutUser(accessToken); err != nil {
			response.Err(c, err)
			return
		}
		response.Message(c, http.StatusOK, "logout successful")
	}
}
