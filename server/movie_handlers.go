package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	errs "github.com/moin-shk/imr-portal/errors"
	"github.com/moin-shk/imr-portal/models"
	"github.com/moin-shk/imr-portal/server/response"
)

func (s *Server) handleListMovies() gin.HandlerFunc {
	return func(c *gin.Context) {
		movies, err := s.MovieService.ListMovies(c.Query("search"))
		if err != nil {
			response.Err(c, err)
			return
		}
		response.JSON(c, http.StatusOK, movies)
	}
}

func (s *Server) handleGetMovie() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			response.Message(c, http.StatusBadRequest, "Movie ID is required")
			return
		}

		movie, err := s.MovieService.GetMovie(id)
		if err != nil {
			response.Err(c, err)
			return
		}
		response.JSON(c, http.StatusOK, movie)
	}
}

func (s *Server) handleCreateMovie() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.MovieRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Message(c, http.StatusBadRequest, "Invalid request body")
			return
		}

		movie, err := s.MovieService.CreateMovie(&req)
		if err != nil {
			response.Err(c, err)
			return
		}
		response.JSON(c, http.StatusCreated, movie)
	}
}

func (s *Server) handleUpdateMovie() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			response.Message(c, http.StatusBadRequest, "Movie ID is required")
			return
		}

		var req models.MovieRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Message(c, http.StatusBadRequest, "Invalid request body")
			return
		}

		movie, err := s.MovieService.UpdateMovie(id, &req)
		if err != nil {
			response.Err(c, err)
			return
		}
		response.JSON(c, http.StatusOK, movie)
	}
}

func (s *Server) handleDeleteMovie() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			response.Message(c, http.StatusBadRequest, "Movie ID is required")
			return
		}

		if err := s.MovieService.DeleteMovie(id); err != nil {
			response.Err(c, err)
			return
		}
		response.Message(c, http.StatusOK, "Movie deleted successfully")
	}
}

func (s *Server) handleHealthz() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.DB != nil {
			if err := s.DB.Ping(); err != nil {
				response.Err(c, errs.New("database unreachable", http.StatusServiceUnavailable))
				return
			}
		}
		response.JSON(c, http.StatusOK, gin.H{"status": "ok"})
	}
}
