package services

import (
	"errors"
	"log"
	"net/http"

	"github.com/moin-shk/imr-portal/config"
	"github.com/moin-shk/imr-portal/db"
	apiError "github.com/moin-shk/imr-portal/errors"
	"github.com/moin-shk/imr-portal/models"
	"github.com/moin-shk/imr-portal/services/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles account creation and session token issuance.
type AuthService interface {
	SignupUser(user *models.User) (*models.User, *apiError.Error)
	LoginUser(request *models.LoginRequest) (*models.LoginResponse, *apiError.Error)
	LogoutUser(accessToken string) *apiError.Error
}

type authService struct {
	Config   *config.Config
	authRepo db.AuthRepository
}

// NewAuthService instantiates an authService
func NewAuthService(authRepo db.AuthRepository, conf *config.Config) AuthService {
	return &authService{
		Config:   conf,
		authRepo: authRepo,
	}
}

func (a *authService) SignupUser(user *models.User) (*models.User, *apiError.Error) {
	if err := models.ValidatePassword(user.Password); err != nil {
		return nil, apiError.New(err.Error(), http.StatusBadRequest)
	}

	if err := a.authRepo.IsEmailExist(user.Email); err != nil {
		if errors.Is(err, db.ErrEmailExists) {
			return nil, apiError.New("email already in use", http.StatusBadRequest)
		}
		log.Printf("SignupUser error checking email: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("SignupUser error hashing password: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	user.HashedPassword = string(hashedPassword)
	user.Password = ""
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	createdUser, err := a.authRepo.CreateUser(user)
	if err != nil {
		log.Printf("SignupUser error creating user: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	return createdUser, nil
}

func (a *authService) LoginUser(loginRequest *models.LoginRequest) (*models.LoginResponse, *apiError.Error) {
	foundUser, err := a.authRepo.FindUserByEmail(loginRequest.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("invalid email or password", http.StatusUnprocessableEntity)
		}
		log.Printf("error from database: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	if err := foundUser.VerifyPassword(loginRequest.Password); err != nil {
		return nil, apiError.New("invalid email or password", http.StatusUnprocessableEntity)
	}

	accessToken, refreshToken, err := jwt.GenerateTokenPair(foundUser, a.Config.JWTSecret)
	if err != nil {
		log.Printf("error generating token pair: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	return &models.LoginResponse{
		UserResponse: models.UserResponse{
			ID:    foundUser.ID,
			Name:  foundUser.Name,
			Email: foundUser.Email,
			Role:  foundUser.Role,
		},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authService) LogoutUser(accessToken string) *apiError.Error {
	if err := a.authRepo.AddToBlacklist(&models.Blacklist{Token: accessToken}); err != nil {
		log.Printf("LogoutUser error blacklisting token: %v", err)
		return apiError.ErrInternalServerError
	}
	return nil
}
