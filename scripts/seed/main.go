// Seeds the default administrator account and reports catalog size.
package main

import (
	"errors"
	"log"

	"github.com/moin-shk/imr-portal/config"
	"github.com/moin-shk/imr-portal/db"
	"github.com/moin-shk/imr-portal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	adminName     = "Admin"
	adminEmail    = "admin@imr.com"
	adminPassword = "admin123"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gormDB := db.GetDB(conf)
	if err := gormDB.Migrate(); err != nil {
		log.Fatalf("unable to run migrations: %v", err)
	}

	authRepo := db.NewAuthRepo(gormDB)
	movieRepo := db.NewMovieRepo(gormDB)

	_, err = authRepo.FindUserByEmail(adminEmail)
	switch {
	case err == nil:
		log.Println("Admin user already exists")
	case errors.Is(err, gorm.ErrRecordNotFound):
		hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("unable to hash admin password: %v", err)
		}
		if _, err := authRepo.CreateUser(&models.User{
			Name:           adminName,
			Email:          adminEmail,
			HashedPassword: string(hashed),
			Role:           models.RoleAdmin,
		}); err != nil {
			log.Fatalf("unable to create admin user: %v", err)
		}
		log.Println("Admin user created successfully")
	default:
		log.Fatalf("unable to look up admin user: %v", err)
	}

	count, err := movieRepo.Count()
	if err != nil {
		log.Fatalf("unable to count movies: %v", err)
	}
	log.Printf("%d movies in the catalog", count)
}
