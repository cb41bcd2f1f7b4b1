package main

import (
	"log"

	"github.com/moin-shk/imr-portal/config"
	"github.com/moin-shk/imr-portal/db"
	"github.com/moin-shk/imr-portal/server"
	"github.com/moin-shk/imr-portal/services"
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

	authService := services.NewAuthService(authRepo, conf)
	movieService := services.NewMovieService(movieRepo)

	s := &server.Server{
		Config:         conf,
		AuthRepository: authRepo,
		AuthService:    authService,
		MovieService:   movieService,
		DB:             gormDB,
	}
	s.Start()
}
