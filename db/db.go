package db

import (
	"fmt"
	"log"

	"github.com/moin-shk/imr-portal/config"
	"github.com/moin-shk/imr-portal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GormDB struct {
	DB *gorm.DB
}

func GetDB(c *config.Config) *GormDB {
	logLevel := logger.Silent
	if c.Debug {
		logLevel = logger.Info
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		log.Fatalf("unable to connect to database: %v", err)
	}

	return &GormDB{DB: gormDB}
}

func (g *GormDB) Migrate() error {
	return g.DB.AutoMigrate(&models.User{}, &models.Movie{}, &models.Blacklist{})
}

// Ping checks the underlying connection, for health reporting.
func (g *GormDB) Ping() error {
	sqlDB, err := g.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
