package database

import (
	"log"
	"os"
	"time"

	"github.com/bedrock/sor-api/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the GORM database connection and returns the handle. The
// handle is threaded explicitly through repositories and mappers; there is
// no package-level connection state.
func Connect(dbURL string) (*gorm.DB, error) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Connected to database")
	return db, nil
}

// Migrate brings the schema up to date for every inventory model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Label{},
		&models.Owner{},
		&models.Cluster{},
		&models.Environment{},
		&models.Domain{},
		&models.OperatingSystem{},
		&models.Server{},
		&models.Product{},
	)
}
