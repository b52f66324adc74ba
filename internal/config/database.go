package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type DBConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

var (
	dbConfig *DBConfig
	dbOnce   sync.Once
)

func LoadDBConfig() *DBConfig {
	dbOnce.Do(func() {
		dbConfig = &DBConfig{
			Driver:     getEnv("DB_DRIVER", "postgres"),
			Host:       os.Getenv("DB_HOST"),
			Port:       os.Getenv("DB_PORT"),
			User:       os.Getenv("DB_USER"),
			Password:   os.Getenv("DB_PASSWORD"),
			Name:       os.Getenv("DB_NAME"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			SQLitePath: getEnv("DB_SQLITE_PATH", "job-tracker.db"),
		}
	})
	return dbConfig
}

// Dialector picks the gorm driver for the configured backend. SQLite always
// runs with foreign keys enabled so application deletes cascade.
func (c *DBConfig) Dialector() (gorm.Dialector, error) {
	switch c.Driver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Tokyo",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(c.SQLitePath + "?_pragma=foreign_keys(1)"), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", c.Driver)
	}
}

func InitDB(dbConfig *DBConfig, appConfig *AppConfig) (*gorm.DB, error) {
	dialector, err := dbConfig.Dialector()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database: %w", err)
	}
	if !appConfig.IsProduction() {
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		sqlDB.SetMaxIdleConns(20)
		sqlDB.SetMaxOpenConns(200)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.JobType{},
		&model.JobApplication{},
		&model.Document{},
		&model.InterviewLog{},
		&model.EntrySheet{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
