package database

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func New(config *viper.Viper) *gorm.DB {
	db, err := Open(config)
	if err != nil {
		panic(fmt.Errorf("failed to connect database: %w", err))
	}
	return db
}

// Open connects to the configured driver. database.driver defaults to postgres.
func Open(config *viper.Viper) (*gorm.DB, error) {
	gormConfig := &gorm.Config{}
	if config.GetString("log.level") != "debug" {
		gormConfig.Logger = logger.Default.LogMode(logger.Warn)
	}

	switch driver := config.GetString("database.driver"); driver {
	case "", DriverPostgres:
		return gorm.Open(postgres.Open(postgresDSN(config)), gormConfig)
	case DriverSQLite:
		path := config.GetString("database.path")
		if path == "" {
			path = "linguaflow.db"
		}
		return OpenSQLite(path, gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// OpenSQLite opens a sqlite database with foreign keys enforced.
func OpenSQLite(path string, gormConfig *gorm.Config) (*gorm.DB, error) {
	if gormConfig == nil {
		gormConfig = &gorm.Config{}
	}
	// timestamps are compared as text, so every stored value shares one offset
	if gormConfig.NowFunc == nil {
		gormConfig.NowFunc = func() time.Time { return time.Now().UTC() }
	}
	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), gormConfig)
	if err != nil {
		return nil, err
	}

	// sqlite serialises writers; a single connection avoids "database is locked"
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func postgresDSN(config *viper.Viper) string {
	username := config.GetString("database.username")
	password := config.GetString("database.password")
	host := config.GetString("database.host")
	port := config.GetInt("database.port")
	dbname := config.GetString("database.dbname")
	sslmode := config.GetString("database.sslmode")
	if sslmode == "" {
		sslmode = "disable"
	}
	timezone := config.GetString("database.timezone")
	if timezone == "" {
		timezone = "UTC"
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		host,
		username,
		password,
		dbname,
		port,
		sslmode,
		timezone,
	)
}
