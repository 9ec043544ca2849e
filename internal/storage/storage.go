package storage

import (
	"sync"

	"fieldtrack/internal/config"
	"fieldtrack/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	gorm_logger "gorm.io/gorm/logger"

	"gorm.io/gorm"
)

var (
	once sync.Once
	db   *gorm.DB
)

func GetDb() *gorm.DB {
	once.Do(connect)
	return db
}

func connect() {
	log := logger.GetLogger()
	env := config.GetEnv()

	var err error
	if env.IsTesting {
		// Shared in-memory database so every connection in the test
		// process sees the same rows. A single open connection keeps
		// sqlite from returning busy errors under concurrent writers.
		db, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
			Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
		})
		if err == nil {
			sqlDb, sqlErr := db.DB()
			if sqlErr != nil {
				err = sqlErr
			} else {
				sqlDb.SetMaxOpenConns(1)
			}
		}
	} else {
		db, err = gorm.Open(postgres.Open(env.DatabaseDsn), &gorm.Config{})
	}

	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		panic(err)
	}

	if env.IsTesting {
		if err := db.AutoMigrate(migrationModels...); err != nil {
			log.Error("Failed to migrate test database", "error", err)
			panic(err)
		}
	}
}

var migrationModels []any

// RegisterModel adds a model to the set migrated by RunMigrations.
// Feature packages register their models from init functions.
func RegisterModel(models ...any) {
	migrationModels = append(migrationModels, models...)
}

func RunMigrations() error {
	return GetDb().AutoMigrate(migrationModels...)
}
