package db

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	config "github.com/bingxyi/PedidosAPI-Project/configs"
	"github.com/bingxyi/PedidosAPI-Project/internal/models"
)

var DB *gorm.DB

// Init opens the shared connection used by the API server and runs the schema
// migration. The CLI does not use this; it opens a fresh handle per operation
// (see Open).
func Init() {
	gdb, err := Open()
	if err != nil {
		log.WithField("component", "db").Fatalf("Failed to connect to DB: %v", err)
	}

	DB = gdb

	if err := Migrate(DB); err != nil {
		log.WithField("component", "db").Fatalf("Failed to migrate DB: %v", err)
	}

	log.WithField("component", "db").Info("Database connected and migrated successfully")
}

// Open builds a gorm handle from the environment: a SQLite file by default,
// Postgres when DB_DRIVER=postgres. Both surfaces read the same variables, so
// the API and the CLI always land on the same store.
func Open() (*gorm.DB, error) {
	cfg := config.LoadDBConfig()

	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	switch cfg.Driver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.PostgresHost,
			cfg.PostgresUser,
			cfg.PostgresPassword,
			cfg.PostgresDB,
			cfg.PostgresPort,
		)
		return gorm.Open(postgres.Open(dsn), gormCfg)
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.Driver)
	}
}

// Close releases the underlying connection pool of a handle obtained from Open.
func Close(gdb *gorm.DB) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}

func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.Order{},
		&models.Item{},
	)
}

func SetTestDB(testDB *gorm.DB) {
	DB = testDB
}
