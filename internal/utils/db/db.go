package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/segurtec/api-instalaciones/internal/config"
)

// Conectar abre la conexión a PostgreSQL y configura el pool. Las claves
// foráneas no se crean en la base: la integridad referencial y los borrados
// en cascada se resuelven en los repositorios.
func Conectar(cfg *config.DBConfig) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(cfg.LogLevel),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return database, nil
}
