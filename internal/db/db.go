package db

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store owns the database handle. It is created once in main and passed to
// every repository.
type Store struct {
	DB      *gorm.DB
	Timeout time.Duration
}

func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Store, error) {
	logLevel := gormlogger.Warn
	if cfg.IsProduction() {
		logLevel = gormlogger.Error
	}

	gdb, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	store := &Store{DB: gdb, Timeout: cfg.StoreTimeout}

	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	if err := gdb.WithContext(ctx).AutoMigrate(
		&models.Franquicia{},
		&models.Sede{},
		&models.Estilista{},
		&models.Cliente{},
		&models.Servicio{},
		&models.Horario{},
		&models.Bloqueo{},
		&models.Cita{},
		&models.Producto{},
		&models.AuditLog{},
	); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, "migrations"); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	log.Info("database ready", zap.Duration("store_timeout", store.Timeout))
	return store, nil
}

// Ctx bounds a store call by the configured timeout.
func (s *Store) Ctx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.Timeout)
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	ctx, cancel := s.Ctx(ctx)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
