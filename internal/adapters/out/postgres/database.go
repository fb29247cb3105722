package postgres

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"logistics/internal/adapters/out/postgres/migrations"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Options configures the connection pool.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// SlowThreshold is the duration above which gorm logs a query as slow.
	SlowThreshold time.Duration
}

// DSN builds a libpq keyword/value connection string.
func DSN(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode)
}

// Open connects through the pgx-based gorm driver with error translation
// enabled, so unique and foreign key violations reach the repositories as
// gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated.
func Open(ctx context.Context, dsn string, opts Options) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), Config(opts))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("extract sql.DB: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// Config is the gorm configuration shared by the application and its tests.
func Config(opts Options) *gorm.Config {
	threshold := opts.SlowThreshold
	if threshold <= 0 {
		threshold = 200 * time.Millisecond
	}

	return &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		NowFunc:                func() time.Time { return time.Now().UTC() },
		Logger: gormlogger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), gormlogger.Config{
			SlowThreshold:             threshold,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}
}

// Migrate applies the embedded schema migrations.
func Migrate(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("extract sql.DB: %w", err)
	}
	return migrations.Up(ctx, sqlDB)
}
