package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/abdhesh369/my-portfolio/config"
)

const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
	TypeSupabase = "supa"

	DefaultPath = "data/portfolio.db"
)

// Open connects to the store named by DB_TYPE and checks the connection.
// SQLite is the default; the file and its directory are created if missing.
func Open(cfg map[string]string) (*gorm.DB, error) {
	dbType := strings.ToLower(config.GetString(cfg, "DB_TYPE", TypeSQLite))
	log.Info().Str("dbType", dbType).Msg("connecting to database")

	gormConfig := &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger(cfg),
	}

	var (
		db  *gorm.DB
		err error
	)
	switch dbType {
	case TypeSQLite, "":
		db, err = openSQLite(config.GetString(cfg, "DB_PATH", DefaultPath), gormConfig)
	case TypePostgres, TypeSupabase:
		db, err = openPostgres(postgresDSN(cfg, dbType), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported DB_TYPE %q", dbType)
	}
	if err != nil {
		return nil, err
	}

	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("error testing database connection: %w", err)
	}

	return db, nil
}

func openSQLite(path string, gormConfig *gorm.Config) (*gorm.DB, error) {
	if path != ":memory:" && !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("error connecting to sqlite database: %w", err)
	}

	if err := db.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
		return nil, fmt.Errorf("error enabling WAL journal mode: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite takes one writer at a time
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func openPostgres(dsn string, gormConfig *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("error connecting to postgres database: %w", err)
	}
	return db, nil
}

func postgresDSN(cfg map[string]string, dbType string) string {
	if url := config.GetString(cfg, "DATABASE_URL", ""); url != "" && dbType == TypePostgres {
		return url
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
		config.GetString(cfg, "SUPABASE_DB_HOST", ""),
		config.GetString(cfg, "SUPABASE_DB_USER", ""),
		config.GetString(cfg, "SUPABASE_DB_PASSWORD", ""),
		config.GetString(cfg, "SUPABASE_DB_NAME", ""),
		config.GetString(cfg, "SUPABASE_DB_PORT", "5432"),
	)
}

// newLogger routes GORM's output through the global zerolog logger.
func newLogger(cfg map[string]string) logger.Interface {
	level := logger.Warn
	if config.GetBool(cfg, "DB_LOG_QUERIES", false) {
		level = logger.Info
	}
	return logger.New(
		&log.Logger,
		logger.Config{
			SlowThreshold:             2 * time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
