package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"

	"emoji-shop/config"
	"emoji-shop/models"
)

// PostgresStore keeps blobs in a single (namespace, key) -> jsonb table.
// Upserts go through ON CONFLICT so every Put is a keyed overwrite.
type PostgresStore struct {
	pool      *pgxpool.Pool
	namespace string
}

func NewPostgresStore(cfg *config.Config) (*PostgresStore, error) {
	dsn := cfg.DatabaseDSN()

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, storeErr(err)
	}
	poolCfg.MaxConns = 10

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, storeErr(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, storeErr(err)
	}

	if err := runMigrations(dsn); err != nil {
		pool.Close()
		return nil, err
	}

	log.Println("Postgres blob store connected")
	return &PostgresStore{pool: pool, namespace: cfg.BlobNamespace}, nil
}

func runMigrations(dsn string) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("failed to open DB for migrations: %w", err)
	}
	defer sqlDB.Close()

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	migrationPath, err := filepath.Abs("database/migration")
	if err != nil {
		return fmt.Errorf("failed to resolve migration path: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to initialize migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.Println("Blob table migrations applied (or already up to date)")
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) (*models.Product, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM blobs WHERE namespace = $1 AND key = $2`,
		s.namespace, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return models.ParseProduct(data)
}

func (s *PostgresStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT key FROM blobs WHERE namespace = $1 ORDER BY key`, s.namespace)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, storeErr(err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return keys, nil
}

func (s *PostgresStore) Put(ctx context.Context, key string, product *models.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO blobs (namespace, key, value, updated_at) VALUES ($1, $2, $3, now())
		 ON CONFLICT (namespace, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		s.namespace, key, data)
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}
