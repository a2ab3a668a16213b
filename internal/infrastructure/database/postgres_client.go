package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/url"
	"time"

	_ "github.com/lib/pq"
)

// ConnectPostgres opens a lib/pq connection pool using environment variables.
//
// Supported env vars:
//   - DB_HOST (default: localhost)
//   - DB_PORT (default: 5432)
//   - DB_USER (default: postgres)
//   - DB_PASSWORD (default: postgres)
//   - DB_NAME (default: sales)
//   - DB_SSLMODE (default: disable)
func ConnectPostgres() *sql.DB {
	db, err := sql.Open("postgres", PostgresDSNFromEnv())
	if err != nil {
		log.Fatalf("failed to open postgres connection: %v", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to reach postgres: %v", err)
	}
	return db
}

func PostgresDSNFromEnv() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(getenvDefault("DB_USER", "postgres"), getenvDefault("DB_PASSWORD", "postgres")),
		Host:   fmt.Sprintf("%s:%s", getenvDefault("DB_HOST", "localhost"), getenvDefault("DB_PORT", "5432")),
		Path:   "/" + getenvDefault("DB_NAME", "sales"),
	}
	q := url.Values{}
	q.Set("sslmode", getenvDefault("DB_SSLMODE", "disable"))
	u.RawQuery = q.Encode()
	return u.String()
}
