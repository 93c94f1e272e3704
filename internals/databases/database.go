package database

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB membuka koneksi PostgreSQL dengan retry terbatas.
// Retry hanya untuk startup (database serverless yang masih cold),
// bukan kebijakan per-request.
func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=prediksiku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	attempts := getenvInt("DB_CONNECT_ATTEMPTS", 5)
	backoff := time.Duration(getenvInt("DB_CONNECT_BACKOFF_SECONDS", 2)) * time.Second

	var lastErr error
	for i := 1; i <= attempts; i++ {
		db, err := gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
		}), &gorm.Config{})
		if err == nil {
			if sqlDB, derr := db.DB(); derr == nil {
				if perr := sqlDB.Ping(); perr == nil {
					DB = db
					log.Printf("✅ DB connected (attempt %d/%d).", i, attempts)
					return
				} else {
					lastErr = perr
				}
			} else {
				lastErr = derr
			}
		} else {
			lastErr = err
		}
		log.Printf("⚠️ DB belum siap (attempt %d/%d): %v", i, attempts, lastErr)
		if i < attempts {
			time.Sleep(backoff)
		}
	}
	log.Fatalf("❌ Gagal konek DB setelah %d attempt: %v", attempts, lastErr)
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	// ping ringan supaya pool keisi & siap
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
