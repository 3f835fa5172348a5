package database

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Nick07092003/FitAI/internal/config"
	_ "github.com/lib/pq"
)

var (
	instance *sql.DB
	initErr  error
	once     sync.Once
)

// GetDB — ленивое подключение к PostgreSQL. Используется только когда
// источник каталога — postgres; ошибка возвращается вызывающему,
// чтобы приложение могло подняться с пустым каталогом.
func GetDB(cfg *config.Config) (*sql.DB, error) {
	once.Do(func() {
		dbConfig := cfg.Database

		connectionStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			dbConfig.Host,
			dbConfig.Port,
			dbConfig.User,
			dbConfig.Password,
			dbConfig.DBName,
			dbConfig.SSLMode)

		instance, initErr = sql.Open("postgres", connectionStr)
		if initErr != nil {
			initErr = fmt.Errorf("подключение к БД: %w", initErr)
			return
		}

		if err := instance.Ping(); err != nil {
			initErr = fmt.Errorf("ping БД: %w", err)
			return
		}

		instance.SetMaxOpenConns(25)
		instance.SetMaxIdleConns(25)
		instance.SetConnMaxLifetime(5 * time.Minute)
		log.Println("Успешное подключение к PostgreSQL")
	})

	return instance, initErr
}
