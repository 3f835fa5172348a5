package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"
)

const queryTimeout = 5 * time.Second

// LoadPostgres читает каталог из таблицы exercises.
// Строки с NULL-рейтингом отсекаются уже в запросе, порядок по id —
// он играет роль исходного порядка каталога при равных рейтингах.
func LoadPostgres(db *sql.DB) ([]Exercise, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	rows, err := db.QueryContext(ctx, `
        SELECT title, type, body_part, equipment, level, rating
        FROM exercises
        WHERE rating IS NOT NULL
        ORDER BY id
    `)
	if err != nil {
		return nil, fmt.Errorf("каталог: запрос exercises: %w", err)
	}
	defer rows.Close()

	var list []Exercise
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.Title, &e.Type, &e.BodyPart, &e.Equipment, &e.Level, &e.Rating); err != nil {
			log.Printf("❌ scan exercise: %v", err)
			continue
		}
		e.Title = cleanText(e.Title)
		e.Type = cleanText(e.Type)
		e.BodyPart = cleanText(e.BodyPart)
		e.Equipment = cleanText(e.Equipment)
		e.Level = cleanText(e.Level)
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("каталог: чтение exercises: %w", err)
	}
	return list, nil
}
