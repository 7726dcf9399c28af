package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/openboard/backend/internal/model"
)

func (db *Postgres) InsertMessage(ctx context.Context, id uuid.UUID, authorID int64, text string) error {
	query := `
		INSERT INTO messages (id, author_id, text, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	_, err := db.Pool.Exec(ctx, query, id, authorID, text)
	return err
}

// ListMessages returns every message with its author's display name, oldest
// first. The id tie-break keeps the order total when timestamps collide.
func (db *Postgres) ListMessages(ctx context.Context) ([]model.MessageEntry, error) {
	query := `
		SELECT m.id, u.name, m.text, m.created_at
		FROM messages m
		JOIN users u ON u.id = m.author_id
		ORDER BY m.created_at ASC, m.id ASC
	`
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.MessageEntry
	for rows.Next() {
		var m model.MessageEntry
		if err := rows.Scan(&m.ID, &m.Author, &m.Text, &m.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if list == nil {
		list = []model.MessageEntry{}
	}
	return list, nil
}
