package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cedzoi/cedzoi/internal/content"
)

// SQLStore keeps each quiz or set as one row with its items as JSON. An
// import replaces the whole document inside one transaction.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) ImportQuizzes(ctx context.Context, list []content.Quiz) error {
	if err := content.ValidateQuizzes(list); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, `DELETE FROM quizzes`); err != nil {
		return fmt.Errorf("clear quizzes: %w", err)
	}
	now := time.Now().Unix()
	for i, q := range list {
		qj, err := json.Marshal(q.Questions)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `INSERT INTO quizzes (id,title,description,questions_json,position,updated_at)
			VALUES ($1,$2,$3,$4,$5,$6)`,
			q.ID, q.Title, q.Description, string(qj), i, now)
		if err != nil {
			return fmt.Errorf("import quiz %s: %w", q.ID, err)
		}
	}
	return tx.Commit()
}

func (s *SQLStore) ImportFlashcardSets(ctx context.Context, list []content.FlashcardSet) error {
	if err := content.ValidateFlashcardSets(list); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, `DELETE FROM flashcard_sets`); err != nil {
		return fmt.Errorf("clear flashcard sets: %w", err)
	}
	now := time.Now().Unix()
	for i, fs := range list {
		cj, err := json.Marshal(fs.Cards)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `INSERT INTO flashcard_sets (id,title,description,cards_json,position,updated_at)
			VALUES ($1,$2,$3,$4,$5,$6)`,
			fs.ID, fs.Title, fs.Description, string(cj), i, now)
		if err != nil {
			return fmt.Errorf("import flashcard set %s: %w", fs.ID, err)
		}
	}
	return tx.Commit()
}

func (s *SQLStore) Quizzes(ctx context.Context) ([]content.Quiz, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,title,description,questions_json FROM quizzes ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []content.Quiz{}
	for rows.Next() {
		var q content.Quiz
		var qjson string
		if err := rows.Scan(&q.ID, &q.Title, &q.Description, &qjson); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(qjson), &q.Questions); err != nil {
			return nil, fmt.Errorf("quiz %s: %w", q.ID, err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *SQLStore) FlashcardSets(ctx context.Context) ([]content.FlashcardSet, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,title,description,cards_json FROM flashcard_sets ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []content.FlashcardSet{}
	for rows.Next() {
		var fs content.FlashcardSet
		var cjson string
		if err := rows.Scan(&fs.ID, &fs.Title, &fs.Description, &cjson); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(cjson), &fs.Cards); err != nil {
			return nil, fmt.Errorf("flashcard set %s: %w", fs.ID, err)
		}
		out = append(out, fs)
	}
	return out, rows.Err()
}
