package db

import (
	"database/sql"
	"fmt"

	"voicecoach/models"

	_ "github.com/lib/pq"
)

type CheckinRepository interface {
	Append(entry *models.Checkin) error
	GetAll() ([]models.Checkin, error)
}

// FileCheckinRepository keeps the check-in log as a pretty-printed JSON
// array, newest entry last. Every call does a full read and full rewrite,
// which is fine for the handful of entries a daily check-in produces.
type FileCheckinRepository struct {
	path string
}

func NewFileCheckinRepository(path string) *FileCheckinRepository {
	return &FileCheckinRepository{path: path}
}

func (r *FileCheckinRepository) Append(entry *models.Checkin) error {
	entries := readArray[models.Checkin](r.path)
	entries = append(entries, *entry)
	return writeArray(r.path, entries)
}

func (r *FileCheckinRepository) GetAll() ([]models.Checkin, error) {
	return readArray[models.Checkin](r.path), nil
}

type PostgresCheckinRepository struct {
	db *sql.DB
}

func NewPostgresCheckinRepository(databaseURL string) (*PostgresCheckinRepository, error) {
	db, err := openPostgres(databaseURL)
	if err != nil {
		return nil, err
	}
	return &PostgresCheckinRepository{db: db}, nil
}

func (r *PostgresCheckinRepository) Append(entry *models.Checkin) error {
	query := `
		INSERT INTO coach.checkins (ts, mood, objectives, summary)
		VALUES ($1, $2, $3, $4)`

	if _, err := r.db.Exec(query, entry.Timestamp, entry.Mood, entry.Objectives, entry.Summary); err != nil {
		return fmt.Errorf("failed to append check-in: %w", err)
	}
	return nil
}

func (r *PostgresCheckinRepository) GetAll() ([]models.Checkin, error) {
	query := `
		SELECT ts, mood, objectives, summary
		FROM coach.checkins
		ORDER BY id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get check-ins: %w", err)
	}
	defer rows.Close()

	var entries []models.Checkin
	for rows.Next() {
		var entry models.Checkin
		if err := rows.Scan(&entry.Timestamp, &entry.Mood, &entry.Objectives, &entry.Summary); err != nil {
			return nil, fmt.Errorf("failed to scan check-in: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (r *PostgresCheckinRepository) Close() error {
	return r.db.Close()
}

func openPostgres(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
