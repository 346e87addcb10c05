package db

import (
	"database/sql"
	"fmt"

	"voicecoach/models"
)

type ReminderRepository interface {
	Create(reminder *models.Reminder) error
	GetAll() ([]models.Reminder, error)
}

// FileReminderRepository mirrors the task store: JSON array, insertion
// order, count+1 IDs with the same single-writer caveat.
type FileReminderRepository struct {
	path string
}

func NewFileReminderRepository(path string) *FileReminderRepository {
	return &FileReminderRepository{path: path}
}

func (r *FileReminderRepository) Create(reminder *models.Reminder) error {
	reminders := readArray[models.Reminder](r.path)
	reminder.ID = len(reminders) + 1
	reminders = append(reminders, *reminder)
	return writeArray(r.path, reminders)
}

func (r *FileReminderRepository) GetAll() ([]models.Reminder, error) {
	return readArray[models.Reminder](r.path), nil
}

type PostgresReminderRepository struct {
	db *sql.DB
}

func NewPostgresReminderRepository(databaseURL string) (*PostgresReminderRepository, error) {
	db, err := openPostgres(databaseURL)
	if err != nil {
		return nil, err
	}
	return &PostgresReminderRepository{db: db}, nil
}

func (r *PostgresReminderRepository) Create(reminder *models.Reminder) error {
	query := `
		INSERT INTO coach.reminders (activity, reminder_time, status, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	row := r.db.QueryRow(query, reminder.Activity, reminder.Time, reminder.Status, reminder.CreatedAt)
	if err := row.Scan(&reminder.ID); err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}
	return nil
}

func (r *PostgresReminderRepository) GetAll() ([]models.Reminder, error) {
	query := `
		SELECT id, activity, reminder_time, status, created_at
		FROM coach.reminders
		ORDER BY id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get reminders: %w", err)
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		var reminder models.Reminder
		if err := rows.Scan(&reminder.ID, &reminder.Activity, &reminder.Time, &reminder.Status, &reminder.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, reminder)
	}

	return reminders, rows.Err()
}

func (r *PostgresReminderRepository) Close() error {
	return r.db.Close()
}
