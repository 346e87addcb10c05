package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"voicecoach/models"
)

type TaskRepository interface {
	Create(task *models.Task) error
	GetAll() ([]models.Task, error)
	// CompleteByTitle marks the first task whose title contains the query
	// (case-insensitive) as completed. found is false when nothing matched,
	// in which case the store is left untouched.
	CompleteByTitle(query string) (task *models.Task, found bool, err error)
}

// FileTaskRepository stores tasks as a JSON array in insertion order.
//
// IDs are assigned as count+1 to stay byte-compatible with existing data
// files. That scheme duplicates IDs if an entry is ever deleted or a second
// writer races this one; the deployment assumes a single session per file.
type FileTaskRepository struct {
	path string
}

func NewFileTaskRepository(path string) *FileTaskRepository {
	return &FileTaskRepository{path: path}
}

func (r *FileTaskRepository) Create(task *models.Task) error {
	tasks := readArray[models.Task](r.path)
	task.ID = len(tasks) + 1
	tasks = append(tasks, *task)
	return writeArray(r.path, tasks)
}

func (r *FileTaskRepository) GetAll() ([]models.Task, error) {
	return readArray[models.Task](r.path), nil
}

func (r *FileTaskRepository) CompleteByTitle(query string) (*models.Task, bool, error) {
	tasks := readArray[models.Task](r.path)
	q := strings.ToLower(query)

	for i := range tasks {
		if !strings.Contains(strings.ToLower(tasks[i].Title), q) {
			continue
		}

		now := time.Now().Format(time.RFC3339)
		tasks[i].Status = models.TaskStatusCompleted
		tasks[i].CompletedAt = &now

		if err := writeArray(r.path, tasks); err != nil {
			return nil, false, err
		}

		matched := tasks[i]
		return &matched, true, nil
	}

	return nil, false, nil
}

type PostgresTaskRepository struct {
	db *sql.DB
}

func NewPostgresTaskRepository(databaseURL string) (*PostgresTaskRepository, error) {
	db, err := openPostgres(databaseURL)
	if err != nil {
		return nil, err
	}
	return &PostgresTaskRepository{db: db}, nil
}

func (r *PostgresTaskRepository) Create(task *models.Task) error {
	query := `
		INSERT INTO coach.tasks (title, priority, status, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	row := r.db.QueryRow(query, task.Title, task.Priority, task.Status, task.CreatedAt)
	if err := row.Scan(&task.ID); err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *PostgresTaskRepository) GetAll() ([]models.Task, error) {
	query := `
		SELECT id, title, priority, status, created_at, completed_at
		FROM coach.tasks
		ORDER BY id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.ID, &task.Title, &task.Priority, &task.Status, &task.CreatedAt, &task.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (r *PostgresTaskRepository) CompleteByTitle(query string) (*models.Task, bool, error) {
	stmt := `
		UPDATE coach.tasks
		SET status = $1, completed_at = $2
		WHERE id = (
			SELECT id FROM coach.tasks
			WHERE title ILIKE '%' || $3 || '%'
			ORDER BY id
			LIMIT 1
		)
		RETURNING id, title, priority, status, created_at, completed_at`

	now := time.Now().Format(time.RFC3339)

	var task models.Task
	row := r.db.QueryRow(stmt, models.TaskStatusCompleted, now, query)
	if err := row.Scan(&task.ID, &task.Title, &task.Priority, &task.Status, &task.CreatedAt, &task.CompletedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to complete task: %w", err)
	}

	return &task, true, nil
}

func (r *PostgresTaskRepository) Close() error {
	return r.db.Close()
}
