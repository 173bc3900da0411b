package storage

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nlevin/taskdeck/internal/models"
)

var ErrTaskNotFound = errors.New("task not found")

// Storage holds the authoritative task records and their activity logs.
// Every task mutation appends its activity log entry under the same lock,
// so no caller can observe one without the other.
//
// Deleting a task moves its live log slice into the archive partition.
// Archived logs are retained but not reachable through TaskActivity;
// the public contract treats a deleted task as gone.
type Storage struct {
	logger zerolog.Logger

	mu       sync.Mutex
	tasks    map[string]models.Task
	logs     map[string][]models.ActivityLogEntry
	archived map[string][]models.ActivityLogEntry

	now   func() time.Time
	newID func() string
}

type Option func(*Storage)

// WithClock overrides the timestamp source. Used by tests for
// deterministic created_at/updated_at values.
func WithClock(now func() time.Time) Option {
	return func(s *Storage) {
		s.now = now
	}
}

// WithIDGenerator overrides the task and log entry id source.
func WithIDGenerator(newID func() string) Option {
	return func(s *Storage) {
		s.newID = newID
	}
}

func New(logger zerolog.Logger, opts ...Option) *Storage {
	s := &Storage{
		logger:   logger,
		tasks:    make(map[string]models.Task),
		logs:     make(map[string][]models.ActivityLogEntry),
		archived: make(map[string][]models.ActivityLogEntry),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// appendLog records an activity entry for the task. Callers must hold mu.
func (s *Storage) appendLog(taskID, action string, oldValue, newValue *string) {
	entry := models.ActivityLogEntry{
		ID:        s.newID(),
		TaskID:    taskID,
		Action:    action,
		Timestamp: s.now(),
		OldValue:  oldValue,
		NewValue:  newValue,
	}
	s.logs[taskID] = append(s.logs[taskID], entry)
}

// CreateTask inserts a new task with the given title. The title must
// already be validated and trimmed by the caller.
func (s *Storage) CreateTask(title string) models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	task := models.Task{
		ID:        s.newID(),
		Title:     title,
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.tasks[task.ID] = task
	s.appendLog(task.ID, models.ActionCreated, nil, nil)

	s.logger.Info().
		Str("task_id", task.ID).
		Msg("created task")
	return task
}

func (s *Storage) GetTask(id string) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return models.Task{}, ErrTaskNotFound
	}
	return task, nil
}

// AllTasks returns a snapshot of every live task. Order is not
// semantically significant.
func (s *Storage) AllTasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]models.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	return tasks
}

// CompleteTask marks the task completed regardless of its current state.
// Completing an already-completed task still bumps updated_at and still
// appends a "completed" log entry recording the prior status.
func (s *Storage) CompleteTask(id string) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return models.Task{}, ErrTaskNotFound
	}

	oldStatus := task.Status()
	updated := task
	updated.Completed = true
	updated.UpdatedAt = s.now()
	s.tasks[id] = updated

	newStatus := models.StatusCompleted
	s.appendLog(id, models.ActionCompleted, &oldStatus, &newStatus)

	s.logger.Info().
		Str("task_id", id).
		Msg("completed task")
	return updated, nil
}

// UpdateTask applies the fields that are present. A present-but-equal
// field changes nothing and logs nothing; a present-and-different field
// is applied and logged ("updated" for title, "status_changed" for
// completed). updated_at is refreshed on every successful call, even
// when no field actually changed.
func (s *Storage) UpdateTask(id string, title *string, completed *bool) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return models.Task{}, ErrTaskNotFound
	}

	updated := task
	updated.UpdatedAt = s.now()

	if title != nil && *title != task.Title {
		oldTitle := task.Title
		updated.Title = *title
		s.appendLog(id, models.ActionUpdated, &oldTitle, title)
	}

	if completed != nil && *completed != task.Completed {
		oldStatus := task.Status()
		updated.Completed = *completed
		newStatus := updated.Status()
		s.appendLog(id, models.ActionStatusChanged, &oldStatus, &newStatus)
	}

	s.tasks[id] = updated

	s.logger.Info().
		Str("task_id", id).
		Msg("updated task")
	return updated, nil
}

// DeleteTask removes the task and archives its activity log. The
// "deleted" entry is appended while the task still exists so the entry
// is attributable, then the whole live log slice moves to the archive.
// Returns false if the id is unknown.
func (s *Storage) DeleteTask(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return false
	}

	s.appendLog(id, models.ActionDeleted, nil, nil)
	if entries, ok := s.logs[id]; ok {
		s.archived[id] = entries
		delete(s.logs, id)
	}
	delete(s.tasks, id)

	s.logger.Info().
		Str("task_id", id).
		Msg("deleted task")
	return true
}

// TaskActivity returns the task's activity log entries in insertion
// order. Returns ErrTaskNotFound for ids that were never created or
// have been deleted; an existing task with no entries yields an empty
// slice.
func (s *Storage) TaskActivity(id string) ([]models.ActivityLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return nil, ErrTaskNotFound
	}

	entries := s.logs[id]
	out := make([]models.ActivityLogEntry, len(entries))
	copy(out, entries)
	return out, nil
}

// Stats recomputes task counts from the live store.
func (s *Storage) Stats() models.TaskStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := models.TaskStats{Total: len(s.tasks)}
	for _, task := range s.tasks {
		if task.Completed {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	return stats
}
