package jobs

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/supchaser/media_queue/internal/app/models"
)

const taskIDPrefix = "task-"

// TaskRegistry maps task identifiers to task state. Tasks are never removed,
// they live as long as the process.
type TaskRegistry struct {
	tasks map[string]*models.Task
	mu    sync.RWMutex
}

func CreateTaskRegistry() *TaskRegistry {
	return &TaskRegistry{
		tasks: make(map[string]*models.Task),
	}
}

// Create allocates a fresh task in the idle state and returns its identifier.
func (r *TaskRegistry) Create() string {
	id := NewTaskID()
	r.Register(id)
	return id
}

// Register adds an idle task under an identifier obtained from NewTaskID.
// It reports false when the identifier is already taken.
func (r *TaskRegistry) Register(id string) bool {
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; ok {
		return false
	}
	r.tasks[id] = &models.Task{
		ID:        id,
		Status:    models.StatusIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return true
}

// Get returns a copy of the task.
func (r *TaskRegistry) Get(id string) (models.Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return models.Task{}, false
	}

	out := *task
	if task.Formats != nil {
		out.Formats = make([]models.Format, len(task.Formats))
		copy(out.Formats, task.Formats)
	}
	return out, true
}

// Update applies fn to the task under the registry lock. Unknown ids are
// ignored; the return value reports whether the task existed.
func (r *TaskRegistry) Update(id string, fn func(task *models.Task)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return false
	}
	fn(task)
	task.UpdatedAt = time.Now()
	return true
}

func (r *TaskRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}

// NewTaskID returns a time-ordered task identifier.
func NewTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(taskIDPrefix+"%d", time.Now().UnixNano())
	}
	return taskIDPrefix + id.String()
}
