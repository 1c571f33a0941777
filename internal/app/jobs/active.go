package jobs

import (
	"sort"
	"sync"
	"time"

	"github.com/supchaser/media_queue/internal/app/models"
	"github.com/supchaser/media_queue/internal/utils/errs"
)

// Job is one in-flight download. QueueID is zero for ad-hoc downloads.
type Job struct {
	TaskID         string
	QueueID        uint
	URL            string
	FormatID       string
	FormatLabel    string
	AudioOnly      bool
	DownloadFolder string
	StartedAt      time.Time
	Controls       *Controls

	mu            sync.Mutex
	title         string
	thumbnailPath string
	progress      float64
	artifactPath  string
	errMsg        string
}

func NewJob(taskID string, queueID uint, req models.FetchRequest) *Job {
	return &Job{
		TaskID:         taskID,
		QueueID:        queueID,
		URL:            req.URL,
		FormatID:       req.FormatID,
		AudioOnly:      req.AudioOnly,
		DownloadFolder: req.DownloadFolder,
		StartedAt:      time.Now(),
		Controls:       NewControls(),
	}
}

func (j *Job) FetchRequest() models.FetchRequest {
	return models.FetchRequest{
		URL:            j.URL,
		FormatID:       j.FormatID,
		DownloadFolder: j.DownloadFolder,
		AudioOnly:      j.AudioOnly,
	}
}

func (j *Job) SetProgress(percent float64) {
	j.mu.Lock()
	j.progress = percent
	j.mu.Unlock()
}

func (j *Job) SetArtifactPath(path string) {
	j.mu.Lock()
	j.artifactPath = path
	j.mu.Unlock()
}

func (j *Job) ArtifactPath() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.artifactPath
}

func (j *Job) SetError(msg string) {
	j.mu.Lock()
	j.errMsg = msg
	j.mu.Unlock()
}

func (j *Job) SetTitle(title string) {
	j.mu.Lock()
	j.title = title
	j.mu.Unlock()
}

func (j *Job) Title() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.title
}

func (j *Job) SetThumbnailPath(path string) {
	j.mu.Lock()
	j.thumbnailPath = path
	j.mu.Unlock()
}

func (j *Job) ThumbnailPath() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.thumbnailPath
}

func (j *Job) Snapshot() models.ActiveJob {
	j.mu.Lock()
	defer j.mu.Unlock()

	return models.ActiveJob{
		TaskID:       j.TaskID,
		QueueID:      j.QueueID,
		URL:          j.URL,
		Title:        j.title,
		FormatID:     j.FormatID,
		AudioOnly:    j.AudioOnly,
		Progress:     j.progress,
		Paused:       j.Controls.Paused(),
		Cancelled:    j.Controls.Cancelled(),
		ArtifactPath: j.artifactPath,
		Error:        j.errMsg,
		StartedAt:    j.StartedAt,
	}
}

// ActiveTable maps task identifiers to in-flight jobs.
type ActiveTable struct {
	jobs    map[string]*Job
	byQueue map[uint]string
	mu      sync.Mutex
}

func CreateActiveTable() *ActiveTable {
	return &ActiveTable{
		jobs:    make(map[string]*Job),
		byQueue: make(map[uint]string),
	}
}

// Add registers a job. A second job for the same task or queue entry is refused.
func (t *ActiveTable) Add(job *Job) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.jobs[job.TaskID]; ok {
		return errs.ErrAlreadyActive
	}
	if job.QueueID != 0 {
		if _, ok := t.byQueue[job.QueueID]; ok {
			return errs.ErrAlreadyActive
		}
		t.byQueue[job.QueueID] = job.TaskID
	}
	t.jobs[job.TaskID] = job
	return nil
}

func (t *ActiveTable) Get(taskID string) (*Job, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	job, ok := t.jobs[taskID]
	return job, ok
}

func (t *ActiveTable) GetByQueue(queueID uint) (*Job, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	taskID, ok := t.byQueue[queueID]
	if !ok {
		return nil, false
	}
	return t.jobs[taskID], true
}

func (t *ActiveTable) Remove(taskID string) (*Job, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	job, ok := t.jobs[taskID]
	if !ok {
		return nil, false
	}
	delete(t.jobs, taskID)
	if job.QueueID != 0 {
		delete(t.byQueue, job.QueueID)
	}
	return job, true
}

// Jobs returns the in-flight jobs ordered by start time.
func (t *ActiveTable) Jobs() []*Job {
	t.mu.Lock()
	out := make([]*Job, 0, len(t.jobs))
	for _, job := range t.jobs {
		out = append(out, job)
	}
	t.mu.Unlock()

	sort.Slice(out, func(i, k int) bool {
		return out[i].StartedAt.Before(out[k].StartedAt)
	})
	return out
}

// Queued returns the in-flight jobs that belong to queue entries.
func (t *ActiveTable) Queued() []*Job {
	all := t.Jobs()
	out := all[:0]
	for _, job := range all {
		if job.QueueID != 0 {
			out = append(out, job)
		}
	}
	return out
}

func (t *ActiveTable) Snapshot() []models.ActiveJob {
	jobs := t.Jobs()
	out := make([]models.ActiveJob, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, job.Snapshot())
	}
	return out
}

func (t *ActiveTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.jobs)
}
