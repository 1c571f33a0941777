package models

import "time"

type TaskStatus string

const (
	StatusIdle        TaskStatus = "idle"
	StatusFetching    TaskStatus = "fetching"
	StatusPending     TaskStatus = "pending"
	StatusDownloading TaskStatus = "downloading"
	StatusPaused      TaskStatus = "paused"
	StatusFinished    TaskStatus = "finished"
	StatusError       TaskStatus = "error"
	StatusCancelled   TaskStatus = "cancelled"
)

// IsTerminal reports whether no further transition is possible.
func (s TaskStatus) IsTerminal() bool {
	return s == StatusFinished || s == StatusError || s == StatusCancelled
}

// IsActive reports whether a worker currently owns the task.
func (s TaskStatus) IsActive() bool {
	return s == StatusDownloading || s == StatusPaused
}

type QueueStatus string

const (
	QueuePending     QueueStatus = "pending"
	QueueDownloading QueueStatus = "downloading"
	QueueFinished    QueueStatus = "finished"
	QueueError       QueueStatus = "error"
	QueueCancelled   QueueStatus = "cancelled"
)

func (s QueueStatus) IsTerminal() bool {
	return s == QueueFinished || s == QueueError || s == QueueCancelled
}

// Format is one rendition offered for a resource.
type Format struct {
	FormatID   string `json:"format_id"`
	VideoCodec string `json:"vcodec"`
	AudioCodec string `json:"acodec"`
	Resolution string `json:"resolution"`
	Container  string `json:"ext"`
	Note       string `json:"format_note"`
	Format     string `json:"format"`
}

// VideoOnly reports whether the rendition needs an audio stream merged in.
func (f Format) VideoOnly() bool {
	return f.VideoCodec != "" && f.VideoCodec != "none" && (f.AudioCodec == "" || f.AudioCodec == "none")
}

// Label is the short human readable description stored with queue and history rows.
func (f Format) Label() string {
	label := f.Resolution + " | " + f.Container
	if f.Note != "" {
		label += " | " + f.Note
	}
	return label
}

// MediaInfo is the result of format discovery.
type MediaInfo struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	ThumbnailURL string   `json:"thumbnail"`
	Formats      []Format `json:"formats"`
}

func (m *MediaInfo) FindFormat(formatID string) (Format, bool) {
	for _, f := range m.Formats {
		if f.FormatID == formatID {
			return f, true
		}
	}
	return Format{}, false
}

// Task is the registry view of one ad-hoc or queued job.
type Task struct {
	ID           string     `json:"id"`
	Status       TaskStatus `json:"status"`
	Progress     float64    `json:"progress"`
	URL          string     `json:"url"`
	Title        string     `json:"title,omitempty"`
	FormatID     string     `json:"format_id,omitempty"`
	AudioOnly    bool       `json:"audio_only"`
	Paused       bool       `json:"paused"`
	Cancelled    bool       `json:"cancelled"`
	Error        string     `json:"error,omitempty"`
	ArtifactPath string     `json:"final_file,omitempty"`
	Formats      []Format   `json:"formats,omitempty"`
	QueueID      uint       `json:"queue_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TaskSnapshot is what a progress stream emits on each tick.
type TaskSnapshot struct {
	ID           string     `json:"task_id"`
	Status       TaskStatus `json:"status"`
	Progress     float64    `json:"progress"`
	Paused       bool       `json:"paused"`
	Error        string     `json:"error,omitempty"`
	ArtifactPath string     `json:"final_file,omitempty"`
}

func (t Task) Snapshot() TaskSnapshot {
	return TaskSnapshot{
		ID:           t.ID,
		Status:       t.Status,
		Progress:     t.Progress,
		Paused:       t.Paused,
		Error:        t.Error,
		ArtifactPath: t.ArtifactPath,
	}
}

// QueueEntry is a durable queue row.
type QueueEntry struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	URL            string      `gorm:"size:2048;not null" json:"url"`
	Title          string      `gorm:"size:512" json:"title"`
	FormatID       string      `gorm:"size:128" json:"format_id"`
	FormatLabel    string      `gorm:"size:255" json:"format_label"`
	AudioOnly      bool        `json:"audio_only"`
	DownloadFolder string      `gorm:"size:1024" json:"download_folder"`
	Status         QueueStatus `gorm:"size:32;not null;default:pending;index" json:"status"`
	TaskID         string      `gorm:"size:64;index" json:"task_id"`
	ThumbnailPath  string      `gorm:"size:1024" json:"thumbnail_path"`
	CreatedAt      time.Time   `json:"created_at"`

	Progress float64 `gorm:"-" json:"progress"`
	Paused   bool    `gorm:"-" json:"paused"`
}

func (QueueEntry) TableName() string {
	return "download_queue"
}

// HistoryRecord is an append-only record of a terminated download.
type HistoryRecord struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	URL           string      `gorm:"size:2048" json:"url"`
	Title         string      `gorm:"size:512" json:"title"`
	FormatID      string      `gorm:"size:128" json:"format_id"`
	FormatLabel   string      `gorm:"size:255" json:"format_label"`
	AudioOnly     bool        `json:"audio_only"`
	Status        QueueStatus `gorm:"size:32;index" json:"status"`
	FilePath      string      `gorm:"size:1024" json:"file_path"`
	ThumbnailPath string      `gorm:"size:1024" json:"thumbnail_path"`
	Error         string      `gorm:"size:1024" json:"error,omitempty"`
	CreatedAt     time.Time   `gorm:"index" json:"created_at"`
}

func (HistoryRecord) TableName() string {
	return "download_history"
}

// UIState is one persisted key of the presentation layer's state blob.
type UIState struct {
	Key   string `gorm:"primaryKey;size:255"`
	Value string
}

func (UIState) TableName() string {
	return "ui_state"
}

// ActiveJob is a snapshot of an in-flight download.
type ActiveJob struct {
	TaskID       string    `json:"task_id"`
	QueueID      uint      `json:"queue_id,omitempty"`
	URL          string    `json:"url"`
	Title        string    `json:"title"`
	FormatID     string    `json:"format_id"`
	AudioOnly    bool      `json:"audio_only"`
	Progress     float64   `json:"progress"`
	Paused       bool      `json:"paused"`
	Cancelled    bool      `json:"cancelled"`
	ArtifactPath string    `json:"final_file,omitempty"`
	Error        string    `json:"error,omitempty"`
	StartedAt    time.Time `json:"started_at"`
}

// FetchRequest is handed to the fetch engine.
type FetchRequest struct {
	URL            string
	FormatID       string
	DownloadFolder string
	AudioOnly      bool
}

// DownloadRequest starts an ad-hoc download.
type DownloadRequest struct {
	URL            string `json:"url"`
	FormatID       string `json:"format_id"`
	AudioOnly      bool   `json:"audio_only"`
	DownloadFolder string `json:"download_folder"`
}

// QueueRequest adds an entry to the queue.
type QueueRequest struct {
	URL            string `json:"url"`
	Title          string `json:"title"`
	FormatID       string `json:"format_id"`
	FormatLabel    string `json:"format_label"`
	AudioOnly      bool   `json:"audio_only"`
	DownloadFolder string `json:"download_folder"`
}

type Request struct {
	URL string `json:"url"`
}

// Settings is the read-only configuration exposed to clients.
type Settings struct {
	DownloadFolder  string `json:"download_folder"`
	FFmpegAvailable bool   `json:"ffmpeg_available"`
	MaxConcurrent   int    `json:"max_concurrent"`
}

type HistoryDeleteRequest struct {
	IDs        []uint `json:"ids"`
	DeleteFile bool   `json:"delete_file"`
}

type HistoryDeleteResult struct {
	DeletedCount int             `json:"deleted_count"`
	Failed       map[uint]string `json:"failed,omitempty"`
}

type FrontendError struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Stack     string `json:"stack"`
	Timestamp string `json:"timestamp"`
}
