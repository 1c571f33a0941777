package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Queue     QueueConfig     `mapstructure:"queue"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Stream    StreamConfig    `mapstructure:"stream"`
	Worker    WorkerConfig    `mapstructure:"worker"`
	Engine    EngineConfig    `mapstructure:"engine"`
	Thumbnail ThumbnailConfig `mapstructure:"thumbnail"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Mode     string `mapstructure:"mode"`   // debug / info / warn / error
	Format   string `mapstructure:"format"` // json / console
	Output   string `mapstructure:"output"` // stdout / file
	FilePath string `mapstructure:"file_path"`
}

type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"` // sqlite / postgres
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type QueueConfig struct {
	MaxConcurrent int `mapstructure:"max_concurrent"`
}

type StorageConfig struct {
	DownloadDir  string `mapstructure:"download_dir"`
	ThumbnailDir string `mapstructure:"thumbnail_dir"`
}

type StreamConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

type WorkerConfig struct {
	MaxDuration     time.Duration `mapstructure:"max_duration"` // 0 disables the watchdog
	FinalizeRetries int           `mapstructure:"finalize_retries"`
}

type EngineConfig struct {
	AutoInstall bool   `mapstructure:"auto_install"`
	FFmpegPath  string `mapstructure:"ffmpeg_path"`
}

type ThumbnailConfig struct {
	MaxWidth   int           `mapstructure:"max_width"`
	MaxHeight  int           `mapstructure:"max_height"`
	Timeout    time.Duration `mapstructure:"timeout"`
	RetryCount int           `mapstructure:"retry_count"`
}

var envBindings = map[string]string{
	"server.port":             "SERVER_PORT",
	"server.shutdown_timeout": "SHUTDOWN_TIMEOUT",
	"log.mode":                "LOG_MODE",
	"log.format":              "LOG_FORMAT",
	"database.driver":         "DATABASE_DRIVER",
	"database.dsn":            "DATABASE_URL",
	"queue.max_concurrent":    "MAX_CONCURRENT_DOWNLOADS",
	"storage.download_dir":    "DOWNLOAD_DIR",
	"storage.thumbnail_dir":   "THUMBNAIL_DIR",
	"stream.interval":         "STREAM_INTERVAL",
	"worker.max_duration":     "MAX_DOWNLOAD_DURATION",
	"engine.auto_install":     "YTDLP_AUTO_INSTALL",
	"engine.ffmpeg_path":      "FFMPEG_PATH",
	"thumbnail.max_width":     "THUMBNAIL_MAX_WIDTH",
	"thumbnail.max_height":    "THUMBNAIL_MAX_HEIGHT",
	"thumbnail.retry_count":   "THUMBNAIL_RETRY_COUNT",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.shutdown_timeout", 30*time.Second)
	v.SetDefault("log.mode", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.file_path", "app.log")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "downloads.db")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("queue.max_concurrent", 3)
	v.SetDefault("stream.interval", 500*time.Millisecond)
	v.SetDefault("worker.max_duration", time.Duration(0))
	v.SetDefault("worker.finalize_retries", 3)
	v.SetDefault("engine.auto_install", false)
	v.SetDefault("thumbnail.max_width", 480)
	v.SetDefault("thumbnail.max_height", 360)
	v.SetDefault("thumbnail.timeout", 15*time.Second)
	v.SetDefault("thumbnail.retry_count", 2)
}

// LoadConfig reads envPath (a dotenv file, optional), an optional config.yaml
// from the working directory or ./configs, and the environment, in increasing
// order of precedence.
func LoadConfig(envPath string) (*Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load configuration file: %w", err)
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Storage.DownloadDir == "" {
		cfg.Storage.DownloadDir = DefaultDownloadDir()
	}
	if cfg.Storage.ThumbnailDir == "" {
		cfg.Storage.ThumbnailDir = "thumbnails"
		if cfg.Database.Driver == "sqlite" {
			cfg.Storage.ThumbnailDir = filepath.Join(filepath.Dir(cfg.Database.DSN), "thumbnails")
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	var problems []string

	if c.Queue.MaxConcurrent < 1 {
		problems = append(problems, "queue.max_concurrent must be at least 1")
	}
	if c.Database.Driver != "sqlite" && c.Database.Driver != "postgres" {
		problems = append(problems, fmt.Sprintf("unsupported database driver %q", c.Database.Driver))
	}
	if c.Database.DSN == "" {
		problems = append(problems, "database.dsn is empty")
	}
	if c.Stream.Interval <= 0 {
		problems = append(problems, "stream.interval must be positive")
	}
	if c.Worker.MaxDuration < 0 {
		problems = append(problems, "worker.max_duration must not be negative")
	}
	if c.Server.Port == "" {
		problems = append(problems, "server.port is empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// DefaultDownloadDir picks the platform download folder.
func DefaultDownloadDir() string {
	if runtime.GOOS == "android" {
		return "/storage/emulated/0/Download"
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
		return "."
	}

	switch runtime.GOOS {
	case "windows", "linux", "darwin":
		return filepath.Join(home, "Downloads")
	default:
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
		return home
	}
}

// EnsureDirs creates the download and thumbnail folders.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.Storage.DownloadDir, c.Storage.ThumbnailDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}
