package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/supchaser/media_queue/internal/app"
	"github.com/supchaser/media_queue/internal/app/models"
	"github.com/supchaser/media_queue/internal/utils/errs"
	"github.com/supchaser/media_queue/internal/utils/logger"
	"go.uber.org/zap"
)

const (
	outputTemplate          = "%(title)s.%(ext)s"
	audioCodec              = "mp3"
	audioQuality            = "192K"
	mergeContainer          = "mp4"
	defaultProgressInterval = 500 * time.Millisecond

	// artifactMarker tags the line yt-dlp prints once the final file is in place.
	artifactMarker   = "media_queue:artifact:"
	artifactTemplate = "after_move:" + artifactMarker + "%(filepath)s"
)

type Options struct {
	FFmpegPath       string // empty means look up ffmpeg in PATH
	AutoInstall      bool
	ProgressInterval time.Duration
}

// YTDLPEngine drives yt-dlp for format discovery and downloads.
type YTDLPEngine struct {
	ffmpegPath       string
	ffmpeg           bool
	progressInterval time.Duration
}

func CreateYTDLPEngine(ctx context.Context, opts Options) (*YTDLPEngine, error) {
	const funcName = "CreateYTDLPEngine"

	if opts.AutoInstall {
		if _, err := ytdlp.Install(ctx, nil); err != nil {
			return nil, fmt.Errorf("%s: install yt-dlp: %w", funcName, err)
		}
	}

	if opts.ProgressInterval <= 0 {
		opts.ProgressInterval = defaultProgressInterval
	}

	path, ok := DetectFFmpeg(opts.FFmpegPath)
	logger.Info("fetch engine ready",
		zap.String("function", funcName),
		zap.Bool("ffmpeg", ok),
		zap.String("ffmpeg_path", path),
	)

	return &YTDLPEngine{
		ffmpegPath:       path,
		ffmpeg:           ok,
		progressInterval: opts.ProgressInterval,
	}, nil
}

// DetectFFmpeg resolves the ffmpeg binary once at startup.
func DetectFFmpeg(path string) (string, bool) {
	if path == "" {
		path = "ffmpeg"
	}
	resolved, err := exec.LookPath(path)
	if err != nil {
		return "", false
	}
	return resolved, true
}

func (e *YTDLPEngine) FFmpegAvailable() bool {
	return e.ffmpeg
}

func (e *YTDLPEngine) FetchFormats(ctx context.Context, url string) (*models.MediaInfo, error) {
	const funcName = "YTDLPEngine.FetchFormats"

	res, err := ytdlp.New().
		SkipDownload().
		DumpSingleJSON().
		NoPlaylist().
		Run(ctx, url)
	if err != nil {
		logger.Warn("yt-dlp format discovery failed",
			zap.String("function", funcName),
			zap.String("url", url),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%s: %w", funcName, err)
	}

	info, err := parseMediaInfo([]byte(res.Stdout))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", funcName, err)
	}

	logger.Debug("formats discovered",
		zap.String("function", funcName),
		zap.String("url", url),
		zap.Int("formats", len(info.Formats)),
	)
	return info, nil
}

// FetchMedia downloads req into its folder. The progress callback doubles as
// the pause point: while paused it blocks, which stalls yt-dlp on its output
// pipe until the job is resumed or cancelled.
func (e *YTDLPEngine) FetchMedia(ctx context.Context, req models.FetchRequest, ctl app.FetchControl, hooks app.FetchHooks) error {
	const funcName = "YTDLPEngine.FetchMedia"

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-ctl.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	sel := e.selection(ctx, req)

	cmd := sel.apply(ytdlp.New().
		NoPlaylist().
		Output(filepath.Join(req.DownloadFolder, outputTemplate)).
		Print(artifactTemplate))
	if e.ffmpegPath != "" {
		cmd = cmd.FFmpegLocation(e.ffmpegPath)
	}

	cmd.ProgressFunc(e.progressInterval, func(update ytdlp.ProgressUpdate) {
		if hooks.OnProgress != nil && update.TotalBytes > 0 {
			hooks.OnProgress(percent(update.DownloadedBytes, update.TotalBytes))
		}
		if ctl.Paused() {
			_ = ctl.WaitWhilePaused(ctx)
		}
	})

	logger.Info("starting yt-dlp",
		zap.String("function", funcName),
		zap.String("url", req.URL),
		zap.String("format", sel.format),
		zap.Bool("extract_audio", sel.extractAudio),
		zap.String("merge", sel.merge),
	)

	res, err := cmd.Run(ctx, req.URL)
	if ctl.Cancelled() {
		return fmt.Errorf("%s: %w", funcName, errs.ErrCancelled)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", funcName, err)
	}

	file := ""
	if res != nil {
		file = artifactPath(res.OutputLogs)
	}
	if file == "" {
		logger.Warn("yt-dlp did not report an output file",
			zap.String("function", funcName),
			zap.String("url", req.URL),
		)
	}

	if hooks.OnProgress != nil {
		hooks.OnProgress(100)
	}
	if hooks.OnArtifact != nil && file != "" {
		hooks.OnArtifact(file)
	}
	return nil
}

// artifactPath returns the last file path yt-dlp reported after moving the
// finished file into place.
func artifactPath(logs []*ytdlp.ResultLog) string {
	file := ""
	for _, l := range logs {
		if l == nil || l.Pipe != "stdout" {
			continue
		}
		line := strings.TrimRight(l.Line, "\r\n")
		if path, ok := strings.CutPrefix(line, artifactMarker); ok && path != "" {
			file = path
		}
	}
	return file
}

// selection looks up the requested rendition only when a merge could apply.
func (e *YTDLPEngine) selection(ctx context.Context, req models.FetchRequest) selection {
	if req.AudioOnly || !e.ffmpeg {
		return selectFormat(req, nil, e.ffmpeg)
	}

	info, err := e.FetchFormats(ctx, req.URL)
	if err != nil {
		logger.Warn("format lookup failed, downloading without merge",
			zap.String("function", "YTDLPEngine.selection"),
			zap.String("url", req.URL),
			zap.Error(err),
		)
		return selectFormat(req, nil, e.ffmpeg)
	}
	return selectFormat(req, info, e.ffmpeg)
}

type selection struct {
	format       string
	extractAudio bool
	merge        string
}

func selectFormat(req models.FetchRequest, info *models.MediaInfo, ffmpeg bool) selection {
	if req.AudioOnly {
		return selection{format: "bestaudio", extractAudio: true}
	}

	sel := selection{format: req.FormatID}
	if !ffmpeg || info == nil {
		return sel
	}
	if f, ok := info.FindFormat(req.FormatID); ok && f.VideoOnly() {
		sel.format = req.FormatID + "+bestaudio"
		sel.merge = mergeContainer
	}
	return sel
}

func (s selection) apply(cmd *ytdlp.Command) *ytdlp.Command {
	cmd = cmd.Format(s.format)
	if s.extractAudio {
		cmd = cmd.ExtractAudio().AudioFormat(audioCodec).AudioQuality(audioQuality)
	}
	if s.merge != "" {
		cmd = cmd.MergeOutputFormat(s.merge)
	}
	return cmd
}

func percent(downloaded, total int) float64 {
	if total <= 0 {
		return 0
	}
	p := float64(downloaded) / float64(total) * 100
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

type rawFormat struct {
	FormatID   string `json:"format_id"`
	VideoCodec string `json:"vcodec"`
	AudioCodec string `json:"acodec"`
	Resolution string `json:"resolution"`
	Container  string `json:"ext"`
	Note       string `json:"format_note"`
	Format     string `json:"format"`
}

type rawInfo struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Thumbnail string      `json:"thumbnail"`
	Formats   []rawFormat `json:"formats"`
}

// parseMediaInfo reads yt-dlp's single-JSON dump, filling the defaults yt-dlp
// omits for audio-only and container-less renditions.
func parseMediaInfo(data []byte) (*models.MediaInfo, error) {
	var raw rawInfo
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse yt-dlp output: %w", err)
	}

	info := &models.MediaInfo{
		ID:           raw.ID,
		Title:        raw.Title,
		ThumbnailURL: raw.Thumbnail,
		Formats:      make([]models.Format, 0, len(raw.Formats)),
	}
	if info.Title == "" {
		info.Title = "video"
	}

	for _, f := range raw.Formats {
		if f.FormatID == "" {
			continue
		}
		info.Formats = append(info.Formats, models.Format{
			FormatID:   f.FormatID,
			VideoCodec: orDefault(f.VideoCodec, "none"),
			AudioCodec: orDefault(f.AudioCodec, "none"),
			Resolution: orDefault(f.Resolution, "audio"),
			Container:  orDefault(f.Container, "unknown"),
			Note:       f.Note,
			Format:     f.Format,
		})
	}
	return info, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
