package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/supchaser/media_queue/internal/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const jpegQuality = 85

type ThumbnailOptions struct {
	Dir        string
	MaxWidth   int
	MaxHeight  int
	Timeout    time.Duration
	RetryCount int
}

// ThumbnailStore downloads preview images and keeps a downscaled JPEG copy
// under Dir.
type ThumbnailStore struct {
	dir       string
	maxWidth  int
	maxHeight int
	client    *resty.Client
}

func CreateThumbnailStore(opts ThumbnailOptions) *ThumbnailStore {
	client := resty.New().
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.RetryCount).
		SetHeader("User-Agent", "media-queue/1.0")

	return &ThumbnailStore{
		dir:       opts.Dir,
		maxWidth:  opts.MaxWidth,
		maxHeight: opts.MaxHeight,
		client:    client,
	}
}

// Fetch saves the image at url as <name>.jpg and returns its path.
func (s *ThumbnailStore) Fetch(ctx context.Context, url, name string) (string, error) {
	const funcName = "ThumbnailStore.Fetch"

	resp, err := s.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("%s: request failed: %w", funcName, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%s: unexpected status %d", funcName, resp.StatusCode())
	}

	img, format, err := image.Decode(bytes.NewReader(resp.Body()))
	if err != nil {
		return "", fmt.Errorf("%s: decode: %w", funcName, err)
	}

	img = downscale(img, s.maxWidth, s.maxHeight)

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("%s: %w", funcName, err)
	}
	path := filepath.Join(s.dir, name+".jpg")

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("%s: encode: %w", funcName, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("%s: %w", funcName, err)
	}

	logger.Debug("thumbnail saved",
		zap.String("function", funcName),
		zap.String("source_format", format),
		zap.String("path", path),
	)
	return path, nil
}

// downscale fits img into maxWidth x maxHeight keeping the aspect ratio.
// Images already within bounds, or a non-positive bound, are returned as is.
func downscale(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if maxWidth <= 0 || maxHeight <= 0 || width == 0 || height == 0 {
		return img
	}
	if width <= maxWidth && height <= maxHeight {
		return img
	}

	if maxWidth*height > maxHeight*width {
		width = maxHeight * width / height
		height = maxHeight
	} else {
		height = maxWidth * height / width
		width = maxWidth
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
