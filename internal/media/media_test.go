package media

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	id3v2 "github.com/bogem/id3v2/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supchaser/media_queue/internal/utils/logger"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestThumbnailStore_Fetch(t *testing.T) {
	body := pngBytes(t, 640, 360)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/thumb.png":
			w.Header().Set("Content-Type", "image/png")
			w.Write(body)
		case "/broken":
			w.Write([]byte("not an image"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "thumbnails")
	store := CreateThumbnailStore(ThumbnailOptions{
		Dir:       dir,
		MaxWidth:  320,
		MaxHeight: 240,
		Timeout:   time.Second,
	})

	t.Run("Success", func(t *testing.T) {
		path, err := store.Fetch(context.Background(), srv.URL+"/thumb.png", "queue_1")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "queue_1.jpg"), path)

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()

		img, err := jpeg.Decode(f)
		require.NoError(t, err)
		assert.Equal(t, 320, img.Bounds().Dx())
		assert.Equal(t, 180, img.Bounds().Dy())
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := store.Fetch(context.Background(), srv.URL+"/missing.png", "queue_2")
		assert.ErrorContains(t, err, "unexpected status 404")
	})

	t.Run("NotAnImage", func(t *testing.T) {
		_, err := store.Fetch(context.Background(), srv.URL+"/broken", "queue_3")
		assert.ErrorContains(t, err, "decode")
		_, statErr := os.Stat(filepath.Join(dir, "queue_3.jpg"))
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestDownscale(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		maxW, maxH int
		wantW      int
		wantH      int
	}{
		{name: "WithinBounds", w: 100, h: 50, maxW: 320, maxH: 240, wantW: 100, wantH: 50},
		{name: "WidthLimited", w: 1280, h: 720, maxW: 480, maxH: 360, wantW: 480, wantH: 270},
		{name: "HeightLimited", w: 300, h: 900, maxW: 480, maxH: 360, wantW: 120, wantH: 360},
		{name: "NoBounds", w: 1280, h: 720, maxW: 0, maxH: 0, wantW: 1280, wantH: 720},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := downscale(image.NewRGBA(image.Rect(0, 0, tt.w, tt.h)), tt.maxW, tt.maxH)
			assert.Equal(t, tt.wantW, img.Bounds().Dx())
			assert.Equal(t, tt.wantH, img.Bounds().Dy())
		})
	}
}

func TestID3Tagger_TagTitle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mp3")
	require.NoError(t, os.WriteFile(path, []byte("audio frames"), 0644))

	tagger := CreateID3Tagger()
	require.NoError(t, tagger.TagTitle(path, "Первая песня"))
	require.NoError(t, tagger.TagTitle(path, "Second take"))

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	require.NoError(t, err)
	defer tag.Close()
	assert.Equal(t, "Second take", tag.Title())

	t.Run("MissingFile", func(t *testing.T) {
		err := tagger.TagTitle(filepath.Join(t.TempDir(), "nope.mp3"), "x")
		assert.Error(t, err)
	})
}
