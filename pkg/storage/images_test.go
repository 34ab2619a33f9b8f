package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestSaveResizesWideImages(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalImageStore(dir, "/uploads/")
	require.NoError(t, err)

	url, err := s.Save(bytes.NewReader(pngBytes(t, 2400, 100)), "jollof.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	f, err := os.Open(filepath.Join(dir, filepath.Base(url)))
	require.NoError(t, err)
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, maxWidth, cfg.Width)

	require.NoError(t, s.Delete(url))
	_, err = os.Stat(filepath.Join(dir, filepath.Base(url)))
	assert.True(t, os.IsNotExist(err))
}

func TestSaveRejectsBadInput(t *testing.T) {
	s, err := NewLocalImageStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, err = s.Save(bytes.NewReader([]byte("gif")), "a.gif")
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	_, err = s.Save(bytes.NewReader([]byte("not an image")), "a.png")
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}
