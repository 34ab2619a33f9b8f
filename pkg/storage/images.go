package storage

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/apperr"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

const (
	MaxImages   = 5
	maxWidth    = 1200
	jpegQuality = 82
)

var allowedExt = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

// LocalImageStore writes product photos under Dir and serves them from Prefix.
type LocalImageStore struct {
	Dir    string
	Prefix string // public URL prefix, e.g. /uploads
}

func NewLocalImageStore(dir, prefix string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalImageStore{Dir: dir, Prefix: strings.TrimRight(prefix, "/")}, nil
}

// Save decodes a png/jpeg, shrinks it to maxWidth and stores it as jpeg.
// Returns the public URL.
func (s *LocalImageStore) Save(r io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExt[ext] {
		return "", apperr.Validation("Unsupported image format. Only PNG, JPG, JPEG are allowed.")
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return "", apperr.Wrap(apperr.KindValidation, "Failed to decode image.", err)
	}
	if img.Bounds().Dx() > maxWidth {
		img = resize.Resize(maxWidth, 0, img, resize.Lanczos3)
	}

	name := uuid.New().String() + ".jpg"
	out, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer out.Close()

	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}
	return s.Prefix + "/" + name, nil
}

// Delete removes a file previously returned by Save. Unknown URLs are ignored.
func (s *LocalImageStore) Delete(url string) error {
	if !strings.HasPrefix(url, s.Prefix+"/") {
		return nil
	}
	name := path.Base(url)
	err := os.Remove(filepath.Join(s.Dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
