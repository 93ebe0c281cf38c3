package imaging

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// PublicPrefix is the URL path under which stored photos are served.
const PublicPrefix = "/uploads/"

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// PhotoStore writes processed item photos to a directory served as static files.
type PhotoStore struct {
	dir string
	now func() time.Time
}

func NewPhotoStore(dir string) *PhotoStore {
	return &PhotoStore{dir: dir, now: time.Now}
}

// FileName builds the stored name of a photo for an item called itemName.
func FileName(itemName string, at time.Time) string {
	base := unsafeChars.ReplaceAllString(strings.TrimSpace(itemName), "_")
	if base == "" {
		base = "item"
	}
	return fmt.Sprintf("%s_%d.jpg", base, at.UnixMilli())
}

// Save processes the upload and returns its public path.
func (s *PhotoStore) Save(itemName string, r io.Reader) (string, error) {
	data, err := Process(r)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := FileName(itemName, s.now())
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write photo: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close photo: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("store photo: %w", err)
	}

	return PublicPrefix + name, nil
}

// Remove deletes the file behind a public path. Missing files are not an error.
func (s *PhotoStore) Remove(publicPath string) error {
	if !strings.HasPrefix(publicPath, PublicPrefix) {
		return fmt.Errorf("not an upload path: %q", publicPath)
	}
	name := path.Base(publicPath)
	if name == "." || name == "/" || name == ".." {
		return fmt.Errorf("not an upload path: %q", publicPath)
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
