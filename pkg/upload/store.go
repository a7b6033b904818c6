package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const urlPrefix = "/uploads/"

// Store keeps uploaded slip files on local disk and hands out URL-path
// references. A staged file must be removed again when the admission that it
// belongs to fails.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save writes the file and returns its reference, e.g. "/uploads/slip_....png".
func (s *Store) Save(src io.Reader, originalName string) (string, error) {
	ext := filepath.Ext(originalName)
	short := strings.SplitN(uuid.NewString(), "-", 2)[0]
	name := fmt.Sprintf("slip_%d_%s%s", time.Now().UnixMilli(), short, ext)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create slip file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("write slip file: %w", err)
	}
	return urlPrefix + name, nil
}

// Remove deletes a staged file by its reference. Unknown references are
// rejected so a crafted ref cannot reach outside the upload dir.
func (s *Store) Remove(ref string) error {
	name := strings.TrimPrefix(ref, urlPrefix)
	if name == ref || name != filepath.Base(name) {
		return fmt.Errorf("invalid slip reference %q", ref)
	}
	return os.Remove(filepath.Join(s.dir, name))
}
