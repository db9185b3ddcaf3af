package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"menu-cms-svc/pkg/logger"
)

// PublicPrefix is the URL prefix stored on entities for uploaded files
const PublicPrefix = "/static/uploads/"

// maxCollisionAttempts bounds the _1, _2, ... suffix search
const maxCollisionAttempts = 10000

var allowedExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"webp": {},
	"gif":  {},
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// Store persists uploaded images in a single flat directory
type Store struct {
	dir    string
	logger *logger.Logger
}

// NewStore creates a store rooted at dir; the directory is created on first save
func NewStore(dir string, logger *logger.Logger) *Store {
	return &Store{dir: dir, logger: logger}
}

// Dir returns the directory uploads are written to
func (s *Store) Dir() string {
	return s.dir
}

// AllowedFile reports whether the extension after the final dot is an accepted image type
func AllowedFile(filename string) bool {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return false
	}
	_, ok := allowedExtensions[strings.ToLower(filename[i+1:])]
	return ok
}

// SecureFilename folds a client supplied name into a flat ASCII file name.
// Path separators become underscores, accents are stripped and anything
// outside [A-Za-z0-9_.-] is dropped.
func SecureFilename(filename string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(filename) {
		if r < 0x80 {
			b.WriteRune(r)
		}
	}
	name := b.String()
	name = strings.NewReplacer("/", " ", "\\", " ").Replace(name)
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}

// SaveMultipart stores an uploaded form file. An empty path with a nil error
// means no image was accepted.
func (s *Store) SaveMultipart(fh *multipart.FileHeader) (string, error) {
	if fh == nil || fh.Filename == "" || fh.Size == 0 {
		return "", nil
	}
	if !AllowedFile(fh.Filename) {
		s.logger.WithField("filename", fh.Filename).Warn("Rejected upload with unsupported extension")
		return "", nil
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	return s.Save(fh.Filename, src)
}

// Save writes r under a sanitized, collision free version of filename and
// returns its public path. Rejected names yield "" and no error.
func (s *Store) Save(filename string, r io.Reader) (string, error) {
	if filename == "" || !AllowedFile(filename) {
		return "", nil
	}

	base, ext := splitName(filename)
	if base == "" {
		base = uuid.NewString()[:8]
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	f, name, err := s.create(base, ext)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(filepath.Join(s.dir, name))
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(filepath.Join(s.dir, name))
		return "", fmt.Errorf("close upload: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"original": filename,
		"stored":   name,
	}).Info("Image uploaded")

	return PublicPrefix + name, nil
}

// create opens base.ext, or base_1.ext, base_2.ext, ... whichever is free first.
// O_EXCL makes the claim atomic against concurrent uploads of the same name.
func (s *Store) create(base, ext string) (*os.File, string, error) {
	for i := 0; i < maxCollisionAttempts; i++ {
		name := base + ext
		if i > 0 {
			name = fmt.Sprintf("%s_%d%s", base, i, ext)
		}
		f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, name, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, "", fmt.Errorf("create upload: %w", err)
		}
	}
	return nil, "", fmt.Errorf("create upload: no free name for %s%s", base, ext)
}

// splitName sanitizes the stem and keeps the (already allow-listed) extension
func splitName(filename string) (string, string) {
	i := strings.LastIndex(filename, ".")
	return SecureFilename(filename[:i]), "." + SecureFilename(filename[i+1:])
}

// FileName extracts the stored file name from a public path, "" if the path
// does not point into the upload directory
func FileName(publicPath string) string {
	if !strings.HasPrefix(publicPath, PublicPrefix) {
		return ""
	}
	name := strings.TrimPrefix(publicPath, PublicPrefix)
	if name == "" || strings.ContainsAny(name, `/\`) {
		return ""
	}
	return name
}
