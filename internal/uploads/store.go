package uploads

import (
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	pkgerrors "github.com/jak-krittin/minishop-backend/pkg/errors"
)

var imageMimeTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Store writes uploaded product images to a local directory and hands back
// the stored filename clients use to build the public URL.
type Store struct {
	dir      string
	maxBytes int64
}

func NewStore(dir string, maxBytes int64) (*Store, error) {
	if dir == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "uploads directory is not configured")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create uploads directory")
	}
	return &Store{dir: dir, maxBytes: maxBytes}, nil
}

// Dir reports the directory files are written to.
func (s *Store) Dir() string {
	return s.dir
}

// Save persists the uploaded file under a generated name and returns the
// stored filename. The caller decides how the name maps to a URL.
func (s *Store) Save(header *multipart.FileHeader) (string, error) {
	if header == nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "image file is required")
	}
	if s.maxBytes > 0 && header.Size > s.maxBytes {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "image exceeds the maximum upload size").
			WithDetails(map[string]any{"max_bytes": s.maxBytes})
	}

	ext, err := imageExtension(header)
	if err != nil {
		return "", err
	}

	src, err := header.Open()
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "open uploaded file")
	}
	defer src.Close()

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create image file")
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write image file")
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "flush image file")
	}
	return name, nil
}

func imageExtension(header *multipart.FileHeader) (string, error) {
	contentType := header.Header.Get("Content-Type")
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mediaType
	}
	if ext, ok := imageMimeTypes[strings.ToLower(contentType)]; ok {
		return ext, nil
	}

	// Some clients send application/octet-stream; fall back to the filename.
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".png":
		return ".png", nil
	case ".jpg", ".jpeg":
		return ".jpg", nil
	case ".webp":
		return ".webp", nil
	case ".gif":
		return ".gif", nil
	}

	return "", pkgerrors.New(pkgerrors.CodeValidation, "unsupported image type").
		WithDetails(map[string]any{"allowed": allowedImageTypes()})
}

func allowedImageTypes() []string {
	list := make([]string, 0, len(imageMimeTypes))
	for value := range imageMimeTypes {
		list = append(list, value)
	}
	sort.Strings(list)
	return list
}
