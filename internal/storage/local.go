package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotAnImage  = errors.New("file is not a supported image type")
	ErrTooLarge    = errors.New("file exceeds the upload size limit")
	ErrInvalidPath = errors.New("invalid file path")
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// LocalStore keeps answer-sheet photos on local disk under
// <root>/<studentID>/<examID>/<random>.<ext>. Paths handed back are relative
// to the root so documents stay portable across hosts.
type LocalStore struct {
	root     string
	maxBytes int64
}

func NewLocalStore(root string, maxMB int64) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}
	return &LocalStore{root: root, maxBytes: maxMB << 20}, nil
}

// Save validates and writes one uploaded file, returning its relative path.
func (s *LocalStore) Save(studentID, examID string, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExtensions[ext] {
		return "", ErrNotAnImage
	}
	if file.Size > s.maxBytes {
		return "", ErrTooLarge
	}

	dir := filepath.Join(s.root, studentID, examID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := primitive.NewObjectID().Hex() + ext
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return filepath.ToSlash(filepath.Join(studentID, examID, name)), nil
}

// Resolve maps a stored relative path to an absolute one. Only clean relative
// slash paths are accepted: anything with a ".." segment or a leading slash is
// rejected before it can alias another directory under the root.
func (s *LocalStore) Resolve(rel string) (string, error) {
	if rel == "" || strings.HasPrefix(rel, "/") || path.Clean(rel) != rel {
		return "", ErrInvalidPath
	}

	abs := filepath.Join(s.root, filepath.FromSlash(rel))
	rootAbs, err := filepath.Abs(s.root)
	if err != nil {
		return "", err
	}
	fileAbs, err := filepath.Abs(abs)
	if err != nil {
		return "", err
	}
	if fileAbs != rootAbs && !strings.HasPrefix(fileAbs, rootAbs+string(filepath.Separator)) {
		return "", ErrInvalidPath
	}
	return fileAbs, nil
}
