// Package upload stores image files received in multipart requests and hands
// back the public path under which they are served.
package upload

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// PublicPrefix is the URL prefix under which stored files are served.
const PublicPrefix = "/uploads/"

const sniffLen = 512

// imageExtensions lists, per sniffed content type, the file extensions a stored
// image may carry. The first entry is used when the client's name does not match.
var imageExtensions = map[string][]string{
	"image/png":    {".png"},
	"image/jpeg":   {".jpg", ".jpeg", ".jpe", ".jfif"},
	"image/gif":    {".gif"},
	"image/webp":   {".webp"},
	"image/bmp":    {".bmp"},
	"image/x-icon": {".ico"},
	"image/avif":   {".avif"},
}

var (
	// ErrNotImage is returned when the uploaded content is not an image.
	ErrNotImage = errors.New("upload: file is not an image")
	// ErrTooLarge is returned when the upload exceeds the configured limit.
	ErrTooLarge = errors.New("upload: file is too large")
)

// Store writes uploads into a single directory.
type Store struct {
	dir      string
	maxBytes int64
	newName  func() string
}

// New creates the upload directory if needed.
func New(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload: create directory: %w", err)
	}
	return &Store{dir: dir, maxBytes: maxBytes, newName: uuid.NewString}, nil
}

// Dir is the directory files are written to.
func (s *Store) Dir() string {
	return s.dir
}

// MaxBytes is the per-file size limit.
func (s *Store) MaxBytes() int64 {
	return s.maxBytes
}

// FromRequest saves the file sent in the given multipart field. The boolean is
// false when the request carries no such file.
func (s *Store) FromRequest(r *http.Request, field string) (string, bool, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	defer file.Close()

	publicPath, err := s.Save(file, header)
	if err != nil {
		return "", false, err
	}
	return publicPath, true, nil
}

// Save writes an image under a fresh unique name. The stored extension always
// matches the sniffed image type, so the file is served as that image.
func (s *Store) Save(file io.Reader, header *multipart.FileHeader) (string, error) {
	if header.Size > s.maxBytes {
		return "", ErrTooLarge
	}

	reader := bufio.NewReaderSize(file, sniffLen)
	head, err := reader.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return "", err
	}
	ext, ok := extension(header.Filename, http.DetectContentType(head))
	if !ok {
		return "", ErrNotImage
	}

	name := s.newName() + ext
	dst, err := os.OpenFile(filepath.Join(s.dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("upload: create file: %w", err)
	}

	written, err := io.Copy(dst, io.LimitReader(reader, s.maxBytes+1))
	closeErr := dst.Close()
	if err == nil && written > s.maxBytes {
		err = ErrTooLarge
	}
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(dst.Name())
		return "", err
	}

	return path.Join(PublicPrefix, name), nil
}

// Remove deletes a file previously returned by Save. Paths outside the
// upload directory are ignored.
func (s *Store) Remove(publicPath string) error {
	if !strings.HasPrefix(publicPath, PublicPrefix) {
		return nil
	}
	name := path.Base(publicPath)
	if name == "." || name == "/" || name == ".." {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// extension keeps the client's extension when it names the sniffed image type
// and falls back to that type's canonical extension otherwise.
func extension(filename, contentType string) (string, bool) {
	exts, ok := imageExtensions[contentType]
	if !ok {
		return "", false
	}
	clientExt := strings.ToLower(filepath.Ext(filename))
	for _, ext := range exts {
		if ext == clientExt {
			return ext, true
		}
	}
	return exts[0], true
}
