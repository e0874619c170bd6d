package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rohits-web03/travelstory/internal/repositories"
	"github.com/rohits-web03/travelstory/internal/utils"
)

// sniffLen is how much of an upload is read to detect its real type.
const sniffLen = 3072

// Upload is a single file taken from a multipart request.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
	Size        int64
}

// ImageService stores and removes story photos.
type ImageService struct {
	store ImageStore
	now   func() time.Time
}

func NewImageService(store ImageStore) *ImageService {
	return &ImageService{store: store, now: time.Now}
}

// Upload checks that the file really is an image, gives it a fresh name and
// returns its public URL.
func (s *ImageService) Upload(ctx context.Context, up Upload) (string, error) {
	if up.Body == nil {
		return "", invalid("No image uploaded")
	}
	if !strings.HasPrefix(strings.ToLower(up.ContentType), "image/") {
		return "", ErrInvalidImage
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(up.Body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]
	if n == 0 {
		return "", ErrInvalidImage
	}

	detected := mimetype.Detect(head)
	if !strings.HasPrefix(detected.String(), "image/") || detected.Is("image/svg+xml") {
		return "", ErrInvalidImage
	}

	name, err := s.fileName(up.Filename, detected)
	if err != nil {
		return "", err
	}

	body := io.MultiReader(bytes.NewReader(head), up.Body)
	url, err := s.store.Save(ctx, name, detected.String(), body, up.Size)
	if err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}
	return url, nil
}

// Delete removes a previously uploaded image by its URL.
func (s *ImageService) Delete(ctx context.Context, ref string) error {
	if strings.TrimSpace(ref) == "" {
		return invalid("imageUrl parameter is required")
	}
	err := s.store.Delete(ctx, ref)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrInvalidImageRef):
		return invalid("Invalid imageUrl")
	case errors.Is(err, repositories.ErrImageNotFound):
		return ErrImageNotFound
	default:
		return fmt.Errorf("delete image: %w", err)
	}
}

// fileName keeps the client's extension only when it names the sniffed
// type, so the static file server never serves an image as something else.
func (s *ImageService) fileName(original string, detected *mimetype.MIME) (string, error) {
	ext := strings.ToLower(filepath.Ext(filepath.Base(original)))
	if !validExtension(ext) || !extensionMatches(ext, detected) {
		ext = detected.Extension()
	}
	return utils.UniqueFileName(s.now(), ext)
}

func extensionMatches(ext string, detected *mimetype.MIME) bool {
	if ext == detected.Extension() {
		return true
	}
	byExt := mime.TypeByExtension(ext)
	return byExt != "" && detected.Is(byExt)
}

func validExtension(ext string) bool {
	if len(ext) < 2 || len(ext) > 8 || ext[0] != '.' {
		return false
	}
	for _, c := range ext[1:] {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
