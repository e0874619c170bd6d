package repositories

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var (
	ErrImageNotFound   = errors.New("image not found")
	ErrInvalidImageRef = errors.New("invalid image reference")
)

// ImageName reduces a client-supplied image reference (usually a URL we
// handed out earlier) to the bare file name. Nothing but the last path
// element is trusted.
func ImageName(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrInvalidImageRef
	}
	p := ref
	if u, err := url.Parse(ref); err == nil && u.Path != "" {
		p = u.Path
	}
	p = strings.ReplaceAll(p, `\`, "/")
	name := path.Base(p)
	switch name {
	case "", ".", "..", "/":
		return "", ErrInvalidImageRef
	}
	return name, nil
}

// LocalImageStore keeps uploads on the local filesystem and serves them from
// <publicBaseURL>/uploads/.
type LocalImageStore struct {
	dir     string
	baseURL string
}

func NewLocalImageStore(dir, publicBaseURL string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalImageStore{
		dir:     dir,
		baseURL: strings.TrimRight(publicBaseURL, "/") + "/uploads/",
	}, nil
}

func (s *LocalImageStore) Dir() string { return s.dir }

func (s *LocalImageStore) Save(ctx context.Context, name, contentType string, body io.Reader, size int64) (string, error) {
	dstPath := filepath.Join(s.dir, filepath.Base(name))

	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, body); err != nil {
		dst.Close()
		os.Remove(dstPath)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(dstPath)
		return "", err
	}
	return s.baseURL + filepath.Base(name), nil
}

func (s *LocalImageStore) Delete(ctx context.Context, ref string) error {
	name, err := ImageName(ref)
	if err != nil {
		return err
	}
	filePath := filepath.Join(s.dir, name)

	if _, err := os.Stat(filePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrImageNotFound
		}
		return err
	}
	return os.Remove(filePath)
}
