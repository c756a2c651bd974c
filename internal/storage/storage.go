package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"mime"
	"net"
	"path"
	"strings"
	"time"

	"github.com/flarewebs/flarewebs-server/internal/model"
)

const (
	thumbPrefix        = "thumb_"
	defaultContentType = "application/octet-stream"
	maxNameAttempts    = 1000
)

// Backend is the object store client. Exists must report a missing object
// as (false, nil).
type Backend interface {
	BucketExists(ctx context.Context) (bool, error)
	MakeBucket(ctx context.Context) error
	SetBucketPolicy(ctx context.Context, policy string) error
	Exists(ctx context.Context, key string) (bool, error)
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// Config describes the bucket the adapter works on.
type Config struct {
	// Endpoint is the externally reachable base URL of the object store, with scheme.
	Endpoint        string
	Bucket          string
	PublicLocations []string
	URLExpiry       time.Duration
}

var _ model.ObjectStorage = (*Adapter)(nil)

// Adapter implements model.ObjectStorage on top of a Backend.
type Adapter struct {
	backend     Backend
	cfg         Config
	thumbnailer Thumbnailer
	suffix      func() string
}

func NewAdapter(backend Backend, cfg Config, thumbnailer Thumbnailer) *Adapter {
	if cfg.URLExpiry <= 0 {
		cfg.URLExpiry = 7 * 24 * time.Hour
	}
	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")

	return &Adapter{
		backend:     backend,
		cfg:         cfg,
		thumbnailer: thumbnailer,
		suffix:      randomSuffix,
	}
}

func randomSuffix() string {
	return fmt.Sprintf("%05d", rand.IntN(100000))
}

// Exists reports whether an object is stored under path.
func (a *Adapter) Exists(ctx context.Context, p string) (bool, error) {
	ok, err := a.backend.Exists(ctx, p)
	if err != nil {
		return false, fmt.Errorf("could not stat object %q in bucket %q: %w", p, a.cfg.Bucket, fault(err))
	}
	return ok, nil
}

// IsPublic reports whether the first path segment is a public location.
func (a *Adapter) IsPublic(p string) bool {
	folder, _, _ := strings.Cut(strings.TrimPrefix(p, "/"), "/")
	for _, loc := range a.cfg.PublicLocations {
		if folder == loc {
			return true
		}
	}
	return false
}

// AllocateName returns dir/stem+ext, or the same name with a random 5 digit
// suffix after the stem if that one is taken. The check is not atomic with
// the upload that follows.
func (a *Adapter) AllocateName(ctx context.Context, stem, ext, dir string) (string, error) {
	name := joinName(dir, stem+ext)
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		taken, err := a.Exists(ctx, name)
		if err != nil {
			return "", err
		}
		if !taken {
			return name, nil
		}
		name = joinName(dir, stem+a.suffix()+ext)
	}

	return "", fmt.Errorf("%w: %s", model.ErrNameUnavailable, joinName(dir, stem+ext))
}

// URL returns a direct link for public objects and a presigned one otherwise.
func (a *Adapter) URL(ctx context.Context, p string) (string, error) {
	if a.IsPublic(p) {
		return fmt.Sprintf("%s/%s/%s", a.cfg.Endpoint, a.cfg.Bucket, p), nil
	}

	u, err := a.backend.PresignGet(ctx, p, a.cfg.URLExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to presign object %q: %w", p, fault(err))
	}
	return u, nil
}

// Save uploads file under a free name derived from p and returns that name.
func (a *Adapter) Save(ctx context.Context, p string, file model.Upload, isThumb bool) (string, error) {
	dir, stem, ext := SplitPath(p)
	if isThumb {
		stem = thumbPrefix + stem
	}

	name, err := a.AllocateName(ctx, stem, ext, dir)
	if err != nil {
		return "", err
	}

	err = a.backend.Put(ctx, name, bytes.NewReader(file.Content), int64(len(file.Content)), contentType(p, file.ContentType))
	if err != nil {
		return "", fmt.Errorf("failed to upload object %q: %w", name, fault(err))
	}

	return name, nil
}

// GenerateThumbnail stores a copy of the image scaled to fit 300x300 next to p.
func (a *Adapter) GenerateThumbnail(ctx context.Context, p string, content []byte) (string, error) {
	thumb, err := a.thumbnailer.Thumbnail(content, ThumbnailSize, ThumbnailSize)
	if err != nil {
		return "", fmt.Errorf("failed to make thumbnail for %q: %w", p, err)
	}

	return a.Save(ctx, p, model.Upload{Filename: path.Base(p), Content: thumb}, true)
}

func (a *Adapter) Delete(ctx context.Context, p string) error {
	if err := a.backend.Remove(ctx, p); err != nil {
		return fmt.Errorf("failed to delete object %q: %w", p, fault(err))
	}
	return nil
}

// EnsureBucket creates the bucket when missing and grants anonymous read on
// every public location.
func (a *Adapter) EnsureBucket(ctx context.Context) error {
	exists, err := a.backend.BucketExists(ctx)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", fault(err))
	}

	if !exists {
		if err := a.backend.MakeBucket(ctx); err != nil {
			return fmt.Errorf("failed to create bucket: %w", fault(err))
		}
	}

	policy, err := PublicReadPolicy(a.cfg.Bucket, a.cfg.PublicLocations)
	if err != nil {
		return err
	}
	if policy == "" {
		return nil
	}
	if err := a.backend.SetBucketPolicy(ctx, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", fault(err))
	}

	return nil
}

// SplitPath breaks an object path into directory, stem and extension.
// The directory is empty for top level objects.
func SplitPath(p string) (dir, stem, ext string) {
	dir = path.Dir(p)
	if dir == "." || dir == "/" {
		dir = ""
	}
	base := path.Base(p)
	ext = path.Ext(base)
	stem = strings.TrimSuffix(base, ext)
	if stem == "" {
		stem, ext = base, ""
	}
	return dir, stem, ext
}

// ThumbPath is the name a thumbnail of p gets when nothing collides with it.
func ThumbPath(p string) string {
	dir, stem, ext := SplitPath(p)
	return joinName(dir, thumbPrefix+stem+ext)
}

func joinName(dir, name string) string {
	if dir == "" {
		return name
	}
	return dir + "/" + name
}

func contentType(p, declared string) string {
	if declared != "" {
		return declared
	}
	if guess := mime.TypeByExtension(path.Ext(p)); guess != "" {
		return guess
	}
	return defaultContentType
}

// fault marks network level failures as model.ErrStorageUnavailable.
func fault(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", model.ErrStorageUnavailable, err)
	}
	return err
}
