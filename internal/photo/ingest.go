// Package photo turns uploaded image files into photo records. Each file is read
// on its own goroutine and handed to an apply callback as soon as it completes, so
// photos land in completion order and one bad file does not affect the rest.
package photo

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"

	"rentinspect/internal/utils"
	"rentinspect/pkg/types"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	ErrTooLarge = errors.New("photo exceeds size limit")
	ErrNotImage = errors.New("file is not an image")
)

// File is one uploaded file.
type File struct {
	Name string
	Open func() (io.ReadCloser, error)
}

func FromMultipart(headers []*multipart.FileHeader) []File {
	files := make([]File, 0, len(headers))
	for _, h := range headers {
		files = append(files, File{
			Name: h.Filename,
			Open: func() (io.ReadCloser, error) { return h.Open() },
		})
	}
	return files
}

// Apply stores a completed photo. It must derive from the latest state rather than
// a snapshot taken before the read started.
type Apply func(ctx context.Context, p types.Photo) error

type Result struct {
	Added  int
	Failed map[string]error
}

type Ingestor struct {
	logger      *logrus.Logger
	maxBytes    int64
	concurrency int

	now func() time.Time
}

func NewIngestor(logger *logrus.Logger, maxBytes int64, concurrency int) *Ingestor {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Ingestor{
		logger:      logger,
		maxBytes:    maxBytes,
		concurrency: concurrency,
		now:         time.Now,
	}
}

// Ingest reads every file concurrently and applies each photo as it completes.
// A file that cannot be read or applied is recorded in Result.Failed and does not
// stop the others. The returned error is non-nil only when ctx ends first; the
// Result still counts what landed before that.
func (i *Ingestor) Ingest(ctx context.Context, files []File, apply Apply) (Result, error) {
	var (
		mu     sync.Mutex
		result = Result{Failed: make(map[string]error)}
		g      errgroup.Group
	)
	g.SetLimit(i.concurrency)

	for idx, f := range files {
		key := fmt.Sprintf("%d:%s", idx, f.Name)
		g.Go(func() error {
			err := i.ingestOne(ctx, f, apply)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed[key] = err
				i.logger.WithError(err).WithField("file", f.Name).Warn("photo ingestion failed")
				return ctx.Err()
			}
			result.Added++
			return nil
		})
	}

	err := g.Wait()

	return result, err
}

func (i *Ingestor) ingestOne(ctx context.Context, f File, apply Apply) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dataURI, err := i.read(f)
	if err != nil {
		return err
	}

	return apply(ctx, types.Photo{
		ID:         utils.NanoID(),
		DataURI:    dataURI,
		FileName:   f.Name,
		CapturedAt: i.now(),
	})
}

func (i *Ingestor) read(f File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", f.Name, err)
	}
	defer rc.Close()

	var src io.Reader = rc
	if i.maxBytes > 0 {
		src = io.LimitReader(rc, i.maxBytes+1)
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", f.Name, err)
	}

	if i.maxBytes > 0 && int64(len(data)) > i.maxBytes {
		return "", fmt.Errorf("%w: %s", ErrTooLarge, f.Name)
	}

	return DataURI(data)
}

// DataURI encodes image bytes as a base64 data URI.
func DataURI(data []byte) (string, error) {
	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotImage, mimeType)
	}

	var b bytes.Buffer
	b.WriteString("data:")
	b.WriteString(mimeType)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))

	return b.String(), nil
}
