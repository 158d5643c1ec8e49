package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/domain/download"
	"github.com/shadowflee/fluxer/internal/domain/url"
	"github.com/shadowflee/fluxer/internal/logging"
)

// HandleDownloadInput describes a download started by the page.
type HandleDownloadInput struct {
	URL                string
	UserAgent          string
	ContentDisposition string
	MimeType           string
}

// HandleDownloadOutput is the request handed to the downloader.
type HandleDownloadOutput struct {
	Request         port.DownloadRequest
	DestinationPath string
}

// HandleDownloadUseCase turns page downloads into downloader requests.
// Only http and https URLs are fetched.
type HandleDownloadUseCase struct {
	downloader port.Downloader
	fs         port.FileSystem
	toaster    port.Toaster
	dir        string
}

// NewHandleDownloadUseCase creates the use case. If fs is nil, filename
// deduplication is disabled.
func NewHandleDownloadUseCase(
	downloader port.Downloader,
	fs port.FileSystem,
	toaster port.Toaster,
	dir string,
) *HandleDownloadUseCase {
	return &HandleDownloadUseCase{
		downloader: downloader,
		fs:         fs,
		toaster:    toaster,
		dir:        dir,
	}
}

// Execute names the file and enqueues it. It returns nil output when the URL
// is not a web URL.
func (uc *HandleDownloadUseCase) Execute(ctx context.Context, input HandleDownloadInput) (*HandleDownloadOutput, error) {
	log := logging.FromContext(ctx).With().
		Str("component", "download").
		Str("url", input.URL).
		Logger()

	if !url.IsWebScheme(input.URL) {
		log.Debug().Msg("ignoring non-web download")
		return nil, nil
	}

	name := download.SafeDownloadName(download.GuessFilename(input.URL, input.ContentDisposition, input.MimeType))
	if uc.fs != nil {
		if err := uc.fs.EnsureDir(ctx, uc.dir); err != nil {
			uc.fail(ctx)
			return nil, fmt.Errorf("prepare download directory: %w", err)
		}
		name = download.MakeUniqueFilename(uc.dir, name, func(path string) bool {
			exists, err := uc.fs.Exists(ctx, path)
			return err == nil && exists
		})
	}

	req := port.DownloadRequest{
		ID:        uuid.NewString(),
		URL:       input.URL,
		Filename:  name,
		MimeType:  download.MimeTypeFromURL(input.URL),
		UserAgent: input.UserAgent,
		Directory: uc.dir,
	}

	if err := uc.downloader.Enqueue(ctx, req); err != nil {
		uc.fail(ctx)
		return nil, fmt.Errorf("enqueue download: %w", err)
	}

	log.Debug().
		Str("id", req.ID).
		Str("filename", name).
		Str("mime", req.MimeType).
		Msg("download enqueued")

	if uc.toaster != nil {
		uc.toaster.Show(ctx, "Downloading "+name+"…")
	}

	return &HandleDownloadOutput{
		Request:         req,
		DestinationPath: filepath.Join(uc.dir, name),
	}, nil
}

func (uc *HandleDownloadUseCase) fail(ctx context.Context) {
	if uc.toaster != nil {
		uc.toaster.Show(ctx, "Download failed.")
	}
}

// OnDownloadEvent reports transfers that failed after being enqueued.
func (uc *HandleDownloadUseCase) OnDownloadEvent(ctx context.Context, event port.DownloadEvent) {
	log := logging.FromContext(ctx).With().
		Str("component", "download").
		Str("id", event.ID).
		Str("filename", event.Filename).
		Logger()

	switch event.Type {
	case port.DownloadEventFinished:
		log.Info().Str("destination", event.Destination).Msg("download finished")
	case port.DownloadEventFailed:
		log.Warn().Err(event.Error).Msg("download failed")
		uc.fail(ctx)
	}
}
