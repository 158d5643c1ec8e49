package port

import "context"

// DownloadEventType represents the type of download event.
type DownloadEventType int

const (
	// DownloadEventStarted indicates a download has begun.
	DownloadEventStarted DownloadEventType = iota
	// DownloadEventFinished indicates a download completed successfully.
	DownloadEventFinished
	// DownloadEventFailed indicates a download failed.
	DownloadEventFailed
)

// DownloadEvent contains information about a download event.
type DownloadEvent struct {
	Type        DownloadEventType
	ID          string
	Filename    string
	Destination string
	Error       error // Set when Type is DownloadEventFailed
}

// DownloadEventHandler receives download event notifications.
type DownloadEventHandler interface {
	OnDownloadEvent(ctx context.Context, event DownloadEvent)
}

// DownloadRequest is a file fetch handed to the download manager.
type DownloadRequest struct {
	ID        string
	URL       string
	Filename  string
	MimeType  string
	UserAgent string
	Directory string
}

// Downloader fetches files in the background.
type Downloader interface {
	// Enqueue accepts a request and returns before the transfer completes.
	// Progress is reported through the DownloadEventHandler.
	Enqueue(ctx context.Context, req DownloadRequest) error
}
