package pictures

import "time"

// UploadsPrefix is the URL path under which stored blobs are served.
const UploadsPrefix = "uploads/"

type Picture struct {
	ID          string
	OwnerID     string
	Filename    string
	StorageName string
	ContentType string
	Size        int64
	CreatedAt   time.Time
}

// FilePath is the path, relative to the server root, that serves the bytes.
func (p Picture) FilePath() string {
	return UploadsPrefix + p.StorageName
}
