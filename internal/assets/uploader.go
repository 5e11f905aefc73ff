package assets

import (
	"context"
	"io"
)

// Uploader stores raw bytes and returns a public URL. The registry treats
// the URL as an opaque string.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}
