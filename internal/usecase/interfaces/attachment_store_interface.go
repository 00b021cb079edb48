package interfaces

import (
	"context"
	"errors"
	"io"
)

// ErrAttachmentNotFound is returned by Resolve when the reference does
// not map to a stored file.
var ErrAttachmentNotFound = errors.New("attachment not found")

// Document is a resolved supporting document ready to be served.
type Document struct {
	FileName    string
	ContentType string
	Content     []byte
}

// IAttachmentStore abstracts supporting-document storage.
//
// Store writes the uploaded bytes under a generated unique name that
// keeps the original filename recoverable for download, and returns
// that name as the reference. Resolve maps a reference back to the
// bytes and a content type, or ErrAttachmentNotFound.
type IAttachmentStore interface {
	Store(ctx context.Context, originalName string, content io.Reader) (string, error)
	Resolve(ctx context.Context, ref string) (Document, error)
}
