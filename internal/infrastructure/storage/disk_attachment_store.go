package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"lecturer_claims/internal/usecase/interfaces"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const refSeparator = "_"

// DiskAttachmentStore persists supporting documents under a single
// directory inside the process's file area.
//
// Naming scheme: "<uuid>_<original base name>". The uuid prefix makes
// the reference globally unique while the suffix keeps the original
// filename recoverable for download headers.

type DiskAttachmentStore struct {
	dir string
}

var _ interfaces.IAttachmentStore = (*DiskAttachmentStore)(nil)

func NewDiskAttachmentStore(dir string) *DiskAttachmentStore {
	return &DiskAttachmentStore{dir: dir}
}

// Store writes the uploaded bytes durably and returns the generated
// reference. The bytes go to a temporary file first and are renamed
// into place, so an aborted upload never leaves a partial file that a
// later Resolve could observe.
func (s *DiskAttachmentStore) Store(ctx context.Context, originalName string, content io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}

	ref := uuid.NewString() + refSeparator + sanitizeName(originalName)
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write attachment: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close attachment: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, ref)); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("publish attachment: %w", err)
	}
	return ref, nil
}

// Resolve maps a reference back to the stored bytes, the original
// filename and a content type. A reference that does not map to an
// existing file yields interfaces.ErrAttachmentNotFound.
func (s *DiskAttachmentStore) Resolve(ctx context.Context, ref string) (interfaces.Document, error) {
	// References are bare file names; anything path-like is hostile.
	if ref == "" || ref != filepath.Base(ref) {
		return interfaces.Document{}, interfaces.ErrAttachmentNotFound
	}

	data, err := os.ReadFile(filepath.Join(s.dir, ref))
	if err != nil {
		if os.IsNotExist(err) {
			return interfaces.Document{}, interfaces.ErrAttachmentNotFound
		}
		return interfaces.Document{}, fmt.Errorf("read attachment: %w", err)
	}

	return interfaces.Document{
		FileName:    OriginalName(ref),
		ContentType: contentTypeFor(ref, data),
		Content:     data,
	}, nil
}

// OriginalName strips the uuid prefix from a stored reference,
// recovering the name the file was uploaded under.
func OriginalName(ref string) string {
	if _, rest, ok := strings.Cut(ref, refSeparator); ok && rest != "" {
		return rest
	}
	return ref
}

// contentTypeFor derives the content type from the stored name's
// extension, sniffing the bytes when the extension is unknown.
// mimetype falls back to application/octet-stream on its own.
func contentTypeFor(ref string, data []byte) string {
	if ct := mime.TypeByExtension(filepath.Ext(ref)); ct != "" {
		return ct
	}
	return mimetype.Detect(data).String()
}

func sanitizeName(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "document"
	}
	return name
}
