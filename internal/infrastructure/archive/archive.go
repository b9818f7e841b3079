// Package archive provides long-term retention for generated
// subscription-form documents. Stores file each document under a
// year/month key derived from its form reference, so a DMO audit can
// be answered by offer period.
package archive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store is the interface archive backends implement.
type Store interface {
	// Store retains a generated document and returns its archive key.
	Store(ctx context.Context, req *StoreRequest) (*StoreResult, error)
	// Get retrieves an archived document by its key.
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes an archived document.
	Delete(ctx context.Context, key string) error
	// CleanupOlderThan removes documents older than the given age and
	// reports how many were deleted.
	CleanupOlderThan(ctx context.Context, age time.Duration) (int, error)
}

// StoreRequest contains the parameters for archiving a document.
type StoreRequest struct {
	// FormRef is the reference assigned to the subscription form.
	FormRef uuid.UUID
	// PDFData is the raw document content.
	PDFData []byte
}

// StoreResult contains the result of archiving a document.
type StoreResult struct {
	// Key is the archive key, relative to the backend root.
	Key string
	// Size is the stored size in bytes.
	Size int64
}

// ArchiveError describes a failure while storing or retrieving a
// document.
type ArchiveError struct {
	Code    string
	Message string
	Cause   error
}

// Error codes raised by archive backends.
const (
	ErrCodeArchiveFailed = "ARCHIVE_FAILED"
	ErrCodeInvalidKey    = "INVALID_KEY"
	ErrCodeNotArchived   = "NOT_ARCHIVED"
)

func (e *ArchiveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ArchiveError) Unwrap() error {
	return e.Cause
}

// NewArchiveError creates an ArchiveError with the given code and cause.
func NewArchiveError(code, message string, cause error) *ArchiveError {
	return &ArchiveError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// archiveKey builds the storage key for a form archived at the given
// time: {year}/{month}/{ref}.pdf.
func archiveKey(at time.Time, ref uuid.UUID) string {
	return fmt.Sprintf("%d/%02d/%s.pdf", at.Year(), at.Month(), ref)
}

// validateKey rejects keys that are absolute or escape the archive
// root through ".." components. Keys come back from callers that may
// have persisted them anywhere, so the raw string is checked before
// any normalization.
func validateKey(key string) error {
	if key == "" {
		return NewArchiveError(ErrCodeInvalidKey, "archive key is empty", nil)
	}
	if filepath.IsAbs(key) || strings.HasPrefix(key, "/") {
		return NewArchiveError(ErrCodeInvalidKey, "archive key must be relative", nil)
	}
	parts := strings.FieldsFunc(key, func(r rune) bool {
		return r == '/' || r == filepath.Separator
	})
	if slices.Contains(parts, "..") {
		return NewArchiveError(ErrCodeInvalidKey, "archive key escapes the archive root", nil)
	}
	return nil
}

// FilesystemStoreConfig contains configuration for the filesystem
// backend.
type FilesystemStoreConfig struct {
	// BasePath is the root directory of the archive.
	// Default: ./archive
	BasePath string
	// Logger for operations.
	Logger *zap.Logger
}

// FilesystemStore archives documents on the local filesystem under
// {base}/{year}/{month}/{ref}.pdf.
type FilesystemStore struct {
	config *FilesystemStoreConfig
	logger *zap.Logger
}

var _ Store = (*FilesystemStore)(nil)

// NewFilesystemStore creates a filesystem backed archive. The base
// directory is created if it does not exist.
func NewFilesystemStore(config *FilesystemStoreConfig) (*FilesystemStore, error) {
	if config == nil {
		config = &FilesystemStoreConfig{}
	}
	if config.BasePath == "" {
		config.BasePath = "./archive"
	}

	if err := os.MkdirAll(config.BasePath, 0o755); err != nil {
		return nil, NewArchiveError(ErrCodeArchiveFailed,
			fmt.Sprintf("cannot create archive directory: %s", config.BasePath), err)
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &FilesystemStore{
		config: config,
		logger: logger,
	}, nil
}

// Store writes the document to {base}/{year}/{month}/{ref}.pdf.
func (s *FilesystemStore) Store(ctx context.Context, req *StoreRequest) (*StoreResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewArchiveError(ErrCodeArchiveFailed, "operation cancelled", err)
	}
	if req == nil {
		return nil, NewArchiveError(ErrCodeArchiveFailed, "store request is nil", nil)
	}
	if req.FormRef == uuid.Nil {
		return nil, NewArchiveError(ErrCodeArchiveFailed, "form reference is required", nil)
	}
	if len(req.PDFData) == 0 {
		return nil, NewArchiveError(ErrCodeArchiveFailed, "document data is empty", nil)
	}

	key := archiveKey(time.Now(), req.FormRef)
	fullPath := filepath.Join(s.config.BasePath, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return nil, NewArchiveError(ErrCodeArchiveFailed, "cannot create archive directory", err)
	}
	if err := os.WriteFile(fullPath, req.PDFData, 0o644); err != nil {
		return nil, NewArchiveError(ErrCodeArchiveFailed, "cannot write archived document", err)
	}

	s.logger.Info("document archived",
		zap.String("key", key),
		zap.Int("size", len(req.PDFData)))

	return &StoreResult{
		Key:  key,
		Size: int64(len(req.PDFData)),
	}, nil
}

// Get opens an archived document by its key.
func (s *FilesystemStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewArchiveError(ErrCodeArchiveFailed, "operation cancelled", err)
	}
	fullPath, err := s.resolve(key)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewArchiveError(ErrCodeNotArchived, "document not found", err)
		}
		return nil, NewArchiveError(ErrCodeArchiveFailed, "cannot open archived document", err)
	}
	return file, nil
}

// Delete removes an archived document. A key that is already gone is
// not an error.
func (s *FilesystemStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return NewArchiveError(ErrCodeArchiveFailed, "operation cancelled", err)
	}
	fullPath, err := s.resolve(key)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return NewArchiveError(ErrCodeArchiveFailed, "cannot delete archived document", err)
	}

	s.logger.Info("archived document deleted", zap.String("key", key))
	return nil
}

// CleanupOlderThan removes archived documents whose modification time
// precedes the cutoff.
func (s *FilesystemStore) CleanupOlderThan(ctx context.Context, age time.Duration) (int, error) {
	cutoff := time.Now().Add(-age)
	deleted := 0

	err := filepath.Walk(s.config.BasePath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".pdf" {
			return nil
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err == nil {
				deleted++
				s.logger.Debug("expired document removed", zap.String("path", path))
			}
		}
		return nil
	})

	if err != nil && err != context.Canceled && err != context.DeadlineExceeded {
		return deleted, NewArchiveError(ErrCodeArchiveFailed, "cleanup walk failed", err)
	}

	s.logger.Info("archive cleanup completed",
		zap.Int("deleted", deleted),
		zap.Duration("age", age))

	return deleted, nil
}

// resolve validates the key and maps it to an absolute path that is
// verified to sit under the archive root.
func (s *FilesystemStore) resolve(key string) (string, error) {
	if err := validateKey(key); err != nil {
		s.logger.Warn("rejected archive key", zap.String("key", key))
		return "", err
	}

	fullPath := filepath.Join(s.config.BasePath, filepath.FromSlash(filepath.Clean(key)))

	absBase, err := filepath.Abs(s.config.BasePath)
	if err != nil {
		return "", NewArchiveError(ErrCodeArchiveFailed, "cannot resolve archive root", err)
	}
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return "", NewArchiveError(ErrCodeArchiveFailed, "cannot resolve document path", err)
	}
	if absPath != absBase && !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		s.logger.Warn("archive key escape blocked",
			zap.String("key", key),
			zap.String("resolved", absPath))
		return "", NewArchiveError(ErrCodeInvalidKey, "archive key escapes the archive root", nil)
	}
	return fullPath, nil
}
