// Package forms is the application service around the document
// engine: it maps intake payloads onto domain records, drives the PDF
// generator and retains the results in the archive.
package forms

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fgnsb/backend/internal/domain/subscription"
	"github.com/fgnsb/backend/internal/infrastructure/archive"
	"github.com/fgnsb/backend/internal/infrastructure/config"
	"github.com/fgnsb/backend/internal/infrastructure/logger"
	"github.com/fgnsb/backend/internal/infrastructure/render"
)

// DocumentGenerator is the slice of the render engine the service
// drives.
type DocumentGenerator interface {
	GenerateSubscriptionForm(ctx context.Context, rec subscription.SubscriptionRecord, outputPath string) (*render.Result, error)
	WriteSubscriptionForm(ctx context.Context, rec subscription.SubscriptionRecord, w io.Writer) (*render.Result, error)
	GenerateSummaryReport(ctx context.Context, records []subscription.SubscriptionRecord, outputPath string) (*render.Result, error)
	WriteSummaryReport(ctx context.Context, records []subscription.SubscriptionRecord, w io.Writer) (*render.Result, error)
}

var _ DocumentGenerator = (*render.Generator)(nil)

// FormService handles subscription-form business operations.
type FormService struct {
	generator DocumentGenerator
	archive   archive.Store // nil disables archiving
	retention time.Duration
	logger    *zap.Logger
}

// NewFormService creates a FormService. A nil archive store disables
// archiving; generated documents then live only at their output path.
func NewFormService(generator DocumentGenerator, store archive.Store, logger *zap.Logger) *FormService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FormService{
		generator: generator,
		archive:   store,
		logger:    logger,
	}
}

// FormServiceOption configures NewFormServiceFromConfig.
type FormServiceOption func(*fromConfigOptions)

type fromConfigOptions struct {
	logoPath string
	logger   *zap.Logger
}

// WithLogoPath points the form header at the DMO logo asset.
func WithLogoPath(path string) FormServiceOption {
	return func(o *fromConfigOptions) {
		o.logoPath = path
	}
}

// WithServiceLogger sets the logger for the service and everything it
// constructs.
func WithServiceLogger(logger *zap.Logger) FormServiceOption {
	return func(o *fromConfigOptions) {
		o.logger = logger
	}
}

// NewFormServiceFromConfig wires a FormService from application
// configuration: the logger from the log section (unless
// WithServiceLogger overrides it), the generator from the output
// section and, when archiving is enabled, the filesystem or S3
// archive backend.
func NewFormServiceFromConfig(cfg *config.Config, opts ...FormServiceOption) (*FormService, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	options := &fromConfigOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if options.logger == nil {
		log, err := newLoggerFromConfig(&cfg.Log)
		if err != nil {
			return nil, fmt.Errorf("failed to build logger: %w", err)
		}
		options.logger = log
	}

	generator := render.NewGenerator(&render.GeneratorConfig{
		OutputDir:  cfg.Output.Dir,
		FilePrefix: cfg.Output.FilePrefix,
		LogoPath:   options.logoPath,
		Logger:     options.logger,
	})

	var store archive.Store
	if cfg.Archive.Enabled {
		switch cfg.Archive.Backend {
		case "s3":
			s3Store, err := archive.NewS3Store(&cfg.Storage, archive.WithLogger(options.logger))
			if err != nil {
				return nil, fmt.Errorf("failed to build s3 archive: %w", err)
			}
			store = s3Store
		default:
			fsStore, err := archive.NewFilesystemStore(&archive.FilesystemStoreConfig{
				BasePath: cfg.Archive.BasePath,
				Logger:   options.logger,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to build filesystem archive: %w", err)
			}
			store = fsStore
		}
	}

	service := NewFormService(generator, store, options.logger)
	service.retention = cfg.Archive.Retention
	return service, nil
}

// =============================================================================
// Subscription Form Operations
// =============================================================================

// GenerateForm renders the request as the official subscription form.
// The document is written to the generator's output directory and,
// when archiving is configured, retained under a year/month key. The
// caller owns the file at the returned path.
func (s *FormService) GenerateForm(ctx context.Context, req SubscriptionFormRequest) (*FormDocumentResponse, error) {
	rec, ref, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	ctx, log := logger.WithFormRef(ctx, s.logger, ref.String())

	result, err := s.generator.GenerateSubscriptionForm(ctx, rec, "")
	if err != nil {
		return nil, fmt.Errorf("failed to generate subscription form: %w", err)
	}

	resp := s.toResponse(ref, result)
	resp.Path = result.Path

	if s.archive != nil {
		key, err := s.archiveFile(ctx, ref, result.Path)
		if err != nil {
			// The document exists at its output path; a failed archive
			// copy is reported but does not lose the generation.
			log.Error("failed to archive subscription form", zap.Error(err))
		} else {
			resp.ArchiveKey = key
		}
	}

	log.Info("subscription form generated",
		zap.String("path", resp.Path),
		zap.String("archive_key", resp.ArchiveKey),
		zap.Int("pages", resp.Pages))

	return resp, nil
}

// StreamForm renders the request onto the writer, suitable for a
// direct application/pdf download. When archiving is configured the
// same bytes are retained before they are streamed out.
func (s *FormService) StreamForm(ctx context.Context, req SubscriptionFormRequest, w io.Writer) (*FormDocumentResponse, error) {
	rec, ref, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	ctx, log := logger.WithFormRef(ctx, s.logger, ref.String())

	var buf bytes.Buffer
	result, err := s.generator.WriteSubscriptionForm(ctx, rec, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to generate subscription form: %w", err)
	}

	resp := s.toResponse(ref, result)

	if s.archive != nil {
		stored, err := s.archive.Store(ctx, &archive.StoreRequest{
			FormRef: ref,
			PDFData: buf.Bytes(),
		})
		if err != nil {
			log.Error("failed to archive subscription form", zap.Error(err))
		} else {
			resp.ArchiveKey = stored.Key
		}
	}

	if _, err := buf.WriteTo(w); err != nil {
		return nil, fmt.Errorf("failed to deliver subscription form: %w", err)
	}

	return resp, nil
}

// GenerateSummaryReport renders a batch of requests as one offer
// summary report and returns the output path. Summary reports are
// working documents and are not archived.
func (s *FormService) GenerateSummaryReport(ctx context.Context, reqs []SubscriptionFormRequest) (*FormDocumentResponse, error) {
	records := make([]subscription.SubscriptionRecord, 0, len(reqs))
	for i, req := range reqs {
		rec, err := req.toRecord()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}

	ref := uuid.New()
	ctx, log := logger.WithBatchID(ctx, s.logger, ref.String())

	result, err := s.generator.GenerateSummaryReport(ctx, records, "")
	if err != nil {
		return nil, fmt.Errorf("failed to generate summary report: %w", err)
	}

	resp := s.toResponse(ref, result)
	resp.Path = result.Path

	log.Info("summary report generated",
		zap.Int("records", len(records)),
		zap.String("path", resp.Path),
		zap.Int("pages", resp.Pages))

	return resp, nil
}

// =============================================================================
// Archive Operations
// =============================================================================

// FetchArchivedForm retrieves an archived subscription form by its
// archive key. The caller must close the reader.
func (s *FormService) FetchArchivedForm(ctx context.Context, key string) (io.ReadCloser, error) {
	if s.archive == nil {
		return nil, fmt.Errorf("archiving is not configured")
	}
	return s.archive.Get(ctx, key)
}

// CleanupArchive removes archived forms older than the configured
// retention. A zero retention keeps everything.
func (s *FormService) CleanupArchive(ctx context.Context) (int, error) {
	if s.archive == nil || s.retention == 0 {
		return 0, nil
	}
	return s.archive.CleanupOlderThan(ctx, s.retention)
}

// =============================================================================
// Helper Functions
// =============================================================================

// newLoggerFromConfig builds the service logger from the log section.
// Unset fields keep the logger package defaults.
func newLoggerFromConfig(cfg *config.LogConfig) (*zap.Logger, error) {
	lcfg := logger.DefaultConfig()
	if cfg.Level != "" {
		lcfg.Level = cfg.Level
	}
	if cfg.Format != "" {
		lcfg.Format = cfg.Format
	}
	if cfg.Output != "" {
		lcfg.Output = cfg.Output
	}
	return logger.New(lcfg)
}

// prepare maps the request onto a record and assigns the form its
// reference. Unknown investor categories are tolerated but flagged:
// they can never be ticked on the fixed category grid.
func (s *FormService) prepare(req SubscriptionFormRequest) (subscription.SubscriptionRecord, uuid.UUID, error) {
	rec, err := req.toRecord()
	if err != nil {
		return subscription.SubscriptionRecord{}, uuid.Nil, err
	}

	for _, category := range rec.InvestorCategories {
		if !subscription.IsInvestorCategory(category) {
			s.logger.Warn("unknown investor category",
				zap.String("category", category))
		}
	}

	return rec, uuid.New(), nil
}

func (s *FormService) toResponse(ref uuid.UUID, result *render.Result) *FormDocumentResponse {
	return &FormDocumentResponse{
		FormRef:       ref.String(),
		Size:          result.Size,
		Pages:         result.PageCount,
		MissingFields: result.MissingFields,
		GeneratedAt:   time.Now(),
	}
}

// archiveFile stores an already generated file in the archive.
func (s *FormService) archiveFile(ctx context.Context, ref uuid.UUID, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read generated file: %w", err)
	}
	stored, err := s.archive.Store(ctx, &archive.StoreRequest{
		FormRef: ref,
		PDFData: data,
	})
	if err != nil {
		return "", err
	}
	return stored.Key, nil
}
