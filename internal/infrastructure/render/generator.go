package render

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"github.com/fgnsb/backend/internal/domain/subscription"
)

const defaultFilePrefix = "fgnsb_"

// GeneratorConfig configures a Generator.
type GeneratorConfig struct {
	// OutputDir receives generated files when the caller supplies no
	// path. Empty uses the system temp directory.
	OutputDir string
	// FilePrefix names the files created in OutputDir (default "fgnsb_").
	FilePrefix string
	// LogoPath is the DMO logo asset. Missing or empty falls back to
	// the printed office name in the header.
	LogoPath string
	// Styles overrides the official form styling.
	Styles *Styles
	// Logger for progress output.
	Logger *zap.Logger
}

// Result describes one generated document.
type Result struct {
	// Path of the produced file; empty when writing to a stream.
	Path string
	// Size in bytes.
	Size int64
	// PageCount of the finished document.
	PageCount int
	// Duration of the whole generation.
	Duration time.Duration
	// MissingFields lists required fields the record left empty. The
	// document is generated regardless.
	MissingFields []string
}

// Generator produces FGN Savings Bond documents. It keeps no per-call
// state, so one Generator serves concurrent generations as long as
// each call uses its own destination.
type Generator struct {
	config   *GeneratorConfig
	styles   *Styles
	template *FormTemplate
	logger   *zap.Logger
}

// NewGenerator creates a generator. A nil config uses the defaults.
func NewGenerator(config *GeneratorConfig) *Generator {
	if config == nil {
		config = &GeneratorConfig{}
	}
	if config.FilePrefix == "" {
		config.FilePrefix = defaultFilePrefix
	}
	if config.OutputDir == "" {
		config.OutputDir = os.TempDir()
	}
	if config.Styles == nil {
		config.Styles = DefaultStyles()
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{
		config:   config,
		styles:   config.Styles,
		template: NewFormTemplate(WithStyles(config.Styles), WithLogo(config.LogoPath)),
		logger:   logger,
	}
}

// GenerateSubscriptionForm renders the record as the official
// subscription form PDF. An empty outputPath creates a fresh file in
// the configured output directory; deleting it afterwards is the
// caller's responsibility. Incomplete records still generate, with
// the gaps reported in the Result.
func (g *Generator) GenerateSubscriptionForm(ctx context.Context, rec subscription.SubscriptionRecord, outputPath string) (*Result, error) {
	start := time.Now()

	missing := g.prepare(&rec)
	g.logger.Debug("generating subscription form",
		zap.String("applicant_type", rec.ApplicantType.String()),
		zap.String("tenor", rec.Tenor.String()))

	blocks := g.template.Blocks(rec, time.Now())
	result, err := g.generateFile(ctx, "FGN Savings Bond Subscription Form", blocks, outputPath)
	if err != nil {
		return nil, err
	}

	result.MissingFields = missing
	result.Duration = time.Since(start)
	g.logger.Info("subscription form generated",
		zap.String("path", result.Path),
		zap.Int64("bytes", result.Size),
		zap.Int("pages", result.PageCount),
		zap.Duration("duration", result.Duration))
	return result, nil
}

// WriteSubscriptionForm renders the record as the official
// subscription form PDF onto the given writer.
func (g *Generator) WriteSubscriptionForm(ctx context.Context, rec subscription.SubscriptionRecord, w io.Writer) (*Result, error) {
	start := time.Now()

	missing := g.prepare(&rec)
	blocks := g.template.Blocks(rec, time.Now())
	result, err := g.render(ctx, "FGN Savings Bond Subscription Form", blocks, w)
	if err != nil {
		return nil, err
	}

	result.MissingFields = missing
	result.Duration = time.Since(start)
	g.logger.Info("subscription form written",
		zap.Int64("bytes", result.Size),
		zap.Int("pages", result.PageCount),
		zap.Duration("duration", result.Duration))
	return result, nil
}

// GenerateSummaryReport renders a batch of records as one summary
// report PDF. Destination handling matches GenerateSubscriptionForm.
func (g *Generator) GenerateSummaryReport(ctx context.Context, records []subscription.SubscriptionRecord, outputPath string) (*Result, error) {
	start := time.Now()

	summary, err := subscription.Summarize(records)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("generating summary report", zap.Int("records", len(records)))

	blocks := g.summaryBlocks(records, summary, time.Now())
	result, err := g.generateFile(ctx, "FGN Savings Bond Subscription Summary", blocks, outputPath)
	if err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)
	g.logger.Info("summary report generated",
		zap.String("path", result.Path),
		zap.Int("records", len(records)),
		zap.Int64("bytes", result.Size),
		zap.Int("pages", result.PageCount),
		zap.Duration("duration", result.Duration))
	return result, nil
}

// WriteSummaryReport renders a batch summary report onto the given
// writer.
func (g *Generator) WriteSummaryReport(ctx context.Context, records []subscription.SubscriptionRecord, w io.Writer) (*Result, error) {
	start := time.Now()

	summary, err := subscription.Summarize(records)
	if err != nil {
		return nil, err
	}

	blocks := g.summaryBlocks(records, summary, time.Now())
	result, err := g.render(ctx, "FGN Savings Bond Subscription Summary", blocks, w)
	if err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)
	g.logger.Info("summary report written",
		zap.Int("records", len(records)),
		zap.Int64("bytes", result.Size),
		zap.Int("pages", result.PageCount),
		zap.Duration("duration", result.Duration))
	return result, nil
}

// prepare soft-validates the record and fills the amount in words
// from the bond value when the intake left it empty.
func (g *Generator) prepare(rec *subscription.SubscriptionRecord) []string {
	missing := rec.MissingFields()
	if len(missing) > 0 {
		g.logger.Warn("record is missing required fields",
			zap.Strings("missing_fields", missing))
	}

	if rec.AmountInWords == "" && !rec.BondValue.IsZero() {
		words, err := rec.BondValue.InWords()
		if err != nil {
			g.logger.Warn("amount in words unavailable", zap.Error(err))
		} else {
			rec.AmountInWords = words
		}
	}
	return missing
}

func (g *Generator) generateFile(ctx context.Context, title string, blocks []Block, outputPath string) (*Result, error) {
	file, path, err := g.createOutput(outputPath)
	if err != nil {
		return nil, NewRenderError(ErrCodeDestinationFailed, "cannot create output file", err)
	}

	result, renderErr := g.render(ctx, title, blocks, file)
	closeErr := file.Close()
	if renderErr != nil {
		os.Remove(path)
		return nil, renderErr
	}
	if closeErr != nil {
		os.Remove(path)
		return nil, NewRenderError(ErrCodeOutputFailed, "cannot finalize output file", closeErr)
	}

	result.Path = path
	return result, nil
}

func (g *Generator) createOutput(outputPath string) (*os.File, string, error) {
	if outputPath == "" {
		f, err := os.CreateTemp(g.config.OutputDir, g.config.FilePrefix+"*.pdf")
		if err != nil {
			return nil, "", err
		}
		return f, f.Name(), nil
	}

	if dir := filepath.Dir(outputPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, "", err
		}
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return nil, "", err
	}
	return f, outputPath, nil
}

// render lays the blocks onto A4 pages top-down and serializes the
// document. A block that does not fit the remaining page starts a new
// one; blocks are never split, and one taller than a whole page is
// clipped at the page end. Blocks narrower than the content width are
// centered like on the paper form.
func (g *Generator) render(ctx context.Context, title string, blocks []Block, w io.Writer) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	geo := g.styles.Page
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetMargins(geo.Margin, geo.Margin, geo.Margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	canvas := newPDFCanvas(pdf, g.styles.FontFamily)
	avail := geo.ContentWidth()
	topY := geo.Margin
	bottomY := geo.Height - geo.Margin

	y := topY
	for _, block := range blocks {
		bw, bh := block.Measure(canvas, avail)
		if y+bh > bottomY && y > topY {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			pdf.AddPage()
			y = topY
		}
		block.Paint(canvas, geo.Margin+(avail-bw)/2, y)
		y += bh
	}

	if pdf.Err() {
		return nil, NewRenderError(ErrCodeDrawFailed, "drawing failed", pdf.Error())
	}

	counter := &countingWriter{w: w}
	if err := pdf.Output(counter); err != nil {
		return nil, NewRenderError(ErrCodeOutputFailed, "cannot write document", err)
	}

	return &Result{Size: counter.n, PageCount: pdf.PageCount()}, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
