package receipt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"tracklytic/internal/config"

	"github.com/ledongthuc/pdf"
)

var (
	ErrOCRUnavailable  = errors.New("ocr tooling is not installed")
	ErrNoText          = errors.New("no text could be read from the receipt")
	ErrUnsupportedFile = errors.New("unsupported receipt file type")
)

var supportedExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// IsSupported reports whether filename has an extension the extractor reads.
func IsSupported(filename string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// minTextLayerLength is the shortest PDF text layer trusted without OCR.
const minTextLayerLength = 20

// Extractor converts receipt files to text. PDFs are read from their text
// layer when they have one and rasterised for OCR otherwise.
type Extractor struct {
	cfg    config.ReceiptConfig
	logger *slog.Logger

	lookPath func(file string) (string, error)
	run      func(ctx context.Context, name string, args ...string) ([]byte, error)
	pdfText  func(path string) (string, error)
}

func NewExtractor(cfg config.ReceiptConfig, logger *slog.Logger) *Extractor {
	return &Extractor{
		cfg:      cfg,
		logger:   logger,
		lookPath: exec.LookPath,
		run:      runCommand,
		pdfText:  PDFText,
	}
}

func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err := e.pdfText(path)
		if err == nil && hasUsableText(text) {
			return text, nil
		}
		e.logger.DebugContext(ctx, "pdf has no usable text layer, falling back to ocr", "path", path, "error", err)
		return e.ocrPDF(ctx, path)
	case ".png", ".jpg", ".jpeg":
		return e.ocrImage(ctx, path)
	default:
		return "", ErrUnsupportedFile
	}
}

// Available reports whether the OCR binaries can be found.
func (e *Extractor) Available() bool {
	return e.requireTools(e.cfg.PdftoppmPath, e.cfg.TesseractPath) == nil
}

func (e *Extractor) ocrPDF(ctx context.Context, path string) (string, error) {
	if err := e.requireTools(e.cfg.PdftoppmPath, e.cfg.TesseractPath); err != nil {
		return "", err
	}

	tmpDir, err := os.MkdirTemp("", "receipt-pages-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	if out, err := e.run(ctx, e.cfg.PdftoppmPath, "-r", strconv.Itoa(e.cfg.DPI), "-png", path, prefix); err != nil {
		return "", fmt.Errorf("pdftoppm failed: %w (output: %s)", err, strings.TrimSpace(string(out)))
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		return "", fmt.Errorf("failed to read temp dir: %w", err)
	}

	var images []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".png") {
			images = append(images, filepath.Join(tmpDir, entry.Name()))
		}
	}
	sort.Strings(images)

	var pages []string
	for _, img := range images {
		text, err := e.tesseract(ctx, img, strings.TrimSuffix(img, ".png")+"-ocr")
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			e.logger.WarnContext(ctx, "tesseract failed on page", "page", filepath.Base(img), "error", err)
			continue
		}
		if text != "" {
			pages = append(pages, text)
		}
	}

	if len(pages) == 0 {
		return "", ErrNoText
	}
	return strings.Join(pages, "\n\n"), nil
}

func (e *Extractor) ocrImage(ctx context.Context, path string) (string, error) {
	if err := e.requireTools(e.cfg.TesseractPath); err != nil {
		return "", err
	}

	tmpDir, err := os.MkdirTemp("", "receipt-ocr-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	text, err := e.tesseract(ctx, path, filepath.Join(tmpDir, "receipt"))
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

// tesseract writes its output to outBase.txt.
func (e *Extractor) tesseract(ctx context.Context, img, outBase string) (string, error) {
	args := []string{img, outBase, "-l", e.cfg.Language, "--psm", strconv.Itoa(e.cfg.PageSegMode)}
	if out, err := e.run(ctx, e.cfg.TesseractPath, args...); err != nil {
		return "", fmt.Errorf("tesseract failed: %w (output: %s)", err, strings.TrimSpace(string(out)))
	}

	data, err := os.ReadFile(outBase + ".txt")
	if err != nil {
		return "", fmt.Errorf("failed to read tesseract output: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (e *Extractor) requireTools(names ...string) error {
	for _, name := range names {
		if _, err := e.lookPath(name); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrOCRUnavailable, name, err)
		}
	}
	return nil
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// PDFText returns the text layer of a PDF, one line per text row.
func PDFText(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panicked: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	var lines []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			parts := make([]string, 0, len(row.Content))
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			if line := strings.TrimSpace(strings.Join(parts, " ")); line != "" {
				lines = append(lines, line)
			}
		}
	}

	return strings.Join(lines, "\n"), nil
}

// hasUsableText rejects empty or digit-free text layers, which scanned PDFs
// and custom font encodings tend to produce.
func hasUsableText(text string) bool {
	text = strings.TrimSpace(text)
	if len(text) < minTextLayerLength {
		return false
	}
	return strings.IndexFunc(text, unicode.IsDigit) >= 0
}
