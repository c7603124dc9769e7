package receipt

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tracklytic/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ExtractorTestSuite struct {
	suite.Suite
	extractor *Extractor
	dir       string
	calls     []string
	pageTexts []string
}

func TestExtractorSuite(t *testing.T) {
	suite.Run(t, new(ExtractorTestSuite))
}

func (s *ExtractorTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.calls = nil
	s.pageTexts = []string{"Amount: N1,000.00", "Date: 2024-01-02"}

	cfg := config.ReceiptConfig{
		PdftoppmPath:  "pdftoppm",
		TesseractPath: "tesseract",
		Language:      "eng",
		DPI:           300,
		PageSegMode:   6,
	}
	s.extractor = NewExtractor(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.extractor.lookPath = func(file string) (string, error) { return "/usr/bin/" + file, nil }
	s.extractor.run = s.fakeRun
	s.extractor.pdfText = func(string) (string, error) { return "", nil }
}

// fakeRun writes the files the real binaries would produce.
func (s *ExtractorTestSuite) fakeRun(_ context.Context, name string, args ...string) ([]byte, error) {
	s.calls = append(s.calls, name)
	switch name {
	case "pdftoppm":
		prefix := args[len(args)-1]
		for i := range s.pageTexts {
			page := prefix + "-" + string(rune('1'+i)) + ".png"
			if err := os.WriteFile(page, []byte("png"), 0o600); err != nil {
				return nil, err
			}
		}
	case "tesseract":
		img, outBase := args[0], args[1]
		text := "Amount: N500.00"
		if strings.HasSuffix(img, ".png") && strings.Contains(filepath.Base(img), "page-") {
			idx := int(filepath.Base(img)[len("page-")] - '1')
			text = s.pageTexts[idx]
		}
		if text == "" {
			return []byte("empty page"), errors.New("exit status 1")
		}
		if err := os.WriteFile(outBase+".txt", []byte(text+"\n"), 0o600); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func (s *ExtractorTestSuite) writeFile(name string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte("data"), 0o600))
	return path
}

func (s *ExtractorTestSuite) TestPDFTextLayerSkipsOCR() {
	s.extractor.pdfText = func(string) (string, error) {
		return "GTBank Receipt\nAmount: N50,000.00", nil
	}

	text, err := s.extractor.Extract(context.Background(), s.writeFile("receipt.pdf"))

	s.NoError(err)
	s.Contains(text, "N50,000.00")
	s.Empty(s.calls)
}

func (s *ExtractorTestSuite) TestPDFFallsBackToOCR() {
	s.extractor.pdfText = func(string) (string, error) { return "Receipt", nil }

	text, err := s.extractor.Extract(context.Background(), s.writeFile("scan.pdf"))

	s.NoError(err)
	s.Equal("Amount: N1,000.00\n\nDate: 2024-01-02", text)
	s.Equal([]string{"pdftoppm", "tesseract", "tesseract"}, s.calls)
}

func (s *ExtractorTestSuite) TestPDFSkipsFailedPages() {
	s.pageTexts = []string{"", "Amount: N2,000.00"}

	text, err := s.extractor.Extract(context.Background(), s.writeFile("scan.pdf"))

	s.NoError(err)
	s.Equal("Amount: N2,000.00", text)
}

func (s *ExtractorTestSuite) TestPDFWithNoReadablePages() {
	s.pageTexts = []string{""}

	_, err := s.extractor.Extract(context.Background(), s.writeFile("scan.pdf"))

	s.ErrorIs(err, ErrNoText)
}

func (s *ExtractorTestSuite) TestImage() {
	text, err := s.extractor.Extract(context.Background(), s.writeFile("photo.JPG"))

	s.NoError(err)
	s.Equal("Amount: N500.00", text)
	s.Equal([]string{"tesseract"}, s.calls)
}

func (s *ExtractorTestSuite) TestToolsMissing() {
	s.extractor.lookPath = func(file string) (string, error) {
		if file == "tesseract" {
			return "", errors.New("executable file not found in $PATH")
		}
		return "/usr/bin/" + file, nil
	}

	_, err := s.extractor.Extract(context.Background(), s.writeFile("photo.png"))
	s.ErrorIs(err, ErrOCRUnavailable)

	_, err = s.extractor.Extract(context.Background(), s.writeFile("scan.pdf"))
	s.ErrorIs(err, ErrOCRUnavailable)

	s.False(s.extractor.Available())
	s.Empty(s.calls)
}

func (s *ExtractorTestSuite) TestUnsupportedFile() {
	_, err := s.extractor.Extract(context.Background(), s.writeFile("receipt.txt"))
	s.ErrorIs(err, ErrUnsupportedFile)
}

func TestIsSupported(t *testing.T) {
	for _, name := range []string{"a.pdf", "b.PNG", "c.jpg", "d.jpeg"} {
		assert.True(t, IsSupported(name), name)
	}
	for _, name := range []string{"a.gif", "b", "c.pdf.exe"} {
		assert.False(t, IsSupported(name), name)
	}
}

func TestHasUsableText(t *testing.T) {
	assert.False(t, hasUsableText("   "))
	assert.False(t, hasUsableText("Transaction Receipt Successful"))
	assert.True(t, hasUsableText("Transaction Receipt Amount 100"))
}

func TestPDFText_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0o600))

	_, err := PDFText(path)
	assert.Error(t, err)
}
