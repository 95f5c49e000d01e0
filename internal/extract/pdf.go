package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// ErrMalformedDocument means the bytes could not be opened as a PDF at all.
// This is the only extraction failure that aborts the whole document;
// individual unreadable pages are skipped.
var ErrMalformedDocument = errors.New("malformed PDF document")

// PDFExtractor converts raw PDF bytes into plain text.
type PDFExtractor struct {
	log *zap.Logger
}

func NewPDFExtractor(log *zap.Logger) *PDFExtractor {
	return &PDFExtractor{log: log}
}

// Text returns the concatenated text of every readable page, pages joined by
// a single newline, trimmed of surrounding whitespace. Pages that fail to
// decode are logged and skipped.
func (e *PDFExtractor) Text(content []byte) (string, error) {
	r, err := openReader(content)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		text, err := pageText(r.Page(i))
		if err != nil {
			e.log.Warn("skipping unreadable page", zap.Int("page", i), zap.Error(err))
			continue
		}
		if text == "" {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String()), nil
}

// openReader parses the cross-reference structure. The parser panics on some
// corrupt inputs instead of returning an error, so recover into one.
func openReader(content []byte) (r *pdf.Reader, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("parse panic: %v", p)
		}
	}()
	return pdf.NewReader(bytes.NewReader(content), int64(len(content)))
}

// pageText extracts a single page, with the same panic guard: a damaged
// content stream must cost one page, not the document.
func pageText(p pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page parse panic: %v", r)
		}
	}()
	if p.V.IsNull() {
		return "", nil
	}
	return p.GetPlainText(nil)
}
