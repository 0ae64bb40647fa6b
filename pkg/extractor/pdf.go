package extractor

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextExtractor turns a raw document byte buffer into plain text.
type TextExtractor interface {
	Extract(raw []byte) (string, error)
}

// PDFExtractor turns a raw PDF byte buffer into plain text.
// It never returns partial garbage: every failure is one of the sentinel
// errors in errors.go, wrapped with the parser detail where available.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

func (e *PDFExtractor) Extract(raw []byte) (text string, err error) {
	if len(raw) == 0 {
		return "", ErrEmptyInput
	}

	// The parser panics on some malformed inputs; treat those as corrupt.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrCorruptInput, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptInput, err)
	}

	plainText, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptInput, err)
	}

	var b strings.Builder
	if _, err := io.Copy(&b, plainText); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptInput, err)
	}

	if strings.TrimSpace(b.String()) == "" {
		return "", ErrUnreadableContent
	}

	return b.String(), nil
}
