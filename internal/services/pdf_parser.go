package services

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PDFParserService checks uploaded resumes before they are persisted. The
// resume blob itself stays opaque to the rest of the pipeline; only the
// worker extracts its text.
type PDFParserService interface {
	Validate(data []byte) error
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// Validate implements PDFParserService. It rejects anything that is not a
// readable PDF with at least one page.
func (p *pdfParserService) Validate(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty file")
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("failed to read PDF: %w", err)
	}

	if r.NumPage() < 1 {
		return fmt.Errorf("no pages found in PDF")
	}

	return nil
}
