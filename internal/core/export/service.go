package export

import (
	"bytes"
	"fmt"
)

// Service renders report documents in the supported formats.
type Service struct {
	pdf   Renderer
	excel Renderer
}

func NewService() *Service {
	return &Service{
		pdf:   NewPDFRenderer(),
		excel: NewExcelRenderer(),
	}
}

func (s *Service) renderer(format Format) (Renderer, error) {
	switch format {
	case FormatPDF:
		return s.pdf, nil
	case FormatXLSX:
		return s.excel, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Render renders the document and returns the bytes plus MIME type.
func (s *Service) Render(doc *Document, format Format) ([]byte, string, error) {
	r, err := s.renderer(format)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := r.Render(doc, &buf); err != nil {
		return nil, "", fmt.Errorf("render failed: %w", err)
	}
	return buf.Bytes(), r.ContentType(), nil
}

// FileExtension returns the extension for a format, ".pdf" or ".xlsx".
func (s *Service) FileExtension(format Format) string {
	r, err := s.renderer(format)
	if err != nil {
		return ".bin"
	}
	return r.FileExtension()
}

// ContentType returns the MIME type for a format.
func (s *Service) ContentType(format Format) string {
	r, err := s.renderer(format)
	if err != nil {
		return "application/octet-stream"
	}
	return r.ContentType()
}
