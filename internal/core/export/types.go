package export

import (
	"io"
	"time"
)

// Format is the rendered file format
type Format string

const (
	FormatPDF  Format = "PDF"
	FormatXLSX Format = "XLSX"
)

// Renderer renders a report document to a writer.
type Renderer interface {
	Render(doc *Document, w io.Writer) error
	ContentType() string
	FileExtension() string
}

// Document is a tabular report ready to render: friendly column labels,
// stringified rows and the metadata lines shown above the table.
type Document struct {
	Title    string
	Subtitle string

	// Extra "label: value" lines under the subtitle (entity name, record
	// count). Ordered.
	Info []InfoLine

	Headers []string
	Rows    [][]string

	GeneratedAt time.Time

	// Reference encoded in the PDF footer QR (report ID). Empty disables
	// the QR.
	Reference string

	Style Style
}

// InfoLine is one metadata line of the document header.
type InfoLine struct {
	Label string
	Value string
}

// Style holds the rendering knobs shared by both formats.
type Style struct {
	Orientation string // "portrait" or "landscape"

	HeaderBgColor string // hex
	AlternateRows bool
	AltRowColor   string // hex

	FontSize float64

	// Excel specific
	FreezeHeader bool
	AutoFilter   bool
}

// DefaultStyle returns the house style used by all generated reports.
func DefaultStyle() Style {
	return Style{
		Orientation:   "portrait",
		HeaderBgColor: "#3498DB",
		AlternateRows: true,
		AltRowColor:   "#F8F9FA",
		FontSize:      8,
		FreezeHeader:  true,
		AutoFilter:    true,
	}
}

// NewDocument builds a document with the house style and the clock set.
func NewDocument(title, subtitle string, headers []string, rows [][]string) *Document {
	return &Document{
		Title:       title,
		Subtitle:    subtitle,
		Headers:     headers,
		Rows:        rows,
		GeneratedAt: time.Now(),
		Style:       DefaultStyle(),
	}
}
