package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ExcelRenderer renders report documents with excelize
type ExcelRenderer struct {
	sheetName string
}

func NewExcelRenderer() *ExcelRenderer {
	return &ExcelRenderer{sheetName: "Reporte"}
}

// Render writes the document as a styled worksheet: title block, header
// row, alternating data rows, optional freeze pane and auto-filter.
func (r *ExcelRenderer) Render(doc *Document, w io.Writer) error {
	if len(doc.Headers) == 0 {
		return fmt.Errorf("document has no headers")
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", r.sheetName)

	row := 1
	f.SetCellValue(r.sheetName, cellRef(1, row), doc.Title)
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	f.SetCellStyle(r.sheetName, cellRef(1, row), cellRef(1, row), titleStyle)
	row++

	if doc.Subtitle != "" {
		f.SetCellValue(r.sheetName, cellRef(1, row), doc.Subtitle)
		row++
	}

	f.SetCellValue(r.sheetName, cellRef(1, row), fmt.Sprintf("Generado: %s", doc.GeneratedAt.Format("02/01/2006 15:04")))
	row++
	for _, line := range doc.Info {
		f.SetCellValue(r.sheetName, cellRef(1, row), fmt.Sprintf("%s: %s", line.Label, line.Value))
		row++
	}
	row++ // blank row before the table

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{stripHash(doc.Style.HeaderBgColor)},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	headerRow := row
	for col, h := range doc.Headers {
		f.SetCellValue(r.sheetName, cellRef(col+1, row), h)
	}
	f.SetCellStyle(r.sheetName, cellRef(1, row), cellRef(len(doc.Headers), row), headerStyle)
	row++

	var altStyle int
	if doc.Style.AlternateRows {
		altStyle, _ = f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{
				Type:    "pattern",
				Pattern: 1,
				Color:   []string{stripHash(doc.Style.AltRowColor)},
			},
		})
	}

	for i, dataRow := range doc.Rows {
		for col, value := range dataRow {
			f.SetCellValue(r.sheetName, cellRef(col+1, row), value)
		}
		if doc.Style.AlternateRows && i%2 == 1 {
			f.SetCellStyle(r.sheetName, cellRef(1, row), cellRef(len(doc.Headers), row), altStyle)
		}
		row++
	}

	if doc.Style.FreezeHeader {
		f.SetPanes(r.sheetName, &excelize.Panes{
			Freeze:      true,
			YSplit:      headerRow,
			TopLeftCell: cellRef(1, headerRow+1),
			ActivePane:  "bottomLeft",
		})
	}

	if doc.Style.AutoFilter && len(doc.Rows) > 0 {
		lastRow := headerRow + len(doc.Rows)
		rangeRef := fmt.Sprintf("%s:%s", cellRef(1, headerRow), cellRef(len(doc.Headers), lastRow))
		f.AutoFilter(r.sheetName, rangeRef, nil)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}

// ContentType returns the MIME type for XLSX files
func (r *ExcelRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileExtension returns the file extension for XLSX files
func (r *ExcelRenderer) FileExtension() string {
	return ".xlsx"
}

// cellRef builds an A1-style reference from 1-based column and row.
func cellRef(col, row int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+(col%26))) + name
		col /= 26
	}
	return fmt.Sprintf("%s%d", name, row)
}

// stripHash removes the leading # from hex color codes
func stripHash(color string) string {
	if len(color) > 0 && color[0] == '#' {
		return color[1:]
	}
	return color
}
