package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const archiveSheet = "Arxiv"

// ArchiveRow is one exported line of a day's report archive. Column names
// stay in the deployment language, matching the workbook admins already use.
type ArchiveRow struct {
	Date   string
	Staff  string
	Client string
	Result string
	Notes  string
}

// WriteDayArchive renders the rows as an xlsx workbook.
func WriteDayArchive(rows []ArchiveRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", archiveSheet); err != nil {
		return nil, err
	}

	headers := []string{"Sana", "Hodim", "Mijoz", "Natija", "Izoh"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(archiveSheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []string{row.Date, row.Staff, row.Client, row.Result, row.Notes}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(archiveSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}
