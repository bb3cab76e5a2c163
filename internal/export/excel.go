package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Leganyst/reserva-core/internal/model"
)

const sheetName = "Reservations"

// Заголовки колонок в порядке полей записи.
var columns = []string{"Date", "Slot", "Holder name", "Contact", "Note", "Created at"}

// WriteWorkbook формирует XLSX-книгу со всеми бронями и пишет её в w.
// Оформление: строка заголовка, подзаголовок с временем генерации,
// стилизованная шапка таблицы, ширины колонок, автофильтр, футер.
func WriteWorkbook(w io.Writer, records []model.Reservation, title string) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	// Заголовки таблицы начинаются с 5-й строки, данные — с 6-й.
	const headerRow = 5

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Italic: true, Size: 9, Color: "666666"},
	})
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"F2F2F2"}, Pattern: 1},
		Border:    boxBorder(),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	cellStyle, err := f.NewStyle(&excelize.Style{Border: boxBorder()})
	if err != nil {
		return err
	}
	footerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 9, Color: "666666"},
	})
	if err != nil {
		return err
	}

	if err := f.MergeCell(sheetName, "A1", "F1"); err != nil {
		return err
	}
	f.SetCellValue(sheetName, "A1", title)
	f.SetCellStyle(sheetName, "A1", "F1", titleStyle)

	f.SetCellValue(sheetName, "A2",
		fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05")))
	f.SetCellStyle(sheetName, "A2", "A2", subtitleStyle)

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return err
		}
		f.SetCellValue(sheetName, cell, col)
	}
	f.SetCellStyle(sheetName, cellName(1, headerRow), cellName(len(columns), headerRow), headerStyle)

	for i, r := range records {
		row := headerRow + 1 + i
		values := []any{
			r.Date,
			r.Slot,
			r.HolderName,
			r.Contact,
			r.Note,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for c, v := range values {
			f.SetCellValue(sheetName, cellName(c+1, row), v)
		}
	}
	if len(records) > 0 {
		f.SetCellStyle(sheetName,
			cellName(1, headerRow+1),
			cellName(len(columns), headerRow+len(records)),
			cellStyle)
	}

	widths := []float64{12, 8, 28, 22, 30, 20}
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		f.SetColWidth(sheetName, col, col, width)
	}

	lastRow := headerRow + len(records)
	if len(records) == 0 {
		lastRow = headerRow + 1
	}
	filterRange := fmt.Sprintf("%s:%s", cellName(1, headerRow), cellName(len(columns), lastRow))
	if err := f.AutoFilter(sheetName, filterRange, nil); err != nil {
		return err
	}

	f.SetCellValue(sheetName, cellName(1, lastRow+3), "Exported from the reservation core.")
	f.SetCellStyle(sheetName, cellName(1, lastRow+3), cellName(1, lastRow+3), footerStyle)

	return f.Write(w)
}

func boxBorder() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	out := make([]excelize.Border, 0, len(sides))
	for _, s := range sides {
		out = append(out, excelize.Border{Type: s, Color: "000000", Style: 1})
	}
	return out
}

func cellName(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}
