package export

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/Leganyst/reserva-core/internal/model"
)

// WriteCSV пишет все брони в w в виде таблицы с разделителями.
func WriteCSV(w io.Writer, records []model.Reservation) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"date", "slot", "holder_name", "contact", "note", "created_at"}); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Date,
			r.Slot,
			r.HolderName,
			r.Contact,
			r.Note,
			r.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
