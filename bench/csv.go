package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSV headers.
var (
	FullHeader   = []string{"Size", "Capacity", "Time(ms)", "Memory(KB)", "TheoreticalMemory(KB)"}
	SimpleHeader = []string{"Size", "Time(ms)"}
)

// WriteCSV writes the header followed by one record per row. In simple mode
// only size and time are written.
func WriteCSV(w io.Writer, rows []Row, simple bool) error {
	cw := csv.NewWriter(w)

	header := FullHeader
	if simple {
		header = SimpleHeader
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	for _, row := range rows {
		ms := strconv.FormatFloat(float64(row.Elapsed.Nanoseconds())/1e6, 'f', 3, 64)
		var rec []string
		if simple {
			rec = []string{strconv.Itoa(row.Size), ms}
		} else {
			rec = []string{
				strconv.Itoa(row.Size),
				strconv.Itoa(row.Capacity),
				ms,
				strconv.FormatFloat(row.MemoryKB, 'f', 2, 64),
				strconv.FormatFloat(row.TheoreticalKB, 'f', 2, 64),
			}
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteCSV: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	return nil
}
