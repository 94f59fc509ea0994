package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"
)

var csvHeader = []string{"trial", "selected", "prize", "revealed", "outcome", "cum_wins"}

// WriteCSV writes the trial log with a header row.
func WriteCSV(out io.Writer, rows []TrialRecord) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Trial),
			strconv.Itoa(int(row.Selected)),
			strconv.Itoa(int(row.Prize)),
			strconv.Itoa(int(row.Revealed)),
			row.Outcome.String(),
			strconv.Itoa(row.CumWins),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// ExportJSONStdout prints a run's metadata as indented JSON.
func ExportJSONStdout(meta *RunMetadata) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
