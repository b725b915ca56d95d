package projection

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// changeHeader is the column layout shared by the changes and anomalies CSVs
var changeHeader = []string{
	"player_name",
	"player_type",
	"first_date",
	"last_date",
	"days_tracked",
	"first_PA",
	"last_PA",
	"first_PTS",
	"last_PTS",
	"pa_change",
	"pts_change",
	"pa_pct_change",
	"pts_pct_change",
	"pts_per_pa_change",
	"pa_change_per_day",
	"pts_change_per_day",
	"team",
	"position",
}

// SaveChangesCSV writes the full change table to all_projection_changes.csv
// (or whatever path the caller picks).
func SaveChangesCSV(changes []ChangeRecord, outputPath string) error {
	records := make([][]string, 0, len(changes))
	for _, rec := range changes {
		records = append(records, formatChangeRecord(rec))
	}
	return writeCSVFile(outputPath, changeHeader, records)
}

// SaveAnomaliesCSV writes the labeled anomaly table. Rows keep the per-rule
// multiplicity of the classifier output.
func SaveAnomaliesCSV(anomalies []Anomaly, outputPath string) error {
	header := append([]string{}, changeHeader...)
	header = append(header, "anomaly_type")

	records := make([][]string, 0, len(anomalies))
	for _, a := range anomalies {
		record := formatChangeRecord(a.ChangeRecord)
		record = append(record, string(a.Type))
		records = append(records, record)
	}
	return writeCSVFile(outputPath, header, records)
}

// SaveSummaryCSV writes the summary statistics as a metric/value table
func SaveSummaryCSV(summary Summary, outputPath string) error {
	records := [][]string{
		{"Total Players", strconv.Itoa(summary.TotalPlayers)},
		{"Total Anomalies", strconv.Itoa(summary.TotalAnomalies)},
		{"Avg PA Change", formatFloat(summary.AvgPAChange, 2)},
		{"Avg PTS Change", formatFloat(summary.AvgPTSChange, 2)},
		{"Max PA Increase", formatFloat(summary.MaxPAIncrease, 1)},
		{"Max PA Decrease", formatFloat(summary.MaxPADecrease, 1)},
		{"Max PTS Increase", formatFloat(summary.MaxPTSIncrease, 1)},
		{"Max PTS Decrease", formatFloat(summary.MaxPTSDecrease, 1)},
		{"Avg Days Tracked", formatFloat(summary.AvgDaysTracked, 1)},
		{"Players with PA Increases", strconv.Itoa(summary.PAIncreaseCount)},
		{"Players with PTS Increases", strconv.Itoa(summary.PTSIncreaseCount)},
	}
	return writeCSVFile(outputPath, []string{"Metric", "Value"}, records)
}

// formatChangeRecord converts a ChangeRecord to a CSV record
func formatChangeRecord(rec ChangeRecord) []string {
	return []string{
		rec.PlayerName,
		string(rec.PlayerType),
		rec.FirstDate.Format("2006-01-02"),
		rec.LastDate.Format("2006-01-02"),
		strconv.Itoa(rec.DaysTracked),
		formatFloat(rec.FirstPA, 1),
		formatFloat(rec.LastPA, 1),
		formatFloat(rec.FirstPTS, 1),
		formatFloat(rec.LastPTS, 1),
		formatFloat(rec.PAChange, 1),
		formatFloat(rec.PTSChange, 1),
		formatFloat(rec.PAPctChange, 2),
		formatFloat(rec.PTSPctChange, 2),
		formatFloat(rec.PTSPerPAChange, 4),
		formatFloat(rec.PAChangePerDay, 4),
		formatFloat(rec.PTSChangePerDay, 4),
		rec.Team,
		rec.Position,
	}
}

// writeCSVFile creates the output file and writes header plus records
func writeCSVFile(outputPath string, header []string, records [][]string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for i, record := range records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write CSV record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// formatFloat formats a float64 value for CSV output with fixed precision
func formatFloat(value float64, precision int) string {
	return strconv.FormatFloat(value, 'f', precision, 64)
}
