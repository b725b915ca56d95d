package projection

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// SaveAnomaliesWorkbook writes the anomalies to an Excel workbook with one
// sheet per anomaly type, for spreadsheet consumers that want the report
// pre-grouped.
func SaveAnomaliesWorkbook(anomalies []Anomaly, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	grouped := GroupByType(anomalies)
	wroteSheet := false
	for _, typ := range anomalyTypeOrder {
		group := grouped[typ]
		if len(group) == 0 {
			continue
		}
		sheet := sheetName(typ)
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("create sheet %s: %w", sheet, err)
		}
		if err := writeAnomalySheet(f, sheet, group); err != nil {
			return fmt.Errorf("write sheet %s: %w", sheet, err)
		}
		wroteSheet = true
	}

	if wroteSheet {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("remove default sheet: %w", err)
		}
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeAnomalySheet(f *excelize.File, sheet string, group []Anomaly) error {
	header := append([]string{}, changeHeader...)
	header = append(header, "anomaly_type")
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, a := range group {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			a.PlayerName,
			string(a.PlayerType),
			a.FirstDate.Format("2006-01-02"),
			a.LastDate.Format("2006-01-02"),
			a.DaysTracked,
			a.FirstPA,
			a.LastPA,
			a.FirstPTS,
			a.LastPTS,
			a.PAChange,
			a.PTSChange,
			a.PAPctChange,
			a.PTSPctChange,
			a.PTSPerPAChange,
			a.PAChangePerDay,
			a.PTSChangePerDay,
			a.Team,
			a.Position,
			string(a.Type),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// sheetName shortens anomaly type names to fit Excel's 31-character limit
func sheetName(typ AnomalyType) string {
	switch typ {
	case AnomalyMajorPAChange:
		return "Major PA Change"
	case AnomalyPTSWithoutPA:
		return "PTS Without PA Change"
	case AnomalyUnusualPTSDrop:
		return "Unusual PTS Drop Rate"
	default:
		name := string(typ)
		if len(name) > 31 {
			name = name[:31]
		}
		return name
	}
}
