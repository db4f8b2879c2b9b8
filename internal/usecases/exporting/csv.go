package exporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/repairdesk/backoffice-analytics/internal/domain"
)

var header = []string{"Metric", "Value"}

// WriteCSV escreve o relatório no formato Metric,Value. Lojas e equipe saem em blocos,
// um por entidade: linha de título, métricas e uma linha em branco.
func WriteCSV(w io.Writer, reportType domain.ReportType, data any) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return err
	}

	var records [][]string
	switch {
	case reportType == domain.ReportLocations && locationMetrics(data) != nil:
		metrics := locationMetrics(data)
		records = make([][]string, 0, len(metrics.Locations)*12)
		for _, location := range metrics.Locations {
			records = appendBlock(records, "Location: "+location.Name, Flatten(location))
		}
	case reportType == domain.ReportStaff && staffMetrics(data) != nil:
		metrics := staffMetrics(data)
		records = make([][]string, 0, len(metrics.Productivity)*13)
		for _, member := range metrics.Productivity {
			records = appendBlock(records, "Staff: "+member.Name, Flatten(member))
		}
	default:
		for _, row := range Flatten(data) {
			records = append(records, []string{row.Metric, row.Value})
		}
	}

	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// FileName monta o nome do arquivo de download, por exemplo repairs-2024-05-17.csv
func FileName(reportType domain.ReportType, now time.Time) string {
	return fmt.Sprintf("%s-%s.csv", reportType, now.Format(time.DateOnly))
}

func appendBlock(records [][]string, title string, rows []ReportRow) [][]string {
	records = append(records, []string{title, ""})
	for _, row := range rows {
		records = append(records, []string{row.Metric, row.Value})
	}
	return append(records, []string{})
}

func locationMetrics(data any) *domain.LocationMetrics {
	switch v := data.(type) {
	case *domain.LocationMetrics:
		return v
	case domain.LocationMetrics:
		return &v
	}
	return nil
}

func staffMetrics(data any) *domain.StaffMetrics {
	switch v := data.(type) {
	case *domain.StaffMetrics:
		return v
	case domain.StaffMetrics:
		return &v
	}
	return nil
}
