package utils

import (
	"encoding/csv"
	"os"
	"strconv"

	"franceMiningCounter/internal/domain"
)

// WritePointsToCSV writes a labelled point series as series,x,y rows.
func WritePointsToCSV(series map[string][]domain.Point, order []string, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"series", "x", "y"}); err != nil {
		return err
	}

	for _, name := range order {
		for _, p := range series[name] {
			if err := writer.Write([]string{
				name,
				strconv.FormatFloat(p.X, 'f', -1, 64),
				strconv.FormatFloat(p.Y, 'f', -1, 64),
			}); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}
