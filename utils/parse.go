package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseMetricValue parses one numeric CSV cell. Blank cells count as zero;
// comma decimal separators and stray whitespace are tolerated because the
// source sheets are exported from French-locale spreadsheets.
func ParseMetricValue(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, nil
	}
	cell = strings.ReplaceAll(cell, " ", "")
	cell = strings.ReplaceAll(cell, ",", ".")

	val, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric value %q", cell)
	}
	return val, nil
}
