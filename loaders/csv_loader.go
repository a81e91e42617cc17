package loaders

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/ghribi31/GeneSmart-Dashboard/models"
	"github.com/ghribi31/GeneSmart-Dashboard/utils"
)

// regionColumn is the header name of the region identifier column.
const regionColumn = "Location"

// LoadMetrics reads the reagent metrics CSV and returns one aggregated row
// per governorate. The file starts with a throwaway banner line, then the
// header, then data rows. Column names are trimmed, region names are
// normalized, and duplicate region rows (sub-site sheets sharing a
// governorate) are collapsed by summing every metric column.
func LoadMetrics(path string) (*models.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrDataLoad, path, err)
	}
	defer f.Close()

	br := bufio.NewReader(f)

	// First physical line is a title/banner row, not the header.
	if _, err := br.ReadString('\n'); err != nil {
		return nil, fmt.Errorf("%w: reading banner line: %v", ErrDataLoad, err)
	}

	r := csv.NewReader(br)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrDataLoad, err)
	}

	regionIdx := -1
	var metrics []string
	colMetric := make(map[int]string)
	for i, name := range header {
		name = strings.TrimSpace(name)
		if strings.EqualFold(name, regionColumn) {
			regionIdx = i
			continue
		}
		metrics = append(metrics, name)
		colMetric[i] = name
	}
	if regionIdx < 0 {
		return nil, fmt.Errorf("%w: header has no %q column", ErrDataLoad, regionColumn)
	}

	grouped := make(map[string]map[string]float64)
	rowCount := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading data row: %v", ErrDataLoad, err)
		}
		rowCount++

		region := utils.NormalizeRegionName(record[regionIdx])
		if region == "" {
			log.Printf("LoadMetrics: skipping row %d with empty region", rowCount)
			continue
		}

		sums, ok := grouped[region]
		if !ok {
			sums = make(map[string]float64, len(metrics))
			grouped[region] = sums
		}
		for i, metric := range colMetric {
			val, err := utils.ParseMetricValue(record[i])
			if err != nil {
				return nil, fmt.Errorf("%w: row %d, column %q: %v", ErrDataLoad, rowCount, metric, err)
			}
			sums[metric] += val
		}
	}

	// Grouped rows come out sorted by region name; ranking ties later break
	// on this order.
	regions := make([]string, 0, len(grouped))
	for region := range grouped {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	rows := make([]models.MetricRow, 0, len(regions))
	for _, region := range regions {
		rows = append(rows, models.MetricRow{Region: region, Values: grouped[region]})
	}

	log.Printf("LoadMetrics: %d source rows grouped into %d regions, %d metric columns", rowCount, len(rows), len(metrics))
	return &models.Dataset{
		Rows:     rows,
		Metrics:  metrics,
		Source:   path,
		LoadedAt: time.Now(),
	}, nil
}
