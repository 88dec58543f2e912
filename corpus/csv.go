package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/Sanjay1766/OptiSearch-AI/core"
)

// Column names recognized in the CSV header, case-insensitive.
const (
	columnID             = "id"
	columnTitle          = "title"
	columnCompany        = "company"
	columnDescription    = "description"
	columnSkillsRequired = "skills_required"
	columnCategory       = "category"
	columnLocation       = "location"
	columnLatitude       = "latitude"
	columnLongitude      = "longitude"
	columnStipend        = "stipend"
	columnDuration       = "duration_months"
)

// Load reads internship records from a CSV file and builds a Corpus.
func Load(path string, opts ...Option) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return New(records, opts...)
}

// ReadRecords parses CSV internship data from r. The first row is the
// header; column order is free and unknown columns are ignored. Malformed
// cells produce zero values rather than errors, so one bad row never sinks
// a load.
func ReadRecords(r io.Reader) ([]core.Internship, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingHeader
		}
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var records []core.Internship
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
		}

		cell := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		records = append(records, core.Internship{
			Id:             core.ID(parseInt(cell(columnID))),
			Title:          cell(columnTitle),
			Company:        cell(columnCompany),
			Description:    cell(columnDescription),
			SkillsRequired: cell(columnSkillsRequired),
			Category:       cell(columnCategory),
			Location:       cell(columnLocation),
			Latitude:       parseFloat(cell(columnLatitude)),
			Longitude:      parseFloat(cell(columnLongitude)),
			Stipend:        cell(columnStipend),
			DurationMonths: int(parseInt(cell(columnDuration))),
		})
	}

	return records, nil
}

// WriteRecords writes records as CSV with a header row, the inverse of
// ReadRecords. Used by the seeder to produce loadable sample data.
func WriteRecords(w io.Writer, records []core.Internship) error {
	cw := csv.NewWriter(w)

	header := []string{
		columnID, columnTitle, columnCompany, columnDescription,
		columnSkillsRequired, columnCategory, columnLocation,
		columnLatitude, columnLongitude, columnStipend, columnDuration,
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := range records {
		r := &records[i]
		row := []string{
			strconv.FormatInt(int64(r.Id), 10),
			r.Title,
			r.Company,
			r.Description,
			r.SkillsRequired,
			r.Category,
			r.Location,
			strconv.FormatFloat(r.Latitude, 'f', -1, 64),
			strconv.FormatFloat(r.Longitude, 'f', -1, 64),
			r.Stipend,
			strconv.Itoa(r.DurationMonths),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func parseInt(s string) int64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		slog.Debug("unparseable integer cell", "value", s)
		return 0
	}
	return v
}

func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		slog.Debug("unparseable float cell", "value", s)
		return 0
	}
	return v
}
