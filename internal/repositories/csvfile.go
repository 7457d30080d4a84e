package repositories

import (
	"context"
	"encoding/csv"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"seasonal-weather-api/config"
	"seasonal-weather-api/internal/models"
	"seasonal-weather-api/pkg/observe"
)

const utf8BOM = "\ufeff"

type CSVOptions struct {
	DataDir    string
	FileSuffix string
	Encoding   string
}

// CSVRepository reads <DataDir>/<city>/<city><FileSuffix> on every call. Nothing is cached.
type CSVRepository struct {
	opts CSVOptions
	l    *observe.Logger
}

func NewCSVRepository(opts CSVOptions, l *observe.Logger) *CSVRepository {
	if opts.Encoding == "" {
		opts.Encoding = config.EncodingEUCKR
	}
	return &CSVRepository{
		opts: opts,
		l:    l,
	}
}

func (r *CSVRepository) Name() string {
	return "csv"
}

// Path returns the directory and file the repository reads for city.
func (r *CSVRepository) Path(city string) (dir, file string) {
	dir = filepath.Join(r.opts.DataDir, city)
	file = filepath.Join(dir, city+r.opts.FileSuffix)
	return dir, file
}

func (r *CSVRepository) LoadTable(ctx context.Context, city string) (*models.WeatherTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir, path := r.Path(city)

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			return nil, errors.WithStack(&NotFoundError{Path: dir, IsDir: true})
		}
		return nil, errors.Wrapf(err, "stat %s", dir)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.WithStack(&NotFoundError{Path: path})
		}
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	r.l.Debug("reading climate csv", map[string]any{
		"city":     city,
		"path":     path,
		"encoding": r.opts.Encoding,
	})

	table, err := parseTable(transform.NewReader(f, r.decoder().NewDecoder()), path)
	if err != nil {
		return nil, err
	}

	observe.ClimateTableRows.WithLabelValues(city).Set(float64(len(table.Observations)))
	r.l.Debug("parsed climate csv", map[string]any{
		"city":     city,
		"rows":     len(table.Observations),
		"has_date": table.HasDate,
	})

	return table, nil
}

func (r *CSVRepository) decoder() encoding.Encoding {
	if r.opts.Encoding == config.EncodingUTF8 {
		return unicode.UTF8
	}
	return korean.EUCKR
}

// parseTable reads the header row and converts every record into an Observation.
// Only the date column and models.MeasurementColumns are kept.
func parseTable(src io.Reader, path string) (*models.WeatherTable, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.WithStack(&ParseError{Path: path, Err: errors.New("empty file")})
		}
		return nil, errors.WithStack(&ParseError{Path: path, Err: err})
	}
	if err := checkDecoded(header); err != nil {
		return nil, errors.WithStack(&ParseError{Path: path, Line: 1, Err: err})
	}

	dateIdx := -1
	colIdx := make(map[models.Column]int, len(models.MeasurementColumns))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, utf8BOM))
		col := models.Column(name)
		if col == models.ColumnDate && dateIdx < 0 {
			dateIdx = i
			continue
		}
		for _, mc := range models.MeasurementColumns {
			if col == mc {
				if _, seen := colIdx[mc]; !seen {
					colIdx[mc] = i
				}
			}
		}
	}

	table := &models.WeatherTable{
		HasDate: dateIdx >= 0,
		Columns: make(map[models.Column]bool, len(colIdx)+1),
	}
	if table.HasDate {
		table.Columns[models.ColumnDate] = true
	}
	for col := range colIdx {
		table.Columns[col] = true
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// *csv.ParseError already carries the line number
			return nil, errors.WithStack(&ParseError{Path: path, Err: err})
		}
		line, _ := reader.FieldPos(0)
		if err := checkDecoded(record); err != nil {
			return nil, errors.WithStack(&ParseError{Path: path, Line: line, Err: err})
		}

		obs := models.Observation{Values: make(map[models.Column]*float64, len(colIdx))}
		if dateIdx >= 0 && dateIdx < len(record) {
			obs.Date = strings.TrimSpace(record[dateIdx])
		}
		for col, idx := range colIdx {
			if idx >= len(record) {
				continue
			}
			v, err := parseValue(record[idx])
			if err != nil {
				return nil, errors.WithStack(&ParseError{Path: path, Line: line, Err: errors.Wrapf(err, "column %s", col)})
			}
			obs.Values[col] = v
		}
		table.Observations = append(table.Observations, obs)
	}

	return table, nil
}

// parseValue returns nil for an empty cell.
func parseValue(cell string) (*float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// x/text decoders substitute U+FFFD for bytes that are invalid in the source encoding.
func checkDecoded(fields []string) error {
	for _, f := range fields {
		if strings.ContainsRune(f, '\uFFFD') {
			return errors.New("invalid byte sequence for declared encoding")
		}
	}
	return nil
}
