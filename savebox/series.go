package savebox

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	goparquet "github.com/fraugster/parquet-go"
	"github.com/fraugster/parquet-go/parquet"
	"github.com/fraugster/parquet-go/parquetschema"
	"github.com/mongodb/ftdc"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const seriesTimeKey = "ts"

// Series is a named set of integer-valued columns sharing a time base.
// It is the payload type of the columnar formats (ftdc, parquet).
type Series struct {
	Name    string
	Time    []time.Time
	Columns []Column
}

// Column is one named value sequence of a Series.
type Column struct {
	Name   string
	Values []int64
}

// Len returns the number of samples in the series.
func (s *Series) Len() int { return len(s.Time) }

// Column returns the values of the named column.
func (s *Series) Column(name string) ([]int64, bool) {
	for _, col := range s.Columns {
		if col.Name == name {
			return col.Values, true
		}
	}

	return nil, false
}

// ColumnNames returns the column names in order.
func (s *Series) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		names[i] = col.Name
	}

	return names
}

// Validate checks that the series is well formed: at least one sample,
// at least one column, aligned column lengths, and unique column names
// that are legal field identifiers.
func (s *Series) Validate() error {
	if len(s.Time) == 0 {
		return errors.New("series has no samples")
	}
	if len(s.Columns) == 0 {
		return errors.New("series has no columns")
	}

	seen := map[string]struct{}{seriesTimeKey: {}}
	for _, col := range s.Columns {
		if !isLegalColumnName(col.Name) {
			return errors.Errorf("illegal column name '%s'", col.Name)
		}
		if _, ok := seen[col.Name]; ok {
			return errors.Errorf("duplicate column name '%s'", col.Name)
		}
		seen[col.Name] = struct{}{}

		if len(col.Values) != len(s.Time) {
			return errors.Errorf("column '%s' has %d values for %d samples",
				col.Name, len(col.Values), len(s.Time))
		}
	}

	return nil
}

func isLegalColumnName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}

	return true
}

////////////////////////////////////////////////////////////////////////
//
// FTDC codec

func (s *Series) writeFTDC(w io.Writer) error {
	if err := s.Validate(); err != nil {
		return errors.Wrap(err, "validating series")
	}

	collector := ftdc.NewStreamingCollector(s.Len(), w)
	for i := range s.Time {
		doc := bson.D{{Key: seriesTimeKey, Value: s.Time[i]}}
		for _, col := range s.Columns {
			doc = append(doc, bson.E{Key: col.Name, Value: col.Values[i]})
		}

		if err := collector.Add(doc); err != nil {
			return errors.Wrapf(err, "collecting sample %d", i)
		}
	}

	return errors.Wrap(ftdc.FlushCollector(collector, w), "flushing collector")
}

func readSeriesFTDC(ctx context.Context, r io.Reader, name string) (*Series, error) {
	series := &Series{Name: name}
	columns := map[string]int{}

	iter := ftdc.ReadChunks(ctx, r)
	defer iter.Close()

	for iter.Next() {
		chunk := iter.Chunk()
		for _, metric := range chunk.Metrics {
			key := metric.Key()
			if key == seriesTimeKey {
				for _, v := range metric.Values {
					series.Time = append(series.Time, time.UnixMilli(v).UTC())
				}
				continue
			}

			idx, ok := columns[key]
			if !ok {
				idx = len(series.Columns)
				columns[key] = idx
				series.Columns = append(series.Columns, Column{Name: key})
			}
			series.Columns[idx].Values = append(series.Columns[idx].Values, metric.Values...)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating chunks")
	}

	if err := series.Validate(); err != nil {
		return nil, errors.Wrap(err, "file did not contain a well formed series")
	}

	return series, nil
}

////////////////////////////////////////////////////////////////////////
//
// Parquet codec

func (s *Series) parquetSchema() (*parquetschema.SchemaDefinition, error) {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "message series {\n  required int64 %s;\n", seriesTimeKey)
	for _, col := range s.Columns {
		fmt.Fprintf(sb, "  required int64 %s;\n", col.Name)
	}
	sb.WriteString("}")

	def, err := parquetschema.ParseSchemaDefinition(sb.String())
	return def, errors.Wrap(err, "building parquet schema")
}

func (s *Series) writeParquet(w io.Writer) error {
	if err := s.Validate(); err != nil {
		return errors.Wrap(err, "validating series")
	}

	def, err := s.parquetSchema()
	if err != nil {
		return err
	}

	fw := goparquet.NewFileWriter(w,
		goparquet.WithSchemaDefinition(def),
		goparquet.WithCompressionCodec(parquet.CompressionCodec_SNAPPY),
	)

	for i := range s.Time {
		row := map[string]interface{}{seriesTimeKey: s.Time[i].UnixMilli()}
		for _, col := range s.Columns {
			row[col.Name] = col.Values[i]
		}

		if err := fw.AddData(row); err != nil {
			return errors.Wrapf(err, "writing row %d", i)
		}
	}

	return errors.Wrap(fw.Close(), "closing parquet writer")
}

func readSeriesParquet(r io.ReadSeeker, name string) (*Series, error) {
	fr, err := goparquet.NewFileReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "opening parquet file")
	}

	series := &Series{Name: name}
	for _, child := range fr.GetSchemaDefinition().RootColumn.Children {
		if child.SchemaElement.Name == seriesTimeKey {
			continue
		}
		series.Columns = append(series.Columns, Column{Name: child.SchemaElement.Name})
	}

	for {
		row, err := fr.NextRow()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading parquet row")
		}

		ms, ok := row[seriesTimeKey].(int64)
		if !ok {
			return nil, errors.Errorf("row %d is missing the time column", series.Len())
		}
		series.Time = append(series.Time, time.UnixMilli(ms).UTC())

		for i := range series.Columns {
			v, ok := row[series.Columns[i].Name].(int64)
			if !ok {
				return nil, errors.Errorf("row %d is missing column '%s'",
					series.Len()-1, series.Columns[i].Name)
			}
			series.Columns[i].Values = append(series.Columns[i].Values, v)
		}
	}

	if err := series.Validate(); err != nil {
		return nil, errors.Wrap(err, "file did not contain a well formed series")
	}

	return series, nil
}
