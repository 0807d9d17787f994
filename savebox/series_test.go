package savebox

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTestSeries(samples int) *Series {
	start := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	series := &Series{
		Name: "test",
		Columns: []Column{
			{Name: "ops"},
			{Name: "errs"},
		},
	}
	for i := 0; i < samples; i++ {
		series.Time = append(series.Time, start.Add(time.Duration(i)*time.Second))
		series.Columns[0].Values = append(series.Columns[0].Values, int64(i*i))
		series.Columns[1].Values = append(series.Columns[1].Values, int64(i%3))
	}

	return series
}

func TestSeriesValidate(t *testing.T) {
	for _, test := range []struct {
		name   string
		series *Series
		err    bool
	}{
		{
			name:   "WellFormed",
			series: makeTestSeries(10),
		},
		{
			name:   "NoSamples",
			series: &Series{Columns: []Column{{Name: "a"}}},
			err:    true,
		},
		{
			name:   "NoColumns",
			series: &Series{Time: []time.Time{time.Now()}},
			err:    true,
		},
		{
			name: "MisalignedColumn",
			series: &Series{
				Time:    []time.Time{time.Now(), time.Now()},
				Columns: []Column{{Name: "a", Values: []int64{1}}},
			},
			err: true,
		},
		{
			name: "DuplicateColumn",
			series: &Series{
				Time: []time.Time{time.Now()},
				Columns: []Column{
					{Name: "a", Values: []int64{1}},
					{Name: "a", Values: []int64{2}},
				},
			},
			err: true,
		},
		{
			name: "ReservedTimeColumn",
			series: &Series{
				Time:    []time.Time{time.Now()},
				Columns: []Column{{Name: "ts", Values: []int64{1}}},
			},
			err: true,
		},
		{
			name: "IllegalColumnName",
			series: &Series{
				Time:    []time.Time{time.Now()},
				Columns: []Column{{Name: "bad name", Values: []int64{1}}},
			},
			err: true,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			err := test.series.Validate()
			if test.err {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSeriesRoundTrip(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for _, format := range []DataFormat{FormatFTDC, FormatParquet} {
		t.Run(string(format), func(t *testing.T) {
			tmp := t.TempDir()
			series := makeTestSeries(25)

			path, err := SaveData(series, "series_"+string(format), SaveOptions{
				Path:   []string{tmp},
				Format: format,
			})
			require.NoError(t, err)
			assert.FileExists(t, path)

			result, err := LoadData(ctx, "series_"+string(format), tmp)
			require.NoError(t, err)
			assert.Equal(t, format, result.Format)
			assert.Nil(t, result.Document)
			require.NotNil(t, result.Series)

			loaded := result.Series
			assert.Equal(t, series.Len(), loaded.Len())
			assert.Equal(t, []string{"ops", "errs"}, loaded.ColumnNames())

			for i := range series.Time {
				assert.True(t, series.Time[i].Equal(loaded.Time[i]),
					"timestamp %d mismatch", i)
			}
			for i, col := range series.Columns {
				assert.Equal(t, col.Values, loaded.Columns[i].Values)
			}
		})
	}
}

func TestSeriesColumnAccess(t *testing.T) {
	series := makeTestSeries(5)

	vals, ok := series.Column("ops")
	assert.True(t, ok)
	assert.Len(t, vals, 5)

	_, ok = series.Column("missing")
	assert.False(t, ok)
}

func TestSaveInvalidSeries(t *testing.T) {
	tmp := t.TempDir()

	for _, format := range []DataFormat{FormatFTDC, FormatParquet} {
		_, err := SaveData(&Series{}, "empty", SaveOptions{Path: []string{tmp}, Format: format})
		assert.Error(t, err)
	}
}
