package mathbox

import (
	"github.com/aclements/go-moremath/stats"
	"github.com/pkg/errors"
)

// Summary holds descriptive statistics for a sample. The field set
// mirrors the rollups the toolbox reports for saved series.
type Summary struct {
	Count  int     `bson:"count" json:"count" yaml:"count"`
	Mean   float64 `bson:"mean" json:"mean" yaml:"mean"`
	Median float64 `bson:"median" json:"median" yaml:"median"`
	Min    float64 `bson:"min" json:"min" yaml:"min"`
	Max    float64 `bson:"max" json:"max" yaml:"max"`
	StdDev float64 `bson:"std_dev" json:"std_dev" yaml:"std_dev"`
	Sum    float64 `bson:"sum" json:"sum" yaml:"sum"`
	P10    float64 `bson:"p10" json:"p10" yaml:"p10"`
	P25    float64 `bson:"p25" json:"p25" yaml:"p25"`
	P75    float64 `bson:"p75" json:"p75" yaml:"p75"`
	P90    float64 `bson:"p90" json:"p90" yaml:"p90"`
}

// Describe computes summary statistics for the sample.
func Describe(xs []float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, errors.New("cannot describe an empty sample")
	}

	sample := stats.Sample{Xs: xs}
	min, max := sample.Bounds()

	return Summary{
		Count:  len(xs),
		Mean:   sample.Mean(),
		Median: sample.Quantile(0.5),
		Min:    min,
		Max:    max,
		StdDev: sample.StdDev(),
		Sum:    sample.Sum(),
		P10:    sample.Quantile(0.1),
		P25:    sample.Quantile(0.25),
		P75:    sample.Quantile(0.75),
		P90:    sample.Quantile(0.9),
	}, nil
}

// DescribeInts is a convenience wrapper for integer-valued samples,
// such as saved series columns.
func DescribeInts(vals []int64) (Summary, error) {
	xs := make([]float64, len(vals))
	for i := range vals {
		xs[i] = float64(vals[i])
	}

	return Describe(xs)
}
