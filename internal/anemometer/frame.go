package anemometer

import (
	"github.com/go-gota/gota/dataframe"
	gseries "github.com/go-gota/gota/series"
)

// Frame returns the records as a data frame with time, u, v and speed columns.
func Frame(records []Record) dataframe.DataFrame {
	times := make([]string, len(records))
	u := make([]float64, len(records))
	v := make([]float64, len(records))
	speed := make([]float64, len(records))
	for i, r := range records {
		times[i] = r.Time.Format(TimeLayout)
		u[i] = r.U
		v[i] = r.V
		speed[i] = r.Speed()
	}

	return dataframe.New(
		gseries.New(times, gseries.String, "time"),
		gseries.New(u, gseries.Float, "u"),
		gseries.New(v, gseries.Float, "v"),
		gseries.New(speed, gseries.Float, "speed"),
	)
}
