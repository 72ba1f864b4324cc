package anemometer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame(t *testing.T) {
	t0 := time.Date(2014, 12, 1, 6, 30, 0, 0, time.UTC)
	df := Frame([]Record{
		{Time: t0, U: 3, V: 4},
		{Time: t0.Add(10 * time.Minute), U: -6, V: 8},
	})
	require.NoError(t, df.Err)

	assert.Equal(t, []string{"time", "u", "v", "speed"}, df.Names())
	rows, cols := df.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 4, cols)

	assert.Equal(t, "2014-12-01 06:30:00", df.Col("time").Elem(0).String())
	assert.Equal(t, []float64{5, 10}, df.Col("speed").Float())
	assert.InDelta(t, -1.5, df.Col("u").Mean(), 1e-9)
}
