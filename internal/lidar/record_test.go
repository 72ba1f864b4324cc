package lidar

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/sirta/internal/testutil"
)

func TestHeightField(t *testing.T) {
	tests := []struct {
		height int
		want   int
	}{
		{40, 16},
		{80, 18},
		{180, 23},
		{250, 26},
	}
	for _, tt := range tests {
		got, err := HeightField(tt.height)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "height %d", tt.height)
	}

	_, err := HeightField(100)
	assert.ErrorIs(t, err, ErrUnknownHeight)
}

func TestParseLine(t *testing.T) {
	ts := time.Date(2014, 12, 1, 13, 20, 0, 0, time.UTC)
	line := testutil.LidarLine(ts, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)

	rec, err := ParseLine(line+"\r", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, rec.Line)
	assert.Equal(t, ts, rec.Time)
	assert.Len(t, rec.Fields, MinFields)

	speeds, err := rec.Speeds()
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, speeds); diff != "" {
		t.Errorf("Speeds() mismatch (-want +got):\n%s", diff)
	}

	v, err := rec.Speed(225)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)
}

func TestParseLine_Errors(t *testing.T) {
	ts := time.Date(2014, 12, 1, 0, 0, 0, 0, time.UTC)
	full := testutil.LidarLine(ts, 5)

	t.Run("short", func(t *testing.T) {
		short := strings.Join(strings.Split(full, ",")[:20], ",")
		_, err := ParseLine(short, 3)
		assert.ErrorIs(t, err, ErrShortRecord)
		assert.Contains(t, err.Error(), "line 3")
	})

	t.Run("bad hour", func(t *testing.T) {
		fields := strings.Split(full, ",")
		fields[3] = "1.95"
		_, err := ParseLine(strings.Join(fields, ","), 4)
		assert.ErrorIs(t, err, ErrMinuteOverflow)
		assert.Contains(t, err.Error(), "line 4")
	})

	t.Run("bad speed surfaces on access", func(t *testing.T) {
		fields := strings.Split(full, ",")
		fields[18] = "n/a"
		rec, err := ParseLine(strings.Join(fields, ","), 5)
		require.NoError(t, err)
		_, err = rec.Speed(80)
		assert.Error(t, err)
		_, err = rec.Speeds()
		assert.Error(t, err)
	})
}
