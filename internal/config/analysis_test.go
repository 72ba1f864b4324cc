package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyAnalysisConfig_Defaults(t *testing.T) {
	cfg := EmptyAnalysisConfig()

	assert.Equal(t, DefaultAnemometerFile, cfg.GetAnemometerFile())
	assert.Equal(t, DefaultLidarFile, cfg.GetLidarFile())
	assert.Equal(t, 80, cfg.GetHeight())
	_, ok := cfg.GetReferenceDate()
	assert.False(t, ok, "day plots default to each day's own midnight")
	assert.Equal(t, "mps", cfg.GetUnit())
	assert.Equal(t, "plots", cfg.GetOutputDir())
	assert.Equal(t, "png", cfg.GetPlotFormat())
	assert.Equal(t, "k", cfg.GetColor())
	assert.False(t, cfg.GetLogScale())
	assert.NoError(t, cfg.Validate())
}

func TestMustLoadDefaultConfig(t *testing.T) {
	cfg := MustLoadDefaultConfig()

	require.NotNil(t, cfg.Height)
	assert.Equal(t, 80, *cfg.Height)
	require.NotNil(t, cfg.LidarFile)
	assert.Equal(t, DefaultLidarFile, *cfg.LidarFile)
	assert.Nil(t, cfg.ReferenceDate)
}

func TestLoadAnalysisConfig_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	body := `{
  "lidar_file": "/data/lidar.txt",
  "height": 120,
  "unit": "kn",
  "log_scale": true
}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := LoadAnalysisConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/lidar.txt", cfg.GetLidarFile())
	assert.Equal(t, 120, cfg.GetHeight())
	assert.Equal(t, "kn", cfg.GetUnit())
	assert.True(t, cfg.GetLogScale())

	// Omitted fields keep their defaults.
	assert.Nil(t, cfg.OutputDir)
	assert.Equal(t, DefaultOutputDir, cfg.GetOutputDir())
}

func TestLoadAnalysisConfig_YAML(t *testing.T) {
	for _, ext := range []string{".yaml", ".yml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "run"+ext)
			body := "anemometer_file: anemo.csv\nheight: 250\nreference_date: \"2015-03-01\"\nplot_format: svg\ncolor: steelblue\n"
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))

			cfg, err := LoadAnalysisConfig(path)
			require.NoError(t, err)
			assert.Equal(t, "anemo.csv", cfg.GetAnemometerFile())
			assert.Equal(t, 250, cfg.GetHeight())
			ref, ok := cfg.GetReferenceDate()
			assert.True(t, ok)
			assert.Equal(t, time.Date(2015, 3, 1, 0, 0, 0, 0, time.UTC), ref)
			assert.Equal(t, "svg", cfg.GetPlotFormat())
			assert.Equal(t, "steelblue", cfg.GetColor())
		})
	}
}

func TestLoadAnalysisConfig_Errors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
		return path
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"wrong extension", write("run.toml", "height = 80"), "extension"},
		{"missing file", filepath.Join(dir, "absent.json"), "stat"},
		{"bad json", write("bad.json", "{"), "parse config JSON"},
		{"bad yaml", write("bad.yaml", "height: [80"), "parse config YAML"},
		{"unknown height", write("h.json", `{"height": 100}`), "height"},
		{"bad unit", write("u.json", `{"unit": "furlongs"}`), "unit must be one of"},
		{"bad date", write("d.json", `{"reference_date": "01/12/2014"}`), "reference_date"},
		{"bad format", write("f.json", `{"plot_format": "gif"}`), "plot_format"},
		{"too large", write("big.json", `{"color": "`+strings.Repeat("a", 1<<20)+`"}`), "too large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadAnalysisConfig(tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SIRTA_HEIGHT", "200")
	t.Setenv("SIRTA_UNIT", "kmph")
	t.Setenv("SIRTA_LOG_SCALE", "true")

	lidarFile := "from-file.txt"
	cfg := &AnalysisConfig{LidarFile: &lidarFile}
	require.NoError(t, cfg.ApplyEnv(EnvPrefix))

	assert.Equal(t, 200, cfg.GetHeight())
	assert.Equal(t, "kmph", cfg.GetUnit())
	assert.True(t, cfg.GetLogScale())
	assert.Equal(t, "from-file.txt", cfg.GetLidarFile())
	assert.Nil(t, cfg.OutputDir)
}

func TestApplyEnv_Invalid(t *testing.T) {
	t.Run("not a number", func(t *testing.T) {
		t.Setenv("SIRTA_HEIGHT", "high")
		assert.Error(t, EmptyAnalysisConfig().ApplyEnv(EnvPrefix))
	})
	t.Run("unknown height", func(t *testing.T) {
		t.Setenv("SIRTA_HEIGHT", "90")
		assert.Error(t, EmptyAnalysisConfig().ApplyEnv(EnvPrefix))
	})
}
