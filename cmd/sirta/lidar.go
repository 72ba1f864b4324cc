package main

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/banshee-data/sirta/internal/lidar"
	"github.com/banshee-data/sirta/internal/plotting"
	"github.com/banshee-data/sirta/internal/series"
	"github.com/banshee-data/sirta/internal/units"
)

// lidarFlags are the per-command overrides of the analysis config.
type lidarFlags struct {
	file   string
	height int
	unit   string
}

func (f *lidarFlags) register(cmd *cobra.Command, withHeight bool) {
	cmd.Flags().StringVar(&f.file, "lidar", "", "Lidar export file (overrides config)")
	if withHeight {
		cmd.Flags().IntVar(&f.height, "height", 0, "Sample height in metres (overrides config)")
		cmd.Flags().StringVar(&f.unit, "unit", "", "Speed unit: "+units.GetValidUnitsString()+" (overrides config)")
	}
}

// apply copies the changed flags onto the config and validates the result.
func (f *lidarFlags) apply(cmd *cobra.Command, a *app) error {
	if cmd.Flags().Changed("lidar") {
		a.cfg.LidarFile = &f.file
	}
	if cmd.Flags().Changed("height") {
		a.cfg.Height = &f.height
	}
	if cmd.Flags().Changed("unit") {
		a.cfg.Unit = &f.unit
	}
	return a.cfg.Validate()
}

func (a *app) readLidar() (*lidar.File, error) {
	path := a.cfg.GetLidarFile()
	f, err := lidar.ReadFile(a.fs, path)
	if err != nil {
		return nil, err
	}
	if first, last, ok := f.Span(); ok {
		a.log.Debugw("read lidar export", "path", path, "records", f.Len(),
			"first", first.Format(series.TimeLayout), "last", last.Format(series.TimeLayout))
	}
	return f, nil
}

// plotPath returns out when set, otherwise a file in a fresh timestamped
// directory under the configured output dir.
func (a *app) plotPath(out, stem, ext string) string {
	if out != "" {
		return out
	}
	dir := plotting.OutputDir(a.cfg.GetOutputDir(), a.cfg.GetLidarFile(), a.clock)
	return filepath.Join(dir, stem+"."+ext)
}

func newSeriesCmd(a *app) *cobra.Command {
	var (
		lf       lidarFlags
		from, to string
		out      string
	)
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Extract the wind speed series at one height",
		Long: `Extract the wind speed series at one height across the whole lidar export,
dropping missing samples together with their timestamps, and print summary
statistics. --from and --to (YYYY-MM-DD or YYYY-MM-DDTHH:MM) restrict it to
[from, to). --out writes the series as .csv or .xlsx.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := lf.apply(cmd, a); err != nil {
				return err
			}
			window, err := parseWindow(from, to)
			if err != nil {
				return err
			}
			f, err := a.readLidar()
			if err != nil {
				return err
			}
			s, err := f.Series(a.cfg.GetHeight())
			if err != nil {
				return err
			}
			if from != "" || to != "" {
				s = s.Between(window[0], window[1])
			}
			s = s.Convert(a.cfg.GetUnit())

			st := series.Summarize(s)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s: %d of %d samples valid\n", s.Name, st.Count, f.Len())
			if st.Count > 0 {
				label := units.Label(s.Unit)
				fmt.Fprintf(w, "span  %s to %s\n", st.First.Format(series.TimeLayout), st.Last.Format(series.TimeLayout))
				fmt.Fprintf(w, "min   %.2f %s\n", st.Min, label)
				fmt.Fprintf(w, "max   %.2f %s\n", st.Max, label)
				fmt.Fprintf(w, "mean  %.2f %s\n", st.Mean, label)
				fmt.Fprintf(w, "std   %.2f %s\n", st.StdDev, label)
			}

			if out == "" {
				return nil
			}
			return a.exportSeries(out, s)
		},
	}
	lf.register(cmd, true)
	cmd.Flags().StringVar(&from, "from", "", "Keep samples at or after this date")
	cmd.Flags().StringVar(&to, "to", "", "Keep samples before this date")
	cmd.Flags().StringVar(&out, "out", "", "Export the series to a .csv or .xlsx file")
	return cmd
}

// endOfTime closes a window whose --to bound is omitted.
var endOfTime = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

// parseWindow returns the [from, to) bounds of the series flags. An empty
// bound is open.
func parseWindow(from, to string) ([2]time.Time, error) {
	w := [2]time.Time{{}, endOfTime}
	for i, v := range []string{from, to} {
		if v == "" {
			continue
		}
		t, err := parseDate(v)
		if err != nil {
			return w, err
		}
		w[i] = t
	}
	if !w[0].Before(w[1]) {
		return w, fmt.Errorf("empty window: --from %s is not before --to %s", from, to)
	}
	return w, nil
}

func (a *app) exportSeries(path string, s series.Series) error {
	var write func(io.Writer, series.Series) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		write = series.WriteCSV
	case ".xlsx":
		write = series.WriteXLSX
	default:
		return fmt.Errorf("unsupported export format %q: want .csv or .xlsx", filepath.Ext(path))
	}

	w, err := a.fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(w, s); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	a.log.Infow("wrote series", "path", path, "samples", s.Len())
	return nil
}

func newProfileCmd(a *app) *cobra.Command {
	var (
		lf       lidarFlags
		logScale bool
		colorArg string
		out      string
	)
	cmd := &cobra.Command{
		Use:   "profile DATE...",
		Short: "Plot superposed vertical wind profiles",
		Long: `Plot the vertical wind profile recorded at each DATE (YYYY-MM-DDTHH:MM) on
one figure. The first profile is drawn with markers and a thick line.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := lf.apply(cmd, a); err != nil {
				return err
			}
			if cmd.Flags().Changed("log") {
				a.cfg.LogScale = &logScale
			}
			dates, err := parseDates(args)
			if err != nil {
				return err
			}

			colors := plotting.Palette(len(dates))
			if len(dates) == 1 || cmd.Flags().Changed("color") {
				name := a.cfg.GetColor()
				if cmd.Flags().Changed("color") {
					name = colorArg
				}
				c, err := plotting.ParseColor(name)
				if err != nil {
					return err
				}
				for i := range colors {
					colors[i] = c
				}
			}

			f, err := a.readLidar()
			if err != nil {
				return err
			}

			p := plotting.NewProfilePlot("Lidar wind profile", a.cfg.GetLogScale())
			for i, d := range dates {
				prof, err := f.Profile(d)
				if err != nil {
					return fmt.Errorf("profile at %s: %w", d.Format("2006-01-02 15:04"), err)
				}
				style := plotting.ProfileStyle{Color: colors[i], Emphasis: i == 0}
				if err := plotting.AddProfile(p, prof, style); err != nil {
					return err
				}
			}

			path := a.plotPath(out, "profile_"+dates[0].Format("20060102_1504"), a.cfg.GetPlotFormat())
			if err := plotting.Save(a.fs, p, path, plotting.ProfileWidth, plotting.ProfileHeight); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	lf.register(cmd, false)
	cmd.Flags().BoolVar(&logScale, "log", false, "Use a logarithmic height axis")
	cmd.Flags().StringVar(&colorArg, "color", "", "Colour of every profile (name, letter code or #rrggbb)")
	cmd.Flags().StringVar(&out, "out", "", "Output file; the extension selects png, svg or pdf")
	return cmd
}

func newDayCmd(a *app) *cobra.Command {
	var (
		lf   lidarFlags
		ref  string
		html bool
		out  string
	)
	cmd := &cobra.Command{
		Use:   "day DATE...",
		Short: "Plot complete days of wind speed at one height",
		Long: `Plot the wind speed at one height for each DATE against the hours elapsed
since that day's midnight, so the days superpose. --ref measures every day from
one reference date instead. Days with missing records are skipped with a warning.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := lf.apply(cmd, a); err != nil {
				return err
			}
			if cmd.Flags().Changed("ref") {
				a.cfg.ReferenceDate = &ref
				if err := a.cfg.Validate(); err != nil {
					return err
				}
			}
			dates, err := parseDates(args)
			if err != nil {
				return err
			}

			f, err := a.readLidar()
			if err != nil {
				return err
			}

			h, unit := a.cfg.GetHeight(), a.cfg.GetUnit()
			var days []series.Series
			for _, d := range dates {
				s, err := f.Day(d, h)
				if errors.Is(err, lidar.ErrIncompleteDay) {
					a.log.Warnw("skipping day", "date", d.Format("2006-01-02"), "error", err)
					continue
				}
				if err != nil {
					return err
				}
				days = append(days, s.Convert(unit))
			}
			if len(days) == 0 {
				return fmt.Errorf("no complete days to plot: %w", lidar.ErrIncompleteDay)
			}

			// Zero unless --ref or reference_date is set.
			refDate, _ := a.cfg.GetReferenceDate()
			title := fmt.Sprintf("Lidar wind speed at %d m", h)
			stem := fmt.Sprintf("day_%dm_%s", h, days[0].Times[0].Format("20060102"))

			var path string
			if html {
				path = a.plotPath(out, stem, "html")
				if err := a.writeDayHTML(path, title, unit, refDate, days); err != nil {
					return err
				}
			} else {
				p := plotting.NewDayPlot(title, unit, refDate)
				colors := dayColors(len(days))
				for i, s := range days {
					if err := plotting.AddDay(p, s, refDate, colors[i]); err != nil {
						return err
					}
				}
				path = a.plotPath(out, stem, a.cfg.GetPlotFormat())
				if err := plotting.Save(a.fs, p, path, plotting.DayWidth, plotting.DayHeight); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d days)\n", path, len(days))
			return nil
		},
	}
	lf.register(cmd, true)
	cmd.Flags().StringVar(&ref, "ref", "", "Measure hours from this date, YYYY-MM-DD, instead of each day's midnight (overrides config)")
	cmd.Flags().BoolVar(&html, "html", false, "Write an interactive HTML chart instead of an image")
	cmd.Flags().StringVar(&out, "out", "", "Output file")
	return cmd
}

// dayColors keeps a single day black and spreads several over the palette.
func dayColors(n int) []color.Color {
	if n == 1 {
		return []color.Color{color.Black}
	}
	return plotting.Palette(n)
}

func (a *app) writeDayHTML(path, title, unit string, ref time.Time, days []series.Series) error {
	if err := a.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	w, err := a.fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := plotting.DayChartHTML(w, title, unit, ref, days); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func newLocateCmd(a *app) *cobra.Command {
	var lf lidarFlags
	cmd := &cobra.Command{
		Use:   "locate DATE",
		Short: "Print the lidar record at a date-time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := lf.apply(cmd, a); err != nil {
				return err
			}
			d, err := parseDate(args[0])
			if err != nil {
				return err
			}
			f, err := a.readLidar()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if first, last, ok := f.Span(); ok {
				fmt.Fprintf(w, "file spans %s to %s (%d records)\n",
					first.Format(series.TimeLayout), last.Format(series.TimeLayout), f.Len())
			}

			idx, err := f.Locate(d)
			if err != nil {
				return err
			}
			rec := f.Records[idx]
			fmt.Fprintf(w, "record %d (line %d) at %s\n", idx, rec.Line, rec.Time.Format(series.TimeLayout))

			speeds, err := rec.Speeds()
			if err != nil {
				return err
			}
			for i, h := range lidar.Heights {
				fmt.Fprintf(w, "%4d m  %8.2f\n", h, speeds[i])
			}
			return nil
		},
	}
	lf.register(cmd, false)
	return cmd
}
