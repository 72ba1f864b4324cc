package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/banshee-data/sirta/internal/anemometer"
)

func newAnemoCmd(a *app) *cobra.Command {
	var (
		describe bool
		csvOut   string
	)
	cmd := &cobra.Command{
		Use:   "anemo [FILE]",
		Short: "Read an anemometer log",
		Long:  "Read an anemometer log, skipping rows whose u component is nan, and report the record count.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.GetAnemometerFile()
			if len(args) == 1 {
				path = args[0]
			}

			records, err := anemometer.ReadFile(a.fs, path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d records\n", path, len(records))
			if len(records) > 0 {
				fmt.Fprintf(out, "from %s to %s\n",
					records[0].Time.Format(anemometer.TimeLayout),
					records[len(records)-1].Time.Format(anemometer.TimeLayout))
			}

			df := anemometer.Frame(records)
			if describe && len(records) > 0 {
				fmt.Fprintln(out, df.Describe())
			}
			if csvOut != "" {
				w, err := a.fs.Create(csvOut)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", csvOut, err)
				}
				if err := df.WriteCSV(w); err != nil {
					w.Close()
					return fmt.Errorf("failed to write %s: %w", csvOut, err)
				}
				if err := w.Close(); err != nil {
					return err
				}
				a.log.Infow("wrote anemometer CSV", "path", csvOut, "records", len(records))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&describe, "describe", false, "Print summary statistics of u, v and speed")
	cmd.Flags().StringVar(&csvOut, "csv", "", "Write the cleaned records to this CSV file")
	return cmd
}
