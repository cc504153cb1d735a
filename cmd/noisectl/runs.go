package main

import (
	"fmt"
	"os"

	"github.com/amaumene/syscallnoise/internal/domain"
	"github.com/amaumene/syscallnoise/internal/storage"
	"github.com/spf13/cobra"
)

const runListFormat = "ID: %s, Label: %s, Enabled: %t, Mode: %s, Rate: %d, Calls: %d, Achieved: %.1f Hz, Ratio: %.3f\n"

type runsOptions struct {
	dbPath    string
	label     string
	showStats bool
}

// runStats summarises a set of recorded runs by mode.
type runStats struct {
	Total     int
	Busy      int
	Paced     int
	Disabled  int
	MeanBusy  float64
	MeanPaced float64
	MeanRatio float64
}

func newRunsCmd() *cobra.Command {
	opts := &runsOptions{}

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded sample runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd)
		},
	}

	cmd.Flags().StringVar(&opts.dbPath, "db", "", "Database file written by sample --db")
	cmd.Flags().StringVar(&opts.label, "label", "", "Only list runs with this label")
	cmd.Flags().BoolVar(&opts.showStats, "stats", false, "Show only statistics")
	_ = cmd.MarkFlagRequired("db")
	return cmd
}

func (o *runsOptions) run(cmd *cobra.Command) error {
	if _, err := os.Stat(o.dbPath); os.IsNotExist(err) {
		return fmt.Errorf("database file %q does not exist", o.dbPath)
	}

	store, err := storage.Open(o.dbPath)
	if err != nil {
		return err
	}
	repo := storage.NewRunRepository(store)
	defer repo.Close()

	var runs []domain.RunSummary
	if o.label != "" {
		runs, err = repo.FindByLabel(cmd.Context(), o.label)
	} else {
		runs, err = repo.List(cmd.Context())
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if o.showStats {
		st := computeStats(runs)
		fmt.Fprintf(out, "Total: %d, Busy: %d, Paced: %d, Disabled: %d\n", st.Total, st.Busy, st.Paced, st.Disabled)
		fmt.Fprintf(out, "Mean busy: %.1f Hz, Mean paced: %.1f Hz, Mean paced ratio: %.3f\n", st.MeanBusy, st.MeanPaced, st.MeanRatio)
		return nil
	}
	for _, run := range runs {
		fmt.Fprintf(out, runListFormat, run.ID, run.Label, run.Enabled, run.Mode, run.RateHz, run.Calls, run.AchievedHz, run.Ratio)
	}
	return nil
}

func computeStats(runs []domain.RunSummary) runStats {
	var st runStats
	var busyHz, pacedHz, ratio float64
	for _, run := range runs {
		st.Total++
		switch {
		case !run.Enabled:
			st.Disabled++
		case run.Mode == domain.ModeBusy:
			st.Busy++
			busyHz += run.AchievedHz
		default:
			st.Paced++
			pacedHz += run.AchievedHz
			ratio += run.Ratio
		}
	}
	if st.Busy > 0 {
		st.MeanBusy = busyHz / float64(st.Busy)
	}
	if st.Paced > 0 {
		st.MeanPaced = pacedHz / float64(st.Paced)
		st.MeanRatio = ratio / float64(st.Paced)
	}
	return st
}
