package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/amaumene/syscallnoise/internal/config"
	"github.com/amaumene/syscallnoise/internal/domain"
	"github.com/amaumene/syscallnoise/internal/sampler"
	"github.com/amaumene/syscallnoise/internal/storage"
	"github.com/spf13/cobra"
)

type sampleOptions struct {
	rateHz int64
	window time.Duration
	label  string
	dbPath string
}

func newSampleCmd() *cobra.Command {
	opts := &sampleOptions{}

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Measure the achieved call rate over a window",
		Long: `Runs the emitter for --window and prints a JSON run summary.
With NOISE_ENABLE=0 nothing is emitted, which records a baseline run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.rateHz, "rate", 1000, "Calls per second, clamped to [0, 1e9]; 0 is busy mode")
	cmd.Flags().DurationVar(&opts.window, "window", 5*time.Second, "How long to sample")
	cmd.Flags().StringVar(&opts.label, "label", "", "Label stored with the run")
	cmd.Flags().StringVar(&opts.dbPath, "db", "", "Record the run in this database file")
	return cmd
}

func (o *sampleOptions) run(cmd *cobra.Command) error {
	var repo domain.RunRepository
	if o.dbPath != "" {
		store, err := storage.Open(o.dbPath)
		if err != nil {
			return err
		}
		repo = storage.NewRunRepository(store)
		defer repo.Close()
	}

	run, err := sampler.New(repo).Sample(cmd.Context(), sampler.Request{
		Label:   o.label,
		Enabled: config.Enabled(),
		RateHz:  resolveRate(cmd, o.rateHz),
		Window:  o.window,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(run); err != nil {
		return fmt.Errorf("encoding run: %w", err)
	}
	return nil
}
