package main

import (
	"encoding/json"
	"fmt"

	"github.com/amaumene/syscallnoise/internal/config"
	"github.com/amaumene/syscallnoise/internal/handler"
	"github.com/spf13/cobra"
)

type configView struct {
	Emitter handler.EffectiveConfig `json:"emitter"`
	Log     config.LogSettings      `json:"log"`
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the configuration the library would use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := configView{
				Emitter: handler.NewEffectiveConfig(config.Enabled(), config.RateHz()),
				Log:     config.LoadLogSettings(),
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(view); err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			return nil
		},
	}
}
