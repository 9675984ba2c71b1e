package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leandrodaf/haptic/sdk/contracts"
	"github.com/spf13/cobra"
)

// NewFireCommand creates the fire command.
func NewFireCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fire <cue>...",
		Short: "Fire one or more named cues in order",
		Example: `  hapticctl fire success
  hapticctl fire play pause --async`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withClient(func(client contracts.HapticClient) error {
				var unknown []string
				for _, name := range args {
					if !client.Fire(name) {
						unknown = append(unknown, name)
					}
				}
				if len(unknown) > 0 {
					return fmt.Errorf("unknown cue(s): %s (see hapticctl list)", strings.Join(unknown, ", "))
				}
				return nil
			})
		},
	}
}

// NewScrubCommand creates the scrub command.
func NewScrubCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scrub <intensity>",
		Short: "Fire a scrub tick for the given intensity",
		Long: `Fire a scrub tick. Intensities above 0.7 in magnitude give an
alignment pulse, anything else a generic one. Pass negative values after
"--", e.g. hapticctl scrub -- -0.8.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			intensity, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid intensity %q: %w", args[0], err)
			}
			return rootOpts.withClient(func(client contracts.HapticClient) error {
				client.Scrub(intensity)
				return nil
			})
		},
	}
}
