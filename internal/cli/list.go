package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/leandrodaf/haptic/sdk/haptic"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available cues and their pulse sequences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CUE\tPULSES\tDELAY")
			for _, name := range haptic.Cues() {
				seq, _ := haptic.Lookup(name)
				steps := seq.Steps()
				parts := make([]string, len(steps))
				for i, st := range steps {
					parts[i] = st.Strength.String()
					if i < len(steps)-1 && st.DelayAfter > 0 {
						parts[i] += " +" + st.DelayAfter.String()
					}
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", name, strings.Join(parts, ", "), seq.TotalDelay())
			}
			fmt.Fprintf(w, "scrub\t<alignment if |intensity| > 0.7, else generic>\t0s\n")
			return w.Flush()
		},
	}
}
