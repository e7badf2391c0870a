package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/relink/internal/ui/style"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Compile and link every configured program once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			results, err := c.app.Check(cmd.Context(), options(cmd))

			out := cmd.OutOrStdout()
			linked := 0
			for _, r := range results {
				_, _ = fmt.Fprintln(out, style.Status(r.OK(), r.Program))
				if r.OK() {
					linked++
					continue
				}
				_, _ = fmt.Fprintln(out, "  "+style.Muted.Render(r.Err.Error()))
			}
			if len(results) > 0 {
				_, _ = fmt.Fprintln(out, style.Muted.Render(fmt.Sprintf("%d of %d programs linked", linked, len(results))))
			}

			return err
		},
	}
}
