package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCanonCmd(a *app) *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "canon [NAME...]",
		Short: "Print names in canonical form",
		Long: `canon parses each name and prints it back in canonical form, one per line.
With no arguments, names are read from stdin one per line and blank lines are
skipped. With --check, names that are not already canonical are printed as
given and the command fails if there are any.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				sc := bufio.NewScanner(cmd.InOrStdin())
				for sc.Scan() {
					if line := strings.TrimRight(sc.Text(), "\r"); strings.TrimSpace(line) != "" {
						inputs = append(inputs, line)
					}
				}
				if err := sc.Err(); err != nil {
					return fmt.Errorf("failed to read names: %w", err)
				}
			}

			failed, changed := 0, 0
			for _, o := range a.naming.CanonicalizeAll(inputs) {
				if o.Err != nil {
					failed++
					fmt.Fprintln(cmd.ErrOrStderr(), errStyle.Render(o.Err.Error()))
					continue
				}
				switch {
				case !check:
					fmt.Fprintln(cmd.OutOrStdout(), o.Output)
				case o.Output != o.Input:
					changed++
					fmt.Fprintln(cmd.OutOrStdout(), o.Input)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d names failed to parse", failed, len(inputs))
			}
			if check && changed > 0 {
				return fmt.Errorf("%d of %d names are not canonical", changed, len(inputs))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "list names that are not canonical and fail if there are any")
	return cmd
}
