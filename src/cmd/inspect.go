package cmd

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/contre95/namer/src/features/naming"
	"github.com/contre95/namer/src/names"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Width(11).Foreground(lipgloss.Color("12"))
	inputStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// inspection is the printable breakdown of one name.
type inspection struct {
	Input      string   `yaml:"input"`
	Strategy   string   `yaml:"strategy,omitempty"`
	Parts      []int    `yaml:"parts,omitempty,flow"`
	Date       string   `yaml:"date,omitempty"`
	Title      string   `yaml:"title"`
	Attributes []string `yaml:"attributes,omitempty,flow"`
	Suffix     string   `yaml:"suffix,omitempty"`
	Canonical  string   `yaml:"canonical,omitempty"`
	Error      string   `yaml:"error,omitempty"`
}

func newInspectCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "inspect NAME...",
		Short: "Show how names break down into parts, title, attributes and suffix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "text" && output != "yaml" {
				return fmt.Errorf("unknown output %q, use text or yaml", output)
			}
			r := a.naming.Rules()
			var results []inspection
			failed := 0
			for _, in := range args {
				res, err := a.naming.Parse(in)
				if err != nil {
					failed++
					results = append(results, inspection{Input: in, Error: err.Error()})
					continue
				}
				results = append(results, inspect(res, r))
			}

			if output == "yaml" {
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(results); err != nil {
					return fmt.Errorf("failed to encode yaml: %w", err)
				}
				if err := enc.Close(); err != nil {
					return err
				}
			} else {
				for i, res := range results {
					if i > 0 {
						fmt.Fprintln(cmd.OutOrStdout())
					}
					printInspection(cmd.OutOrStdout(), res)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d names failed to parse", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text or yaml")
	return cmd
}

func inspect(res naming.Result, r *names.Rules) inspection {
	out := inspection{
		Input:      res.Input,
		Strategy:   string(res.Strategy),
		Title:      res.Name.Title,
		Attributes: slices.Collect(res.Name.Attributes.Fragments(r)),
		Suffix:     res.Name.Suffix,
		Canonical:  res.Canonical(r),
	}
	for _, v := range [...]int{res.Parts.Top, res.Parts.Mid, res.Parts.Bottom} {
		if v != names.None {
			out.Parts = append(out.Parts, v)
		}
	}
	if res.Strategy == naming.StrategyDate {
		out.Date = names.FormatDateTime(res.Date, res.Precision, r)
	}
	return out
}

func printInspection(w io.Writer, res inspection) {
	fmt.Fprintln(w, inputStyle.Render(res.Input))
	if res.Error != "" {
		fmt.Fprintln(w, labelStyle.Render("error")+errStyle.Render(res.Error))
		return
	}
	row := func(label, value string) {
		if value != "" {
			fmt.Fprintln(w, labelStyle.Render(label)+value)
		}
	}
	row("strategy", res.Strategy)
	if len(res.Parts) > 0 {
		row("parts", fmt.Sprint(res.Parts))
	}
	row("date", res.Date)
	row("title", fmt.Sprintf("%q", res.Title))
	for _, f := range res.Attributes {
		row("attribute", f)
	}
	row("suffix", res.Suffix)
	row("canonical", res.Canonical)
}
