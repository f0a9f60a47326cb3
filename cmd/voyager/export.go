package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"voyager/internal/services"
)

func newExportCmd(opts *options) *cobra.Command {
	var (
		format string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "export [text...]",
		Short: "Render an itinerary as markdown or PDF",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.env(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			plan := e.planner.Plan(e.parser.Parse(strings.Join(args, " ")).Entities)
			if !plan.Ready() {
				return fmt.Errorf("cannot export: %s", plan.Ask)
			}

			doc, err := services.NewExportService(e.log).Render(plan, format)
			if err != nil {
				return err
			}
			if out == "" {
				if doc.ContentType == "application/pdf" {
					return fmt.Errorf("--out is required for pdf")
				}
				_, err = e.out.Write(doc.Body)
				return err
			}
			if out == "-" {
				out = doc.Filename
			}
			if err := os.WriteFile(out, doc.Body, 0o644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "wrote", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", services.FormatMarkdown, "markdown or pdf")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file; \"-\" uses the suggested file name")
	return cmd
}
