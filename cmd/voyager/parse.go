package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"
)

func newParseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [text...]",
		Short: "Print the intent and entities found in the text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.env(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return writeJSON(e, e.parser.Parse(strings.Join(args, " ")))
		},
	}
}

func writeJSON(e *env, v any) error {
	enc := json.NewEncoder(e.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
