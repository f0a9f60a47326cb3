package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPlanCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "plan [text...]",
		Short: "Build an itinerary and print it as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.env(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			res := e.parser.Parse(strings.Join(args, " "))
			plan := e.planner.Plan(res.Entities)
			e.log.Debug("Plan built", zap.String("intent", string(res.Intent)), zap.String("status", string(plan.Status)))
			return writeJSON(e, plan)
		},
	}
}
