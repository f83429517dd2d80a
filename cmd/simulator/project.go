package main

import (
	"github.com/arca/investment-simulator/internal/config"
	"github.com/arca/investment-simulator/internal/output"
	"github.com/arca/investment-simulator/internal/simulator"
	"github.com/spf13/cobra"
)

func newProjectCmd() *cobra.Command {
	var (
		raw        simulator.RawInput
		configPath string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project one investment plan and print the comparison",
		Example: "  simulator project --initial 1000 --monthly 500 --period 12\n" +
			"  simulator project --initial 1000 --monthly 500 --period 12 --format json",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(configPath)
			if err != nil {
				return err
			}
			sim, err := simulator.New(*cfg)
			if err != nil {
				return err
			}
			resp, err := sim.Simulate(raw)
			if err != nil {
				return err
			}
			return output.GenerateReport(cmd.OutOrStdout(), &resp, format)
		},
	}

	cmd.Flags().StringVar(&raw.InitialInvestment, "initial", "", "initial investment")
	cmd.Flags().StringVar(&raw.MonthlyInvestment, "monthly", "", "monthly contribution")
	cmd.Flags().StringVar(&raw.Period, "period", "", "term in months")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format: console or json")
	return cmd
}
