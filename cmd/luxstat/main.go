package main

import (
	"fmt"
	"os"

	"luxstat/adapters/console"
	"luxstat/app"
	"luxstat/internal"
	"luxstat/internal/config"
	"luxstat/ports"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load .env if present; environment wins over defaults.
	_ = godotenv.Load()

	var instrumental float64
	var profile bool

	rootCmd := &cobra.Command{
		Use:   "luxstat",
		Short: "Report a lux measurement series as value ± uncertainty",
		Long: `Collects lux-meter readings, computes mean and standard error,
combines with the instrument's uncertainty in quadrature, and reports the
result rounded to one significant figure of uncertainty.

Run without arguments for an interactive session.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := console.NewReader(cmd.InOrStdin(), cmd.OutOrStdout())
			return runSession(cmd, reader, instrumental, profile)
		},
	}

	reportCmd := &cobra.Command{
		Use:   "report [measurements...]",
		Short: "Run the pipeline on measurements given as arguments",
		Long: `Run the pipeline without prompting.

Example: luxstat report 5.0 5.2 4.8 5.1 --instrumental-uncertainty 0.1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := console.ParseValues(args)
			if err != nil {
				return err
			}
			return runSession(cmd, source, instrumental, profile)
		},
	}

	for _, cmd := range []*cobra.Command{rootCmd, reportCmd} {
		cmd.Flags().Float64Var(&instrumental, "instrumental-uncertainty", -1,
			"Instrument uncertainty in lux (default from environment, else 0.1)")
		cmd.Flags().BoolVar(&profile, "profile", false,
			"Print measurement-set diagnostics (range, quartiles, shape)")
	}

	rootCmd.AddCommand(reportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSession(cmd *cobra.Command, source ports.MeasurementSource, instrumental float64, profile bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("instrumental-uncertainty") {
		instrumental = cfg.InstrumentalUncertainty
	}
	if !cmd.Flags().Changed("profile") {
		profile = cfg.Profile
	}

	service := app.NewReportService(source, console.NewWriter(cmd.OutOrStdout()), internal.NewDefaultLogger())
	_, err = service.Run(cmd.Context(), app.ReportRequest{
		InstrumentalUncertainty: instrumental,
		IncludeProfile:          profile,
	})
	return err
}
