// Package cmd provides the root command and CLI setup for tsp.
package cmd

import (
	"os"
	"time"

	"github.com/maratik123/tsp/internal/aco"
	"github.com/maratik123/tsp/internal/adapter"
	"github.com/maratik123/tsp/internal/config"
	"github.com/maratik123/tsp/internal/controller"
	"github.com/maratik123/tsp/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Default solver parameters, used when neither flags nor a config file
// override them.
const (
	defaultAnts        = 50
	defaultIterations  = 100
	defaultEvaporation = 0.1
	defaultAlpha       = 0.9
	defaultBeta        = 1.5
)

var (
	outputFlag      string
	printApsFlag    bool
	filterFlag      string
	antsFlag        int
	iterationsFlag  int
	evaporationFlag float64
	alphaFlag       float64
	betaFlag        float64
	unfilteredFlag  bool
	imagesFlag      string
	minDistFlag     float64
	exceptFlag      []string
	seedFlag        int64
	parallelFlag    int
	configFlag      string
	plainFlag       bool
)

// workflowFactory builds the workflow behind a command. Tests substitute
// it to inject mocks.
var workflowFactory = defaultWorkflowFactory

func defaultWorkflowFactory(cmd *cobra.Command) domain.Workflow {
	ui := controller.NewUI(cmd, controller.IsTTY(os.Stdout) && !plainFlag)
	return domain.NewWorkflow(
		adapter.NewLocalSourceReader(),
		adapter.NewLocalFilterReader(),
		adapter.NewTourRenderer(),
		ui,
	)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tsp [cifp-file]",
		Short: "Shortest airport tour finder over CIFP data",
		Long: `Tsp reads airports from an ARINC 424 CIFP file and searches for the
shortest closed tour visiting every one of them, using an ant colony
optimization heuristic over great-circle distances.

The file argument is the CIFP data file; pass "-" to read from stdin.
Pass a filter file (one four-letter identifier per line) to restrict
the tour to selected airports.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(cmd)
			if err != nil {
				return err
			}

			return workflowFactory(cmd).Optimize(cmd.Context(), domain.OptimizeArgs{
				ListArgs: domain.ListArgs{
					Source:     args[0],
					Filter:     filterFlag,
					Unfiltered: unfilteredFlag,
				},
				PrintAirports: printApsFlag,
				Output:        outputFlag,
				Images:        imagesFlag,
				MinDist:       settings.MinDist,
				Except:        settings.Except,
				Params: aco.Params{
					Ants:        settings.Ants,
					Iterations:  settings.Iterations,
					Evaporation: settings.Evaporation,
					Alpha:       settings.Alpha,
					Beta:        settings.Beta,
					Seed:        settings.Seed,
					Workers:     settings.Parallel,
				},
			})
		},
	}

	cmd.PersistentFlags().StringVarP(&filterFlag, "filter", "f", "", "path of a filter file, one airport identifier per line")
	cmd.PersistentFlags().BoolVarP(&unfilteredFlag, "unfiltered", "u", false, "also display airports removed by the filter")
	cmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "plain text output even on a terminal")

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "also write the tour report to this file")
	cmd.Flags().BoolVarP(&printApsFlag, "print-aps", "p", false, "print the airport table before solving")
	cmd.Flags().IntVarP(&antsFlag, "ants", "a", defaultAnts, "number of ants per iteration")
	cmd.Flags().IntVarP(&iterationsFlag, "iterations", "i", defaultIterations, "number of iterations")
	cmd.Flags().Float64VarP(&evaporationFlag, "evaporation", "e", defaultEvaporation, "pheromone evaporation rate in [0,1]")
	cmd.Flags().Float64Var(&alphaFlag, "alpha", defaultAlpha, "pheromone weight exponent")
	cmd.Flags().Float64Var(&betaFlag, "beta", defaultBeta, "distance weight exponent")
	cmd.Flags().StringVar(&imagesFlag, "images", "", "directory to render the tour image into")
	cmd.Flags().Float64VarP(&minDistFlag, "min-dist", "m", 0, "minimum leg distance in km")
	cmd.Flags().StringSliceVar(&exceptFlag, "except", nil, "ICAO-ICAO pairs exempt from the minimum leg distance")
	cmd.Flags().Int64Var(&seedFlag, "seed", 0, "random seed; 0 picks one from the clock")
	cmd.Flags().IntVar(&parallelFlag, "parallel", 0, "number of parallel workers; 0 uses all cores")
	cmd.Flags().StringVar(&configFlag, "config", "", "path of a YAML file with solver settings")

	return cmd
}

// resolveSettings merges flag values with the optional config file.
// Flags the user set explicitly always win over file values.
func resolveSettings(cmd *cobra.Command) (config.Settings, error) {
	settings := config.Settings{
		Ants:        antsFlag,
		Iterations:  iterationsFlag,
		Evaporation: evaporationFlag,
		Alpha:       alphaFlag,
		Beta:        betaFlag,
		MinDist:     minDistFlag,
		Seed:        seedFlag,
		Parallel:    parallelFlag,
		Except:      exceptFlag,
	}

	if configFlag != "" {
		file, err := config.Load(configFlag)
		if err != nil {
			return config.Settings{}, err
		}
		settings = file.Merge(settings, explicitFlags(cmd))
	}

	if settings.Seed == 0 && !cmd.Flags().Changed("seed") {
		settings.Seed = time.Now().UnixNano()
	}

	return settings, nil
}

// explicitFlags returns the names of the flags set on the command line.
func explicitFlags(cmd *cobra.Command) map[string]bool {
	explicit := make(map[string]bool)
	cmd.Flags().Visit(func(f *pflag.Flag) {
		explicit[f.Name] = true
	})
	return explicit
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
