// Package cmd contains the command line interface of the catalog.
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color" //nolint:misspell
	"github.com/spf13/cobra"

	"github.com/go-arrower/catalog"
	dealership "github.com/go-arrower/catalog/contexts/dealership/init"
	pokedex "github.com/go-arrower/catalog/contexts/pokedex/init"
)

const configFlag = "config"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "catalog",
		Short: "catalog serves cars, brands and pokemon from in memory collections.",
		Long: `A small catalog service with a REST API under /api.
Every value of the configuration can be set by an environment variable with the prefix CATALOG_.`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP(configFlag, "c", "", "path to a config file")

	return rootCmd
}

// NewCatalogCLI initialises the complete catalog cli with its commands and returns the root command.
func NewCatalogCLI(osSignal <-chan os.Signal) *cobra.Command {
	rootCmd := newRootCmd()
	rootCmd.AddCommand(Version("catalog"))
	rootCmd.AddCommand(newServeCmd(osSignal))
	rootCmd.AddCommand(newSeedCmd())

	return rootCmd
}

// Execute runs the catalog cli.
func Execute() {
	if err := NewCatalogCLI(NewInterruptSignalChannel()).Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

// NewInterruptSignalChannel returns a channel listening for os.Signals the catalog will react to.
func NewInterruptSignalChannel() chan os.Signal {
	signalsToListenTo := []os.Signal{
		syscall.SIGINT,                   // Strg + c
		syscall.SIGTERM, syscall.SIGQUIT, // terminate but finish/cleanup first, e.g. kill
		os.Interrupt,
	}

	osSignal := make(chan os.Signal, 1)
	signal.Notify(osSignal, signalsToListenTo...)

	return osSignal
}

// contexts holds all initialised Contexts of the catalog.
type contexts struct {
	di         *catalog.Container
	dealership *dealership.DealershipContext
	pokedex    *pokedex.PokedexContext
}

func (c *contexts) shutdown(ctx context.Context) error {
	_ = c.dealership.Shutdown(ctx)
	_ = c.pokedex.Shutdown(ctx)

	return c.di.Shutdown(ctx) //nolint:wrapcheck // container error is descriptive already
}

// initialise loads the configuration given by the flags and sets up all Contexts.
func initialise(cmd *cobra.Command) (*contexts, error) {
	file, _ := cmd.Flags().GetString(configFlag)

	conf, err := catalog.DefaultViper().Load(file)
	if err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}

	ctx := cmd.Context()

	di, err := catalog.InitialiseDefaultDependencies(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("could not initialise dependencies: %w", err)
	}

	dc, err := dealership.NewDealershipContext(ctx, di)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	pc, err := pokedex.NewPokedexContext(ctx, di)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &contexts{di: di, dealership: dc, pokedex: pc}, nil
}

func printInfo(cmd *cobra.Command, format string, args ...any) {
	color.New(color.FgBlue, color.Bold).Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}
