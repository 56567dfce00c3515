package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the data of a Context with its seed",
		Long: `Seeding is only useful together with a configured repository.data_dir,
otherwise the data is lost as soon as the command returns.`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	seedCmd.AddCommand(
		&cobra.Command{
			Use:                   "dealership",
			Short:                 "Fill brands and cars with the fixtures",
			Args:                  cobra.NoArgs,
			DisableFlagsInUseLine: true,
			RunE: func(cmd *cobra.Command, _ []string) error {
				app, err := initialise(cmd)
				if err != nil {
					return err
				}
				defer app.shutdown(cmd.Context()) //nolint:errcheck // nothing to do on shutdown errors

				msg, err := app.dealership.Seed(cmd.Context())
				if err != nil {
					return fmt.Errorf("%w", err)
				}

				printInfo(cmd, "%s", msg)

				return nil
			},
		},
		newSeedPokedexCmd(),
	)

	return seedCmd
}

func newSeedPokedexCmd() *cobra.Command {
	const urlFlag = "url"

	pokedexCmd := &cobra.Command{
		Use:   "pokedex",
		Short: "Load all pokemon from the PokeAPI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			url, _ := cmd.Flags().GetString(urlFlag)

			app, err := initialise(cmd)
			if err != nil {
				return err
			}
			defer app.shutdown(cmd.Context()) //nolint:errcheck // nothing to do on shutdown errors

			msg, err := app.pokedex.Seed(cmd.Context(), url)
			if err != nil {
				return fmt.Errorf("%w", err)
			}

			printInfo(cmd, "%s", msg)

			return nil
		},
	}

	pokedexCmd.Flags().String(urlFlag, "", "listing to load instead of the configured pokedex.seed_url")

	return pokedexCmd
}
