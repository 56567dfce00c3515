package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(osSignal <-chan os.Signal) *cobra.Command {
	return &cobra.Command{
		Use:                   "serve",
		Short:                 "Serve the REST API until an interrupt signal is received",
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := initialise(cmd)
			if err != nil {
				return err
			}

			version, _ := getVersionHashAndTimestamp()
			printInfo(cmd, "catalog version %s", version)

			if err = app.di.Start(cmd.Context()); err != nil {
				return fmt.Errorf("could not start: %w", err)
			}

			printInfo(cmd, "serving on :%d", app.di.Config.HTTP.Port)

			<-osSignal

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			printInfo(cmd, "shutting down")

			return app.shutdown(ctx)
		},
	}
}
