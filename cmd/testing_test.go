package cmd_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/go-arrower/catalog/cmd"
)

var errSeedFailed = errors.New("seed failed")

func TestTestExecute(t *testing.T) {
	t.Parallel()

	t.Run("captures stdout and stderr", func(t *testing.T) {
		t.Parallel()

		seedCmd := &cobra.Command{Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "seeding brands")
			fmt.Fprintln(cmd.ErrOrStderr(), "no cars given")
		}}

		output, err := cmd.TestExecute(t, seedCmd)
		assert.NoError(t, err)
		assert.Contains(t, output, "seeding brands")
		assert.Contains(t, output, "no cars given")
	})

	t.Run("passes args", func(t *testing.T) {
		t.Parallel()

		var got []string

		seedCmd := &cobra.Command{Run: func(_ *cobra.Command, args []string) {
			got = args
		}}

		_, err := cmd.TestExecute(t, seedCmd, "pokedex", "dealership")
		assert.NoError(t, err)
		assert.Equal(t, []string{"pokedex", "dealership"}, got)
	})

	t.Run("without args the test binary's flags are not used", func(t *testing.T) {
		t.Parallel()

		seedCmd := &cobra.Command{Args: cobra.NoArgs, Run: func(_ *cobra.Command, _ []string) {}}

		_, err := cmd.TestExecute(t, seedCmd)
		assert.NoError(t, err)
	})

	t.Run("returns the error of the command", func(t *testing.T) {
		t.Parallel()

		seedCmd := &cobra.Command{RunE: func(_ *cobra.Command, _ []string) error {
			return fmt.Errorf("%w", errSeedFailed)
		}}

		output, err := cmd.TestExecute(t, seedCmd)
		assert.ErrorIs(t, err, errSeedFailed)
		assert.Contains(t, output, "Error: seed failed")
	})
}
