package cmd

import (
	"fmt"

	"github.com/deppfellow/connect-case-creator/internal/config"
	"github.com/deppfellow/connect-case-creator/internal/errs"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var checkConfigCmd = &cobra.Command{
	Use:   "check-config",
	Short: "Validate the function configuration",
	Args:  cobra.NoArgs,
	RunE:  runCheckConfig,
}

func init() {
	rootCmd.AddCommand(checkConfigCmd)
}

func runCheckConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.LoadConfig()
	if err == nil {
		fmt.Fprintf(out, "configuration OK (env=%s, region=%s)\n", cfg.Primary.Env, cfg.Connect.Region)
		return nil
	}

	var cfgErr *errs.ConfigurationError
	if !errors.As(err, &cfgErr) {
		return err
	}

	for _, name := range cfgErr.Missing {
		fmt.Fprintf(out, "missing: %s\n", name)
	}
	if cfgErr.Err != nil {
		fmt.Fprintf(out, "invalid: %s\n", cfgErr.Err)
	}

	return err
}
