package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/mathops/internal/update"
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade mathops to the latest version",
	Long:  `Upgrade mathops to the latest version by downloading and installing the newest release.`,
	Args:  usageArgs(cobra.NoArgs),
	RunE:  runUpgrade,
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
}

func runUpgrade(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Current version: %s\n", Version)

	if update.DetectInstallMethod() == update.InstallHomebrew {
		fmt.Fprintln(out, "\nmathops was installed via Homebrew.")
		fmt.Fprintln(out, "Run: brew upgrade mathops")
		return nil
	}

	fmt.Fprintln(out, "Checking for updates...")
	release, updated, err := update.Update(cmd.Context(), Version)
	if errors.Is(err, update.ErrDevBuild) {
		fmt.Fprintln(out, "Development build; install a release to enable upgrades.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}
	if release == nil {
		fmt.Fprintln(out, "No releases published yet.")
		return nil
	}

	logger.Debug("upgrade", "from", Version, "latest", release.Version, "updated", updated)
	if !updated {
		fmt.Fprintln(out, "Already at latest version.")
		return nil
	}
	fmt.Fprintf(out, "Successfully updated to %s\n", release.Version)
	return nil
}
