// stagehand entrypoint
//
// stagehand models a two-stage container image build: a dependency staging
// stage that resolves a pinned manifest into an isolated prefix, and a
// runtime assembly stage that composes a minimal final image from the
// staged prefix and the application source. The CLI plans, renders,
// executes, and verifies that build.
//
// Keep this file simple: env overrides, root command, subcommands. The
// heavy lifting stays internal.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is set via -ldflags at release time.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "stagehand",
	Short: "Two-stage container image builds",
	Long: `stagehand builds container images in two stages: dependencies are
resolved in a throwaway staging layer, and only the staged artifacts plus
the application source are assembled into a minimal, non-root final image.

Configuration comes from STAGEHAND_* environment variables (see the
buildenv package); a local .env file is honored for dev runs.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(verifyCmd)
}

func main() {
	// Local overrides for dev runs; harmless in CI.
	_ = godotenv.Load(".env")

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
