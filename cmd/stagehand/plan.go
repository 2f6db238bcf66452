package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"stagehand/internal/docker"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the staged build without executing it",
	Long: `plan loads the manifest, runs the stager and assembler, and prints
what a build would do: both stages, the staged set digest, the final image
metadata, and the refs the planner would tag. No files are written and
docker is never invoked.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := compose()
		if err != nil {
			return err
		}

		plan, err := docker.PlanBuild(c.cfg.Image, c.man.Digest())
		if err != nil {
			return err
		}

		printPlan(c, plan)
		return nil
	},
}

// printPlan emits a scannable report with logical sections.
func printPlan(c *composition, plan docker.Plan) {
	img := c.image

	fmt.Println("Build Plan")
	fmt.Println("----------")

	fmt.Println("Stages")
	fmt.Printf("  Staging               : %s (deps -> %s)\n", img.Staged.BaseImage, img.Staged.Prefix)
	fmt.Printf("  Runtime               : %s (%s -> %s)\n", img.BaseImage, img.Staged.Prefix, img.RuntimePath)
	fmt.Println()

	fmt.Println("Staged Dependency Set")
	fmt.Printf("  Manifest              : %s\n", c.man.Path)
	fmt.Printf("  Packages              : %d\n", len(c.man.Requirements))
	fmt.Printf("  Digest                : %s\n", c.man.Digest())
	fmt.Printf("  Install               : %s\n", img.Staged.InstallCmd)
	fmt.Println()

	fmt.Println("Final Image")
	fmt.Printf("  WorkDir               : %s\n", img.WorkDir)
	fmt.Printf("  Source                : %s\n", strings.Join(img.Source.Files, ", "))
	fmt.Printf("  User                  : %s\n", img.User)
	fmt.Printf("  Port                  : %d\n", img.Port)
	fmt.Printf("  Entry                 : %s\n", strings.Join(img.Source.Entrypoint, " "))
	fmt.Println()

	fmt.Println("Tags")
	for _, r := range plan.Refs {
		fmt.Printf("  - %s\n", r)
	}
}
