package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"stagehand/internal/docker"
	"stagehand/internal/pipeline"
)

var (
	buildDryRun  bool
	buildNoCache bool
	buildPull    bool
	buildTarget  string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the Dockerfile and run the two-stage docker build",
	Long: `build composes the pipeline, writes the rendered Dockerfile next to
the build context, and runs docker build with the planned tags. The staged
dependency layer is cache-keyed by the manifest digest: rebuilding with an
unchanged manifest reuses it, and source-only changes never invalidate it.`,
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

		dryRun := buildDryRun || c.cfg.DryRun
		if !dryRun {
			df, err := pipeline.Render(c.image)
			if err != nil {
				return err
			}
			if err := os.WriteFile(c.cfg.DockerfilePath, []byte(df), 0o644); err != nil {
				return fmt.Errorf("write %q: %w", c.cfg.DockerfilePath, err)
			}
			log.Info("dockerfile written", "path", c.cfg.DockerfilePath)
		}

		log.Info("building", "refs", plan.Refs, "digest", c.man.ShortDigest(), "dry_run", dryRun)

		return docker.BuildImage(&docker.BuildOptions{
			Dockerfile:  c.cfg.DockerfilePath,
			ContextPath: c.cfg.ContextPath,
			FullRefs:    plan.Refs,
			Labels: [][2]string{
				{docker.LabelManifestDigest, c.man.Digest()},
			},
			Target:  buildTarget,
			Pull:    buildPull || c.cfg.Pull,
			NoCache: buildNoCache || c.cfg.NoCache,
			DryRun:  dryRun,
		})
	},
}

func init() {
	buildCmd.Flags().BoolVar(&buildDryRun, "dry-run", false, "print the docker invocation without executing")
	buildCmd.Flags().BoolVar(&buildNoCache, "no-cache", false, "disable the build cache")
	buildCmd.Flags().BoolVar(&buildPull, "pull", false, "always pull base images")
	buildCmd.Flags().StringVar(&buildTarget, "target", "", "stop at a named stage (e.g. 'staging')")
}
