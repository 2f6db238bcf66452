package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"stagehand/internal/docker"
	"stagehand/internal/verify"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [ref]",
	Short: "Check a built image against the pipeline's guarantees",
	Long: `verify inspects a built image and checks the properties the pipeline
promises: a non-privileged execution identity, the declared listening port,
a declared entry command, and a staged-set digest label matching the
current manifest. With no argument it verifies the digest-tagged ref the
current manifest would produce.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := compose()
		if err != nil {
			return err
		}

		ref := ""
		if len(args) == 1 {
			ref = args[0]
		} else {
			plan, err := docker.PlanBuild(c.cfg.Image, c.man.Digest())
			if err != nil {
				return err
			}
			ref = plan.Refs[0]
		}

		cfg, err := docker.InspectImage(cmd.Context(), ref)
		if err != nil {
			return err
		}

		report := verify.Check(ref, cfg, c.man.Digest(), c.image.Port)
		if err := report.Err(); err != nil {
			return err
		}
		log.Info("image verified", "ref", ref, "user", cfg.User, "port", c.image.Port)
		return nil
	},
}
