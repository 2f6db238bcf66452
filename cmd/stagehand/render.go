package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"stagehand/internal/pipeline"
)

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the two-stage Dockerfile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := compose()
		if err != nil {
			return err
		}

		df, err := pipeline.Render(c.image)
		if err != nil {
			return err
		}

		if renderOutput == "-" {
			fmt.Print(df)
			return nil
		}
		if err := os.WriteFile(renderOutput, []byte(df), 0o644); err != nil {
			return fmt.Errorf("write %q: %w", renderOutput, err)
		}
		log.Info("dockerfile rendered", "path", renderOutput, "digest", c.man.ShortDigest())
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "-", "output path ('-' for stdout)")
}
