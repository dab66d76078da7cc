package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shortform-preprod/types"
	"shortform-preprod/workflow"
)

var genFlags struct {
	title    string
	genre    string
	platform string
	duration int
	audience string
	concept  string
	outDir   string
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the full pipeline for one brief",
	Example: `  preprod generate --title "The Last Train" --genre drama \
      --platform tiktok --duration 60 --audience "Young Adults"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		platform, err := types.ParsePlatform(genFlags.platform)
		if err != nil {
			return err
		}
		brief := types.Brief{
			Title:                 genFlags.title,
			Genre:                 genFlags.genre,
			Platform:              platform,
			TargetDurationSeconds: genFlags.duration,
			TargetAudience:        genFlags.audience,
			Concept:               genFlags.concept,
		}
		if err := brief.Validate(); err != nil {
			return err
		}

		result := workflow.New(cfg).Run(cmd.Context(), brief, genFlags.outDir)
		if !result.Success {
			return fmt.Errorf("pipeline failed with %d issue(s)", len(result.Errors))
		}
		return nil
	},
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genFlags.title, "title", "", "video title (required)")
	f.StringVar(&genFlags.genre, "genre", "", "genre, e.g. drama, comedy, horror (required)")
	f.StringVar(&genFlags.platform, "platform", "tiktok", "tiktok, instagram_reels or youtube_shorts")
	f.IntVar(&genFlags.duration, "duration", 60, "target duration in seconds (30-120)")
	f.StringVar(&genFlags.audience, "audience", "", "target audience (required)")
	f.StringVar(&genFlags.concept, "concept", "", "optional one-line concept")
	f.StringVar(&genFlags.outDir, "out", "", "output directory (default: per-run dir under the configured output root)")
	_ = generateCmd.MarkFlagRequired("title")
	_ = generateCmd.MarkFlagRequired("genre")
	_ = generateCmd.MarkFlagRequired("audience")
}
