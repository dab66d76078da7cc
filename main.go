package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"shortform-preprod/config"
)

var (
	cfgPath string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "preprod",
	Short: "Pre-production document pipeline for short-form video",
	Long: `preprod turns a one-line creative brief into a complete set of
pre-production documents: a timed script, a scene-by-scene production
breakdown, a shot-level storyboard, and advisory notes for the shoot
and the edit. Every stage is validated before the next one runs.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional, local convenience only
		_ = godotenv.Load()
		var err error
		cfg, err = config.Load(cfgPath)
		return err
	},
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "path to config file")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(verifyCmd)
}
