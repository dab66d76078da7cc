package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shortform-preprod/server"
	"shortform-preprod/workflow"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the pipeline over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.New(cfg).Run(serveAddr)
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify <output-dir>",
	Short: "Check that an output directory holds a complete set of artifacts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report := workflow.VerifyOutput(args[0])
		if !report.Valid {
			for _, issue := range report.Issues {
				fmt.Println("❌", issue)
			}
			return fmt.Errorf("%d issue(s) found", len(report.Issues))
		}
		fmt.Println("✅ All expected artifacts present")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
}
