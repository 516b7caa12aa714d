package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "superthanks-calc",
	Short: "Tally Super Thanks donations from a video's comment section",
	Long: `Superthanks Calc drives a browser over a public video page, scrolls the
comment section to load comments, and extracts Super Thanks donation
mentions into per-currency totals.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Superthanks Calc v1.0.0")
		fmt.Println("Use --help for available commands")
	},
}
