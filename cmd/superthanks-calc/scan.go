package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/battincik/superthanks-calc/internal/collector"
	"github.com/battincik/superthanks-calc/internal/config"
	"github.com/battincik/superthanks-calc/internal/logger"
	"github.com/battincik/superthanks-calc/internal/report"
	"github.com/battincik/superthanks-calc/pkg/finding"
)

var (
	configPath string
	outputPath string
	headless   bool
	timeoutSec int
)

func init() {
	scanCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to TOML config file")
	scanCmd.Flags().StringVarP(&outputPath, "output", "o", "", "report output path (overrides config)")
	scanCmd.Flags().BoolVar(&headless, "headless", true, "run the browser headless")
	scanCmd.Flags().IntVar(&timeoutSec, "timeout", 180, "whole-run deadline in seconds (overrides config)")
	rootCmd.AddCommand(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan <url>",
	Short: "Scan a video's comments and report Super Thanks totals",
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	pageURL := args[0]

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if outputPath != "" {
		cfg.Output = outputPath
	}
	if cmd.Flags().Changed("headless") {
		cfg.Browser.Headless = headless
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Browser.TimeoutSec = timeoutSec
	}

	videoID := collector.VideoID(pageURL)
	if videoID == "" {
		return fmt.Errorf("could not extract a video id from %q", pageURL)
	}

	log := logger.New().With().Str("run_id", uuid.NewString()).Logger()

	detector := finding.NewDetector(cfg.Detection.Keywords, cfg.Detection.ThanksWords)
	state := finding.NewRunState(detector)

	col := collector.NewChromeCollector(collector.Options{
		Headless:    cfg.Browser.Headless,
		MaxRounds:   cfg.Scroll.MaxRounds,
		SettleMs:    cfg.Scroll.SettleMs,
		StallRounds: cfg.Scroll.StallRounds,
	}, log)

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.Browser.TimeoutSec)*time.Second)
	defer cancel()

	log.Info().Str("url", pageURL).Str("video_id", videoID).Msg("starting scan")
	err = col.Collect(ctx, pageURL, func(blocks []collector.Block) {
		for _, b := range blocks {
			fresh := state.Ingest(b.Text, finding.BlockMeta{Author: b.Author, Badge: b.Badge})
			for _, f := range fresh {
				log.Info().
					Str("currency", f.Currency).
					Str("amount", f.Amount.StringFixed(2)).
					Str("author", f.Author).
					Msg("new finding")
			}
		}
	})
	if err != nil {
		return fmt.Errorf("collect comments: %w", err)
	}

	rep := report.Build(state, pageURL, videoID)
	if err := rep.Write(cfg.Output); err != nil {
		return err
	}
	log.Info().Int("count", rep.Count).Str("output", cfg.Output).Msg("scan complete")
	return nil
}
