package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"pseudocalls-go/internal/aggregator"
	"pseudocalls-go/internal/batch"
	"pseudocalls-go/internal/call"
	"pseudocalls-go/internal/config"
	"pseudocalls-go/internal/content"
	"pseudocalls-go/internal/dataset"
	"pseudocalls-go/internal/dialogue"
	"pseudocalls-go/internal/logger"
	"pseudocalls-go/internal/types"
)

func main() {
	cfg, err := config.Load()
	log := logger.New(os.Stderr, cfg.Environment, cfg.LogLevel).WithRun()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	var (
		seed  uint64
		calls int
		date  string
	)
	root := &cobra.Command{
		Use:   "fixturegen",
		Short: "Generate fake sales-call transcripts and metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if flags.Changed("seed") {
				cfg.SetSeed(seed)
			}
			if flags.Changed("calls") {
				cfg.SetCalls(calls)
			}
			if flags.Changed("date") {
				if err := cfg.SetDate(date); err != nil {
					return fmt.Errorf("--date: %w", err)
				}
			}
			return run(cfg, log)
		},
		SilenceUsage: true,
	}
	root.Flags().Uint64Var(&seed, "seed", 0, "RNG seed (default: time-based)")
	root.Flags().IntVar(&calls, "calls", cfg.Calls, "number of calls to generate")
	root.Flags().StringVar(&cfg.OutputDir, "out-dir", cfg.OutputDir, "directory for output files")
	root.Flags().StringVar(&date, "date", "", "transcript header date, YYYY-MM-DD (default: today)")

	if err := root.Execute(); err != nil {
		log.WithError(err).Fatal("generation failed")
	}
}

func run(cfg config.Config, log *logger.Logger) error {
	bank, err := loadBank(cfg.ContentFile)
	if err != nil {
		return err
	}
	if !cfg.SeedSet {
		cfg.SetSeed(uint64(time.Now().UnixNano()))
	}
	log.WithFields(logrus.Fields{
		"seed":  cfg.Seed,
		"calls": cfg.Calls,
		"date":  cfg.Date.Format("2006-01-02"),
	}).Info("starting generation")

	archetypes := make([]types.Archetype, len(bank.Archetypes))
	for i, a := range bank.Archetypes {
		archetypes[i] = types.Archetype(a)
	}
	verticals := bank.VerticalNames()

	gen := call.NewGenerator(dialogue.NewRand(cfg.Seed), bank, call.WithDate(cfg.Date))
	res, err := batch.Run(gen, verticals, archetypes, cfg.Calls, log)
	if err != nil {
		return err
	}

	transcripts := cfg.Path(cfg.TranscriptsFile)
	metadata := cfg.Path(cfg.MetadataFile)
	if err := batch.WriteTranscripts(transcripts, res.Transcripts); err != nil {
		return err
	}
	if err := batch.WriteMetadata(metadata, res.Records); err != nil {
		return err
	}
	if cfg.WorkbookFile != "" {
		wb := cfg.Path(cfg.WorkbookFile)
		if err := dataset.WriteWorkbook(wb, res.Records); err != nil {
			return err
		}
		log.WithField("path", wb).Info("workbook written")
	}

	fmt.Printf("\nGenerated %d calls successfully!\n", len(res.Records))
	fmt.Printf("Transcripts saved to: %s\n", transcripts)
	fmt.Printf("Metadata saved to: %s\n\n", metadata)
	batch.PrintSummary(os.Stdout, aggregator.Aggregate(res.Records), verticals, archetypes)
	return nil
}

func loadBank(path string) (*content.Bank, error) {
	if path == "" {
		return content.Load()
	}
	return content.LoadFile(path)
}
