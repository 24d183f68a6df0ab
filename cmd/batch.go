package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync/atomic"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/andes-consulting/readiness-cli/internal/diagnostic"
	"github.com/andes-consulting/readiness-cli/internal/intake"
	"github.com/andes-consulting/readiness-cli/internal/store"
)

var (
	batchLimit int
	batchSave  bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Score a directory of questionnaire submissions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		paths, err := collectSubmissions(args[0])
		if err != nil {
			return err
		}

		var s store.Store
		if batchSave {
			s, err = openStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()
		}

		return processBatch(ctx, paths, batchLimit, cfg.Batch.MaxConcurrent, s)
	},
}

func init() {
	batchCmd.Flags().IntVar(&batchLimit, "limit", 0, "max number of submissions to process (0=all)")
	batchCmd.Flags().BoolVar(&batchSave, "save", false, "persist results to the store")
	rootCmd.AddCommand(batchCmd)
}

// collectSubmissions lists the intake files in dir, sorted by name.
func collectSubmissions(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, eris.Wrap(err, "batch: read submissions dir")
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".json", ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths, nil
}

// processBatch scores submissions concurrently. Individual failures are
// logged, never abort the batch.
func processBatch(ctx context.Context, paths []string, limit, concurrency int, s store.Store) error {
	if len(paths) == 0 {
		zap.L().Info("no submissions found")
		return nil
	}

	if limit > 0 && len(paths) > limit {
		paths = paths[:limit]
	}

	zap.L().Info("processing batch",
		zap.Int("submissions", len(paths)),
		zap.Int("concurrency", concurrency),
	)

	svc := diagnostic.NewService()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var succeeded, failed atomic.Int64

	for _, path := range paths {
		g.Go(func() error {
			log := zap.L().With(zap.String("submission", path))

			sub, err := intake.Load(path)
			if err != nil {
				failed.Add(1)
				log.Error("submission rejected", zap.Error(err))
				return nil
			}

			result := svc.Run(sub.Prospect(), sub.Responses())

			if s != nil {
				if err := s.SaveDiagnostic(gctx, result); err != nil {
					failed.Add(1)
					log.Error("save failed", zap.Error(err))
					return nil
				}
			}

			succeeded.Add(1)
			log.Info("diagnostic complete",
				zap.Int("score_final", result.Score.Final),
				zap.String("tier", string(result.Score.Tier)),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return eris.Wrap(err, "batch processing")
	}

	zap.L().Info("batch complete",
		zap.Int64("succeeded", succeeded.Load()),
		zap.Int64("failed", failed.Load()),
	)
	return nil
}
