package benchmark

import (
	"context"
	"sort"
	"time"

	"github.com/YuminosukeSato/linsys/complexity"
	"github.com/YuminosukeSato/linsys/core/parallel"
	"github.com/YuminosukeSato/linsys/internal/config"
	"github.com/YuminosukeSato/linsys/linear"
	"github.com/YuminosukeSato/linsys/metrics"
	"github.com/YuminosukeSato/linsys/pkg/errors"
	"github.com/YuminosukeSato/linsys/pkg/log"
)

// Record は1つの解法・1つのサイズに対する計測結果
type Record struct {
	Method       linear.Method       `json:"method" yaml:"method"`
	N            int                 `json:"n" yaml:"n"`
	Measured     linear.Counts       `json:"measured" yaml:"measured"`
	Estimated    complexity.Estimate `json:"estimated" yaml:"estimated"`
	ResidualNorm float64             `json:"residual_norm" yaml:"residual_norm"`
	// RMSEVsGauss は同じ系をガウス消去法で解いた解との RMSE
	RMSEVsGauss  float64             `json:"rmse_vs_gauss" yaml:"rmse_vs_gauss"`
	Elapsed      time.Duration       `json:"elapsed" yaml:"elapsed"`
}

// Sweep は cfg の各サイズについて乱数系を生成し、すべての解法で解いて計測する
//
// サイズごとに core/parallel のワーカーへ分配される。各ワーカーは自分の系と
// カウンタだけを扱う。ctx はサイズの合間に確認され、キャンセルされると
// ctx.Err() を返す。結果は (method, n) の順に並ぶ。
func Sweep(ctx context.Context, cfg *config.Sweep) ([]Record, error) {
	if cfg == nil {
		cfg = config.DefaultSweep()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	methods, err := cfg.ParsedMethods()
	if err != nil {
		return nil, err
	}

	sizes := cfg.Sizes()
	logger := log.GetLogger().With(log.ComponentKey, "benchmark")
	results := make([][]Record, len(sizes))

	err = parallel.ParallelizeCtx(ctx, len(sizes), cfg.Workers, func(ctx context.Context, start, end int) error {
		for i := start; i < end; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			recs, err := runSize(sizes[i], cfg.Seed, methods, logger)
			if err != nil {
				return err
			}
			results[i] = recs
			logger.Debug("size finished", log.SizeKey, sizes[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var records []Record
	for _, recs := range results {
		records = append(records, recs...)
	}
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Method != records[j].Method {
			return methodRank(records[i].Method) < methodRank(records[j].Method)
		}
		return records[i].N < records[j].N
	})

	logger.Info("sweep finished", "records", len(records), log.SizeKey, sizes[len(sizes)-1])
	return records, nil
}

func runSize(n int, seed uint64, methods []linear.Method, logger log.Logger) ([]Record, error) {
	a, b, err := RandomSystem(n, seed)
	if err != nil {
		return nil, err
	}

	ref, err := linear.Solve(linear.MethodGauss, a, b)
	if err != nil {
		return nil, errors.Wrapf(err, "sweep reference n=%d", n)
	}

	records := make([]Record, 0, len(methods))
	for _, m := range methods {
		start := time.Now()
		x, ops, err := linear.SolveCounted(m, a, b)
		elapsed := time.Since(start)
		if err != nil {
			return nil, errors.Wrapf(err, "sweep %s n=%d", m, n)
		}

		res, err := metrics.ResidualNorm(a, x, b)
		if err != nil {
			return nil, err
		}
		drift, err := metrics.RMSE(x, ref)
		if err != nil {
			return nil, err
		}

		logger.Debug("method finished",
			log.MethodKey, string(m),
			log.SizeKey, n,
			log.MulDivKey, ops.MulDiv(),
			log.AddSubKey, ops.AddSub(),
			log.SwapsKey, ops.Swaps(),
			log.ResidualKey, res,
			log.DurationMsKey, float64(elapsed.Microseconds())/1000,
		)

		records = append(records, Record{
			Method:       m,
			N:            n,
			Measured:     ops.Snapshot(),
			Estimated:    complexity.ForMethod(m, n),
			ResidualNorm: res,
			RMSEVsGauss:  drift,
			Elapsed:      elapsed,
		})
	}
	return records, nil
}

func methodRank(m linear.Method) int {
	for i, known := range linear.Methods() {
		if m == known {
			return i
		}
	}
	return len(linear.Methods())
}

// ByMethod groups records per method, keeping their order.
func ByMethod(records []Record) map[linear.Method][]Record {
	grouped := make(map[linear.Method][]Record)
	for _, r := range records {
		grouped[r.Method] = append(grouped[r.Method], r)
	}
	return grouped
}
