/*
 * Copyright 2024 Dgraph Labs, Inc. and Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/lsq"
	"github.com/dgraph-io/lsq/sim"
	"github.com/dgraph-io/lsq/z"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const workloadDefaults = "ops=100000; seed=bench; max-len=1024; values=1024; " +
	"mix=push:4,pop:3,insert:2,erase:2,sort:1; verify=false"

var workloadHelp = z.NewSuperFlagHelp(workloadDefaults).
	Flag("ops", "Number of operations to run.").
	Flag("seed", "Workload name; the same name replays the same operations.").
	Flag("max-len", "Length above which only shrinking operations are drawn.").
	Flag("values", "Values are drawn from [0, values).").
	Flag("mix", "Comma separated op:weight pairs. A bare op has weight 1.").
	Flag("verify", "Check every step against container/list.").
	String()

type workload struct {
	ops    int64
	seed   string
	maxLen int64
	values int64
	mix    map[sim.Op]int
	verify bool
}

func parseWorkload(flag string) (*workload, error) {
	sf, err := z.NewSuperFlag(flag)
	if err != nil {
		return nil, err
	}
	if sf, err = sf.MergeAndCheckDefault(workloadDefaults); err != nil {
		return nil, err
	}
	w := &workload{seed: sf.GetString("seed")}
	if w.ops, err = sf.GetInt64("ops"); err != nil {
		return nil, err
	}
	if w.maxLen, err = sf.GetInt64("max-len"); err != nil {
		return nil, err
	}
	if w.values, err = sf.GetInt64("values"); err != nil {
		return nil, err
	}
	if w.verify, err = sf.GetBool("verify"); err != nil {
		return nil, err
	}
	weights, err := sf.GetWeights("mix")
	if err != nil {
		return nil, err
	}
	if w.mix, err = sim.ParseMix(weights); err != nil {
		return nil, err
	}
	if w.ops < 0 {
		return nil, errors.Errorf("ops must not be negative, got %d", w.ops)
	}
	return w, nil
}

type result struct {
	ops      int64
	elapsed  time.Duration
	finalLen int
	perOp    map[sim.Op]*z.HistogramData
	all      *z.HistogramData
	metrics  *lsq.Metrics
}

// run executes w, logging progress every reportEvery when it is positive.
func run(w *workload, log zerolog.Logger, reportEvery time.Duration) (*result, error) {
	g, err := sim.NewGenerator(sim.Seed(w.seed), w.mix, int(w.maxLen), int(w.values))
	if err != nil {
		return nil, err
	}
	bounds := z.HistogramBounds(4, 30)
	res := &result{
		perOp:   make(map[sim.Op]*z.HistogramData),
		all:     z.NewHistogramData(bounds),
		metrics: lsq.NewMetrics(),
	}
	opt := lsq.WithMetrics(res.metrics)
	runner := sim.NewRunner(log, opt)
	l := runner.List()

	start := time.Now()
	lastReport := start
	for i := int64(0); i < w.ops; i++ {
		step := g.Next(l.Len())
		t := time.Now()
		if w.verify {
			err = runner.Apply(step)
		} else {
			err = sim.Exec(l, step, opt)
		}
		took := time.Since(t).Nanoseconds()
		if err != nil {
			return nil, errors.Wrapf(err, "op %d", i)
		}
		h, ok := res.perOp[step.Op]
		if !ok {
			h = z.NewHistogramData(bounds)
			res.perOp[step.Op] = h
		}
		h.Update(took)
		res.all.Update(took)

		if reportEvery > 0 && time.Since(lastReport) >= reportEvery {
			lastReport = time.Now()
			log.Info().
				Str("done", humanize.Comma(i+1)).
				Int("len", l.Len()).
				Uint64("live-nodes", res.metrics.LiveNodes()).
				Msg("progress")
		}
	}
	res.ops = w.ops
	res.elapsed = time.Since(start)
	res.finalLen = l.Len()
	return res, nil
}

func (r *result) report(out io.Writer) {
	var b strings.Builder
	rate := float64(0)
	if r.elapsed > 0 {
		rate = float64(r.ops) / r.elapsed.Seconds()
	}
	fmt.Fprintf(&b, "ops: %s in %s (%s ops/sec)\n",
		humanize.Comma(r.ops), r.elapsed.Round(time.Millisecond), humanize.Commaf(float64(int64(rate))))
	fmt.Fprintf(&b, "final length: %s\n", humanize.Comma(int64(r.finalLen)))
	if rss, ok := peakRSS(); ok {
		fmt.Fprintf(&b, "peak rss: %s\n", humanize.IBytes(rss))
	}
	fmt.Fprintf(&b, "metrics: %s\n", r.metrics)

	ops := make([]sim.Op, 0, len(r.perOp))
	for op := range r.perOp {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	fmt.Fprintf(&b, "%-14s %10s %12s %12s %12s\n", "op", "count", "mean", "p50", "p99")
	for _, op := range ops {
		h := r.perOp[op]
		fmt.Fprintf(&b, "%-14s %10s %12s %12s %12s\n", op, humanize.Comma(h.Count),
			time.Duration(h.Mean()), time.Duration(h.Percentile(0.5)),
			time.Duration(h.Percentile(0.99)))
	}
	b.WriteString(r.all.String())
	_, _ = io.WriteString(out, b.String())
}
