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

// lsqbench replays a generated workload against lsq.List and reports
// per-operation latency, list metrics and peak memory.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "workload",
			Usage: "Workload options:\n" + workloadHelp,
		},
		&cli.StringFlag{
			Name:    "loglevel",
			Aliases: []string{"l"},
			Value:   "info",
			Usage:   "Log level: debug, info, warn, error",
		},
		&cli.DurationFlag{
			Name:  "report-every",
			Value: 2 * time.Second,
			Usage: "Progress logging interval; 0 disables it",
		},
	}
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), errors.Wrapf(err, "invalid log level %q", level)
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

func action(c *cli.Context) error {
	log, err := newLogger(c.String("loglevel"))
	if err != nil {
		return err
	}
	w, err := parseWorkload(c.String("workload"))
	if err != nil {
		return errors.Wrap(err, "--workload")
	}
	log.Info().
		Int64("ops", w.ops).
		Str("seed", w.seed).
		Int64("max-len", w.maxLen).
		Bool("verify", w.verify).
		Msg("starting workload")

	res, err := run(w, log, c.Duration("report-every"))
	if err != nil {
		return err
	}
	res.report(c.App.Writer)
	return nil
}

func main() {
	app := &cli.App{}
	app.Name = "lsqbench"
	app.Usage = "Benchmark and fuzz lsq.List with a generated workload"
	app.UsageText = "lsqbench [--workload \"ops=1000; seed=x\"] [--loglevel debug]"
	app.Flags = flags()
	app.Action = action
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "lsqbench: %v\n", err)
		os.Exit(1)
	}
}
