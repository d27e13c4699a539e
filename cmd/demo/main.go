// Command demo walks through the sortedlist package: integer and text lists,
// kind enforcement and duplicate handling. With -interactive it opens a
// prompt-driven session instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/amp-labs/sortedlist/cli"
	"github.com/amp-labs/sortedlist/envutil"
	"github.com/amp-labs/sortedlist/logger"
	"github.com/amp-labs/sortedlist/sortedlist"
	"github.com/prometheus/client_golang/prometheus"
)

const appName = "sortedlist-demo"

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		slog.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet(appName, flag.ContinueOnError)
	interactive := flags.Bool("interactive", false, "build a list through prompts")
	configPath := flags.String("config", "", "YAML file with demo datasets (default $DEMO_CONFIG)")
	envFile := flags.String("env-file", "", "load environment variables from a .env, .yaml or .json file")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if *envFile != "" {
		if _, err := envutil.ApplyEnvFile(*envFile); err != nil {
			return fmt.Errorf("loading env file: %w", err)
		}
	}

	if _, err := logger.ConfigureLogging(appName); err != nil {
		return err
	}

	log := logger.Get(ctx)

	if *configPath == "" {
		*configPath = envutil.String("DEMO_CONFIG", envutil.Default("")).ValueOrElse("")
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}

	orderName, err := envutil.String("DEMO_TEXT_ORDER", envutil.Default(cfg.TextOrder)).Value()
	if err != nil {
		return err
	}

	textOrder, err := sortedlist.ParseTextOrder(orderName)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()

	d := &demo{
		out:    out,
		cfg:    cfg,
		logger: log,
		width:  cli.DefaultWidth,
		opts: []sortedlist.Option{
			sortedlist.WithTextOrder(textOrder),
			sortedlist.WithLogger(log),
			sortedlist.WithMetrics(sortedlist.NewMetrics(reg)),
		},
	}

	log.Debug("starting demo", "interactive", *interactive, "text_order", textOrder.String())

	if *interactive {
		err = d.interactive()
	} else {
		_, _ = io.WriteString(out, cli.Banner("SortedList Library Usage Examples", d.width, cli.AlignCenter))
		_, _ = io.WriteString(out, "\n")
		err = d.run()
	}

	if err != nil {
		return err
	}

	return printMetrics(out, reg)
}

// printMetrics writes every gathered series as name{labels} value.
func printMetrics(out io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return err
	}

	_, _ = io.WriteString(out, cli.Divider(cli.DefaultWidth))

	var lines []string

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, label := range metric.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", label.GetName(), label.GetValue()))
			}

			value := metric.GetCounter().GetValue()
			if metric.GetGauge() != nil {
				value = metric.GetGauge().GetValue()
			}

			lines = append(lines, fmt.Sprintf("%s{%s} %g", family.GetName(), strings.Join(labels, ","), value))
		}
	}

	sort.Strings(lines)

	for _, line := range lines {
		_, _ = fmt.Fprintln(out, line)
	}

	return nil
}
