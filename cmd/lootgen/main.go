// Command lootgen generates one hoard of loot from a catalog file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Yalort/lootgen/internal/catalog"
	"github.com/Yalort/lootgen/internal/config"
	"github.com/Yalort/lootgen/internal/generator"
	"github.com/Yalort/lootgen/internal/logger"
	"github.com/Yalort/lootgen/internal/loot"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lootgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		catalogPath   = fs.String("catalog", "data/loot_items.json", "items file (JSON or YAML)")
		materialsPath = fs.String("materials", "data/materials.json", "materials file; missing file means no materials")
		budget        = fs.Int("budget", 100, "point budget")
		include       = fs.String("include", "", "comma-separated tags; items need at least one")
		exclude       = fs.String("exclude", "", "comma-separated tags; items with any are dropped")
		minRarity     = fs.Int("min-rarity", 0, "minimum rarity, 0 for none")
		maxRarity     = fs.Int("max-rarity", 0, "maximum rarity, 0 for none")
		noMaterials   = fs.Bool("no-materials", false, "leave [Category] placeholders unresolved")
		seed          = fs.Uint64("seed", 0, "seed for a reproducible run")
		asJSON        = fs.Bool("json", false, "print JSON instead of text")
		trials        = fs.Int("simulate", 0, "run a Monte Carlo simulation with this many trials")
		logLevel      = fs.String("log-level", "warn", "log level")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = *logLevel
	logger.Init(logCfg, stderr)

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(stderr, "lootgen: %v\n", err)
		return 1
	}
	cat, err := catalog.Read(*catalogPath, *materialsPath)
	if err != nil {
		fmt.Fprintf(stderr, "lootgen: %v\n", err)
		return 1
	}
	svc := generator.NewService(staticSource{cat}, generator.Options{
		MaxBudget: cfg.MaxBudget,
		MaxTrials: cfg.MaxTrials,
	})

	useMaterials := !*noMaterials
	req := generator.Request{
		Budget:       *budget,
		IncludeTags:  catalog.ParseTagList(*include),
		ExcludeTags:  catalog.ParseTagList(*exclude),
		MinRarity:    *minRarity,
		MaxRarity:    *maxRarity,
		UseMaterials: &useMaterials,
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			req.Seed = seed
		}
	})

	st := newStyles(stdout)
	if *trials > 0 {
		rep, err := svc.Simulate(ctx, generator.SimRequest{Request: req, Trials: *trials})
		if err != nil {
			fmt.Fprintf(stderr, "lootgen: %v\n", err)
			return 1
		}
		if *asJSON {
			return writeJSON(stdout, stderr, rep)
		}
		printReport(stdout, st, rep)
		return 0
	}

	res, err := svc.Generate(ctx, req)
	if err != nil {
		fmt.Fprintf(stderr, "lootgen: %v\n", err)
		return 1
	}
	if *asJSON {
		return writeJSON(stdout, stderr, res)
	}
	printResult(stdout, st, res)
	return 0
}

// staticSource serves a catalog read once; the CLI never reloads.
type staticSource struct{ cat *catalog.Catalog }

func (s staticSource) Snapshot() *catalog.Catalog { return s.cat }

func (s staticSource) Reload() (*catalog.Catalog, error) { return s.cat, nil }

func printResult(w io.Writer, st styles, res *generator.Result) {
	for _, warn := range res.Warnings {
		fmt.Fprintln(w, st.warning.Render("warning: "+warn))
	}
	if len(res.Items) == 0 {
		fmt.Fprintln(w, st.detail.Render("No loot fits the budget and filters."))
		return
	}
	for _, it := range res.Items {
		fmt.Fprintf(w, "%s %s\n", st.name(it), st.detail.Render(fmt.Sprintf("(Rarity: %d) - %s", it.Rarity, it.Description)))
	}
	fmt.Fprintln(w, st.summary.Render(fmt.Sprintf("Total: %d / %d points, %d items", res.TotalPoints, res.Budget, len(res.Items))))
}

func printReport(w io.Writer, st styles, rep *loot.Report) {
	fmt.Fprintln(w, st.summary.Render(fmt.Sprintf("%d trials, budget %d", rep.Trials, rep.Budget)))
	fmt.Fprintf(w, "points: mean %.2f  sd %.2f  p50 %.0f  p90 %.0f  p99 %.0f\n",
		rep.Points.Mean, rep.Points.StdDev, rep.Points.P50, rep.Points.P90, rep.Points.P99)
	fmt.Fprintf(w, "items:  mean %.2f  sd %.2f  p50 %.0f  p90 %.0f  p99 %.0f\n",
		rep.Items.Mean, rep.Items.StdDev, rep.Items.P50, rep.Items.P90, rep.Items.P99)
	fmt.Fprintf(w, "best reachable %d, mean fill %.1f%%\n", rep.OptimalPoints, rep.MeanFill*100)
}

func writeJSON(stdout, stderr io.Writer, v any) int {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(stderr, "lootgen: %v\n", err)
		return 1
	}
	return 0
}
