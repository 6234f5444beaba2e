package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/Yalort/lootgen/internal/catalog"
	"github.com/Yalort/lootgen/internal/logger"
	"github.com/Yalort/lootgen/internal/loot"
	"github.com/Yalort/lootgen/internal/metrics"
)

// Service defines the loot generation operations exposed to front ends.
type Service interface {
	Generate(ctx context.Context, req Request) (*Result, error)
	Simulate(ctx context.Context, req SimRequest) (*loot.Report, error)
	Tags(ctx context.Context) []string
	Catalog(ctx context.Context) CatalogInfo
	Reload(ctx context.Context) (CatalogInfo, error)
}

// CatalogSource provides the catalog to generate from.
type CatalogSource interface {
	Snapshot() *catalog.Catalog
	Reload() (*catalog.Catalog, error)
}

// Options caps request sizes. Zero disables a cap.
type Options struct {
	MaxBudget int
	MaxTrials int
}

type service struct {
	src  CatalogSource
	opts Options
}

// NewService creates a generation service over src.
func NewService(src CatalogSource, opts Options) Service {
	recordCatalog(src.Snapshot())
	return &service{src: src, opts: opts}
}

func (s *service) Generate(ctx context.Context, req Request) (*Result, error) {
	id := logger.NewGenerationID()
	ctx = logger.WithGenerationID(ctx, id)
	log := logger.FromContext(ctx)

	c, err := s.prepare(req)
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues(outcome(err)).Inc()
		log.Warn("generation rejected", "error", err)
		return nil, err
	}

	cat := s.src.Snapshot()
	items, err := loot.Generate(cat.Items, req.Budget, c, materialsFor(req, cat), req.rng())
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues(outcome(err)).Inc()
		log.Warn("generation failed", "error", err)
		return nil, err
	}

	total := loot.Total(items)
	metrics.GenerationsTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	metrics.ItemsGenerated.Add(float64(len(items)))
	metrics.GenerationPoints.Observe(float64(total))
	metrics.BudgetFill.Observe(float64(total) / float64(req.Budget))

	log.Info("loot generated",
		"budget", req.Budget,
		"items", len(items),
		"total_points", total,
		"seeded", req.Seed != nil)

	return &Result{
		ID:          id,
		Items:       items,
		TotalPoints: total,
		Budget:      req.Budget,
		Seed:        req.Seed,
		Warnings:    tagWarnings(cat.Tags, req),
	}, nil
}

func (s *service) Simulate(ctx context.Context, req SimRequest) (*loot.Report, error) {
	ctx = logger.WithGenerationID(ctx, logger.NewGenerationID())
	log := logger.FromContext(ctx)

	c, err := s.prepare(req.Request)
	if err == nil && s.opts.MaxTrials > 0 && req.Trials > s.opts.MaxTrials {
		err = fmt.Errorf("%w: %d exceeds %d", ErrTooManyTrials, req.Trials, s.opts.MaxTrials)
	}
	if err != nil {
		metrics.SimulationsTotal.WithLabelValues(outcome(err)).Inc()
		log.Warn("simulation rejected", "error", err)
		return nil, err
	}

	cat := s.src.Snapshot()
	params := loot.SimParams{
		Items:     loot.Filter(cat.Items, c),
		Budget:    req.Budget,
		Materials: materialsFor(req.Request, cat),
	}
	rep, err := loot.RunMonteCarlo(ctx, params, req.Trials, req.rng())
	if err != nil {
		metrics.SimulationsTotal.WithLabelValues(outcome(err)).Inc()
		log.Warn("simulation failed", "error", err)
		return nil, err
	}

	metrics.SimulationsTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	log.Info("simulation finished",
		"budget", req.Budget,
		"trials", req.Trials,
		"mean_points", rep.Points.Mean,
		"mean_fill", rep.MeanFill)
	return &rep, nil
}

func (s *service) Tags(_ context.Context) []string {
	return append([]string{}, s.src.Snapshot().Tags...)
}

func (s *service) Catalog(_ context.Context) CatalogInfo {
	return infoOf(s.src.Snapshot())
}

func (s *service) Reload(ctx context.Context) (CatalogInfo, error) {
	log := logger.FromContext(ctx)
	cat, err := s.src.Reload()
	if err != nil {
		metrics.CatalogReloads.WithLabelValues(metrics.OutcomeError).Inc()
		log.Error("catalog reload failed", "error", err)
		return CatalogInfo{}, err
	}
	metrics.CatalogReloads.WithLabelValues(metrics.OutcomeOK).Inc()
	recordCatalog(cat)
	for _, w := range cat.Warnings {
		log.Warn("catalog warning", "detail", w)
	}
	log.Info("catalog reloaded", "items", len(cat.Items), "materials", len(cat.Materials))
	return infoOf(cat), nil
}

// prepare checks the request against the configured caps and builds the
// filter constraints.
func (s *service) prepare(req Request) (loot.Constraints, error) {
	if s.opts.MaxBudget > 0 && req.Budget > s.opts.MaxBudget {
		return loot.Constraints{}, fmt.Errorf("%w: %d exceeds %d", ErrBudgetTooLarge, req.Budget, s.opts.MaxBudget)
	}
	return req.constraints()
}

// materialsFor returns nil when resolution is off, and a non-nil slice
// otherwise so placeholders are stripped even without materials.
func materialsFor(req Request, cat *catalog.Catalog) []loot.Material {
	if !req.useMaterials() {
		return nil
	}
	if cat.Materials == nil {
		return []loot.Material{}
	}
	return cat.Materials
}

func tagWarnings(known []string, req Request) []string {
	requested := append(append([]string{}, req.IncludeTags...), req.ExcludeTags...)
	var warns []string
	for _, t := range catalog.UnknownTags(requested, known) {
		if s, ok := catalog.SuggestTag(t, known); ok {
			warns = append(warns, fmt.Sprintf("unknown tag %q, did you mean %q?", t, s))
			continue
		}
		warns = append(warns, fmt.Sprintf("unknown tag %q", t))
	}
	return warns
}

func infoOf(cat *catalog.Catalog) CatalogInfo {
	return CatalogInfo{
		Items:     len(cat.Items),
		Materials: len(cat.Materials),
		Tags:      append([]string{}, cat.Tags...),
		Warnings:  cat.Warnings,
	}
}

func recordCatalog(cat *catalog.Catalog) {
	metrics.CatalogItems.Set(float64(len(cat.Items)))
	metrics.CatalogMaterials.Set(float64(len(cat.Materials)))
}

func outcome(err error) string {
	if errors.Is(err, loot.ErrInvalidArgument) {
		return metrics.OutcomeInvalid
	}
	return metrics.OutcomeError
}
