// Package loadout runs the item set optimizer against stored catalogs
package loadout

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-gearset/internal/character"
	"github.com/KirkDiggler/rpg-gearset/internal/entities/gear"
	"github.com/KirkDiggler/rpg-gearset/internal/errors"
	"github.com/KirkDiggler/rpg-gearset/internal/optimizer"
	"github.com/KirkDiggler/rpg-gearset/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-gearset/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-gearset/internal/repositories/catalog"
)

// Service defines the loadout operations
type Service interface {
	// FindBestSet loads the catalog and returns the highest-valued item set
	// the character can wear
	FindBestSet(ctx context.Context, input *FindBestSetInput) (*FindBestSetOutput, error)

	// DescribePools lists which catalog items the character can use in each
	// location
	DescribePools(ctx context.Context, input *DescribePoolsInput) (*DescribePoolsOutput, error)
}

// Config holds the dependencies for the loadout service
type Config struct {
	CatalogRepo catalog.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// Workers is passed to the optimizer
	Workers int
	// ProgressInterval is the minimum time between progress log lines.
	// Zero disables progress logging.
	ProgressInterval time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	errors.ValidateRange("Workers", c.Workers, 0, optimizer.MaxWorkers, vb)
	if c.ProgressInterval < 0 {
		vb.Field("ProgressInterval", "cannot be negative")
	}

	return vb.Build()
}

type service struct {
	catalogRepo      catalog.Repository
	idGen            idgen.Generator
	clock            clock.Clock
	workers          int
	progressInterval time.Duration
}

// NewService creates a loadout service with the provided dependencies
func NewService(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{
		catalogRepo:      cfg.CatalogRepo,
		idGen:            cfg.IDGenerator,
		clock:            cfg.Clock,
		workers:          cfg.Workers,
		progressInterval: cfg.ProgressInterval,
	}, nil
}

func (s *service) loadCharacter(ctx context.Context, input CharacterInput) (*character.Character, int, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("catalog_name", input.CatalogName, vb)
	if !input.Class.IsValid() {
		vb.InvalidField("class", input.Class.String())
	}
	if !input.Align.IsValid() {
		vb.InvalidField("align", input.Align.String())
	}
	if err := vb.Build(); err != nil {
		return nil, 0, err
	}

	out, err := s.catalogRepo.Get(ctx, catalog.GetInput{Name: input.CatalogName})
	if err != nil {
		return nil, 0, errors.Wrapf(err, "failed to load catalog %s", input.CatalogName)
	}

	return character.New(input.Level, input.Class, input.Align, out.Items), len(out.Items), nil
}

func (s *service) FindBestSet(ctx context.Context, input *FindBestSetInput) (*FindBestSetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	runID := s.idGen.Generate()
	start := s.clock.Now()

	ch, itemCount, err := s.loadCharacter(ctx, input.CharacterInput)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare optimizer run").WithMeta("run_id", runID)
	}

	combinations := optimizer.Combinations(ch.SlotPools())
	slog.InfoContext(ctx, "starting item set search",
		"run_id", runID,
		"character", ch.String(),
		"catalog", input.CatalogName,
		"items", itemCount,
		"combinations", combinations.String(),
		"workers", max(s.workers, 1))

	var reporter optimizer.Reporter
	if s.progressInterval > 0 {
		reporter = newProgressReporter(runID, s.clock, s.progressInterval, slog.Default())
	}

	opt, err := optimizer.New(&optimizer.Config{
		Workers:  s.workers,
		Reporter: reporter,
	})
	if err != nil {
		return nil, err
	}

	set, err := opt.Run(ctx, ch)
	if err != nil {
		slog.WarnContext(ctx, "item set search failed",
			"run_id", runID,
			"error", err)
		return nil, errors.Wrap(err, "item set search failed").WithMeta("run_id", runID)
	}

	duration := s.clock.Now().Sub(start)
	slog.InfoContext(ctx, "item set search finished",
		"run_id", runID,
		"value", set.Value(),
		"duration", duration)

	return &FindBestSetOutput{
		RunID:        runID,
		Character:    ch,
		ItemSet:      set,
		ItemCount:    itemCount,
		Combinations: combinations,
		Duration:     duration,
	}, nil
}

func (s *service) DescribePools(ctx context.Context, input *DescribePoolsInput) (*DescribePoolsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ch, _, err := s.loadCharacter(ctx, input.CharacterInput)
	if err != nil {
		return nil, err
	}

	locations := gear.AllLocations()
	pools := make([]LocationPool, 0, len(locations))
	for _, loc := range locations {
		pools = append(pools, LocationPool{
			Location: loc,
			Items:    ch.Pool(loc),
		})
	}

	slog.DebugContext(ctx, "described item pools",
		"character", ch.String(),
		"catalog", input.CatalogName)

	return &DescribePoolsOutput{
		Character:    ch,
		Pools:        pools,
		Combinations: optimizer.Combinations(ch.SlotPools()),
	}, nil
}
