// Package catalog builds and copies item catalogs
package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-gearset/internal/entities/gear"
	"github.com/KirkDiggler/rpg-gearset/internal/errors"
	catalogrepo "github.com/KirkDiggler/rpg-gearset/internal/repositories/catalog"
)

const (
	// MaxGenerateCount caps GenerateInput.Count
	MaxGenerateCount = 10000

	// DefaultMaxLevel is used when GenerateInput.MaxLevel is zero
	DefaultMaxLevel = 50
)

// Service defines the catalog operations
type Service interface {
	// Generate rolls a random catalog and stores it in the target repository
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)

	// Import copies a catalog from the source repository to the target
	Import(ctx context.Context, input *ImportInput) (*ImportOutput, error)

	// Verify loads every catalog in the target repository and reports the
	// ones that cannot be read
	Verify(ctx context.Context, input *VerifyInput) (*VerifyOutput, error)
}

// GenerateInput defines the input for generating a catalog
type GenerateInput struct {
	Name     string
	Count    int
	MaxLevel int
}

// GenerateOutput defines the output for generating a catalog
type GenerateOutput struct {
	Name  string
	Items []gear.Item
}

// ImportInput defines the input for copying a catalog
type ImportInput struct {
	SourceName string
	// TargetName defaults to SourceName
	TargetName string
}

// ImportOutput defines the output for copying a catalog
type ImportOutput struct {
	TargetName string
	Count      int
}

// VerifyInput defines the input for checking stored catalogs
type VerifyInput struct{}

// CatalogStatus is the result of loading one catalog
type CatalogStatus struct {
	Name  string
	Count int
	// Err is set when the catalog could not be loaded
	Err error
}

// VerifyOutput defines the output for checking stored catalogs
type VerifyOutput struct {
	Catalogs []CatalogStatus
	Failed   int
}

// Config holds the dependencies for the catalog service
type Config struct {
	// Source is read by Import. Optional when only Generate is used.
	Source catalogrepo.Repository
	Target catalogrepo.Repository
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Target == nil {
		vb.RequiredField("Target")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	return vb.Build()
}

type service struct {
	source catalogrepo.Repository
	target catalogrepo.Repository
	roller dice.Roller
}

// NewService creates a catalog service with the provided dependencies
func NewService(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{
		source: cfg.Source,
		target: cfg.Target,
		roller: cfg.Roller,
	}, nil
}

func (s *service) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateRange("count", input.Count, 1, MaxGenerateCount, vb)
	errors.ValidateRange("max_level", input.MaxLevel, 0, 255, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	maxLevel := input.MaxLevel
	if maxLevel == 0 {
		maxLevel = DefaultMaxLevel
	}

	g := &generator{roller: s.roller, maxLevel: maxLevel}
	items := make([]gear.Item, 0, input.Count)
	for i := range input.Count {
		item, err := g.item(i)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll item %d", i)
		}
		items = append(items, item)
	}

	if _, err := s.target.Put(ctx, catalogrepo.PutInput{Name: input.Name, Items: items}); err != nil {
		return nil, errors.Wrapf(err, "failed to store generated catalog %s", input.Name)
	}

	slog.InfoContext(ctx, "generated catalog",
		"catalog", input.Name,
		"items", len(items),
		"max_level", maxLevel)

	return &GenerateOutput{
		Name:  input.Name,
		Items: items,
	}, nil
}

func (s *service) Import(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SourceName == "" {
		return nil, errors.InvalidArgument("source name is required")
	}
	if s.source == nil {
		return nil, errors.FailedPrecondition("no source repository configured")
	}

	targetName := input.TargetName
	if targetName == "" {
		targetName = input.SourceName
	}

	got, err := s.source.Get(ctx, catalogrepo.GetInput{Name: input.SourceName})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog %s", input.SourceName)
	}

	out, err := s.target.Put(ctx, catalogrepo.PutInput{Name: targetName, Items: got.Items})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to write catalog %s", targetName)
	}

	slog.InfoContext(ctx, "imported catalog",
		"source", input.SourceName,
		"target", targetName,
		"items", out.Count)

	return &ImportOutput{
		TargetName: targetName,
		Count:      out.Count,
	}, nil
}

func (s *service) Verify(ctx context.Context, input *VerifyInput) (*VerifyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	list, err := s.target.List(ctx, catalogrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list catalogs")
	}

	out := &VerifyOutput{Catalogs: make([]CatalogStatus, 0, len(list.Names))}
	for _, name := range list.Names {
		status := CatalogStatus{Name: name}

		got, err := s.target.Get(ctx, catalogrepo.GetInput{Name: name})
		switch {
		case err == nil:
			status.Count = len(got.Items)
		case errors.IsCanceled(err), errors.IsDeadlineExceeded(err):
			return nil, err
		default:
			status.Err = err
			out.Failed++
			slog.WarnContext(ctx, "catalog failed verification",
				"catalog", name,
				"error", err)
		}
		out.Catalogs = append(out.Catalogs, status)
	}

	return out, nil
}

var (
	adjectives = []string{"rusty", "gleaming", "ancient", "cursed", "blessed", "ornate"}
	nouns      = [gear.NumLocations]string{
		gear.Light:   "lantern",
		gear.Finger:  "ring",
		gear.Neck:    "amulet",
		gear.Body:    "breastplate",
		gear.Head:    "helm",
		gear.Legs:    "leggings",
		gear.Feet:    "boots",
		gear.Hands:   "gloves",
		gear.Arms:    "sleeves",
		gear.Offhand: "shield",
		gear.About:   "cloak",
		gear.Waist:   "belt",
		gear.Wrist:   "bracer",
		gear.Wielded: "sword",
		gear.Held:    "orb",
		gear.Aura:    "aura",
		gear.Spirit:  "spirit",
	}
)

// generator turns dice rolls into item records
type generator struct {
	roller   dice.Roller
	maxLevel int
}

// roll returns a value in [0, n)
func (g *generator) roll(n int) (int, error) {
	v, err := g.roller.Roll(n)
	if err != nil {
		return 0, err
	}
	if v < 1 || v > n {
		return 0, errors.Internalf("roller returned %d for a d%d", v, n)
	}
	return v - 1, nil
}

func (g *generator) item(index int) (gear.Item, error) {
	loc, err := g.roll(gear.NumLocations)
	if err != nil {
		return gear.Item{}, err
	}
	adj, err := g.roll(len(adjectives))
	if err != nil {
		return gear.Item{}, err
	}
	level, err := g.roll(g.maxLevel + 1)
	if err != nil {
		return gear.Item{}, err
	}

	item := gear.Item{
		Name:      fmt.Sprintf("a %s %s #%d", adjectives[adj], nouns[loc], index+1),
		Locations: []gear.Location{gear.Location(loc)},
		Level:     uint8(level),
	}

	// One primary stat scaled by 2d6, plus a 1d4 spell save bonus.
	stat, err := g.roll(4)
	if err != nil {
		return gear.Item{}, err
	}
	dice2, err := g.roller.RollN(2, 6)
	if err != nil {
		return gear.Item{}, err
	}
	if len(dice2) != 2 || dice2[0] < 1 || dice2[0] > 6 || dice2[1] < 1 || dice2[1] > 6 {
		return gear.Item{}, errors.Internalf("roller returned %v for 2d6", dice2)
	}
	magnitude := int8(dice2[0] + dice2[1])
	switch stat {
	case 0:
		item.HP = magnitude * 2
	case 1:
		item.Mana = magnitude * 3
	case 2:
		item.HitRoll = magnitude / 3
	default:
		item.DamageRoll = magnitude / 4
	}

	save, err := g.roll(4)
	if err != nil {
		return gear.Item{}, err
	}
	item.SpellSave = -int8(save)

	// A roll of 1 on a d6 restricts the item.
	restrict, err := g.roll(6)
	if err != nil {
		return gear.Item{}, err
	}
	if restrict == 0 {
		align, err := g.roll(len(gear.AlignNames()))
		if err != nil {
			return gear.Item{}, err
		}
		item.AlignRestrictions = []gear.Align{gear.Align(align)}
	}
	restrict, err = g.roll(6)
	if err != nil {
		return gear.Item{}, err
	}
	if restrict == 0 {
		class, err := g.roll(len(gear.ClassNames()))
		if err != nil {
			return gear.Item{}, err
		}
		item.ClassRestrictions = []gear.Class{gear.Class(class)}
	}

	return item, nil
}
