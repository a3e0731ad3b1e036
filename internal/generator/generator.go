// Package generator turns settings into a seed: a ROM patch plus the spoiler
// log describing every placement.
package generator

//go:generate mockgen -destination=mock/mock_service.go -package=generatormock github.com/junglerando/rando-api/internal/generator Service

import (
	"context"
	"log/slog"
	"slices"

	"github.com/junglerando/rando-api/internal/entities"
	"github.com/junglerando/rando-api/internal/errors"
	"github.com/junglerando/rando-api/internal/pkg/idgen"
	"github.com/junglerando/rando-api/internal/pkg/rng"
	"github.com/junglerando/rando-api/internal/placement/coins"
	"github.com/junglerando/rando-api/internal/placement/doors"
	"github.com/junglerando/rando-api/internal/placement/fairies"
	"github.com/junglerando/rando-api/internal/placement/prices"
	"github.com/junglerando/rando-api/internal/settings"
)

const (
	// DefaultCoinBudget is how many coins each kong is assumed to collect
	// when checking that a shuffled shop can be bought out.
	DefaultCoinBudget = 200

	// DefaultShopAttempts bounds the shop reshuffles before giving up.
	DefaultShopAttempts = 20
)

// Service generates seeds
type Service interface {
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// Config holds the dependencies for the generator
type Config struct {
	IDGenerator  idgen.Generator
	CoinBudget   int
	ShopAttempts int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.CoinBudget < 0 {
		vb.Field("CoinBudget", "must not be negative")
	}
	if c.ShopAttempts < 0 {
		vb.Field("ShopAttempts", "must not be negative")
	}

	return vb.Build()
}

type generator struct {
	idGen        idgen.Generator
	coinBudget   int
	shopAttempts int
}

// New creates a generator with the provided dependencies
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	g := &generator{
		idGen:        cfg.IDGenerator,
		coinBudget:   cfg.CoinBudget,
		shopAttempts: cfg.ShopAttempts,
	}
	if g.coinBudget == 0 {
		g.coinBudget = DefaultCoinBudget
	}
	if g.shopAttempts == 0 {
		g.shopAttempts = DefaultShopAttempts
	}
	return g, nil
}

type phase struct {
	name string
	run  func() error
}

// Generate runs every placement phase in a fixed order from one random
// source seeded with the settings seed, so a seed always reproduces the same
// output. The context is checked between phases.
func (g *generator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil || input.Settings == nil {
		return nil, errors.InvalidArgument("settings are required")
	}

	s := input.Settings
	if s.SeedID == "" {
		s.SeedID = g.idGen.Generate()
	}

	r := rng.New(s.Seed)
	sp := newSpoiler(s)

	phases := []phase{
		{"hash", func() error { return g.hash(sp) }},
		{"prices", func() error { return g.prices(sp, r) }},
		{"shop", func() error { return g.shop(sp, r) }},
		{"doors", func() error { return g.doors(sp, r) }},
		{"fairies", func() error { return g.fairies(sp, r) }},
		{"coins", func() error { return g.coins(sp, r) }},
	}

	for _, p := range phases {
		if err := errors.FromContext(ctx); err != nil {
			return nil, err
		}
		if err := p.run(); err != nil {
			slog.Warn("generation phase failed",
				"phase", p.name,
				"seed", s.Seed,
				"error", err)
			return nil, errors.Wrapf(err, "%s phase failed", p.name)
		}
		slog.Debug("generation phase done", "phase", p.name, "seed", s.Seed, "draws", r.Position())
	}

	if err := errors.FromContext(ctx); err != nil {
		return nil, err
	}
	sp.buildHints()

	rom, err := writePatch(sp)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write patch")
	}

	slog.Info("seed generated",
		"seed", s.Seed,
		"seed_id", s.SeedID,
		"writes", rom.Len())

	return &GenerateOutput{
		Patch:   rom.Encode(),
		Spoiler: sp,
	}, nil
}

func (g *generator) hash(sp *Spoiler) error {
	hash, err := sp.settings.SeedHash()
	if err != nil {
		return err
	}
	sp.Hash = hash
	return nil
}

func (g *generator) prices(sp *Spoiler, r rng.Rand) error {
	table, err := prices.RandomizePrices(sp.settings.RandomPrices, r)
	if err != nil {
		return err
	}
	sp.Prices = table
	return nil
}

// shop shuffles shop contents until every location can be bought with the
// coin budget.
func (g *generator) shop(sp *Spoiler, r rng.Rand) error {
	s := sp.settings
	if !s.MoveRando.Shuffled() {
		sp.Shop = prices.VanillaShop()
		sp.internal.ShopAttempts = 0
		return nil
	}

	cross := s.MoveRando == settings.MoveRandoCrossPurchase
	var missing []entities.Location
	for attempt := 1; attempt <= g.shopAttempts; attempt++ {
		candidate := shuffleShop(r, cross)
		missing = prices.Unaffordable(candidate, sp.Prices, g.coinBudget, s.DecoupleMoveSequences)
		if len(missing) == 0 {
			sp.Shop = candidate
			sp.internal.ShopAttempts = attempt
			return nil
		}
	}

	return errors.PlacementFailedf("no affordable shop layout after %d attempts", g.shopAttempts).
		WithMeta("attempts", g.shopAttempts).
		WithMeta("unaffordable", len(missing))
}

// shuffleShop permutes shop items. Without cross purchase each kong keeps
// its own moves and shared items stay in shared slots.
func shuffleShop(r rng.Rand, crossPurchase bool) prices.Shop {
	var groups [][]entities.Location
	if crossPurchase {
		groups = append(groups, slices.Clone(entities.AllLocations))
	} else {
		for _, k := range entities.AllKongs {
			groups = append(groups, entities.KongLocations(k))
		}
		groups = append(groups, entities.SharedLocations())
	}

	vanilla := prices.VanillaShop()
	out := make(prices.Shop, len(entities.AllLocations))
	for _, group := range groups {
		items := make([]entities.Item, len(group))
		for i, l := range group {
			items[i] = vanilla.Item(l)
		}
		r.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
		for i, l := range group {
			out[l] = items[i]
		}
	}
	return out
}

func (g *generator) doors(sp *Spoiler, r rng.Rand) error {
	s := sp.settings
	placements, err := doors.Shuffle(r, doors.Options{
		ShuffleWrinkly: s.WrinklyLocationRando,
		ShuffleTnS:     s.TnSLocationRando,
		ToughSpots:     s.ToughDoorSpots,
	})
	if err != nil {
		return err
	}
	sp.Doors = placements
	return nil
}

func (g *generator) fairies(sp *Spoiler, r rng.Rand) error {
	placements, err := fairies.Shuffle(r, fairies.Options{Random: sp.settings.RandomFairies})
	if err != nil {
		return err
	}
	sp.Fairies = placements
	return nil
}

func (g *generator) coins(sp *Spoiler, r rng.Rand) error {
	if !sp.settings.RandomizeCoinRequirements {
		sp.CoinRequirements = coins.Vanilla()
		return nil
	}
	req, err := coins.Randomize(r)
	if err != nil {
		return err
	}
	sp.CoinRequirements = req
	return nil
}
