package logic

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/junglerando/rando-api/internal/entities"
)

// Exit is a one-way edge of the region graph.
type Exit struct {
	To       entities.Region
	Requires Predicate
}

// EventSource grants an event to anyone standing in the region who meets
// the requirement.
type EventSource struct {
	Event    entities.Event
	Requires Predicate
}

type node struct {
	exits  []Exit
	events []EventSource
}

// Start is where every playthrough begins.
const Start = entities.RegionGameStart

func exits(es ...Exit) []Exit { return es }

func to(r entities.Region, p Predicate) Exit { return Exit{To: r, Requires: p} }

var graph = map[entities.Region]node{
	entities.RegionGameStart: {exits: exits(to(entities.RegionIslesMain, Always))},
	entities.RegionIslesMain: {exits: exits(
		to(entities.RegionTrainingGrounds, Always),
		to(entities.RegionIslesMainUpper, Any(Jetpack, Monkeyport)),
		to(entities.RegionKremIsle, Always),
		to(entities.RegionBananaFairyRoom, Mini),
		to(entities.RegionJungleJapesLobby, Always),
		to(entities.RegionAngryAztecLobby, Vines),
		to(entities.RegionGalleonLobby, Always),
		to(entities.RegionFungiForestLobby, Always),
		to(entities.RegionCrystalCavesLobby, Always),
		to(entities.RegionCreepyCastleLobby, Always),
	)},
	entities.RegionIslesMainUpper:  {},
	entities.RegionTrainingGrounds: {},
	entities.RegionBananaFairyRoom: {},
	entities.RegionKremIsle: {exits: exits(
		to(entities.RegionKremIsleTopLevel, Any(Jetpack, Monkeyport)),
		to(entities.RegionFactoryLobby, Always),
		to(entities.RegionHideoutHelmMain, All(Vines, Gone)),
	)},
	entities.RegionKremIsleTopLevel: {},

	entities.RegionJungleJapesLobby: {exits: exits(to(entities.RegionJungleJapesMain, Always))},
	entities.RegionJungleJapesMain: {exits: exits(
		to(entities.RegionBeyondRambiGate, IsKong(entities.KongDonkey)),
		to(entities.RegionJapesLankyCave, Peanut),
		to(entities.RegionJapesBeyondFeatherGate, Feather),
		to(entities.RegionJapesBeyondCoconutGate, Coconut),
	)},
	entities.RegionBeyondRambiGate:        {},
	entities.RegionJapesLankyCave:         {},
	entities.RegionJapesBeyondFeatherGate: {exits: exits(to(entities.RegionTinyHive, Mini))},
	entities.RegionJapesBeyondCoconutGate: {},
	entities.RegionTinyHive:               {},

	entities.RegionAngryAztecLobby: {exits: exits(to(entities.RegionAngryAztecStart, Always))},
	entities.RegionAngryAztecStart: {exits: exits(
		to(entities.RegionAngryAztecOasis, Always),
		to(entities.RegionAngryAztecMain, Any(Guitar, Jetpack)),
	)},
	entities.RegionAngryAztecOasis: {exits: exits(
		to(entities.RegionTempleStart, Any(Peanut, Pineapple, Feather)),
	)},
	entities.RegionAngryAztecMain: {exits: exits(
		to(entities.RegionBetweenVinesByPortal, Vines),
		to(entities.RegionLlamaTemple, Any(Coconut, Grape, Feather)),
		to(entities.RegionTinyTemple, Always),
	)},
	entities.RegionBetweenVinesByPortal: {},
	entities.RegionLlamaTemple:          {},
	entities.RegionTinyTemple:           {},
	entities.RegionTempleStart:          {},

	entities.RegionFactoryLobby:        {exits: exits(to(entities.RegionFranticFactoryStart, Always))},
	entities.RegionFranticFactoryStart: {exits: exits(to(entities.RegionBeyondHatch, Slam))},
	entities.RegionBeyondHatch: {exits: exits(
		to(entities.RegionTesting, Slam),
		to(entities.RegionInsideCore, Grab),
	)},
	entities.RegionTesting: {events: []EventSource{
		{Event: entities.EventDartsPlayed, Requires: Feather},
	}},
	entities.RegionInsideCore: {},

	entities.RegionGalleonLobby: {exits: exits(to(entities.RegionGloomyGalleonStart, Always))},
	entities.RegionGloomyGalleonStart: {exits: exits(
		to(entities.RegionTreasureRoom, Swim),
		to(entities.RegionShipyard, Peanut),
		to(entities.RegionLighthouseArea, Coconut),
		to(entities.RegionGalleonPineappleGate, Pineapple),
	)},
	entities.RegionTreasureRoom: {},
	entities.RegionShipyard: {exits: exits(
		to(entities.RegionSaxophoneShip, Saxophone),
		to(entities.RegionTromboneShip, Trombone),
	)},
	entities.RegionGalleonPineappleGate: {},
	entities.RegionLighthouseArea: {exits: exits(
		to(entities.RegionLighthouse, IsKong(entities.KongDonkey)),
		to(entities.RegionLighthousePlatform, Always),
	)},
	entities.RegionLighthousePlatform: {},
	entities.RegionLighthouse: {events: []EventSource{
		{Event: entities.EventWaterSwitch, Requires: Grab},
	}},
	entities.RegionSaxophoneShip: {},
	entities.RegionTromboneShip:  {},

	entities.RegionFungiForestLobby: {exits: exits(to(entities.RegionFungiForestStart, Always))},
	entities.RegionFungiForestStart: {exits: exits(
		to(entities.RegionMushroomUpperExterior, Always),
		to(entities.RegionMillArea, Always),
		to(entities.RegionAnthill, Mini),
	)},
	entities.RegionMushroomUpperExterior: {},
	entities.RegionMillArea: {
		exits: exits(
			to(entities.RegionThornvineBarn, IsKong(entities.KongDonkey)),
			to(entities.RegionMillRafters, All(IsKong(entities.KongDiddy), Event(entities.EventMillSwitch))),
		),
		events: []EventSource{{Event: entities.EventMillSwitch, Requires: Punch}},
	},
	entities.RegionThornvineBarn: {},
	entities.RegionMillRafters:   {},
	entities.RegionAnthill:       {},

	entities.RegionCrystalCavesLobby: {exits: exits(to(entities.RegionCrystalCavesMain, Always))},
	entities.RegionCrystalCavesMain: {
		exits: exits(
			to(entities.RegionBoulderCave, Always),
			to(entities.RegionCabinArea, Always),
			to(entities.RegionTinyIgloo, Event(entities.EventIglooOpened)),
		),
		events: []EventSource{{Event: entities.EventIglooOpened, Requires: Jetpack}},
	},
	entities.RegionBoulderCave: {},
	entities.RegionCabinArea: {exits: exits(
		to(entities.RegionChunkyCabin, IsKong(entities.KongChunky)),
		to(entities.RegionDiddyUpperCabin, Jetpack),
	)},
	entities.RegionChunkyCabin:     {},
	entities.RegionDiddyUpperCabin: {},
	entities.RegionTinyIgloo:       {},

	entities.RegionCreepyCastleLobby: {exits: exits(to(entities.RegionCreepyCastleMain, Always))},
	entities.RegionCreepyCastleMain: {exits: exits(
		to(entities.RegionCastleTree, Blast),
		to(entities.RegionMuseumBehindGlass, Monkeyport),
		to(entities.RegionBallroom, Always),
		to(entities.RegionLibrary, Strong),
	)},
	entities.RegionCastleTree:        {},
	entities.RegionMuseumBehindGlass: {},
	entities.RegionBallroom:          {},
	entities.RegionLibrary:           {},

	entities.RegionHideoutHelmMain: {
		exits: exits(to(entities.RegionHideoutHelmAfterBoM, Event(entities.EventHelmKeyAccess))),
		events: []EventSource{{
			Event:    entities.EventHelmKeyAccess,
			Requires: All(Bongos, Guitar, Trombone, Saxophone, Triangle),
		}},
	},
	entities.RegionHideoutHelmAfterBoM: {},
}

// Regions returns every region of the graph.
func Regions() []entities.Region {
	out := make([]entities.Region, 0, len(graph))
	for r := range graph {
		out = append(out, r)
	}
	return out
}

// Exits returns the outgoing edges of a region.
func Exits(r entities.Region) []Exit {
	return graph[r].exits
}

// Reachable walks the region graph from Start. Events granted along the way
// are recorded on a copy of the state and the walk repeats until no new event
// appears. The returned state carries those events.
func Reachable(s *State) (mapset.Set[entities.Region], *State) {
	st := s.Clone()
	for {
		visited := walk(st)
		gained := false
		visited.Each(func(r entities.Region) {
			for _, src := range graph[r].events {
				if !st.HasEvent(src.Event) && src.Requires(st) {
					st.AddEvent(src.Event)
					gained = true
				}
			}
		})
		if !gained {
			return visited, st
		}
	}
}

// CanReach reports whether the region is reachable from Start.
func CanReach(s *State, r entities.Region) bool {
	visited, _ := Reachable(s)
	return visited.Has(r)
}

func walk(s *State) mapset.Set[entities.Region] {
	visited := mapset.Of(Start)
	pending := queue.New[entities.Region]()
	pending.Enqueue(Start)
	for !pending.Empty() {
		current := pending.Dequeue()
		for _, exit := range graph[current].exits {
			if visited.Has(exit.To) || !exit.Requires(s) {
				continue
			}
			visited.Put(exit.To)
			pending.Enqueue(exit.To)
		}
	}
	return visited
}
