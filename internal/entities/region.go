package entities

// Region is a node of the logic graph.
type Region string

// Logic regions, grouped by level.
const (
	RegionGameStart        Region = "GameStart"
	RegionIslesMain        Region = "IslesMain"
	RegionIslesMainUpper   Region = "IslesMainUpper"
	RegionKremIsle         Region = "KremIsle"
	RegionKremIsleTopLevel Region = "KremIsleTopLevel"
	RegionBananaFairyRoom  Region = "BananaFairyRoom"
	RegionTrainingGrounds  Region = "TrainingGrounds"

	RegionJungleJapesLobby  Region = "JungleJapesLobby"
	RegionAngryAztecLobby   Region = "AngryAztecLobby"
	RegionFactoryLobby      Region = "FranticFactoryLobby"
	RegionGalleonLobby      Region = "GloomyGalleonLobby"
	RegionFungiForestLobby  Region = "FungiForestLobby"
	RegionCrystalCavesLobby Region = "CrystalCavesLobby"
	RegionCreepyCastleLobby Region = "CreepyCastleLobby"

	RegionJungleJapesMain        Region = "JungleJapesMain"
	RegionBeyondRambiGate        Region = "BeyondRambiGate"
	RegionJapesLankyCave         Region = "JapesLankyCave"
	RegionJapesBeyondFeatherGate Region = "JapesBeyondFeatherGate"
	RegionJapesBeyondCoconutGate Region = "JapesBeyondCoconutGate2"
	RegionTinyHive               Region = "TinyHive"

	RegionAngryAztecStart      Region = "AngryAztecStart"
	RegionAngryAztecOasis      Region = "AngryAztecOasis"
	RegionAngryAztecMain       Region = "AngryAztecMain"
	RegionBetweenVinesByPortal Region = "BetweenVinesByPortal"
	RegionLlamaTemple          Region = "LlamaTemple"
	RegionTinyTemple           Region = "TinyTemple"
	RegionTempleStart          Region = "TempleStart"

	RegionFranticFactoryStart Region = "FranticFactoryStart"
	RegionBeyondHatch         Region = "BeyondHatch"
	RegionTesting             Region = "Testing"
	RegionInsideCore          Region = "InsideCore"

	RegionGloomyGalleonStart   Region = "GloomyGalleonStart"
	RegionTreasureRoom         Region = "TreasureRoom"
	RegionShipyard             Region = "Shipyard"
	RegionGalleonPineappleGate Region = "GalleonBeyondPineappleGate"
	RegionLighthouseArea       Region = "LighthouseArea"
	RegionLighthousePlatform   Region = "LighthousePlatform"
	RegionLighthouse           Region = "Lighthouse"
	RegionSaxophoneShip        Region = "SaxophoneShip"
	RegionTromboneShip         Region = "TromboneShip"

	RegionFungiForestStart      Region = "FungiForestStart"
	RegionMushroomUpperExterior Region = "MushroomUpperExterior"
	RegionMillArea              Region = "MillArea"
	RegionThornvineBarn         Region = "ThornvineBarn"
	RegionMillRafters           Region = "MillRafters"
	RegionAnthill               Region = "Anthill"

	RegionCrystalCavesMain Region = "CrystalCavesMain"
	RegionBoulderCave      Region = "BoulderCave"
	RegionCabinArea        Region = "CabinArea"
	RegionChunkyCabin      Region = "ChunkyCabin"
	RegionDiddyUpperCabin  Region = "DiddyUpperCabin"
	RegionTinyIgloo        Region = "TinyIgloo"

	RegionCreepyCastleMain  Region = "CreepyCastleMain"
	RegionCastleTree        Region = "CastleTree"
	RegionMuseumBehindGlass Region = "MuseumBehindGlass"
	RegionBallroom          Region = "Ballroom"
	RegionLibrary           Region = "Library"

	RegionHideoutHelmMain     Region = "HideoutHelmMain"
	RegionHideoutHelmAfterBoM Region = "HideoutHelmAfterBoM"
)

var regionLevels = map[Region]Level{
	RegionGameStart:        LevelDKIsles,
	RegionIslesMain:        LevelDKIsles,
	RegionIslesMainUpper:   LevelDKIsles,
	RegionKremIsle:         LevelDKIsles,
	RegionKremIsleTopLevel: LevelDKIsles,
	RegionBananaFairyRoom:  LevelDKIsles,
	RegionTrainingGrounds:  LevelDKIsles,

	RegionJungleJapesLobby:  LevelJungleJapes,
	RegionAngryAztecLobby:   LevelAngryAztec,
	RegionFactoryLobby:      LevelFranticFactory,
	RegionGalleonLobby:      LevelGloomyGalleon,
	RegionFungiForestLobby:  LevelFungiForest,
	RegionCrystalCavesLobby: LevelCrystalCaves,
	RegionCreepyCastleLobby: LevelCreepyCastle,

	RegionJungleJapesMain:        LevelJungleJapes,
	RegionBeyondRambiGate:        LevelJungleJapes,
	RegionJapesLankyCave:         LevelJungleJapes,
	RegionJapesBeyondFeatherGate: LevelJungleJapes,
	RegionJapesBeyondCoconutGate: LevelJungleJapes,
	RegionTinyHive:               LevelJungleJapes,

	RegionAngryAztecStart:      LevelAngryAztec,
	RegionAngryAztecOasis:      LevelAngryAztec,
	RegionAngryAztecMain:       LevelAngryAztec,
	RegionBetweenVinesByPortal: LevelAngryAztec,
	RegionLlamaTemple:          LevelAngryAztec,
	RegionTinyTemple:           LevelAngryAztec,
	RegionTempleStart:          LevelAngryAztec,

	RegionFranticFactoryStart: LevelFranticFactory,
	RegionBeyondHatch:         LevelFranticFactory,
	RegionTesting:             LevelFranticFactory,
	RegionInsideCore:          LevelFranticFactory,

	RegionGloomyGalleonStart:   LevelGloomyGalleon,
	RegionTreasureRoom:         LevelGloomyGalleon,
	RegionShipyard:             LevelGloomyGalleon,
	RegionGalleonPineappleGate: LevelGloomyGalleon,
	RegionLighthouseArea:       LevelGloomyGalleon,
	RegionLighthousePlatform:   LevelGloomyGalleon,
	RegionLighthouse:           LevelGloomyGalleon,
	RegionSaxophoneShip:        LevelGloomyGalleon,
	RegionTromboneShip:         LevelGloomyGalleon,

	RegionFungiForestStart:      LevelFungiForest,
	RegionMushroomUpperExterior: LevelFungiForest,
	RegionMillArea:              LevelFungiForest,
	RegionThornvineBarn:         LevelFungiForest,
	RegionMillRafters:           LevelFungiForest,
	RegionAnthill:               LevelFungiForest,

	RegionCrystalCavesMain: LevelCrystalCaves,
	RegionBoulderCave:      LevelCrystalCaves,
	RegionCabinArea:        LevelCrystalCaves,
	RegionChunkyCabin:      LevelCrystalCaves,
	RegionDiddyUpperCabin:  LevelCrystalCaves,
	RegionTinyIgloo:        LevelCrystalCaves,

	RegionCreepyCastleMain:  LevelCreepyCastle,
	RegionCastleTree:        LevelCreepyCastle,
	RegionMuseumBehindGlass: LevelCreepyCastle,
	RegionBallroom:          LevelCreepyCastle,
	RegionLibrary:           LevelCreepyCastle,

	RegionHideoutHelmMain:     LevelHideoutHelm,
	RegionHideoutHelmAfterBoM: LevelHideoutHelm,
}

func (r Region) String() string { return string(r) }

// Level returns the level the region belongs to. Lobbies belong to the level
// they lead into.
func (r Region) Level() Level { return regionLevels[r] }

// Known reports whether the region is part of the logic graph.
func (r Region) Known() bool {
	_, ok := regionLevels[r]
	return ok
}
