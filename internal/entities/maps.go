package entities

// Map is a loadable game map. Each map has a fixed numeric id in the ROM.
type Map string

// Maps holding door or fairy slots.
const (
	MapIsles             Map = "Isles"
	MapTrainingGrounds   Map = "TrainingGrounds"
	MapBananaFairyRoom   Map = "BananaFairyRoom"
	MapJungleJapesLobby  Map = "JungleJapesLobby"
	MapAngryAztecLobby   Map = "AngryAztecLobby"
	MapFactoryLobby      Map = "FranticFactoryLobby"
	MapGalleonLobby      Map = "GloomyGalleonLobby"
	MapFungiForestLobby  Map = "FungiForestLobby"
	MapCrystalCavesLobby Map = "CrystalCavesLobby"
	MapCreepyCastleLobby Map = "CreepyCastleLobby"

	MapJungleJapes    Map = "JungleJapes"
	MapJapesLankyCave Map = "JapesLankyCave"
	MapJapesTinyHive  Map = "JapesTinyHive"

	MapAngryAztec        Map = "AngryAztec"
	MapAztecLlamaTemple  Map = "AztecLlamaTemple"
	MapAztecTinyTemple   Map = "AztecTinyTemple"
	MapAztecTiny5DTemple Map = "AztecTiny5DTemple"

	MapFranticFactory Map = "FranticFactory"
	MapFactoryCrusher Map = "FactoryCrusher"

	MapGloomyGalleon                 Map = "GloomyGalleon"
	MapGalleon5DShipDKTiny           Map = "Galleon5DShipDKTiny"
	MapGalleon5DShipDiddyLankyChunky Map = "Galleon5DShipDiddyLankyChunky"
	MapGalleonLighthouse             Map = "GalleonLighthouse"

	MapFungiForest         Map = "FungiForest"
	MapForestThornvineBarn Map = "ForestThornvineBarn"
	MapForestRafters       Map = "ForestRafters"
	MapForestAnthill       Map = "ForestAnthill"

	MapCrystalCaves         Map = "CrystalCaves"
	MapCavesChunkyCabin     Map = "CavesChunkyCabin"
	MapCavesDiddyUpperCabin Map = "CavesDiddyUpperCabin"
	MapCavesTinyIgloo       Map = "CavesTinyIgloo"

	MapCreepyCastle   Map = "CreepyCastle"
	MapCastleTree     Map = "CastleTree"
	MapCastleMuseum   Map = "CastleMuseum"
	MapCastleBallroom Map = "CastleBallroom"
	MapCastleLibrary  Map = "CastleLibrary"

	MapHideoutHelm Map = "HideoutHelm"
)

var mapIDs = map[Map]uint8{
	MapJapesTinyHive:                 0x0C,
	MapJapesLankyCave:                0x0D,
	MapJungleJapes:                   0x07,
	MapHideoutHelm:                   0x11,
	MapAztecTinyTemple:               0x10,
	MapAztecTiny5DTemple:             0x13,
	MapAztecLlamaTemple:              0x14,
	MapFranticFactory:                0x1A,
	MapGloomyGalleon:                 0x1E,
	MapIsles:                         0x22,
	MapFactoryCrusher:                0x24,
	MapAngryAztec:                    0x26,
	MapGalleon5DShipDiddyLankyChunky: 0x2E,
	MapGalleon5DShipDKTiny:           0x2B,
	MapForestAnthill:                 0x34,
	MapFungiForest:                   0x30,
	MapGalleonLighthouse:             0x31,
	MapForestRafters:                 0x38,
	MapForestThornvineBarn:           0x3B,
	MapCrystalCaves:                  0x48,
	MapCreepyCastle:                  0x57,
	MapCastleBallroom:                0x58,
	MapCavesChunkyCabin:              0x5A,
	MapCavesDiddyUpperCabin:          0x5C,
	MapCavesTinyIgloo:                0x5D,
	MapCastleMuseum:                  0x71,
	MapCastleLibrary:                 0x72,
	MapCastleTree:                    0xA4,
	MapJungleJapesLobby:              0xA9,
	MapAngryAztecLobby:               0xAD,
	MapGalleonLobby:                  0xAE,
	MapFactoryLobby:                  0xAF,
	MapTrainingGrounds:               0xB0,
	MapFungiForestLobby:              0xB2,
	MapBananaFairyRoom:               0xBD,
	MapCreepyCastleLobby:             0xC1,
	MapCrystalCavesLobby:             0xC2,
}

func (m Map) String() string { return string(m) }

// ID returns the numeric map id written into the patch.
func (m Map) ID() uint8 { return mapIDs[m] }
