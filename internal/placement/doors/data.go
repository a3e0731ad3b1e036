package doors

import (
	"github.com/junglerando/rando-api/internal/entities"
	"github.com/junglerando/rando-api/internal/logic"
)

// The first five slots of every level are the lobby doors, one per kong in
// kong order. They are the vanilla Wrinkly door positions.
var doorLocations = map[entities.Level][]DoorData{
	entities.LevelJungleJapes: {
		door("Japes Lobby: Middle Right", entities.MapJungleJapesLobby, entities.RegionJungleJapesLobby, [4]float64{169.075, 10.833, 594.613, 90}, enabled()),
		door("Japes Lobby: Far Left", entities.MapJungleJapesLobby, entities.RegionJungleJapesLobby, [4]float64{647.565, 0, 791.912, 183}, enabled()),
		door("Japes Lobby: Close Right", entities.MapJungleJapesLobby, entities.RegionJungleJapesLobby, [4]float64{156.565, 10.833, 494.73, 98}, enabled()),
		door("Japes Lobby: Far Right", entities.MapJungleJapesLobby, entities.RegionJungleJapesLobby, [4]float64{252.558, 0, 760.733, 163}, enabled()),
		door("Japes Lobby: Close Left", entities.MapJungleJapesLobby, entities.RegionJungleJapesLobby, [4]float64{821.85, 0, 615.167, 264}, enabled()),
	},
	entities.LevelAngryAztec: {
		door("Aztec Lobby: Pillar Wall", entities.MapAngryAztecLobby, entities.RegionAngryAztecLobby, [4]float64{499.179, 0, 146.628, 0}, enabled()),
		door("Aztec Lobby: Lower Right", entities.MapAngryAztecLobby, entities.RegionAngryAztecLobby, [4]float64{441.456, 0, 614.029, 180}, enabled()),
		door("Aztec Lobby: Left of Portal", entities.MapAngryAztecLobby, entities.RegionAngryAztecLobby, [4]float64{628.762, 80, 713.93, 177}, enabled()),
		door("Aztec Lobby: Right of Portal", entities.MapAngryAztecLobby, entities.RegionAngryAztecLobby, [4]float64{377.124, 80, 712.484, 179}, enabled()),
		door("Aztec Lobby: Behind Feather Door", entities.MapAngryAztecLobby, entities.RegionAngryAztecLobby, [4]float64{1070.018, 0, 738.609, 190}, enabled()),
		door("Next to Candy - right", entities.MapAngryAztec, entities.RegionAngryAztecStart, [4]float64{2468, 120, 473.5, 298.75}),
	},
	entities.LevelFranticFactory: {
		door("Factory Lobby: Low Left", entities.MapFactoryLobby, entities.RegionFactoryLobby, [4]float64{544.362, 0, 660.802, 182}, enabled()),
		door("Factory Lobby: Top Left", entities.MapFactoryLobby, entities.RegionFactoryLobby, [4]float64{660.685, 133.5, 660.774, 182}, enabled()),
		door("Factory Lobby: Top Center", entities.MapFactoryLobby, entities.RegionFactoryLobby, [4]float64{468.047, 85.833, 662.907, 180}, enabled()),
		door("Factory Lobby: Top Right", entities.MapFactoryLobby, entities.RegionFactoryLobby, [4]float64{275.533, 133.5, 661.908, 180}, enabled()),
		door("Factory Lobby: Low Right", entities.MapFactoryLobby, entities.RegionFactoryLobby, [4]float64{393.114, 0, 662.562, 182}, enabled()),
		door("Crusher Room - start", entities.MapFactoryCrusher, entities.RegionFactoryLobby, [4]float64{475, 0, 539, 180}, enabled()),
	},
	entities.LevelGloomyGalleon: {
		door("Galleon Lobby: Far Left", entities.MapGalleonLobby, entities.RegionGalleonLobby, [4]float64{1022.133, 139.667, 846.41, 276}, enabled()),
		door("Galleon Lobby: Far Right", entities.MapGalleonLobby, entities.RegionGalleonLobby, [4]float64{345.039, 139.667, 884.162, 92}, enabled()),
		door("Galleon Lobby: Close Right", entities.MapGalleonLobby, entities.RegionGalleonLobby, [4]float64{464.68, 159.667, 1069.446, 161}, enabled()),
		door("Galleon Lobby: Near DK Portal", entities.MapGalleonLobby, entities.RegionGalleonLobby, [4]float64{582.36, 159.667, 1088.258, 180}, enabled()),
		door("Galleon Lobby: Close Left", entities.MapGalleonLobby, entities.RegionGalleonLobby, [4]float64{876.388, 178.667, 1063.828, 192}, enabled()),
		door("Treasure Chest Exterior", entities.MapGloomyGalleon, entities.RegionTreasureRoom, [4]float64{1938, 1440, 524, 330}),
		door("Next to Warp 3 in Cranky's Area", entities.MapGloomyGalleon, entities.RegionGloomyGalleonStart, [4]float64{3071, 1890, 2838, 0}),
		door("Next to Cannonball game", entities.MapGloomyGalleon, entities.RegionGalleonPineappleGate, [4]float64{1334, 1610, 2523, 0},
			requires(logic.Event(entities.EventWaterSwitch))),
		door("Music Cactus - bottom front left", entities.MapGloomyGalleon, entities.RegionShipyard, [4]float64{4239, 1289, 880, 38.31}),
		door("Tiny's 5D ship", entities.MapGalleon5DShipDKTiny, entities.RegionSaxophoneShip, [4]float64{735, 0, 1336, 270},
			kongs(entities.KongTiny)),
		door("Lanky's 5D ship", entities.MapGalleon5DShipDiddyLankyChunky, entities.RegionTromboneShip, [4]float64{1099, 0, 1051, 270},
			kongs(entities.KongLanky)),
		door("Behind Chunky punch gate in Cranky Area", entities.MapGloomyGalleon, entities.RegionGloomyGalleonStart, [4]float64{3275, 1670, 2353.65, 13.65},
			kongs(entities.KongChunky), requires(logic.Punch)),
		door("Lighthouse Interior", entities.MapGalleonLighthouse, entities.RegionLighthouse, [4]float64{508, 200, 409, 135.2},
			kongs(entities.KongDonkey)),
		door("2Dship's secret 3rd door", entities.MapGloomyGalleon, entities.RegionShipyard, [4]float64{1109, 1189.9, 1978, 95},
			tilt(0, -47), enabled()),
		door("Near Mermaid's Palace - Under Tag Barrel", entities.MapGloomyGalleon, entities.RegionLighthouseArea, [4]float64{915, 164, 3967, 30},
			tilt(7, 3), enabled()),
		door("On top of Seal cage", entities.MapGloomyGalleon, entities.RegionLighthouseArea, [4]float64{2238, 1837, 4099, 251.7},
			kongs(entities.KongDiddy), requires(logic.Jetpack), tough()),
	},
	entities.LevelFungiForest: {
		door("Fungi Lobby: On High Box", entities.MapFungiForestLobby, entities.RegionFungiForestLobby, [4]float64{449.866, 45.922, 254.6, 270}, enabled()),
		door("Fungi Lobby: Near Gorilla Gone Door", entities.MapFungiForestLobby, entities.RegionFungiForestLobby, [4]float64{136.842, 0, 669.81, 90}, enabled()),
		door("Fungi Lobby: Opposite Gorilla Gone Door", entities.MapFungiForestLobby, entities.RegionFungiForestLobby, [4]float64{450.219, 0, 689.048, 270}, enabled()),
		door("Fungi Lobby: Near B. Locker", entities.MapFungiForestLobby, entities.RegionFungiForestLobby, [4]float64{293, 0, 154.197, 0}, enabled(), scale(1.2)),
		door("Fungi Lobby: Near Entrance", entities.MapFungiForestLobby, entities.RegionFungiForestLobby, [4]float64{450.862, 0, 565.029, 270}, enabled()),
	},
	entities.LevelCrystalCaves: {
		door("Caves Lobby: Far Left", entities.MapCrystalCavesLobby, entities.RegionCrystalCavesLobby, [4]float64{1103.665, 146.5, 823.872, 194}, enabled()),
		door("Caves Lobby: Top Ledge", entities.MapCrystalCavesLobby, entities.RegionCrystalCavesLobby, [4]float64{731.84, 280.5, 704.935, 120}, enabled(),
			kongs(entities.KongDiddy)),
		door("Caves Lobby: Near Left", entities.MapCrystalCavesLobby, entities.RegionCrystalCavesLobby, [4]float64{1046.523, 13.5, 476.611, 189}, enabled()),
		door("Caves Lobby: Far Right", entities.MapCrystalCavesLobby, entities.RegionCrystalCavesLobby, [4]float64{955.407, 146.664, 843.472, 187}, enabled()),
		door("Caves Lobby: Near Right", entities.MapCrystalCavesLobby, entities.RegionCrystalCavesLobby, [4]float64{881.545, 13.466, 508.666, 193}, enabled()),
		door("Outside Lanky's Cabin", entities.MapCrystalCaves, entities.RegionCrystalCavesMain, [4]float64{2400, 276, 1892.5, 21.75}, enabled()),
		door("Outside Chunky's Cabin", entities.MapCrystalCaves, entities.RegionCrystalCavesMain, [4]float64{3515.65, 175, 1893, 273.7}, enabled()),
		door("Across from the 5Door Cabin", entities.MapCrystalCaves, entities.RegionCrystalCavesMain, [4]float64{2970, 128, 1499, 68.5}, tilt(9, 11), enabled()),
		door("5Door Igloo - DK's right", entities.MapCrystalCaves, entities.RegionCrystalCavesMain, [4]float64{585, 48, 1396, 5}, scale(0.95), enabled()),
		door("5Door Igloo - Tiny's right", entities.MapCrystalCaves, entities.RegionCrystalCavesMain, [4]float64{635, 48, 1190, 148}, scale(0.95), enabled()),
		door("In Chunky's 5Door Cabin on a Book Shelf", entities.MapCavesChunkyCabin, entities.RegionChunkyCabin, [4]float64{403.5, 44, 579, 180},
			kongs(entities.KongChunky), enabled()),
		door("Under Handstand Slope", entities.MapCrystalCaves, entities.RegionCrystalCavesMain, [4]float64{1272, 93, 1291, 75}),
	},
	entities.LevelCreepyCastle: {
		door("Castle Lobby: Central Pillar (1)", entities.MapCreepyCastleLobby, entities.RegionCreepyCastleLobby, [4]float64{499.978, 71.833, 634.25, 240}, enabled()),
		door("Castle Lobby: Central Pillar (2)", entities.MapCreepyCastleLobby, entities.RegionCreepyCastleLobby, [4]float64{499.545, 71.833, 725.653, 300}, enabled()),
		door("Castle Lobby: Central Pillar (3)", entities.MapCreepyCastleLobby, entities.RegionCreepyCastleLobby, [4]float64{661.738, 71.833, 726.433, 60}, enabled()),
		door("Castle Lobby: Central Pillar (4)", entities.MapCreepyCastleLobby, entities.RegionCreepyCastleLobby, [4]float64{660.732, 71.833, 635.288, 118}, enabled()),
		door("Castle Lobby: Central Pillar (5)", entities.MapCreepyCastleLobby, entities.RegionCreepyCastleLobby, [4]float64{581.215, 71.833, 588.444, 182}, enabled()),
	},
}
