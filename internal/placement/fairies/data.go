package fairies

import (
	"github.com/junglerando/rando-api/internal/entities"
	"github.com/junglerando/rando-api/internal/logic"
)

var fairyLocations = map[entities.Level][]FairyData{
	entities.LevelJungleJapes: {
		vanillaFairy("Rambi Door Pool", entities.MapJungleJapes, entities.RegionBeyondRambiGate,
			spawnAt(564, 270, 2916), index(0)),
		vanillaFairy("Painting Room", entities.MapJapesLankyCave, entities.RegionJapesLankyCave,
			spawnAt(210, 174, 391), index(1),
			requires(logic.All(logic.Camera, logic.IsKong(entities.KongLanky), logic.Slam, logic.Any(logic.Grape, logic.Trombone)))),
		newFairy("Near Kong Cage", entities.MapJungleJapes, entities.RegionJungleJapesMain, fence(NewFence(1000, 2345, 1206, 2482), 1040)),
		newFairy("Near Mountain", entities.MapJungleJapes, entities.RegionJungleJapesMain, fence(NewFence(1300, 1793, 1950, 2162), 916)),
		newFairy("Above Underground Entrance", entities.MapJungleJapes, entities.RegionJungleJapesMain, fence(NewFence(2223, 1255, 2524, 1322), 370)),
		newFairy("Hive Area", entities.MapJungleJapes, entities.RegionJapesBeyondFeatherGate, fence(NewFence(1934, 3153, 2607, 3207), 727)),
		newFairy("Storm Area", entities.MapJungleJapes, entities.RegionJapesBeyondCoconutGate, fence(NewFence(1450, 3678, 1910, 4280), 475)),
		newFairy("Inside Hive", entities.MapJapesTinyHive, entities.RegionTinyHive, fence(NewFence(1259, 1204, 1487, 1603), 236)),
	},
	entities.LevelAngryAztec: {
		vanillaFairy("Tiny 5-Door Temple", entities.MapAztecTiny5DTemple, entities.RegionTinyTemple,
			spawnAt(1178, 95, 704), index(1), requires(logic.All(logic.Camera, logic.Feather, logic.Mini))),
		vanillaFairy("Llama Temple", entities.MapAztecLlamaTemple, entities.RegionLlamaTemple,
			spawnAt(1646, 500, 3091), index(0)),
		newFairy("Vase Room", entities.MapAngryAztec, entities.RegionBetweenVinesByPortal,
			fence(NewFence(127, 626, 463, 902), 151), requires(logic.All(logic.Camera, logic.Pineapple))),
		newFairy("Oasis", entities.MapAngryAztec, entities.RegionAngryAztecOasis, fence(NewFence(2206, 691, 2773, 1124), 218)),
		newFairy("Behind Tiny Temple", entities.MapAngryAztec, entities.RegionAngryAztecOasis, fence(NewFence(3190, 424, 3503, 688), 363)),
		newFairy("Around Totem", entities.MapAngryAztec, entities.RegionAngryAztecMain, fence(NewFence(2965, 3650, 3513, 4063), 324)),
		newFairy("Gong Tower", entities.MapAngryAztec, entities.RegionAngryAztecMain, fence(NewFence(4183, 3144, 4561, 3241), 422)),
		newFairy("Start of Llama Temple", entities.MapAztecLlamaTemple, entities.RegionLlamaTemple, fence(NewFence(2051, 2121, 2400, 2673), 569)),
		newFairy("Tiny Temple Start", entities.MapAztecTinyTemple, entities.RegionTempleStart, fence(NewFence(1195, 647, 1766, 1069), 378)),
	},
	entities.LevelFranticFactory: {
		vanillaFairy("Number Game", entities.MapFranticFactory, entities.RegionTesting,
			spawnAt(2967, 1094, 1646), index(1)),
		vanillaFairy("Near Funky's", entities.MapFranticFactory, entities.RegionTesting,
			spawnAt(1535, 1231, 518), index(0), requires(logic.All(logic.Camera, logic.Event(entities.EventDartsPlayed)))),
		newFairy("Entrance", entities.MapFranticFactory, entities.RegionFranticFactoryStart, fence(NewFence(1055, 2387, 1477, 2664), 864)),
		newFairy("Pole", entities.MapFranticFactory, entities.RegionBeyondHatch, fence(NewFence(630, 1863, 680, 1920), 519)),
		newFairy("Storage Room", entities.MapFranticFactory, entities.RegionBeyondHatch, fence(NewFence(1004, 477, 1624, 919), 189)),
		newFairy("Upper Block Tower", entities.MapFranticFactory, entities.RegionTesting,
			fence(NewFence(2311, 1184, 2565, 1439), 1439), requires(logic.All(logic.Camera, logic.Spring))),
		newFairy("Dark Room", entities.MapFranticFactory, entities.RegionBeyondHatch,
			fence(NewFence(1820, 526, 2079, 874), 60), requires(logic.All(logic.Camera, logic.Punch))),
		newFairy("Crusher Room", entities.MapFactoryCrusher, entities.RegionInsideCore, fence(NewFence(70, 409, 412, 510), 41)),
	},
	entities.LevelGloomyGalleon: {
		vanillaFairy("In a chest", entities.MapGloomyGalleon, entities.RegionGloomyGalleonStart,
			spawnAt(3547, 1795, 3703), index(0), requires(logic.All(logic.Camera, logic.Punch))),
		newFairy("Tiny Slam Button", entities.MapGloomyGalleon, entities.RegionGloomyGalleonStart, fence(NewFence(2222, 2659, 2299, 2731), 1657)),
		newFairy("Under Cranky Platform", entities.MapGloomyGalleon, entities.RegionGloomyGalleonStart, fence(NewFence(2903, 2917, 3146, 3149), 1756)),
		newFairy("Around Cactus", entities.MapGloomyGalleon, entities.RegionShipyard, fence(NewFence(4085, 1040, 4575, 1063), 1843)),
		newFairy("Around Lighthouse", entities.MapGloomyGalleon, entities.RegionLighthousePlatform, fence(NewFence(1704, 4028, 1968, 4493), 1877)),
		newFairy("Top of Lighthouse", entities.MapGalleonLighthouse, entities.RegionLighthouse, fence(NewFence(421, 386, 452, 594), 779)),
		newFairy("Lanky's 5-Door Ship", entities.MapGalleon5DShipDiddyLankyChunky, entities.RegionTromboneShip, fence(NewFence(613, 634, 1084, 1549), 90)),
	},
	entities.LevelFungiForest: {
		vanillaFairy("DK's Barn", entities.MapForestThornvineBarn, entities.RegionThornvineBarn,
			spawnAt(497, 162, 502), index(1), requires(logic.All(logic.Slam, logic.Camera))),
		vanillaFairy("Dark Attic", entities.MapForestRafters, entities.RegionMillRafters,
			spawnAt(355, 50, 342), index(0), requires(logic.All(logic.Guitar, logic.Camera))),
		newFairy("Above Blue Tunnel", entities.MapFungiForest, entities.RegionFungiForestStart, fence(NewFence(2697, 1804, 3009, 2701), 620)),
		newFairy("Above the Clock", entities.MapFungiForest, entities.RegionFungiForestStart, fence(NewFence(2370, 2229, 2557, 2472), 951)),
		newFairy("Above the Well", entities.MapFungiForest, entities.RegionFungiForestStart,
			fence(NewFence(2067, 3098, 2335, 3237), 540), requires(logic.All(logic.Camera, logic.Vines))),
		newFairy("Top of Giant Mushroom", entities.MapFungiForest, entities.RegionMushroomUpperExterior, fence(NewFence(1356, 1442, 1675, 1596), 1249)),
		newFairy("Above Mill", entities.MapFungiForest, entities.RegionMillArea, fence(NewFence(4039, 3550, 4486, 3683), 601)),
		newFairy("Anthill", entities.MapForestAnthill, entities.RegionAnthill, fence(NewFence(541, 307, 595, 881), 328)),
	},
	entities.LevelCrystalCaves: {
		vanillaFairy("Diddy Candles Cabin", entities.MapCavesDiddyUpperCabin, entities.RegionDiddyUpperCabin,
			spawnAt(140, 100, 505), index(1),
			requires(logic.All(logic.Camera, logic.Any(logic.Guitar, logic.Oranges), logic.Spring, logic.Jetpack))),
		vanillaFairy("Tiny Igloo", entities.MapCavesTinyIgloo, entities.RegionTinyIgloo,
			spawnAt(309, 90, 438), index(0), requires(logic.All(logic.Slam, logic.IsKong(entities.KongTiny), logic.Camera))),
		newFairy("Level Start", entities.MapCrystalCaves, entities.RegionCrystalCavesMain, fence(NewFence(2089, 95, 2269, 330), 95)),
		newFairy("Ice Castle Roof", entities.MapCrystalCaves, entities.RegionCrystalCavesMain, fence(NewFence(2204, 901, 2208, 1042), 441)),
		newFairy("Giant Boulder Room", entities.MapCrystalCaves, entities.RegionBoulderCave, fence(NewFence(1679, 2385, 2071, 2641), 355)),
		newFairy("5-Door Cabin Exterior", entities.MapCrystalCaves, entities.RegionCabinArea, fence(NewFence(3275, 1535, 3645, 1857), 486)),
		newFairy("Chunky 5-Door Cabin", entities.MapCavesChunkyCabin, entities.RegionChunkyCabin, fence(NewFence(68, 109, 523, 562), 74)),
	},
	entities.LevelCreepyCastle: {
		vanillaFairy("Tree Sniper Room", entities.MapCastleTree, entities.RegionCastleTree,
			spawnAt(1696, 400, 1054), index(1), requires(logic.All(logic.Camera, logic.Coconut))),
		vanillaFairy("Near Car Race", entities.MapCastleMuseum, entities.RegionMuseumBehindGlass,
			spawnAt(277, 247, 1598), index(0)),
		newFairy("Start", entities.MapCreepyCastle, entities.RegionCreepyCastleMain, fence(NewFence(257, -41, 719, 143), 497)),
		newFairy("Above Moat", entities.MapCreepyCastle, entities.RegionCreepyCastleMain, fence(NewFence(942, 769, 1371, 1050), 806)),
		newFairy("Ballroom", entities.MapCastleBallroom, entities.RegionBallroom,
			fence(NewFence(265, 251, 798, 924), 480), requires(logic.All(logic.Camera, logic.Jetpack))),
		newFairy("Library", entities.MapCastleLibrary, entities.RegionLibrary, fence(NewFence(823, 649, 1820, 777), 165)),
	},
	entities.LevelDKIsles: {
		vanillaFairy("Small Island", entities.MapIsles, entities.RegionIslesMain, spawnAt(1057, 634, 1456), index(2)),
		vanillaFairy("Upper Krem Isles", entities.MapIsles, entities.RegionKremIsleTopLevel, spawnAt(2358, 1798, 3884), index(3)),
		vanillaFairy("Factory Lobby", entities.MapFactoryLobby, entities.RegionFactoryLobby,
			spawnAt(245, 81, 150), index(0), requires(logic.All(logic.Camera, logic.Punch))),
		vanillaFairy("Fungi Lobby", entities.MapFungiForestLobby, entities.RegionFungiForestLobby,
			spawnAt(472, 163, 612), index(1), requires(logic.All(logic.Camera, logic.Feather))),
		newFairy("Aztec Roof", entities.MapIsles, entities.RegionIslesMainUpper, fence(NewFence(3396, 1667, 3603, 1815), 1227)),
		newFairy("Lower Krem Isles", entities.MapIsles, entities.RegionKremIsle, fence(NewFence(1818, 3625, 1975, 4122), 647)),
		newFairy("Inside Fairy Island", entities.MapBananaFairyRoom, entities.RegionBananaFairyRoom, fence(NewFence(506, 457, 722, 604), 336)),
		newFairy("Angry Aztec Lobby", entities.MapAngryAztecLobby, entities.RegionAngryAztecLobby,
			fence(NewFence(945, 487, 1090, 746), 72), requires(logic.All(logic.Camera, logic.Feather))),
		newFairy("Creepy Castle Lobby", entities.MapCreepyCastleLobby, entities.RegionCreepyCastleLobby, fence(NewFence(567, 137, 575, 154), -15)),
		newFairy("Training Grounds Hidden Mountain", entities.MapTrainingGrounds, entities.RegionTrainingGrounds, fence(NewFence(756, 1111, 857, 1339), 453)),
	},
	entities.LevelHideoutHelm: {
		vanillaFairy("Key 8 Room (1)", entities.MapHideoutHelm, entities.RegionHideoutHelmAfterBoM,
			spawnAt(164, 118, 5213), index(0), requires(logic.All(logic.Camera, logic.Event(entities.EventHelmKeyAccess)))),
		vanillaFairy("Key 8 Room (2)", entities.MapHideoutHelm, entities.RegionHideoutHelmAfterBoM,
			spawnAt(135, 98, 5224), index(1), requires(logic.All(logic.Camera, logic.Event(entities.EventHelmKeyAccess)))),
		newFairy("Under Chunky Room Stairs", entities.MapHideoutHelm, entities.RegionHideoutHelmMain, fence(NewFence(1244, 3108, 1353, 3150), -132)),
		newFairy("Above the Blast-o-Matic", entities.MapHideoutHelm, entities.RegionHideoutHelmMain,
			fence(NewFence(804, 3194, 1355, 3648), 540), requires(logic.All(logic.Camera, logic.Jetpack))),
		newFairy("Navigation Room", entities.MapHideoutHelm, entities.RegionHideoutHelmAfterBoM, fence(NewFence(1555, 4683, 1555, 4704), 0)),
	},
}
