// Quantization and entropy tables fitted to a Laplace model of the latent
// and initial-state statistics. Values are fixed-point; see tables.go.

package stats

var levelScaleQ8 = [Levels]uint16{
	256, 323, 406, 512, 645, 813, 1024, 1290, 1625, 2048, 2580, 3251, 4096, 5161, 6502, 8192,
}

var latentQuantScaleQ12 = [LatentDim]uint16{
	273, 229, 264, 239, 223, 227, 243, 170, 198, 223, 189, 227,
	174, 155, 156, 189, 157, 144, 158, 152, 156, 127, 150, 170,
	145, 169, 139, 138, 134, 127, 137, 128, 117, 135, 104, 112,
	106, 127, 99, 130, 125, 107, 118, 91, 85, 110, 108, 97,
	102, 113, 84, 92, 77, 78, 78, 75, 107, 100, 104, 73,
	100, 93, 95, 90, 68, 99, 86, 80, 86, 85, 75, 65,
	93, 81, 72, 86, 80, 82, 87, 70,
}

var latentDeadZoneQ8 = [LatentDim]uint8{
	68, 81, 95, 62, 67, 56, 98, 122, 78, 125, 109, 51,
	57, 65, 110, 128, 39, 90, 59, 131, 84, 63, 139, 55,
	60, 137, 49, 44, 90, 134, 78, 83, 68, 52, 110, 117,
	93, 128, 67, 100, 130, 77, 140, 73, 136, 68, 131, 76,
	94, 138, 79, 77, 60, 70, 64, 114, 108, 77, 109, 70,
	94, 130, 54, 69, 129, 85, 105, 40, 56, 83, 66, 74,
	108, 98, 80, 140, 73, 97, 107, 134,
}

var latentRQ15 = [LatentDim]uint16{
	28004, 28627, 27933, 28257, 28442, 28271, 27872, 29181, 28538, 27943, 28541, 27654,
	28687, 29029, 28929, 28083, 28746, 28985, 28561, 28631, 28449, 29138, 28446, 27826,
	28426, 27677, 28444, 28399, 28444, 28586, 28206, 28416, 28701, 28050, 29011, 28679,
	28826, 28035, 28961, 27794, 27904, 28500, 28032, 29002, 29190, 28157, 28178, 28564,
	28311, 27811, 28963, 28579, 29184, 29101, 29062, 29159, 27694, 27954, 27730, 29111,
	27820, 28099, 27966, 28161, 29194, 27657, 28244, 28506, 28176, 28192, 28666, 29157,
	27693, 28272, 28713, 27956, 28240, 28108, 27818, 28700,
}

var latentP0Q15 = [Levels][LatentDim]uint16{
	{ // level 0
		3713, 3422, 4254, 3411, 3350, 3299, 4363, 3507, 3449, 4773, 3933, 3666,
		3003, 2860, 3585, 4685, 2683, 3250, 3130, 4182, 3620, 2748, 4495, 3614,
		3248, 5255, 3054, 3004, 3720, 4273, 3724, 3631, 3161, 3393, 3507, 3924,
		3432, 4733, 2942, 4469, 4899, 3465, 4941, 2995, 3683, 3592, 4639, 3396,
		3902, 5134, 3112, 3400, 2672, 2874, 2821, 3422, 4708, 3915, 4692, 2866,
		4337, 4702, 3491, 3606, 3587, 4312, 4144, 2863, 3370, 3821, 3158, 2884,
		4708, 4003, 3335, 5020, 3611, 4133, 4574, 4157,
	},
	{ // level 1
		4614, 4257, 5273, 4243, 4169, 4106, 5405, 4361, 4290, 5903, 4882, 4556,
		3743, 3567, 4457, 5796, 3348, 4046, 3898, 5186, 4499, 3429, 5565, 4492,
		4044, 6485, 3805, 3743, 4622, 5297, 4626, 4513, 3937, 4222, 4362, 4871,
		4270, 5854, 3667, 5534, 6055, 4309, 6106, 3733, 4577, 4466, 5741, 4225,
		4845, 6340, 3877, 4230, 3335, 3584, 3518, 4257, 5824, 4860, 5805, 3574,
		5374, 5817, 4342, 4482, 4459, 5344, 5140, 3571, 4193, 4745, 3933, 3596,
		5825, 4967, 4150, 6202, 4489, 5126, 5661, 5155,
	},
	{ // level 2
		5691, 5259, 6485, 5242, 5151, 5075, 6644, 5385, 5298, 7240, 6015, 5621,
		4633, 4419, 5500, 7113, 4151, 5002, 4823, 6380, 5552, 4250, 6836, 5543,
		5000, 7933, 4710, 4634, 5700, 6513, 5706, 5569, 4870, 5216, 5385, 6001,
		5274, 7182, 4541, 6799, 7421, 5322, 7482, 4622, 5646, 5512, 7046, 5220,
		5969, 7761, 4797, 5226, 4135, 4440, 4359, 5258, 7145, 5988, 7123, 4428,
		6606, 7138, 5362, 5532, 5504, 6570, 6325, 4424, 5181, 5849, 4865, 4455,
		7146, 6117, 5129, 7596, 5539, 6308, 6951, 6343,
	},
	{ // level 3
		7006, 6487, 7956, 6467, 6357, 6265, 8144, 6639, 6534, 8850, 7394, 6922,
		5731, 5471, 6778, 8700, 5146, 6178, 5960, 7830, 6840, 5266, 8373, 6829,
		6174, 9667, 5824, 5732, 7017, 7989, 7024, 6860, 6017, 6435, 6639, 7378,
		6505, 8782, 5619, 8328, 9065, 6563, 9136, 5717, 6953, 6791, 8622, 6440,
		7340, 9464, 5929, 6447, 5126, 5496, 5399, 6486, 8739, 7362, 8713, 5482,
		8100, 8730, 6611, 6815, 6781, 8057, 7765, 5477, 6394, 7196, 6012, 5514,
		8740, 7517, 6330, 9271, 6825, 7745, 8509, 7787,
	},
	{ // level 4
		8567, 7950, 9685, 7927, 7796, 7687, 9906, 8131, 8007, 10729, 9025, 8467,
		7048, 6736, 8296, 10554, 6345, 7582, 7323, 9538, 8370, 6490, 10172, 8357,
		7578, 11672, 7159, 7050, 8580, 9724, 8588, 8394, 7391, 7889, 8132, 9006,
		7972, 10649, 6914, 10121, 10977, 8041, 11060, 7031, 8503, 8312, 10463, 7895,
		8961, 11439, 7285, 7903, 6321, 6766, 6649, 7950, 10599, 8987, 10569, 6749,
		9854, 10589, 8098, 8340, 8301, 9804, 9461, 6743, 7840, 8791, 7384, 6788,
		10601, 9170, 7764, 11215, 8352, 9438, 10331, 9487,
	},
	{ // level 5
		10403, 9683, 11699, 9656, 9503, 9374, 11952, 9895, 9750, 12892, 10936, 10288,
		8621, 8250, 10088, 12693, 7785, 9251, 8945, 11529, 10174, 7958, 12258, 10159,
		9246, 13958, 8751, 8622, 10419, 11744, 10428, 10202, 9025, 9612, 9896, 10915,
		9709, 12802, 8462, 12199, 13174, 9790, 13268, 8601, 10330, 10106, 12589, 9618,
		10862, 13696, 8900, 9628, 7757, 8286, 8147, 9683, 12745, 10892, 12710, 8266,
		11892, 12733, 9856, 10140, 10093, 11835, 11440, 8259, 9553, 10664, 9017, 8312,
		12746, 11104, 9465, 13444, 10153, 11413, 12439, 11470,
	},
	{ // level 6
		12514, 11689, 13980, 11657, 11481, 11333, 14264, 11933, 11766, 15311, 13120, 12382,
		10460, 10028, 12153, 15091, 9484, 11191, 10837, 13790, 12252, 9686, 14606, 12235,
		11185, 16482, 10612, 10462, 12532, 14031, 12542, 12284, 10930, 11607, 11933, 13095,
		11719, 15211, 10275, 14540, 15622, 11811, 15725, 10437, 12430, 12175, 14975, 11614,
		13036, 16195, 10785, 11626, 9451, 10070, 9908, 11689, 15147, 13070, 15109, 10047,
		14197, 15134, 11888, 12213, 12159, 14133, 13689, 10038, 11540, 12811, 10921, 10101,
		15149, 13310, 11437, 15919, 12228, 13659, 14808, 13723,
	},
	{ // level 7
		14894, 13972, 16508, 13936, 13738, 13570, 16817, 14245, 14058, 17945, 15565, 14747,
		12580, 12087, 14492, 17709, 11461, 13410, 13009, 16300, 14601, 11694, 17187, 14583,
		13404, 19187, 12754, 12583, 14914, 16563, 14925, 14638, 13115, 13879, 14245, 15537,
		14005, 17838, 12370, 17116, 18277, 14109, 18387, 12554, 14800, 14515, 17585, 13887,
		15471, 18885, 12950, 13900, 11423, 12135, 11949, 13971, 17770, 15509, 17728, 12108,
		16744, 17756, 14195, 14558, 14498, 16675, 16190, 12098, 13804, 15223, 13104, 12170,
		17772, 15774, 13688, 18592, 14575, 16157, 17406, 16227,
	},
	{ // level 8
		17497, 16498, 19213, 16459, 16243, 16059, 19537, 16795, 16592, 20704, 18216, 17338,
		14967, 14417, 17063, 20462, 13714, 15883, 15441, 18994, 17182, 13977, 19922, 17162,
		15876, 21964, 15159, 14969, 17518, 19271, 17530, 17221, 15558, 16397, 16796, 18186,
		16534, 20595, 14732, 19849, 21044, 16647, 21156, 14937, 17396, 17089, 20334, 16406,
		18116, 21660, 15376, 16420, 13672, 14471, 14263, 16497, 20525, 18156, 20482, 14440,
		19461, 20510, 16741, 17135, 17070, 19388, 18879, 14430, 16314, 17851, 15546, 14510,
		20527, 18438, 16188, 21364, 17153, 18844, 20149, 18918,
	},
	{ // level 9
		20249, 19208, 21996, 19168, 18940, 18746, 22319, 19520, 19307, 23467, 20987, 20085,
		17581, 16987, 19799, 23231, 16222, 18560, 18089, 21776, 19923, 16509, 22701, 19902,
		18552, 24674, 17787, 17583, 20271, 22054, 20284, 19964, 18214, 19102, 19521, 20957,
		19247, 23361, 17328, 22628, 23796, 19365, 23904, 17549, 20145, 19826, 23107, 19112,
		20886, 24386, 18020, 19126, 16176, 17046, 16820, 19208, 23293, 20927, 23251, 17013,
		22243, 23278, 19463, 19874, 19807, 22171, 21660, 17001, 19016, 20614, 18202, 17088,
		23295, 21213, 18883, 24104, 19893, 21625, 22925, 21699,
	},
	{ // level 10
		23018, 21986, 24699, 21945, 21716, 21521, 25003, 22297, 22085, 26062, 23736, 22857,
		20331, 19715, 22574, 25847, 18913, 21332, 20853, 24492, 22697, 19215, 25359, 22676,
		21325, 27139, 20543, 20334, 23040, 24754, 23052, 22737, 20980, 21879, 22298, 23708,
		22024, 25965, 20070, 25292, 26360, 22143, 26457, 20298, 22915, 22601, 25733, 21889,
		23638, 26886, 20782, 21904, 18864, 19776, 19541, 21986, 25903, 23678, 25865, 19742,
		24932, 25890, 22241, 22648, 22582, 24864, 24381, 19730, 21792, 23374, 20968, 19820,
		25905, 23954, 21659, 26635, 22667, 24348, 25566, 24418,
	},
	{ // level 11
		25654, 24693, 27164, 24654, 24437, 24251, 27429, 24985, 24786, 28329, 26308, 25506,
		23101, 22494, 25244, 28149, 21693, 24071, 23610, 26982, 25358, 21995, 27735, 25339,
		24064, 29208, 23309, 23103, 25674, 27212, 25686, 25395, 23733, 24592, 24986, 26282,
		24729, 28248, 22844, 27677, 28576, 24841, 28656, 23069, 25560, 25269, 28053, 24601,
		26220, 29005, 23541, 24615, 21643, 22555, 22321, 24693, 28197, 26256, 28164, 22521,
		27367, 28185, 24932, 25313, 25251, 27308, 26884, 22509, 24510, 25980, 23720, 22598,
		28198, 26504, 24383, 28802, 25330, 26855, 27911, 26917,
	},
	{ // level 12
		27985, 27157, 29227, 27123, 26932, 26768, 29436, 27412, 27238, 30128, 28533, 27859,
		25729, 25168, 27635, 29993, 24414, 26607, 26193, 29081, 27733, 24700, 29675, 27716,
		26601, 30769, 25919, 25732, 28002, 29265, 28012, 27765, 26304, 27069, 27413, 28511,
		27189, 30067, 25493, 29630, 30312, 27286, 30370, 25700, 27905, 27656, 29919, 27077,
		28459, 30624, 26130, 27089, 24367, 25224, 25006, 27157, 30028, 28489, 30004, 25193,
		29388, 30020, 27366, 27694, 27641, 29341, 29002, 25182, 26996, 28260, 26293, 25265,
		30029, 28694, 26884, 30477, 27709, 28979, 29811, 29029,
	},
	{ // level 13
		29868, 29222, 30782, 29195, 29042, 28909, 30929, 29424, 29286, 31397, 30280, 29772,
		28049, 27570, 29598, 31307, 26912, 28778, 28437, 30679, 29674, 27164, 31094, 29661,
		28773, 31802, 28209, 28051, 29881, 30809, 29889, 29699, 28529, 29151, 29424, 30264,
		29247, 31357, 27849, 31063, 31516, 29324, 31553, 28024, 29807, 29615, 31259, 29158,
		30225, 31713, 28386, 29168, 26871, 27619, 27431, 29222, 31331, 30248, 31315, 27592,
		30895, 31325, 29387, 29644, 29603, 30863, 30622, 27582, 29093, 30076, 28520, 27654,
		31332, 30399, 29003, 31621, 29656, 30605, 31186, 30642,
	},
	{ // level 14
		31224, 30778, 31810, 30759, 30650, 30555, 31898, 30920, 30824, 32167, 31495, 31159,
		29916, 29547, 31040, 32117, 29025, 30460, 30208, 31746, 31092, 29227, 31995, 31084,
		30456, 32381, 30037, 29918, 31232, 31826, 31237, 31109, 30277, 30728, 30920, 31484,
		30796, 32145, 29763, 31977, 32232, 30850, 32252, 29897, 31182, 31052, 32090, 30733,
		31459, 32336, 30170, 30740, 28991, 29585, 29437, 30778, 32130, 31474, 32121, 29563,
		31878, 32127, 30894, 31072, 31044, 31858, 31711, 29556, 30687, 31362, 30270, 29612,
		32131, 31571, 30622, 32288, 31080, 31701, 32048, 31723,
	},
	{ // level 15
		32070, 31807, 32385, 31796, 31729, 31669, 32429, 31893, 31835, 32555, 32221, 32033,
		31256, 31005, 31964, 32533, 30638, 31610, 31449, 32353, 31994, 30782, 32476, 31989,
		31607, 32646, 31337, 31257, 32075, 32393, 32078, 32004, 31493, 31777, 31893, 32215,
		31818, 32545, 31153, 32468, 32584, 31851, 32593, 31243, 32046, 31971, 32520, 31780,
		32201, 32628, 31424, 31784, 30614, 31031, 30929, 31807, 32539, 32209, 32535, 31017,
		32419, 32538, 31877, 31982, 31966, 32410, 32335, 31012, 31751, 32148, 31488, 31050,
		32539, 32261, 31712, 32608, 31987, 32330, 32501, 32341,
	},
}

var stateQuantScaleQ12 = [StateDim]uint16{
	253, 203, 213, 205, 206, 181, 153, 190, 144, 147, 189, 166,
	157, 161, 161, 145, 181, 182, 144, 125, 150, 120, 132, 122,
}

var stateDeadZoneQ8 = [StateDim]uint8{
	89, 101, 126, 77, 59, 137, 48, 45, 43, 66, 122, 66,
	53, 66, 138, 82, 108, 65, 59, 75, 123, 123, 123, 123,
}

var stateRQ15 = [StateDim]uint16{
	27956, 28684, 28333, 28339, 28178, 28580, 29096, 28165, 29139, 28995, 27917, 28399,
	28562, 28409, 28360, 28730, 27763, 27699, 28659, 29147, 28449, 29247, 28900, 29162,
}

var stateP0Q15 = [Levels][StateDim]uint16{
	{ // level 0
		4127, 3679, 4402, 3597, 3420, 4325, 2571, 3186, 2471, 2901, 4746, 3367,
		3033, 3360, 4568, 3351, 4643, 3900, 3055, 2905, 4240, 3456, 3797, 3540,
	},
	{ // level 1
		5119, 4571, 5453, 4471, 4255, 5359, 3210, 3968, 3086, 3617, 5870, 4190,
		3779, 4181, 5654, 4170, 5745, 4841, 3806, 3622, 5257, 4299, 4716, 4401,
	},
	{ // level 2
		6300, 5639, 6702, 5518, 5256, 6588, 3983, 4907, 3831, 4480, 7201, 5177,
		4678, 5166, 6942, 5153, 7051, 5965, 4711, 4487, 6465, 5309, 5815, 5433,
	},
	{ // level 3
		7735, 6944, 8213, 6799, 6483, 8079, 4940, 6063, 4756, 5545, 8804, 6388,
		5785, 6375, 8499, 6359, 8628, 7335, 5825, 5553, 7932, 6547, 7155, 6697,
	},
	{ // level 4
		9426, 8494, 9986, 8321, 7946, 9829, 6097, 7445, 5874, 6825, 10675, 7833,
		7113, 7818, 10320, 7799, 10470, 8956, 7161, 6835, 9657, 8022, 8742, 8200,
	},
	{ // level 5
		11400, 10318, 12044, 10117, 9679, 11864, 7489, 9089, 7223, 8356, 12831, 9546,
		8697, 9528, 12426, 9506, 12597, 10856, 8754, 8368, 11666, 9768, 10608, 9976,
	},
	{ // level 6
		13644, 12417, 14368, 12187, 11684, 14165, 9136, 11004, 8821, 10152, 15243, 11531,
		10548, 11510, 14793, 11485, 14984, 13029, 10615, 10165, 13944, 11786, 12747, 12025,
	},
	{ // level 7
		16141, 14786, 16929, 14529, 13966, 16710, 11059, 13198, 10695, 12228, 17873, 13794,
		12681, 13771, 17389, 13742, 17595, 15464, 12757, 12244, 16469, 14081, 15152, 14348,
	},
	{ // level 8
		18826, 17380, 19654, 17104, 16492, 19425, 13261, 15650, 12847, 14575, 20630, 16304,
		15079, 16278, 20132, 16247, 20344, 18108, 15163, 14592, 19172, 16617, 17775, 16908,
	},
	{ // level 9
		21607, 20129, 22436, 19842, 19202, 22207, 15724, 18312, 15268, 17158, 23396, 19005,
		17701, 18978, 22908, 18944, 23116, 20877, 17791, 17177, 21954, 19333, 20536, 19638,
	},
	{ // level 10
		24331, 22900, 25112, 22617, 21979, 24898, 18386, 21081, 17899, 19893, 25997, 21781,
		20455, 21754, 25550, 21721, 25742, 23630, 20548, 19913, 24660, 22111, 23298, 22414,
	},
	{ // level 11
		26839, 25546, 27523, 25283, 24687, 27338, 21159, 23829, 20661, 22670, 28275, 24499,
		23222, 24474, 27898, 24442, 28060, 26212, 23313, 22690, 27130, 24811, 25911, 25095,
	},
	{ // level 12
		28966, 27893, 29510, 27669, 27152, 29364, 23903, 26391, 23422, 25332, 30087, 26987,
		25840, 26964, 29801, 26936, 29925, 28453, 25923, 25350, 29199, 27260, 28202, 27506,
	},
	{ // level 13
		30597, 29798, 30980, 29625, 29217, 30879, 26458, 28601, 26023, 27711, 31370, 29086,
		28143, 29068, 31179, 29045, 31262, 30221, 28212, 27727, 30763, 29304, 30033, 29498,
	},
	{ // level 14
		31695, 31176, 31928, 31058, 30775, 31868, 28655, 30330, 28295, 29656, 32152, 30681,
		29987, 30668, 32044, 30652, 32092, 31456, 30040, 29668, 31798, 30836, 31333, 30971,
	},
	{ // level 15
		32327, 32043, 32444, 31975, 31805, 32414, 30370, 31527, 30102, 31081, 32549, 31748,
		31303, 31740, 32499, 31730, 32521, 32200, 31338, 31089, 32379, 31842, 32132, 31923,
	},
}
