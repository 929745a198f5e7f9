package pricing

// Dealer cost matrices, indexed by rounded width then rounded height in feet.
// Row slices start at MinHeight; a zero cell is a size the manufacturer does not build.

// zipperTable is the zipper-track gear-operated screen matrix.
var zipperTable = PricingTable{
	MinHeight: 3,
	Rows: map[int][]float64{
		3:  {785, 835, 885, 935, 990, 1040, 1090, 1140, 1190, 1240, 1290, 1340, 1390, 1440},
		4:  {845, 900, 955, 1015, 1070, 1130, 1185, 1240, 1300, 1355, 1415, 1470, 1525, 1585},
		5:  {900, 965, 1030, 1090, 1155, 1220, 1280, 1345, 1410, 1470, 1535, 1600, 1660, 1725},
		6:  {960, 1030, 1100, 1170, 1240, 1310, 1380, 1450, 1520, 1590, 1660, 1730, 1800, 1870},
		7:  {1015, 1090, 1170, 1245, 1320, 1400, 1475, 1550, 1630, 1705, 1780, 1855, 1935, 2010},
		8:  {1075, 1155, 1240, 1320, 1405, 1490, 1570, 1655, 1735, 1820, 1905, 1985, 2070, 2150},
		9:  {1130, 1220, 1310, 1400, 1490, 1580, 1670, 1755, 1845, 1935, 2025, 2115, 2205, 2295},
		10: {1190, 1285, 1380, 1475, 1570, 1670, 1765, 1860, 1955, 2050, 2150, 2245, 2340, 2435},
		11: {1245, 1350, 1450, 1555, 1655, 1760, 1860, 1965, 2065, 2170, 2270, 2375, 2475, 2580},
		12: {1305, 1410, 1520, 1630, 1740, 1850, 1955, 2065, 2175, 2285, 2395, 2500, 2610, 2720},
		13: {1360, 1475, 1590, 1705, 1820, 1940, 2055, 2170, 2285, 2400, 2515, 2630, 2745, 2860},
		14: {1420, 1540, 1660, 1785, 1905, 2030, 2150, 2270, 2395, 2515, 2640, 2760, 2880, 3005},
		15: {1475, 1605, 1730, 1860, 1990, 2120, 2245, 2375, 2505, 2630, 2760, 2890, 3020, 3145},
		16: {1535, 1670, 1805, 1940, 2075, 2210, 2345, 2480, 2615, 2750, 2885, 3020, 3155, 3290},
		17: {1590, 1730, 1875, 2015, 2155, 2300, 2440, 2580, 2720, 2865, 3005, 3145, 3290, 3430},
		18: {1650, 1795, 1945, 2090, 2240, 2390, 2535, 2685, 2830, 2980, 3130, 3275, 3425, 3570},
		19: {1705, 1860, 2015, 2170, 2325, 2480, 2630, 2785, 2940, 3095, 3250, 3405, 3560, 3715},
		20: {1765, 1925, 2085, 2245, 2405, 2570, 2730, 2890, 3050, 3210, 3375, 3535, 3695, 3855},
		21: {1820, 1990, 2155, 2325, 2490, 2660, 2825, 2995, 3160, 3330, 3495, 3665, 3830, 4000},
		22: {1880, 2050, 2225, 2400, 2575, 2750, 2920, 3095, 3270, 3445, 3620, 3790, 0, 0},
		23: {1935, 2115, 2295, 2475, 2660, 2840, 3020, 3200, 3380, 3560, 3740, 3920, 0, 0},
		24: {1995, 2180, 2365, 2555, 2740, 2930, 3115, 3300, 3490, 3675, 3865, 0, 0, 0},
	},
}

// cableTable is the cable-track gear-operated screen matrix.
var cableTable = PricingTable{
	MinHeight: 3,
	Rows: map[int][]float64{
		3:  {685, 730, 775, 820, 865, 910, 950, 995, 1040, 1085, 1130, 1175},
		4:  {735, 785, 835, 885, 935, 985, 1035, 1085, 1135, 1185, 1235, 1285},
		5:  {785, 845, 900, 955, 1010, 1065, 1120, 1180, 1235, 1290, 1345, 1400},
		6:  {840, 900, 960, 1020, 1085, 1145, 1205, 1270, 1330, 1390, 1450, 1515},
		7:  {890, 955, 1020, 1090, 1155, 1225, 1290, 1360, 1425, 1495, 1560, 1630},
		8:  {940, 1010, 1085, 1155, 1230, 1305, 1375, 1450, 1520, 1595, 1670, 1740},
		9:  {990, 1065, 1145, 1225, 1305, 1380, 1460, 1540, 1620, 1695, 1775, 1855},
		10: {1040, 1125, 1210, 1290, 1375, 1460, 1545, 1630, 1715, 1800, 1885, 1970},
		11: {1090, 1180, 1270, 1360, 1450, 1540, 1630, 1720, 1810, 1900, 1990, 2080},
		12: {1140, 1235, 1330, 1425, 1525, 1620, 1715, 1810, 1905, 2005, 2100, 2195},
		13: {1190, 1290, 1395, 1495, 1595, 1700, 1800, 1900, 2005, 2105, 2205, 2310},
		14: {1240, 1345, 1455, 1560, 1670, 1775, 1885, 1990, 2100, 2205, 2315, 2420},
		15: {1290, 1405, 1515, 1630, 1745, 1855, 1970, 2080, 2195, 2310, 2420, 2535},
		16: {1340, 1460, 1580, 1695, 1815, 1935, 2055, 2175, 2290, 2410, 2530, 2650},
		17: {1390, 1515, 1640, 1765, 1890, 2015, 2140, 2265, 2390, 2515, 2640, 2760},
		18: {1440, 1570, 1700, 1830, 1960, 2095, 2225, 2355, 2485, 2615, 2745, 2875},
		19: {1490, 1625, 1765, 1900, 2035, 2170, 2310, 2445, 2580, 2715, 2855, 2990},
		20: {1540, 1685, 1825, 1965, 2110, 2250, 2395, 2535, 2675, 2820, 2960, 3105},
		21: {1590, 1740, 1885, 2035, 2180, 2330, 2480, 2625, 2775, 2920, 0, 0},
		22: {1640, 1795, 1950, 2100, 2255, 2410, 2560, 2715, 2870, 3025, 0, 0},
	},
}

// kederTable is the keder-track matrix; the RTS motor is part of each price.
var kederTable = PricingTable{
	MinHeight: 4,
	Rows: map[int][]float64{
		4:  {2080, 2170, 2260, 2345, 2435, 2525, 2615, 2705, 2790, 2880, 2970},
		5:  {2180, 2275, 2375, 2475, 2570, 2670, 2770, 2865, 2965, 3060, 3160},
		6:  {2275, 2385, 2490, 2600, 2705, 2815, 2920, 3030, 3135, 3245, 3350},
		7:  {2375, 2490, 2610, 2725, 2840, 2960, 3075, 3190, 3310, 3425, 3540},
		8:  {2470, 2600, 2725, 2850, 2975, 3100, 3230, 3355, 3480, 3605, 3730},
		9:  {2570, 2705, 2840, 2975, 3110, 3245, 3380, 3515, 3650, 3785, 3920},
		10: {2670, 2810, 2955, 3100, 3245, 3390, 3535, 3680, 3825, 3970, 4115},
		11: {2765, 2920, 3075, 3225, 3380, 3535, 3690, 3840, 3995, 4150, 4305},
		12: {2865, 3025, 3190, 3355, 3515, 3680, 3840, 4005, 4170, 4330, 4495},
		13: {2960, 3135, 3305, 3480, 3650, 3825, 3995, 4170, 4340, 4510, 4685},
		14: {3060, 3240, 3425, 3605, 3785, 3970, 4150, 4330, 4510, 4695, 4875},
		15: {3160, 3350, 3540, 3730, 3920, 4110, 4300, 4495, 4685, 4875, 5065},
		16: {3255, 3455, 3655, 3855, 4055, 4255, 4455, 4655, 4855, 5055, 5255},
		17: {3355, 3565, 3770, 3980, 4190, 4400, 4610, 4820, 5030, 5235, 5445},
		18: {3450, 3670, 3890, 4110, 4325, 4545, 4765, 4980, 5200, 5420, 5635},
		19: {3550, 3780, 4005, 4235, 4460, 4690, 4915, 5145, 5370, 0, 0},
		20: {3650, 3885, 4120, 4360, 4595, 4835, 5070, 5305, 5545, 0, 0},
	},
}
