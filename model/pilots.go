package model

// pilotInitiatives maps stable pilot identifiers (XWS) to their printed
// initiative. The table only needs to cover pilots that actually show up in
// league lists; pilots missing from it are simply excluded from the average
// initiative, which is the documented "unresolved" behavior.
var pilotInitiatives = map[string]int{
	// Rebel
	"lukeskywalker":      5,
	"wedgeantilles":      6,
	"biggsdarklighter":   3,
	"thanekyrell":        5,
	"garvendreis":        4,
	"jekporkins":         4,
	"redsquadronveteran": 3,
	"bluesquadronescort": 2,
	"hortonsalm":         4,
	"norrawexley":        5,
	"graysquadronbomber": 2,
	"jakefarrell":        4,
	"arvelcrynyd":        3,
	"greensquadronpilot": 3,
	"bluesquadronpilot":  2,
	"braylenstramm":      4,
	"tennumb":            4,
	"hansolo":            6,
	"chewbacca":          5,
	"landocalrissian":    5,
	"outerrimsmuggler":   1,
	"cassianandor":       3,
	"bluesquadronscout":  2,
	"hefftobber":         3,
	"ezrabridger":        3,
	"herasyndulla":       5,
	"sabinewren":         3,
	"zeborrelios":        2,
	"kananjarrus":        3,
	"corranhorn":         5,
	"kylekatarn":         3,
	"jansors":            5,
	"airencracken":       5,
	"lieutenantblount":   4,
	"talasquadronpilot":  2,
	// Imperial
	"howlrunner":            5,
	"idenversio":            4,
	"valenrudor":            3,
	"blacksquadronace":      3,
	"obsidiansquadronpilot": 2,
	"academypilot":          1,
	"darthvader":            6,
	"maarekstele":           5,
	"zertikstrom":           3,
	"soontirfel":            6,
	"turrphennir":           4,
	"sabersquadronace":      4,
	"alphasquadronpilot":    1,
	"majorvermeil":          4,
	"captainferoph":         3,
	"scarifbasepilot":       2,
	"rexlerbrath":           5,
	"colonelvessery":        4,
	"onderonveteran":        3,
	"whisper":               5,
	"echo":                  4,
	"sigmasquadronace":      4,
	"duchess":               5,
	"planetarysentinel":     1,
	"captainoicunn":         3,
	"rearadmiralchiraneau":  5,
	"patrolleader":          2,
	// Scum
	"bobafett":             5,
	"krassistrelix":        3,
	"fennrau":              6,
	"oldteroch":            5,
	"joystickchevron":      1,
	"zealousrecruit":       1,
	"guri":                 5,
	"dengar":               6,
	"teltrevura":           4,
	"manaroo":              3,
	"contractedscout":      2,
	"cadbane":              4,
	"ketsuonyo":            5,
	"asajjventress":        6,
	"lattsrazzi":           3,
	"shadowporthunter":     2,
	"serissu":              5,
	"genesisred":           4,
	"tansariipointveteran": 3,
	"cartelspacer":         1,
	"torkilmux":            2,
	"quinnjast":            3,
	"sunnybounder":         1,
	"unkarplutt":           2,
	"constablezuvio":       4,
	"jakkugunrunner":       1,
	// Republic / Separatist
	"anakinskywalker":       6,
	"obiwankenobi":          5,
	"ahsokatano":            5,
	"plokoon":               5,
	"jedigeneral":           4,
	"bluesquadronprotector": 2,
	"goldsquadrontrooper":   1,
	"generalgrievous":       4,
	"darkcurse":             6,
	"dbs404":                3,
	"separatistdrone":       1,
	"tradefederationdrone":  1,
	"precisehunter":         3,
	// First Order / Resistance
	"kyloren":             5,
	"midnight":            6,
	"quickdraw":           6,
	"backdraft":           4,
	"zetasquadronpilot":   1,
	"omegasquadronace":    3,
	"poedameron":          6,
	"ricolie":             5,
	"tallissanlintra":     5,
	"lulodemallion":       4,
	"zizzibbex":           3,
	"greensquadronexpert": 3,
	"jessikapava":         3,
	"temminwexley":        4,
	"niennunb":            5,
}

// InitiativeForPilot returns the pilot's printed initiative and whether the
// identifier resolved.
func InitiativeForPilot(xws string) (int, bool) {
	v, ok := pilotInitiatives[xws]
	return v, ok
}
