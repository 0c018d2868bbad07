package model

// Glyph symbols follow the xwing-miniatures ship font: one character per
// ship type. Unknown ship types render as GLYPH_UNKNOWN so a list with an
// unrecognized chassis still gets a fixed-width encoding.
const GLYPH_UNKNOWN = "?"

var shipGlyphs = map[string]string{
	// Rebel / Resistance
	"t65xwing":                     "x",
	"btla4ywing":                   "y",
	"rz1awing":                     "a",
	"asf01bwing":                   "b",
	"yt1300lightfreighter":         "m",
	"modifiedyt1300lightfreighter": "m",
	"ut60duwing":                   "u",
	"arc170starfighter":            "c",
	"attackshuttle":                "g",
	"auzituckgunship":              "@",
	"ewing":                        "e",
	"hwk290lightfreighter":         "h",
	"sheathipedeclassshuttle":      "%",
	"t70xwing":                     "w",
	"rz2awing":                     "E",
	"btanr2ywing":                  "o",
	"fireball":                     "0",
	"mg100starfortress":            "Z",
	"resistancetransport":          ">",
	"resistancetransportpod":       "?",
	"vcx100lightfreighter":         "G",
	"z95af4headhunter":             "z",
	"yt2400lightfreighter":         "o",
	// Imperial / First Order
	"tielnfighter":                    "F",
	"tieadvancedx1":                   "A",
	"tieadvancedv1":                   "R",
	"tieininterceptor":                "I",
	"tiesabomber":                     "B",
	"tieagaggressor":                  "`",
	"tiecapunisher":                   "N",
	"tieddefender":                    "D",
	"tiephphantom":                    "P",
	"tierbheavy":                      "J",
	"tiereaper":                       "V",
	"tieskstriker":                    "T",
	"vt49decimator":                   "d",
	"lambdaclasst4ashuttle":           "l",
	"alphaclassstarwing":              "&",
	"tiefofighter":                    "O",
	"tiesffighter":                    "S",
	"tievnsilencer":                   "$",
	"tiewiwhispermodifiedinterceptor": "H",
	"tiebainterceptor":                "j",
	"upsilonclassshuttle":             "U",
	"xiclasslightshuttle":             "Q",
	// Scum
	"aggressorassaultfighter":        "i",
	"customizedyt1300lightfreighter": "W",
	"escapecraft":                    "X",
	"fangfighter":                    "M",
	"firesprayclasspatrolcraft":      "f",
	"g1astarfighter":                 "n",
	"jumpmaster5000":                 "p",
	"kihraxzfighter":                 "r",
	"lancerclasspursuitcraft":        "L",
	"m3ainterceptor":                 "s",
	"m12lkimogilafighter":            "K",
	"modifiedtielnfighter":           "C",
	"quadrijettransferspacetug":      "q",
	"scurrgh6bomber":                 "H",
	"starviperclassattackplatform":   "v",
	"yv666lightfreighter":            "t",
	"z95headhunter":                  "z",
	// Republic / Separatist
	"delta7aethersprite":                  "\\",
	"delta7baethersprite":                 "\\",
	"v19torrentstarfighter":               "^",
	"arc170starfighterrepublic":           "c",
	"btlbywing":                           "r",
	"eta2actis":                           "-",
	"nimbusclassvwing":                    ",",
	"laatigunship":                        "/",
	"vultureclassdroidfighter":            "_",
	"hyenaclassdroidbomber":               "=",
	"belbullab22starfighter":              "[",
	"nantexclassstarfighter":              ";",
	"droidtrifighter":                     "+",
	"hmpdroidgunship":                     ".",
	"sithinfiltrator":                     "]",
	"firesprayclasspatrolcraftseparatist": "f",
}

// GlyphForShip returns the one-character symbol for a ship type, or
// GLYPH_UNKNOWN when the type isn't in the table.
func GlyphForShip(ship string) string {
	if g, ok := shipGlyphs[ship]; ok {
		return g
	}
	return GLYPH_UNKNOWN
}
