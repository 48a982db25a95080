package extract

import "strings"

// categoryPhrase maps a part-type phrase to its closed category tag.
// Ordered longest-match-first: multi-word phrases are checked before
// single words so "brake pad" claims the category before bare "brake".
type categoryPhrase struct {
	phrase string
	tag    string
}

var categoryPhrases = []categoryPhrase{
	{"brake pads", "brake"}, {"brake pad", "brake"}, {"brake disc", "brake"},
	{"brake discs", "brake"}, {"brake rotor", "brake"}, {"brake caliper", "brake"},
	{"brake fluid", "brake"}, {"brake shoe", "brake"},
	{"oil filter", "filter"}, {"air filter", "filter"}, {"fuel filter", "filter"},
	{"cabin filter", "filter"}, {"pollen filter", "filter"},
	{"spark plugs", "ignition"}, {"spark plug", "ignition"}, {"glow plug", "ignition"},
	{"ignition coil", "ignition"},
	{"shock absorbers", "suspension"}, {"shock absorber", "suspension"},
	{"control arm", "suspension"}, {"ball joint", "suspension"},
	{"stabilizer link", "suspension"}, {"coil spring", "suspension"},
	{"timing belt", "belt"}, {"timing chain", "belt"}, {"v-belt", "belt"},
	{"serpentine belt", "belt"}, {"drive belt", "belt"},
	{"water pump", "cooling"}, {"fuel pump", "fuel"}, {"oil pump", "engine"},
	{"head gasket", "engine"}, {"cylinder head", "engine"}, {"engine mount", "engine"},
	{"wheel bearing", "bearing"}, {"wheel hub", "bearing"},
	{"clutch kit", "clutch"}, {"clutch disc", "clutch"}, {"pressure plate", "clutch"},
	{"fog light", "lighting"}, {"tail light", "lighting"}, {"head lamp", "lighting"},
	{"side mirror", "body"}, {"wing mirror", "body"},
	{"wiper blade", "wiper"}, {"wiper blades", "wiper"},
	{"ac compressor", "ac"}, {"a/c compressor", "ac"}, {"air conditioning", "ac"},
	{"steering rack", "steering"}, {"tie rod", "steering"}, {"steering pump", "steering"},
	{"exhaust pipe", "exhaust"}, {"catalytic converter", "exhaust"},

	{"brakes", "brake"}, {"brake", "brake"},
	{"filters", "filter"}, {"filter", "filter"},
	{"battery", "battery"}, {"batteries", "battery"},
	{"tires", "tire"}, {"tire", "tire"}, {"tyres", "tire"}, {"tyre", "tire"},
	{"suspension", "suspension"}, {"radiator", "cooling"}, {"thermostat", "cooling"},
	{"alternator", "electrical"}, {"starter", "electrical"}, {"sensor", "electrical"},
	{"sensors", "electrical"}, {"clutch", "clutch"}, {"gearbox", "transmission"},
	{"transmission", "transmission"}, {"muffler", "exhaust"}, {"exhaust", "exhaust"},
	{"bumper", "body"}, {"fender", "body"}, {"hood", "body"}, {"grille", "body"},
	{"headlight", "lighting"}, {"headlights", "lighting"}, {"taillight", "lighting"},
	{"belt", "belt"}, {"belts", "belt"}, {"gasket", "engine"}, {"gaskets", "engine"},
	{"piston", "engine"}, {"pistons", "engine"}, {"crankshaft", "engine"},
	{"camshaft", "engine"}, {"turbocharger", "engine"}, {"turbo", "engine"},
	{"injector", "fuel"}, {"injectors", "fuel"}, {"carburetor", "fuel"},
	{"wiper", "wiper"}, {"wipers", "wiper"}, {"compressor", "ac"},
	{"bearing", "bearing"}, {"bearings", "bearing"},
}

// relatedKeywords expands a matched category into the keyword set used for
// free-text matching, improving recall for records whose descriptions use
// sibling terms.
var relatedKeywords = map[string][]string{
	"brake":        {"brake", "pad", "disc", "rotor", "caliper"},
	"filter":       {"filter", "element", "cartridge"},
	"ignition":     {"spark", "plug", "coil", "ignition"},
	"suspension":   {"shock", "absorber", "strut", "spring", "arm"},
	"belt":         {"belt", "tensioner", "pulley"},
	"cooling":      {"radiator", "coolant", "thermostat", "fan"},
	"fuel":         {"fuel", "pump", "injector"},
	"engine":       {"engine", "gasket", "piston", "mount"},
	"bearing":      {"bearing", "hub"},
	"clutch":       {"clutch", "disc", "plate", "release"},
	"lighting":     {"light", "lamp", "bulb", "headlight"},
	"body":         {"bumper", "mirror", "fender", "panel"},
	"wiper":        {"wiper", "blade"},
	"ac":           {"compressor", "condenser", "evaporator"},
	"steering":     {"steering", "rack", "rod"},
	"exhaust":      {"exhaust", "muffler", "catalytic"},
	"battery":      {"battery", "12v", "agm"},
	"tire":         {"tire", "tyre", "wheel"},
	"electrical":   {"alternator", "starter", "sensor", "relay"},
	"transmission": {"transmission", "gearbox", "gear"},
}

// findCategories scans the query longest-phrase-first and returns the
// matched category tags (deduplicated, in match order) together with the
// expanded related keywords.
func findCategories(q string) (tags, keywords []string) {
	seen := map[string]bool{}
	// Space padding gives cheap whole-word matching: "filter" must not
	// match inside "filtered".
	consumed := " " + q + " "
	for _, cp := range categoryPhrases {
		needle := " " + cp.phrase + " "
		if !strings.Contains(consumed, needle) {
			continue
		}
		// Claim the phrase so "brake pad" prevents bare "brake"
		// from matching the same characters again.
		consumed = strings.ReplaceAll(consumed, needle, "  ")
		if seen[cp.tag] {
			continue
		}
		seen[cp.tag] = true
		tags = append(tags, cp.tag)
		keywords = append(keywords, relatedKeywords[cp.tag]...)
	}
	return tags, keywords
}

// categoryTokens reports the lowercase words claimed by category phrases,
// for keyword stop-wording.
func categoryTokens() map[string]bool {
	out := map[string]bool{}
	for _, cp := range categoryPhrases {
		for _, w := range strings.Fields(cp.phrase) {
			out[w] = true
		}
	}
	return out
}
