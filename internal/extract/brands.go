package extract

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// vehicleBrands maps surface forms to the canonical make code: what the
// part fits. Disjoint from partsBrands by construction — the extractor
// must never classify one token as both.
var vehicleBrands = map[string]string{
	"toyota": "TOYOTA", "lexus": "LEXUS", "honda": "HONDA", "acura": "ACURA",
	"nissan": "NISSAN", "infiniti": "INFINITI", "mitsubishi": "MITSUBISHI",
	"mazda": "MAZDA", "suzuki": "SUZUKI", "subaru": "SUBARU", "isuzu": "ISUZU",
	"daihatsu": "DAIHATSU", "hyundai": "HYUNDAI", "kia": "KIA",
	"bmw": "BMW", "mercedes": "MERCEDES", "mercedes-benz": "MERCEDES", "benz": "MERCEDES",
	"audi": "AUDI", "volkswagen": "VOLKSWAGEN", "vw": "VOLKSWAGEN",
	"porsche": "PORSCHE", "opel": "OPEL", "skoda": "SKODA", "seat": "SEAT",
	"ford": "FORD", "chevrolet": "CHEVROLET", "chevy": "CHEVROLET",
	"gmc": "GMC", "dodge": "DODGE", "jeep": "JEEP", "cadillac": "CADILLAC",
	"chrysler": "CHRYSLER", "tesla": "TESLA", "volvo": "VOLVO",
	"peugeot": "PEUGEOT", "renault": "RENAULT", "citroen": "CITROEN",
	"fiat": "FIAT", "alfa romeo": "ALFA ROMEO", "jaguar": "JAGUAR",
	"land rover": "LAND ROVER", "landrover": "LAND ROVER", "range rover": "LAND ROVER",
	"mini": "MINI", "chery": "CHERY", "geely": "GEELY", "byd": "BYD",
	"mg": "MG", "great wall": "GREAT WALL", "haval": "HAVAL",
}

// partsBrands maps surface forms to the canonical manufacturer code: who
// made the part.
var partsBrands = map[string]string{
	"bosch": "BOSCH", "denso": "DENSO", "ngk": "NGK", "delphi": "DELPHI",
	"valeo": "VALEO", "mahle": "MAHLE", "mann": "MANN", "mann-filter": "MANN",
	"febi": "FEBI", "febi bilstein": "FEBI", "bilstein": "BILSTEIN",
	"sachs": "SACHS", "brembo": "BREMBO", "ate": "ATE", "trw": "TRW",
	"textar": "TEXTAR", "ferodo": "FERODO", "monroe": "MONROE", "kyb": "KYB",
	"gates": "GATES", "dayco": "DAYCO", "contitech": "CONTITECH",
	"skf": "SKF", "fag": "FAG", "ina": "INA", "luk": "LUK", "nsk": "NSK",
	"ntn": "NTN", "koyo": "KOYO", "timken": "TIMKEN",
	"hella": "HELLA", "osram": "OSRAM", "philips": "PHILIPS",
	"varta": "VARTA", "exide": "EXIDE", "aisin": "AISIN", "akebono": "AKEBONO",
	"nissens": "NISSENS", "behr": "BEHR", "sanden": "SANDEN",
	"lemforder": "LEMFORDER", "moog": "MOOG", "gabriel": "GABRIEL",
	"motorcraft": "MOTORCRAFT", "acdelco": "ACDELCO", "mopar": "MOPAR",
	"hengst": "HENGST", "knecht": "KNECHT", "pierburg": "PIERBURG",
	"elring": "ELRING", "victor reinz": "VICTOR REINZ", "corteco": "CORTECO",
}

var (
	brandOnce      sync.Once
	vehicleBrandRe *regexp.Regexp
	partsBrandRe   *regexp.Regexp
)

func compileBrandTables() {
	vehicleBrandRe = brandAlternation(vehicleBrands)
	partsBrandRe = brandAlternation(partsBrands)
}

func brandAlternation(table map[string]string) *regexp.Regexp {
	forms := make([]string, 0, len(table))
	for f := range table {
		forms = append(forms, regexp.QuoteMeta(f))
	}
	// Longest first so "mercedes-benz" beats "mercedes" and
	// "land rover" beats nothing shorter.
	sort.Slice(forms, func(i, j int) bool { return len(forms[i]) > len(forms[j]) })
	return regexp.MustCompile(`\b(` + strings.Join(forms, "|") + `)\b`)
}

// findVehicleBrand returns the first canonical vehicle make in the query.
func findVehicleBrand(q string) string {
	brandOnce.Do(compileBrandTables)
	if m := vehicleBrandRe.FindString(q); m != "" {
		return vehicleBrands[m]
	}
	return ""
}

// findPartsBrands returns every canonical parts manufacturer mentioned, in
// query order, deduplicated.
func findPartsBrands(q string) []string {
	brandOnce.Do(compileBrandTables)
	seen := map[string]bool{}
	var out []string
	for _, m := range partsBrandRe.FindAllString(q, -1) {
		canon := partsBrands[m]
		if !seen[canon] {
			seen[canon] = true
			out = append(out, canon)
		}
	}
	return out
}

// resolveBrand resolves a noun from an exclusion phrase to a canonical
// brand code, consulting both tables. Returns "" when unknown.
func resolveBrand(token string) string {
	t := strings.ToLower(strings.TrimSpace(token))
	if c, ok := vehicleBrands[t]; ok {
		return c
	}
	if c, ok := partsBrands[t]; ok {
		return c
	}
	return ""
}

// brandTokens reports the set of lowercase words claimed by either brand
// table, for keyword stop-wording.
func brandTokens() map[string]bool {
	out := map[string]bool{}
	for form := range vehicleBrands {
		for _, w := range strings.Fields(form) {
			out[w] = true
		}
	}
	for form := range partsBrands {
		for _, w := range strings.Fields(form) {
			out[w] = true
		}
	}
	return out
}
