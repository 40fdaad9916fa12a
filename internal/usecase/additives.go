package usecase

import "strings"

// preservativeCodes holds the E-numbers classified as preservatives.
// Membership is checked against the lower-cased additive code.
var preservativeCodes = map[string]bool{
	// Sorbates
	"e200": true, "e201": true, "e202": true, "e203": true,
	// Benzoates
	"e210": true, "e211": true, "e212": true, "e213": true,
	"e214": true, "e215": true, "e216": true, "e217": true, "e218": true, "e219": true,
	// Sulfites
	"e220": true, "e221": true, "e222": true, "e223": true, "e224": true,
	"e225": true, "e226": true, "e227": true, "e228": true,
	// Biphenyl & derivatives
	"e230": true, "e231": true, "e232": true, "e233": true,
	"e234": true, "e235": true,
	// Hexamethylene tetramine
	"e239": true,
	// Dimethyl dicarbonate
	"e242": true,
	// Nitrites / nitrates
	"e249": true, "e250": true, "e251": true, "e252": true,
	// Acetates
	"e260": true, "e261": true, "e262": true, "e263": true,
	// Lactic acid
	"e270": true,
	// Propionates
	"e280": true, "e281": true, "e282": true, "e283": true,
	"e284": true, "e285": true,
	// Carbon dioxide
	"e290": true,
}

// ClassifyAdditives splits a list of additive tags (e.g. ["en:e330",
// "en:e211"]) into general additives and known preservatives. The language
// prefix is stripped and names are upper-cased; each tag lands in exactly
// one of the two lists, in input order.
func ClassifyAdditives(tags []string) (additives, preservatives []string) {
	additives = []string{}
	preservatives = []string{}

	for _, tag := range tags {
		name := strings.TrimSpace(strings.TrimPrefix(tag, "en:"))
		if name == "" {
			continue
		}

		if preservativeCodes[strings.ToLower(name)] {
			preservatives = append(preservatives, strings.ToUpper(name))
		} else {
			additives = append(additives, strings.ToUpper(name))
		}
	}

	return additives, preservatives
}
