package normalize

import (
	"fmt"
	"strings"
)

// AudienceMode selects the label pair produced by Audience.
type AudienceMode string

// Audience modes.
const (
	ModeAdultKids AudienceMode = "adult_kids"
	ModeFamily    AudienceMode = "family"
)

// Audience labels.
const (
	AudienceAdult     = "Adulto"
	AudienceKids      = "Infantil"
	AudienceFamily    = "Familiar"
	AudienceNotFamily = "No Familiar"
)

// ParseAudienceMode validates a configured mode. An empty string selects ModeAdultKids.
func ParseAudienceMode(s string) (AudienceMode, error) {
	switch AudienceMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeAdultKids:
		return ModeAdultKids, nil
	case ModeFamily:
		return ModeFamily, nil
	default:
		return "", fmt.Errorf("unknown audience mode %q", s)
	}
}

// Labels returns the (kids, adult) label pair for the mode.
func (m AudienceMode) Labels() (kids, adult string) {
	if m == ModeFamily {
		return AudienceFamily, AudienceNotFamily
	}
	return AudienceKids, AudienceAdult
}

// Audience maps an already normalized rating code to an audience label.
// Codes in the kids set map to the kids label. Everything else, including
// blank and unknown codes, maps to the adult label; callers that want to
// report unknown codes check IsKnownRating first.
func (n *Normalizer) Audience(code string, mode AudienceMode) string {
	kids, adult := mode.Labels()
	if _, ok := n.tables.kidsRatings[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return kids
	}
	return adult
}

// IsKnownRating reports whether code belongs to either audience set.
func (n *Normalizer) IsKnownRating(code string) bool {
	code = strings.ToUpper(strings.TrimSpace(code))
	if _, ok := n.tables.kidsRatings[code]; ok {
		return true
	}
	_, ok := n.tables.adultRatings[code]
	return ok
}
