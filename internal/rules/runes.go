package rules

import (
	"strings"
)

// Runes are the fundamental runes etched on a piece of gear, as tier
// strings: Potency "+1".."+3", Striking and Resilient "striking"/"resilient",
// "greater" or "major".
type Runes struct {
	Potency   string `json:"potency,omitempty" yaml:"potency"`
	Striking  string `json:"striking,omitempty" yaml:"striking"`
	Resilient string `json:"resilient,omitempty" yaml:"resilient"`
}

// IsZero reports whether no rune is set
func (r Runes) IsZero() bool {
	return r.Potency == "" && r.Striking == "" && r.Resilient == ""
}

// RuneRef names one rune on an item and the catalog key it resolves to
type RuneRef struct {
	Label string
	Key   string
}

// CatalogRefs maps the tier strings to rune catalog keys. Potency on armor
// is an AC rune; anywhere else it is an attack rune.
func (r Runes) CatalogRefs(onArmor bool) []RuneRef {
	var refs []RuneRef

	if tier := potencyTier(r.Potency); tier != "" {
		kind := "weapon"
		if onArmor {
			kind = "armor"
		}
		refs = append(refs, RuneRef{Label: "+" + tier, Key: kind + "-potency-" + tier})
	}
	if key := tieredKey(r.Striking, "striking"); key != "" {
		refs = append(refs, RuneRef{Label: strings.ReplaceAll(key, "-", " "), Key: key})
	}
	if key := tieredKey(r.Resilient, "resilient"); key != "" {
		refs = append(refs, RuneRef{Label: strings.ReplaceAll(key, "-", " "), Key: key})
	}

	return refs
}

func potencyTier(s string) string {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "+"))
	switch s {
	case "1", "2", "3":
		return s
	}
	return ""
}

// tieredKey turns "greater", "Greater Striking" or "striking" into the
// catalog key for base rune name
func tieredKey(s, base string) string {
	norm := NormalizeName(strings.TrimSpace(s))
	norm = strings.TrimSuffix(norm, "-"+base)
	switch norm {
	case "":
		return ""
	case base, "1", "true":
		return base
	case "greater", "major":
		return norm + "-" + base
	}
	return ""
}
