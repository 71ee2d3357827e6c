package ansi

import (
	"sort"
	"strings"
)

var namedSchemes = map[string]*Scheme{
	"default":  &SchemeDefault,
	"bright":   &SchemeBright,
	"mono":     &SchemeMono,
	"disabled": &SchemeDisabled,
}

var schemeAliases = map[string]string{
	"bold":      "bright",
	"plain":     "disabled",
	"none":      "disabled",
	"off":       "disabled",
	"no-color":  "disabled",
	"nocolor":   "disabled",
	"no-colour": "disabled",
	"nocolour":  "disabled",
}

// SchemeByName resolves a built-in scheme by its canonical name. Names are
// case-insensitive and support compatibility aliases; unknown names resolve
// to nil.
func SchemeByName(name string) *Scheme {
	normalized := normalizeSchemeName(name)
	if canonical, ok := schemeAliases[normalized]; ok {
		normalized = canonical
	}
	return namedSchemes[normalized]
}

// SchemeNames returns the canonical scheme names in sorted order.
func SchemeNames() []string {
	names := make([]string, 0, len(namedSchemes))
	for name := range namedSchemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeSchemeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
