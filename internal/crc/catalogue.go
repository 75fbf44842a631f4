package crc

/*------------------------------------------------------------------
 *
 * Purpose:	Binary search over the sorted template catalogue. The
 *		catalogue itself is pure data, kept in catalogue_data.go
 *		and never mutated after package init; this file is just
 *		the lookup glue.
 *
 *------------------------------------------------------------------*/

import "sort"

// Template pairs a catalogue name with the Configuration it resolves to.
type Template struct {
	Name string
	Configuration
}

// Lookup resolves a template name via binary search over the sorted
// catalogue, ASCII byte-comparison, case-sensitive and exact.
func Lookup(name string) (Configuration, error) {
	i := sort.Search(len(catalogue), func(i int) bool { return catalogue[i].Name >= name })
	if i < len(catalogue) && catalogue[i].Name == name {
		return catalogue[i].Configuration, nil
	}
	return Configuration{}, newError(UnknownTemplate, "unknown template %q", name)
}

// Templates returns the full name -> Configuration mapping.
func Templates() map[string]Configuration {
	out := make(map[string]Configuration, len(catalogue))
	for _, t := range catalogue {
		out[t.Name] = t.Configuration
	}
	return out
}

// TemplateNames returns the catalogue's names in sorted order.
func TemplateNames() []string {
	names := make([]string, len(catalogue))
	for i, t := range catalogue {
		names[i] = t.Name
	}
	return names
}
