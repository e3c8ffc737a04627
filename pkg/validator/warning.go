package validator

import (
	"fmt"
	"sort"

	"github.com/vilterp/gdlint/pkg/gdl"
)

// WarningKind says which advisory check produced a warning.
type WarningKind int

const (
	// WarningBareProposition: a bare proposition at the top level of
	// the description.
	WarningBareProposition WarningKind = iota
	// WarningNameOverlap: a constant used as both a sentence name and
	// a function name.
	WarningNameOverlap
	// WarningUndefined: a rule body references a sentence name that is
	// never defined.
	WarningUndefined
)

func (k WarningKind) String() string {
	switch k {
	case WarningBareProposition:
		return "bare_proposition"
	case WarningNameOverlap:
		return "name_overlap"
	case WarningUndefined:
		return "undefined"
	}
	return fmt.Sprintf("unknown warning kind %d", int(k))
}

func (k WarningKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *WarningKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "bare_proposition":
		*k = WarningBareProposition
	case "name_overlap":
		*k = WarningNameOverlap
	case "undefined":
		*k = WarningUndefined
	}
	return nil
}

// Warning is an advisory finding. The description is still accepted;
// Name identifies the construct the warning is about.
type Warning struct {
	Kind WarningKind `json:"kind"`
	Name string      `json:"name"`
}

func (w Warning) String() string {
	switch w.Kind {
	case WarningBareProposition:
		return fmt.Sprintf("the description contains the bare proposition %s, which may not be intended", w.Name)
	case WarningNameOverlap:
		return fmt.Sprintf("the constant %s is used as both a sentence name and a function name; this is probably unintended (are you using true correctly?)", w.Name)
	case WarningUndefined:
		return fmt.Sprintf("a rule references the sentence name %s, but no sentence with that name is defined", w.Name)
	}
	return fmt.Sprintf("unknown warning about %s", w.Name)
}

// undefinedSentenceWarnings reports rule body references to names no
// fact or rule head defines. true and does count as defined: their
// extensions come from the game state and the players' moves, not
// from the description.
func undefinedSentenceWarnings(relations []*gdl.Relation, rules []*gdl.Rule) []Warning {
	defined := map[string]bool{
		"true": true,
		"does": true,
	}
	for _, relation := range relations {
		defined[relation.Name().Name()] = true
	}
	for _, rule := range rules {
		defined[rule.Head().Name().Name()] = true
	}
	referenced := map[string]bool{}
	for _, rule := range rules {
		for _, literal := range rule.Body() {
			for _, sentence := range sentencesInLiteral(literal, nil) {
				referenced[sentence.Name().Name()] = true
			}
		}
	}
	var missing []string
	for name := range referenced {
		if !defined[name] {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	warnings := make([]Warning, 0, len(missing))
	for _, name := range missing {
		warnings = append(warnings, Warning{Kind: WarningUndefined, Name: name})
	}
	return warnings
}
