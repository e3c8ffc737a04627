// Package parse reads game descriptions from KIF source text.
package parse

import (
	"strings"

	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"
	"github.com/pkg/errors"
	"github.com/vilterp/gdlint/pkg/gdl"
)

// KIF is s-expressions over atoms; ; starts a comment that runs to the
// end of the line.
var kifLexer = lexer.Must(lexer.Regexp(
	`(\s+)` +
		`|(;[^\n]*)` +
		`|(?P<Punct>[()])` +
		`|(?P<Atom>[^()\s;]+)`,
))

type source struct {
	Forms []*form `parser:"{ @@ }"`
}

type form struct {
	Atom *string `parser:"  @Atom"`
	List *list   `parser:"| @@"`
}

type list struct {
	Forms []*form `parser:"'(' { @@ } ')'"`
}

var kifParser = participle.MustBuild(&source{}, kifLexer)

// Parse reads a game description. Malformed sentences are errors, but
// forms the validator rejects with better messages, like zero-arity
// relations and empty rule bodies, parse fine here.
func Parse(src string) (gdl.Description, error) {
	parsed := &source{}
	if err := kifParser.ParseString(src, parsed); err != nil {
		return nil, err
	}
	description := make(gdl.Description, 0, len(parsed.Forms))
	for _, f := range parsed.Forms {
		node, err := convertTopLevel(f)
		if err != nil {
			return nil, err
		}
		description = append(description, node)
	}
	return description, nil
}

func convertTopLevel(f *form) (gdl.Node, error) {
	if f.Atom != nil {
		if isVariableAtom(*f.Atom) {
			return variableFromAtom(*f.Atom), nil
		}
		return gdl.NewProposition(gdl.NewConstant(*f.Atom)), nil
	}
	forms := f.List.Forms
	if len(forms) == 0 {
		return nil, errors.New("empty parentheses are not a valid expression")
	}
	if forms[0].Atom != nil && *forms[0].Atom == "<=" {
		return convertRule(forms)
	}
	return convertSentence(f)
}

func convertRule(forms []*form) (*gdl.Rule, error) {
	if len(forms) < 2 {
		return nil, errors.New("a rule needs a head")
	}
	head, err := convertSentence(forms[1])
	if err != nil {
		return nil, err
	}
	// An empty body parses; the validator tells the author to write
	// the head as a fact instead.
	body := make([]gdl.Literal, 0, len(forms)-2)
	for _, bodyForm := range forms[2:] {
		literal, err := convertLiteral(bodyForm)
		if err != nil {
			return nil, err
		}
		body = append(body, literal)
	}
	return gdl.NewRule(head, body), nil
}

func convertLiteral(f *form) (gdl.Literal, error) {
	if f.Atom != nil {
		if isVariableAtom(*f.Atom) {
			return nil, errors.Errorf("the variable %s cannot be used as a sentence", *f.Atom)
		}
		return gdl.NewProposition(gdl.NewConstant(*f.Atom)), nil
	}
	forms := f.List.Forms
	if len(forms) == 0 {
		return nil, errors.New("empty parentheses are not a valid expression")
	}
	if forms[0].Atom != nil {
		switch *forms[0].Atom {
		case "not":
			if len(forms) != 2 {
				return nil, errors.Errorf("not takes exactly one argument, not %d", len(forms)-1)
			}
			body, err := convertLiteral(forms[1])
			if err != nil {
				return nil, err
			}
			return gdl.NewNot(body), nil
		case "or":
			disjuncts := make([]gdl.Literal, 0, len(forms)-1)
			for _, disjunctForm := range forms[1:] {
				disjunct, err := convertLiteral(disjunctForm)
				if err != nil {
					return nil, err
				}
				disjuncts = append(disjuncts, disjunct)
			}
			return gdl.NewOr(disjuncts), nil
		case "distinct":
			if len(forms) != 3 {
				return nil, errors.Errorf("distinct takes exactly two arguments, not %d", len(forms)-1)
			}
			arg1, err := convertTerm(forms[1])
			if err != nil {
				return nil, err
			}
			arg2, err := convertTerm(forms[2])
			if err != nil {
				return nil, err
			}
			return gdl.NewDistinct(arg1, arg2), nil
		}
	}
	return convertSentence(f)
}

func convertSentence(f *form) (gdl.Sentence, error) {
	if f.Atom != nil {
		if isVariableAtom(*f.Atom) {
			return nil, errors.Errorf("the variable %s cannot be used as a sentence", *f.Atom)
		}
		return gdl.NewProposition(gdl.NewConstant(*f.Atom)), nil
	}
	forms := f.List.Forms
	if len(forms) == 0 {
		return nil, errors.New("empty parentheses are not a valid expression")
	}
	name, err := nameFromForm(forms[0], "sentence")
	if err != nil {
		return nil, err
	}
	// Zero arguments still make a relation here, so the validator can
	// point at the parentheses.
	args, err := convertTerms(forms[1:])
	if err != nil {
		return nil, err
	}
	return gdl.NewRelation(name, args), nil
}

func convertTerm(f *form) (gdl.Term, error) {
	if f.Atom != nil {
		if isVariableAtom(*f.Atom) {
			return variableFromAtom(*f.Atom), nil
		}
		return gdl.NewConstant(*f.Atom), nil
	}
	forms := f.List.Forms
	if len(forms) == 0 {
		return nil, errors.New("empty parentheses are not a valid expression")
	}
	name, err := nameFromForm(forms[0], "function")
	if err != nil {
		return nil, err
	}
	args, err := convertTerms(forms[1:])
	if err != nil {
		return nil, err
	}
	return gdl.NewFunction(name, args), nil
}

func convertTerms(forms []*form) ([]gdl.Term, error) {
	terms := make([]gdl.Term, 0, len(forms))
	for _, f := range forms {
		term, err := convertTerm(f)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return terms, nil
}

func nameFromForm(f *form, kind string) (gdl.Constant, error) {
	if f.Atom == nil {
		return gdl.Constant{}, errors.Errorf("a list cannot be used as a %s name", kind)
	}
	if isVariableAtom(*f.Atom) {
		return gdl.Constant{}, errors.Errorf("the variable %s cannot be used as a %s name", *f.Atom, kind)
	}
	return gdl.NewConstant(*f.Atom), nil
}

func isVariableAtom(atom string) bool {
	return strings.HasPrefix(atom, "?")
}

func variableFromAtom(atom string) gdl.Variable {
	return gdl.NewVariable(strings.TrimPrefix(atom, "?"))
}
