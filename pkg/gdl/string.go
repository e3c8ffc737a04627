package gdl

import (
	"fmt"
	"strings"
)

// String renders nodes back into source syntax, so parsing the output
// of String yields a structurally equal description.

func (c Constant) String() string { return c.name }

func (v Variable) String() string { return "?" + v.name }

func (f *Function) String() string {
	return sexp(f.name.String(), termStrings(f.args))
}

func (p Proposition) String() string { return p.name.String() }

func (r *Relation) String() string {
	return sexp(r.name.String(), termStrings(r.args))
}

func (n *Not) String() string {
	return sexp("not", []string{n.body.String()})
}

func (o *Or) String() string {
	parts := make([]string, len(o.disjuncts))
	for i, disjunct := range o.disjuncts {
		parts[i] = disjunct.String()
	}
	return sexp("or", parts)
}

func (d *Distinct) String() string {
	return sexp("distinct", []string{d.arg1.String(), d.arg2.String()})
}

func (r *Rule) String() string {
	parts := make([]string, 0, len(r.body)+1)
	parts = append(parts, r.head.String())
	for _, literal := range r.body {
		parts = append(parts, literal.String())
	}
	return sexp("<=", parts)
}

func (d Description) String() string {
	lines := make([]string, len(d))
	for i, node := range d {
		lines[i] = node.String()
	}
	return strings.Join(lines, "\n")
}

func termStrings(terms []Term) []string {
	parts := make([]string, len(terms))
	for i, term := range terms {
		parts[i] = term.String()
	}
	return parts
}

func sexp(head string, rest []string) string {
	if len(rest) == 0 {
		return fmt.Sprintf("(%s)", head)
	}
	return fmt.Sprintf("(%s %s)", head, strings.Join(rest, " "))
}
