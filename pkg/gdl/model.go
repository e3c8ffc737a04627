// Package gdl defines the syntax tree for game descriptions written in
// the Datalog-with-negation dialect used to specify finite game rules.
//
// A description is an ordered list of top-level nodes, normally ground
// relations (facts) and rules. Terms fall into three kinds:
//
// * constant: an atomic symbol.
//
// * variable: a named placeholder, scoped to one rule.
//
// * function: a symbol applied to an ordered sequence of terms.
//
// Sentences are either propositions (a bare symbol, arity 0) or
// relations (a symbol applied to terms). Rule bodies are conjunctions
// of literals: sentences, negations, disjunctions, and distinct
// constraints.
//
// All nodes are immutable once constructed. Terms are compared
// structurally with Equal.
package gdl

import "fmt"

// Node is implemented by every kind of syntax node. Top-level items of
// a description are Nodes; a well-formed description contains only
// relations and rules at the top level, but the parser is permissive
// and later analysis rejects anything else.
type Node interface {
	fmt.Stringer
	node()
}

// Term is a constant, a variable, or a function applied to terms.
type Term interface {
	Node
	// Ground reports whether the term contains no variables.
	Ground() bool
	term()
}

// Sentence is a proposition or a relation. Its name labels a node of
// the dependency graph; its arity must be uniform across the whole
// description.
type Sentence interface {
	Literal
	Name() Constant
	Arity() int
	Args() []Term
	sentence()
}

// Literal is one conjunct of a rule body.
type Literal interface {
	Node
	literal()
}

// Constant is an atomic symbol.
type Constant struct {
	name string
}

// NewConstant creates a constant.
func NewConstant(name string) Constant {
	return Constant{name: name}
}

// Name returns the constant's identifier.
func (c Constant) Name() string { return c.name }

// Ground is always true for constants.
func (c Constant) Ground() bool { return true }

// Variable is a named placeholder.
type Variable struct {
	name string
}

// NewVariable creates a variable. The name does not include the ?
// marker used in source syntax.
func NewVariable(name string) Variable {
	return Variable{name: name}
}

// Name returns the variable's identifier, without the ? marker.
func (v Variable) Name() string { return v.name }

// Ground is always false for variables.
func (v Variable) Ground() bool { return false }

// Function is a symbol applied to an ordered sequence of terms.
type Function struct {
	name   Constant
	args   []Term
	ground bool
}

// NewFunction creates a function term. Groundness is computed eagerly
// so that Ground is cheap on deeply nested terms.
func NewFunction(name Constant, args []Term) *Function {
	f := &Function{name: name, args: args, ground: true}
	for _, arg := range args {
		if !arg.Ground() {
			f.ground = false
			break
		}
	}
	return f
}

// Name returns the function's symbol.
func (f *Function) Name() Constant { return f.name }

// Args returns the function's arguments. The returned slice must not
// be modified.
func (f *Function) Args() []Term { return f.args }

// Arity returns the number of arguments.
func (f *Function) Arity() int { return len(f.args) }

// Ground reports whether any variable occurs in the function's
// arguments.
func (f *Function) Ground() bool { return f.ground }

// Proposition is a sentence with no arguments, written as a bare
// symbol.
type Proposition struct {
	name Constant
}

// NewProposition creates a proposition.
func NewProposition(name Constant) Proposition {
	return Proposition{name: name}
}

// Name returns the proposition's symbol.
func (p Proposition) Name() Constant { return p.name }

// Arity is always 0 for propositions.
func (p Proposition) Arity() int { return 0 }

// Args is always nil for propositions.
func (p Proposition) Args() []Term { return nil }

// Relation is a sentence with arguments.
type Relation struct {
	name Constant
	args []Term
}

// NewRelation creates a relation. An empty argument list is
// representable but rejected by validation; such forms should be
// written as propositions.
func NewRelation(name Constant, args []Term) *Relation {
	return &Relation{name: name, args: args}
}

// Name returns the relation's symbol.
func (r *Relation) Name() Constant { return r.name }

// Args returns the relation's arguments. The returned slice must not
// be modified.
func (r *Relation) Args() []Term { return r.args }

// Arity returns the number of arguments.
func (r *Relation) Arity() int { return len(r.args) }

// Not is a negated literal. Only a sentence body is well formed;
// anything else is representable and rejected by validation.
type Not struct {
	body Literal
}

// NewNot creates a negation.
func NewNot(body Literal) *Not {
	return &Not{body: body}
}

// Body returns the negated literal.
func (n *Not) Body() Literal { return n.body }

// Or is a disjunction of literals.
type Or struct {
	disjuncts []Literal
}

// NewOr creates a disjunction.
func NewOr(disjuncts []Literal) *Or {
	return &Or{disjuncts: disjuncts}
}

// Disjuncts returns the branches of the disjunction. The returned
// slice must not be modified.
func (o *Or) Disjuncts() []Literal { return o.disjuncts }

// Arity returns the number of branches.
func (o *Or) Arity() int { return len(o.disjuncts) }

// Distinct holds when its two terms are not equal.
type Distinct struct {
	arg1 Term
	arg2 Term
}

// NewDistinct creates a distinct constraint.
func NewDistinct(arg1, arg2 Term) *Distinct {
	return &Distinct{arg1: arg1, arg2: arg2}
}

// Arg1 returns the first term.
func (d *Distinct) Arg1() Term { return d.arg1 }

// Arg2 returns the second term.
func (d *Distinct) Arg2() Term { return d.arg2 }

// Rule derives its head sentence from a conjunction of body literals.
type Rule struct {
	head Sentence
	body []Literal
}

// NewRule creates a rule. An empty body is representable but rejected
// by validation; such forms should be written as facts.
func NewRule(head Sentence, body []Literal) *Rule {
	return &Rule{head: head, body: body}
}

// Head returns the rule's head sentence.
func (r *Rule) Head() Sentence { return r.head }

// Body returns the rule's body literals. The returned slice must not
// be modified.
func (r *Rule) Body() []Literal { return r.body }

// Arity returns the number of body literals.
func (r *Rule) Arity() int { return len(r.body) }

// Description is a parsed game description: an ordered list of
// top-level nodes.
type Description []Node

// Equal reports whether two terms are structurally equal.
func Equal(a, b Term) bool {
	switch a := a.(type) {
	case Constant:
		bc, ok := b.(Constant)
		return ok && a == bc
	case Variable:
		bv, ok := b.(Variable)
		return ok && a == bv
	case *Function:
		bf, ok := b.(*Function)
		if !ok || a.name != bf.name || len(a.args) != len(bf.args) {
			return false
		}
		for i := range a.args {
			if !Equal(a.args[i], bf.args[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func (c Constant) node() {}
func (c Constant) term() {}

func (v Variable) node() {}
func (v Variable) term() {}

func (f *Function) node() {}
func (f *Function) term() {}

func (p Proposition) node()     {}
func (p Proposition) literal()  {}
func (p Proposition) sentence() {}

func (r *Relation) node()     {}
func (r *Relation) literal()  {}
func (r *Relation) sentence() {}

func (n *Not) node()    {}
func (n *Not) literal() {}

func (o *Or) node()    {}
func (o *Or) literal() {}

func (d *Distinct) node()    {}
func (d *Distinct) literal() {}

func (r *Rule) node() {}

var _ Term = NewConstant("")
var _ Term = NewVariable("")
var _ Term = NewFunction(NewConstant(""), nil)
var _ Sentence = NewProposition(NewConstant(""))
var _ Sentence = NewRelation(NewConstant(""), nil)
var _ Literal = NewNot(nil)
var _ Literal = NewOr(nil)
var _ Literal = NewDistinct(nil, nil)
var _ Node = NewRule(nil, nil)
