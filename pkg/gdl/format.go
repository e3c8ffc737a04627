package gdl

import (
	pp "github.com/vilterp/gdlint/pkg/prettyprint"
)

// Format lays out a description in a canonical style: facts one per
// line, rules with each body literal on its own line under the head,
// and a blank line before each rule. Comments are gone by the time a
// description is parsed, so they do not survive formatting.
func Format(description Description) string {
	var docs []pp.Doc
	for idx, node := range description {
		if idx > 0 {
			docs = append(docs, pp.Newline)
			if _, isRule := node.(*Rule); isRule {
				docs = append(docs, pp.Newline)
			}
		}
		docs = append(docs, formatNode(node))
	}
	return pp.Seq(docs).String()
}

func formatNode(node Node) pp.Doc {
	rule, ok := node.(*Rule)
	if !ok {
		return pp.Text(node.String())
	}
	if len(rule.Body()) == 0 {
		return pp.Textf("(<= %s)", rule.Head())
	}
	body := make([]pp.Doc, len(rule.Body()))
	for idx, literal := range rule.Body() {
		body[idx] = pp.Text(literal.String())
	}
	return pp.Seq([]pp.Doc{
		pp.Textf("(<= %s", rule.Head()),
		pp.Newline,
		pp.Nest(4, pp.Join(body, pp.Newline)),
		pp.Text(")"),
	})
}
