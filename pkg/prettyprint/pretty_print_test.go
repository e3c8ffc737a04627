package prettyprint

import "testing"

func TestPrettyPrint(t *testing.T) {
	cases := []struct {
		in  Doc
		out string
	}{
		{
			Seq([]Doc{Text("role"), Text(" "), Text("white")}),
			`role white`,
		},
		{
			Parens(Text("role white")),
			`(role white)`,
		},
		{
			Seq([]Doc{Text("(<= head"), Newline, Nest(4, Text("body")), Text(")")}),
			`(<= head
    body)`,
		},
		{
			Seq([]Doc{
				Text("(<= head"), Newline,
				Nest(4, Join([]Doc{
					Text("(first conjunct)"),
					Text("(second conjunct)"),
				}, Newline)),
				Text(")"),
			}),
			`(<= head
    (first conjunct)
    (second conjunct))`,
		},
		{
			Seq([]Doc{Empty, Text("x"), Empty}),
			`x`,
		},
	}

	for idx, testCase := range cases {
		actual := testCase.in.String()
		if actual != testCase.out {
			t.Fatalf("case %d:\nEXPECTED\n\n%s\n\nGOT\n\n%s", idx, testCase.out, actual)
		}
	}
}
