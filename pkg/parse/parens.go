package parse

import (
	"strings"

	"github.com/pkg/errors"
)

// CheckParens reports unbalanced parentheses in KIF source, with the
// line number of the offending paren. Running it before Parse turns
// the parser's token-level complaints into something an author can
// act on. Lines are numbered from 1; ; comments run to the end of the
// line.
func CheckParens(src string) error {
	var openLines []int
	for lineIdx, line := range strings.Split(src, "\n") {
		lineNumber := lineIdx + 1
	chars:
		for _, char := range line {
			switch char {
			case '(':
				openLines = append(openLines, lineNumber)
			case ')':
				if len(openLines) == 0 {
					return errors.Errorf("extra close paren at line %d", lineNumber)
				}
				openLines = openLines[:len(openLines)-1]
			case ';':
				break chars
			}
		}
	}
	if len(openLines) > 0 {
		return errors.Errorf("unclosed open paren starting at line %d", openLines[len(openLines)-1])
	}
	return nil
}
