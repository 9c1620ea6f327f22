package expand

// Token is a placeholder occurrence found in a template.
type Token struct {
	Name string
	// Offset is the byte offset of the opening brace.
	Offset int
	// Line and Column are 1-based; Column counts bytes.
	Line   int
	Column int
}

// Text returns the token as written in the template.
func (t Token) Text() string {
	return "{" + t.Name + "}"
}

// Scan lists every placeholder token in template, in order of appearance.
// Only an uppercase name enclosed in braces counts as a token, so ordinary
// code blocks and brace expressions with other content are ignored.
func Scan(template string) []Token {
	var (
		tokens    []Token
		line      = 1
		lineStart = 0
	)

	for i := 0; i < len(template); i++ {
		switch template[i] {
		case '\n':
			line++
			lineStart = i + 1
			continue
		case '{':
		default:
			continue
		}

		end := nameEnd(template, i+1)
		if end == i+1 || end >= len(template) || template[end] != '}' {
			continue
		}

		tokens = append(tokens, Token{
			Name:   template[i+1 : end],
			Offset: i,
			Line:   line,
			Column: i - lineStart + 1,
		})
		i = end
	}

	return tokens
}

// nameEnd returns the index just past the placeholder name starting at start.
func nameEnd(s string, start int) int {
	i := start
	for ; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= 'A' && ch <= 'Z':
		case i > start && (ch >= '0' && ch <= '9' || ch == '_'):
		default:
			return i
		}
	}
	return i
}
