package turtle

import (
	"fmt"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIRI
	tokPName
	tokBlank
	tokString
	tokLangTag
	tokNumber
	tokBoolean
	tokPrefixDecl
	tokA
	tokDot
	tokSemicolon
	tokComma
	tokLBracket
	tokRBracket
	tokLParen
	tokRParen
	tokDatatypeSep
)

type token struct {
	kind  tokenKind
	value string
	line  int
}

type lexer struct {
	input string
	pos   int
	line  int
}

func newLexer(input string) *lexer {
	return &lexer{input: input, line: 1}
}

func (l *lexer) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("line %d: %s", l.line, fmt.Sprintf(format, args...))
}

func (l *lexer) next() (token, error) {
	l.skipSpace()
	if l.pos >= len(l.input) {
		return token{kind: tokEOF, line: l.line}, nil
	}

	c := l.input[l.pos]
	switch c {
	case '.':
		l.pos++
		return token{kind: tokDot, line: l.line}, nil
	case ';':
		l.pos++
		return token{kind: tokSemicolon, line: l.line}, nil
	case ',':
		l.pos++
		return token{kind: tokComma, line: l.line}, nil
	case '[':
		l.pos++
		return token{kind: tokLBracket, line: l.line}, nil
	case ']':
		l.pos++
		return token{kind: tokRBracket, line: l.line}, nil
	case '(':
		l.pos++
		return token{kind: tokLParen, line: l.line}, nil
	case ')':
		l.pos++
		return token{kind: tokRParen, line: l.line}, nil
	case '<':
		return l.lexIRI()
	case '"', '\'':
		return l.lexString(c)
	case '^':
		if strings.HasPrefix(l.input[l.pos:], "^^") {
			l.pos += 2
			return token{kind: tokDatatypeSep, line: l.line}, nil
		}
		return token{}, l.errorf("unexpected '^'")
	case '@':
		return l.lexAtKeyword()
	case '_':
		if strings.HasPrefix(l.input[l.pos:], "_:") {
			return l.lexBlank()
		}
	}

	if c == '+' || c == '-' || unicode.IsDigit(rune(c)) {
		return l.lexNumber()
	}
	return l.lexWord()
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch {
		case c == '\n':
			l.line++
			l.pos++
		case c == ' ' || c == '\t' || c == '\r':
			l.pos++
		case c == '#':
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.pos++
			}
		default:
			return
		}
	}
}

func (l *lexer) lexIRI() (token, error) {
	start := l.pos + 1
	end := strings.IndexByte(l.input[start:], '>')
	if end < 0 {
		return token{}, l.errorf("unterminated IRI")
	}
	iri := l.input[start : start+end]
	l.pos = start + end + 1
	return token{kind: tokIRI, value: iri, line: l.line}, nil
}

func (l *lexer) lexString(quote byte) (token, error) {
	long := string(quote) + string(quote) + string(quote)
	if strings.HasPrefix(l.input[l.pos:], long) {
		return l.lexLongString(long)
	}
	l.pos++
	var sb strings.Builder
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch c {
		case quote:
			l.pos++
			return token{kind: tokString, value: sb.String(), line: l.line}, nil
		case '\\':
			if l.pos+1 >= len(l.input) {
				return token{}, l.errorf("dangling escape in literal")
			}
			sb.WriteByte(unescape(l.input[l.pos+1]))
			l.pos += 2
		case '\n':
			return token{}, l.errorf("newline in single-quoted literal")
		default:
			sb.WriteByte(c)
			l.pos++
		}
	}
	return token{}, l.errorf("unterminated literal")
}

func (l *lexer) lexLongString(delim string) (token, error) {
	start := l.pos + len(delim)
	end := strings.Index(l.input[start:], delim)
	if end < 0 {
		return token{}, l.errorf("unterminated long literal")
	}
	value := l.input[start : start+end]
	l.line += strings.Count(value, "\n")
	l.pos = start + end + len(delim)
	return token{kind: tokString, value: value, line: l.line}, nil
}

func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return c
	}
}

func (l *lexer) lexAtKeyword() (token, error) {
	word := l.takeWhile(func(c byte) bool { return isNameChar(c) }, l.pos+1)
	switch strings.ToLower(word) {
	case "prefix":
		return token{kind: tokPrefixDecl, line: l.line}, nil
	case "base":
		return token{}, l.errorf("@base is not supported")
	default:
		// A language tag following a literal.
		return token{kind: tokLangTag, value: word, line: l.line}, nil
	}
}

func (l *lexer) lexBlank() (token, error) {
	label := l.takeWhile(isNameChar, l.pos+2)
	if label == "" {
		return token{}, l.errorf("blank node without label")
	}
	return token{kind: tokBlank, value: label, line: l.line}, nil
}

func (l *lexer) lexNumber() (token, error) {
	start := l.pos
	end := start
	for end < len(l.input) {
		c := l.input[end]
		if unicode.IsDigit(rune(c)) || c == '+' || c == '-' || c == 'e' || c == 'E' {
			end++
			continue
		}
		// A dot only belongs to the number when a digit follows; otherwise
		// it terminates the statement.
		if c == '.' && end+1 < len(l.input) && unicode.IsDigit(rune(l.input[end+1])) {
			end++
			continue
		}
		break
	}
	if end == start {
		return token{}, l.errorf("malformed number")
	}
	value := l.input[start:end]
	l.pos = end
	return token{kind: tokNumber, value: value, line: l.line}, nil
}

func (l *lexer) lexWord() (token, error) {
	start := l.pos
	word := l.takeWhile(func(c byte) bool { return isNameChar(c) || c == ':' }, start)
	if word == "" {
		return token{}, l.errorf("unexpected character %q", l.input[l.pos])
	}
	switch word {
	case "a":
		return token{kind: tokA, line: l.line}, nil
	case "true", "false":
		return token{kind: tokBoolean, value: word, line: l.line}, nil
	case "PREFIX", "prefix":
		return token{kind: tokPrefixDecl, line: l.line}, nil
	}
	if !strings.Contains(word, ":") {
		return token{}, l.errorf("unexpected token %q", word)
	}
	return token{kind: tokPName, value: word, line: l.line}, nil
}

func (l *lexer) takeWhile(pred func(byte) bool, from int) string {
	end := from
	for end < len(l.input) && pred(l.input[end]) {
		end++
	}
	word := l.input[from:end]
	l.pos = end
	return word
}

func isNameChar(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= 'a' && c <= 'z')
}
