// Package css builds and validates CSS selectors.
package css

import (
	"errors"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser converts selector text into builders, applying the same ordering
// and uniqueness rules as building selectors by hand.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new selector parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

type token struct {
	tt   css.TokenType
	data string
	pos  int
}

// ParseSelector parses a complex selector, for example
// "div#main.container > a[href$=\".png\"]:focus". Compound selectors joined
// by combinators are returned as nested combinations. Selector lists,
// namespaces and other unsupported syntax produce *SyntaxError, part
// ordering problems produce *OrderError or *DuplicateSelectorError.
func (p *Parser) ParseSelector(text string) (*Builder, error) {
	tokens, err := tokenize(strings.TrimSpace(text))
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, &SyntaxError{Reason: "empty selector"}
	}

	var (
		compounds   []*Builder
		combinators []string
		cur         = New()
		empty       = true
		descendant  bool
	)

	for i := 0; i < len(tokens); i++ {
		t := tokens[i]

		switch {
		case t.tt == css.WhitespaceToken:
			// may be descendant combinator or padding around explicit one
			descendant = !empty
			continue

		case t.tt == css.DelimToken && (t.data == ">" || t.data == "+" || t.data == "~"):
			if empty {
				return nil, &SyntaxError{Offset: t.pos, Token: t.data, Reason: "combinator without selector on the left"}
			}
			compounds, combinators = append(compounds, cur), append(combinators, t.data)
			cur, empty, descendant = New(), true, false
			continue
		}

		if descendant {
			compounds, combinators = append(compounds, cur), append(combinators, " ")
			cur, empty, descendant = New(), true, false
		}

		next, err := p.applyPart(cur, tokens, i)
		if err != nil {
			return nil, err
		}
		if cur.Err() != nil {
			p.log.Debug("Selector rejected", zap.String("selector", text), zap.Error(cur.Err()))
			return nil, cur.Err()
		}
		i, empty = next, false
	}

	if empty {
		last := tokens[len(tokens)-1]
		return nil, &SyntaxError{Offset: last.pos, Token: last.data, Reason: "combinator without selector on the right"}
	}
	compounds = append(compounds, cur)

	// build right to left so that "a > b + c" becomes combine(a, >, combine(b, +, c))
	result := compounds[len(compounds)-1]
	for k := len(compounds) - 2; k >= 0; k-- {
		result = Combine(compounds[k], combinators[k], result)
	}
	if err := result.Err(); err != nil {
		return nil, err
	}

	p.log.Debug("Parsed selector", zap.String("selector", text), zap.Int("compounds", len(compounds)))
	return result, nil
}

// applyPart applies single selector part starting at tokens[i] to b and
// returns index of the last token consumed.
func (p *Parser) applyPart(b *Builder, tokens []token, i int) (int, error) {
	t := tokens[i]

	switch t.tt {
	case css.IdentToken:
		b.Element(t.data)
		return i, nil

	case css.HashToken:
		b.ID(strings.TrimPrefix(t.data, "#"))
		return i, nil

	case css.DelimToken:
		switch t.data {
		case "*":
			b.Element(t.data)
			return i, nil
		case ".":
			if i+1 >= len(tokens) || tokens[i+1].tt != css.IdentToken {
				return i, &SyntaxError{Offset: t.pos, Token: t.data, Reason: "class name expected"}
			}
			b.Class(tokens[i+1].data)
			return i + 1, nil
		}

	case css.LeftBracketToken:
		var sb strings.Builder
		for j := i + 1; j < len(tokens); j++ {
			if tokens[j].tt == css.RightBracketToken {
				inner := strings.TrimSpace(sb.String())
				if len(inner) == 0 {
					return j, &SyntaxError{Offset: t.pos, Token: t.data, Reason: "empty attribute selector"}
				}
				b.Attr(inner)
				return j, nil
			}
			sb.WriteString(tokens[j].data)
		}
		return i, &SyntaxError{Offset: t.pos, Token: t.data, Reason: "unterminated attribute selector"}

	case css.ColonToken:
		cat, start := CategoryPseudoClass, i+1
		if start < len(tokens) && tokens[start].tt == css.ColonToken {
			cat, start = CategoryPseudoElement, start+1
		}
		value, last, err := pseudoValue(tokens, start)
		if err != nil {
			return i, err
		}
		b.Apply(cat, value)
		return last, nil

	case css.CommaToken:
		return i, &SyntaxError{Offset: t.pos, Token: t.data, Reason: "selector lists are not supported"}
	}

	return i, &SyntaxError{Offset: t.pos, Token: t.data, Reason: "unexpected token"}
}

// pseudoValue reads pseudo-class or pseudo-element name with optional
// functional arguments, e.g. "nth-of-type(even)".
func pseudoValue(tokens []token, i int) (string, int, error) {
	if i >= len(tokens) {
		return "", i, &SyntaxError{Offset: tokens[len(tokens)-1].pos, Reason: "pseudo selector name expected"}
	}

	t := tokens[i]
	switch t.tt {
	case css.IdentToken:
		return t.data, i, nil
	case css.FunctionToken:
		var sb strings.Builder
		sb.WriteString(t.data)
		depth := 1
		for j := i + 1; j < len(tokens); j++ {
			switch tokens[j].tt {
			case css.FunctionToken, css.LeftParenthesisToken:
				depth++
			case css.RightParenthesisToken:
				depth--
			}
			sb.WriteString(tokens[j].data)
			if depth == 0 {
				return sb.String(), j, nil
			}
		}
		return "", i, &SyntaxError{Offset: t.pos, Token: t.data, Reason: "unterminated function"}
	}
	return "", i, &SyntaxError{Offset: t.pos, Token: t.data, Reason: "pseudo selector name expected"}
}

// tokenize splits selector text into tokens dropping comments.
func tokenize(text string) ([]token, error) {
	l := css.NewLexer(parse.NewInputString(text))

	var (
		tokens []token
		pos    int
	)
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, &SyntaxError{Offset: pos, Reason: err.Error()}
			}
			return tokens, nil
		}
		// lexer reuses its buffer, data must be copied
		t := token{tt: tt, data: string(data), pos: pos}
		pos += len(data)
		if tt == css.CommentToken {
			continue
		}
		tokens = append(tokens, t)
	}
}
