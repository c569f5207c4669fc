package notation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/aalvaropc/libcoords/internal/domain"
)

// coordinateAST matches e.g. `A(5) 3`, `B(-1.5), 0.25`, `C(true) 2`.
type coordinateAST struct {
	Case    string      `parser:"@Ident"`
	Payload *payloadAST `parser:"'(' @@ ')'"`
	Scalar  *numberAST  `parser:"','? @@"`
}

type payloadAST struct {
	Bool   string     `parser:"  @('true' | 'false')"`
	Number *numberAST `parser:"| @@"`
}

// numberAST keeps the literal text so the sign is applied before the
// conversion; negating after parsing would overflow on math.MinInt64.
type numberAST struct {
	Neg   bool      `parser:"@'-'?"`
	Value *valueAST `parser:"@@"`
}

type valueAST struct {
	Float *string `parser:"  @Float"`
	Int   *string `parser:"| @Int"`
}

var parser = participle.MustBuild[coordinateAST]()

func (n *numberAST) isInt() bool { return n.Value.Int != nil }

func (n *numberAST) literal() string {
	text := ""
	if n.Value.Float != nil {
		text = *n.Value.Float
	} else {
		text = *n.Value.Int
	}
	if n.Neg {
		return "-" + text
	}
	return text
}

func (n *numberAST) floatValue() (float64, error) {
	lit := n.literal()
	if n.isInt() {
		if v, err := strconv.ParseInt(lit, 0, 64); err == nil {
			return float64(v), nil
		}
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, fmt.Errorf("number %s: %w", lit, domain.ErrInvalidNotation)
	}
	return v, nil
}

func (n *numberAST) intValue() (int64, error) {
	lit := n.literal()
	v, err := strconv.ParseInt(lit, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("integer %s out of range: %w", lit, domain.ErrInvalidNotation)
	}
	return v, nil
}

var grammarNode = regexp.MustCompile(`(?i)\b(coordinate|payload|number|value)AST\b`)

// syntaxError rewrites participle's messages, which name grammar node
// types, in terms of the notation itself.
func syntaxError(err error) error {
	var perr participle.Error
	if !errors.As(err, &perr) {
		return fmt.Errorf("%v: %w", err, domain.ErrInvalidNotation)
	}

	msg := grammarNode.ReplaceAllStringFunc(perr.Message(), func(m string) string {
		switch strings.TrimSuffix(strings.ToLower(m), "ast") {
		case "coordinate":
			return "coordinate"
		case "payload":
			return "payload"
		default:
			return "number"
		}
	})
	msg = strings.ReplaceAll(msg, `token "<EOF>"`, "end of input")

	return fmt.Errorf("column %d: %s: %w", perr.Position().Column, msg, domain.ErrInvalidNotation)
}
