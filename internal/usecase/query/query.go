package query

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/aalvaropc/libcoords/internal/domain"
)

// Eval runs a jsonpath expression against a decoded JSON tree.
func Eval(doc any, expr string) (any, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, &domain.OpError{
			Op:   "query.eval",
			Kind: domain.KindInvalidNotation,
			Err:  fmt.Errorf("empty jsonpath expression: %w", domain.ErrInvalidNotation),
		}
	}

	eval, err := jsonpath.New(expr)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "query.eval",
			Kind: domain.KindInvalidNotation,
			Err:  fmt.Errorf("%s: %v: %w", expr, err, domain.ErrInvalidNotation),
		}
	}

	val, err := eval(context.Background(), doc)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "query.eval",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("%s: %w", expr, err),
		}
	}

	if isEmptyValue(val) {
		return nil, &domain.OpError{
			Op:   "query.eval",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("%s: no value found: %w", expr, domain.ErrNotFound),
		}
	}
	return val, nil
}

// Render formats a query result for terminal output: strings are printed
// bare, everything else as indented JSON.
func Render(val any) (string, error) {
	switch v := val.(type) {
	case string:
		return v, nil
	case nil:
		return "null", nil
	}

	b, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case []any:
		return len(t) == 0
	}
	return false
}
