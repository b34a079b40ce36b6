package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
)

// ExpandString replaces each $[expr] in v with the value of expr
// evaluated in a symbol environment.  An unclosed $[ is kept as is.
func ExpandString(v string, env Env) (string, error) {
	var buf []byte
	for {
		i := strings.Index(v, "$[")
		if i < 0 {
			break
		}
		j := strings.IndexByte(v[i+2:], ']')
		if j < 0 {
			break
		}
		key := strings.TrimSpace(v[i+2 : i+2+j])
		prg, err := expr.Compile(key, exprOpts()...)
		if err != nil {
			return "", fmt.Errorf("%w: error compiling %q: %w", ErrQuery, key, err)
		}
		x, err := expr.Run(prg, env)
		if err != nil {
			return "", fmt.Errorf("%w: error evaluating %q: %w", ErrQuery, key, err)
		}
		buf = append(buf, v[:i]...)
		buf = append(buf, anyToString(x)...)
		v = v[i+2+j+1:]
	}
	buf = append(buf, v...)
	return string(buf), nil
}

func anyToString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	}
	return fmt.Sprint(v)
}
