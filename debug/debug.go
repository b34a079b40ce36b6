// Package debug turns on diagnostic logging to stderr through environment
// variables:
//
//	GDRES_DEBUG_PARSE    section and string scanning
//	GDRES_DEBUG_RESOLVE  reference resolution
//	GDRES_DEBUG_EVAL     query and template evaluation
//	GDRES_DEBUG_LSP      language server requests
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/signadot/gdres/ir"
)

type debug struct {
	Parse   bool
	Resolve bool
	Eval    bool
	LSP     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("GDRES_DEBUG_PARSE")
	d.Resolve = boolEnv("GDRES_DEBUG_RESOLVE")
	d.Eval = boolEnv("GDRES_DEBUG_EVAL")
	d.LSP = boolEnv("GDRES_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Resolve() bool {
	return d.Resolve
}
func Eval() bool {
	return d.Eval
}
func LSP() bool {
	return d.LSP
}

func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(x, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", x)
				continue
			}
			args[i] = string(d)
		case *ir.Symbol:
			if x == nil {
				args[i] = "<nil symbol>"
				continue
			}
			args[i] = fmt.Sprintf("%s %q (%s)", x.Kind, x.Name, x.Range)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
