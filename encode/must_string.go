package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/gdres/ir"
)

func MustString(syms []*ir.Symbol, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(syms, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
