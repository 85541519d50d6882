package domain

import (
	"fmt"

	m "mcyview.dev/pkg/mcyview/internal/model"
)

// Describe turns the options of a mutation into a sentence. Unknown modes
// describe as "".
func Describe(options []m.Option) string {
	opts := make(map[string]string, len(options))

	for _, o := range options {
		opts[o.Type] = o.Value
	}

	where := fmt.Sprintf("In module %s, cell %s:\n", opts[m.OptionModule], opts[m.OptionCell])
	port, bit, ctrl := opts[m.OptionPort], opts[m.OptionPortBit], opts[m.OptionCtrlBit]

	switch opts[m.OptionMode] {
	case m.ModeNone:
		return "None"
	case m.ModeInv:
		return where + fmt.Sprintf("Invert bit %s of port %s.", bit, port)
	case m.ModeConst0:
		return where + fmt.Sprintf("Drive bit %s of port %s to constant 0.", bit, port)
	case m.ModeConst1:
		return where + fmt.Sprintf("Drive bit %s of port %s to constant 1.", bit, port)
	case m.ModeCnot0:
		return where + fmt.Sprintf("If bit %s of port %s is 0, invert bit %s.", bit, port, ctrl)
	case m.ModeCnot1:
		return where + fmt.Sprintf("If bit %s of port %s is 1, invert bit %s.", bit, port, ctrl)
	default:
		return ""
	}
}
