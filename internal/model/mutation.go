// Package model defines the data structures of a mutation cover database.
package model

import "strconv"

// MutationID identifies a single mutation injected into the design.
type MutationID int64

// String implements fmt.Stringer.
func (id MutationID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseMutationID parses the decimal form of a mutation id.
func ParseMutationID(s string) (MutationID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}

	return MutationID(n), nil
}

// Option types written by the mutation run.
const (
	OptionSource  = "src"
	OptionMode    = "mode"
	OptionModule  = "module"
	OptionCell    = "cell"
	OptionPort    = "port"
	OptionPortBit = "portbit"
	OptionCtrlBit = "ctrlbit"
)

// Mutation modes.
const (
	ModeNone   = "none"
	ModeInv    = "inv"
	ModeConst0 = "const0"
	ModeConst1 = "const1"
	ModeCnot0  = "cnot0"
	ModeCnot1  = "cnot1"
)

// Option is a (type, value) attribute of a mutation.
type Option struct {
	Type  string `db:"opt_type" yaml:"type"`
	Value string `db:"opt_value" yaml:"value"`
}

// TestResult is the outcome of running one test against one mutation.
type TestResult struct {
	Test   string `db:"test" yaml:"test"`
	Result string `db:"result" yaml:"result"`
}
