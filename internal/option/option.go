// Package option maps an option code to one of a fixed set of outcomes.
package option

// Outcome is the result of selecting an option code.
type Outcome int

const (
	// OutcomeOther is the fallback for any code without its own arm.
	OutcomeOther Outcome = iota
	OutcomeOne
	OutcomeTwo
)

var messages = map[Outcome]string{
	OutcomeOne:   "Escolheu 1",
	OutcomeTwo:   "Escolheu 2",
	OutcomeOther: "Outra opção",
}

var codes = map[Outcome]string{
	OutcomeOne:   "one",
	OutcomeTwo:   "two",
	OutcomeOther: "other",
}

// Select is total over int: 1 and 2 have their own outcome, everything
// else falls back to OutcomeOther.
func Select(code int) Outcome {
	switch code {
	case 1:
		return OutcomeOne
	case 2:
		return OutcomeTwo
	default:
		return OutcomeOther
	}
}

// String returns the console message for o.
func (o Outcome) String() string {
	if msg, ok := messages[o]; ok {
		return msg
	}
	return messages[OutcomeOther]
}

// Code returns a stable machine-readable name, used in JSON output.
func (o Outcome) Code() string {
	if c, ok := codes[o]; ok {
		return c
	}
	return codes[OutcomeOther]
}
