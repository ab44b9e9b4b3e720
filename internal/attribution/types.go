package attribution

import (
	"errors"
	"fmt"
)

// Policy selects how a journey's credit is distributed across its articles.
// The set is closed; runtime-supplied names go through ParsePolicy.
type Policy string

const (
	PolicyCount         Policy = "count"
	PolicyFirstTouch    Policy = "first_touch"
	PolicyLastTouch     Policy = "last_touch"
	PolicyLinear        Policy = "linear"
	PolicyPositionBased Policy = "position_based"
	PolicyTimeDecay     Policy = "time_decay"
)

// ErrUnknownPolicy is returned by ParsePolicy for unrecognized names.
var ErrUnknownPolicy = errors.New("unknown attribution policy")

func (p Policy) String() string {
	return string(p)
}

// Normalized reports whether the policy conserves credit, i.e. scores for a
// non-empty journey sum to 1.0. count is a raw tally; position_based carries
// fixed per-position weights, so its sum is 0.8 + 0.2 per middle view and
// hits 1.0 only at lengths 1 and 3.
func (p Policy) Normalized() bool {
	switch p {
	case PolicyFirstTouch, PolicyLastTouch, PolicyLinear, PolicyTimeDecay:
		return true
	default:
		return false
	}
}

// returns a short human description of the policy
func (p Policy) Describe() string {
	switch p {
	case PolicyCount:
		return "each article view counts 1.0, unnormalized"
	case PolicyFirstTouch:
		return "full credit to the first article in the journey"
	case PolicyLastTouch:
		return "full credit to the last article before registration"
	case PolicyLinear:
		return "credit split evenly across the journey"
	case PolicyPositionBased:
		return "0.4 to first and last, 0.2 to each middle view"
	case PolicyTimeDecay:
		return "credit doubles with every step toward registration"
	default:
		return ""
	}
}

// Policies returns every supported policy in presentation order.
func Policies() []Policy {
	return []Policy{
		PolicyCount,
		PolicyFirstTouch,
		PolicyLastTouch,
		PolicyLinear,
		PolicyPositionBased,
		PolicyTimeDecay,
	}
}

// ParsePolicy validates a runtime-supplied policy name.
func ParsePolicy(name string) (Policy, error) {
	switch p := Policy(name); p {
	case PolicyCount, PolicyFirstTouch, PolicyLastTouch, PolicyLinear, PolicyPositionBased, PolicyTimeDecay:
		return p, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}
