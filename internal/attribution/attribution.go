// Package attribution scores article journeys under a closed set of
// credit-weighting policies.
package attribution

import "math"

// Score distributes one journey's credit across its article URLs. The map
// keys are unique URLs: when a URL occupies several positions, its
// per-position credits accumulate into a single entry. An empty journey
// yields an empty map under every policy.
func Score(journey []string, policy Policy) map[string]float64 {
	scores := make(map[string]float64, len(journey))

	if len(journey) == 0 {
		return scores
	}

	n := len(journey)

	switch policy {
	case PolicyCount:
		for _, url := range journey {
			scores[url] += 1.0
		}

	case PolicyFirstTouch:
		scores[journey[0]] = 1.0

	case PolicyLastTouch:
		scores[journey[n-1]] = 1.0

	case PolicyLinear:
		share := 1.0 / float64(n)

		for _, url := range journey {
			scores[url] += share
		}

	case PolicyPositionBased:
		if n == 1 {
			scores[journey[0]] = 1.0
			break
		}

		for i, url := range journey {
			switch i {
			case 0, n - 1:
				scores[url] += 0.4
			default:
				scores[url] += 0.2
			}
		}

	case PolicyTimeDecay:
		if n == 1 {
			scores[journey[0]] = 1.0
			break
		}

		// weight(i) = 2^i, so positions closer to the conversion earn
		// exponentially more; sum of 2^i for i in [0, n) is 2^n - 1
		total := math.Exp2(float64(n)) - 1

		for i, url := range journey {
			scores[url] += math.Exp2(float64(i)) / total
		}
	}

	return scores
}
