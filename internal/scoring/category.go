package scoring

import "fmt"

// Category buckets a company's AI readiness score. Ordering is meaningful:
// higher values are stronger postures.
type Category int

const (
	NoSignal Category = iota
	Lagging
	Operational
	Leading
	Transformational
)

var categoryNames = map[Category]string{
	NoSignal:         "no_signal",
	Lagging:          "lagging",
	Operational:      "operational",
	Leading:          "leading",
	Transformational: "transformational",
}

var categoryLabels = map[Category]string{
	NoSignal:         "No Signal",
	Lagging:          "Lagging",
	Operational:      "Operational",
	Leading:          "Leading",
	Transformational: "Transformational",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Label returns the human-readable category name.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return "Unknown"
}

// ParseCategory maps a stored category string back onto the enum.
func ParseCategory(s string) (Category, error) {
	for c, name := range categoryNames {
		if name == s {
			return c, nil
		}
	}
	return NoSignal, fmt.Errorf("unknown category %q", s)
}

// Thresholds holds the minimum score for each category, on the 0-100 scale.
// Values must be monotonically increasing with category rank.
type Thresholds struct {
	NoSignal         float64 `json:"no_signal"`
	Lagging          float64 `json:"lagging"`
	Operational      float64 `json:"operational"`
	Leading          float64 `json:"leading"`
	Transformational float64 `json:"transformational"`
}

// DefaultThresholds is the current calibration. These are tunable
// constants, not derived invariants.
func DefaultThresholds() Thresholds {
	return Thresholds{
		NoSignal:         0,
		Lagging:          30,
		Operational:      50,
		Leading:          80,
		Transformational: 95,
	}
}

// Floor returns the minimum score the given category represents.
func (t Thresholds) Floor(c Category) float64 {
	switch c {
	case Transformational:
		return t.Transformational
	case Leading:
		return t.Leading
	case Operational:
		return t.Operational
	case Lagging:
		return t.Lagging
	default:
		return t.NoSignal
	}
}

// Category returns the highest category whose floor the score meets.
func (t Thresholds) Category(score float64) Category {
	switch {
	case score >= t.Transformational:
		return Transformational
	case score >= t.Leading:
		return Leading
	case score >= t.Operational:
		return Operational
	case score >= t.Lagging:
		return Lagging
	default:
		return NoSignal
	}
}

// Validate rejects threshold sets that are not monotonically increasing.
func (t Thresholds) Validate() error {
	ordered := []float64{t.NoSignal, t.Lagging, t.Operational, t.Leading, t.Transformational}
	for i := 1; i < len(ordered); i++ {
		if ordered[i] <= ordered[i-1] {
			return fmt.Errorf("category thresholds must be strictly increasing, got %v", ordered)
		}
	}
	return nil
}
