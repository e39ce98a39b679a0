// Package pillbox models the dispenser compartments and their fill levels.
package pillbox

// Level is the tri-state fill classification of a compartment.
type Level int

const (
	Normal Level = iota // ratio above 30%
	Low                 // ratio in (0%, 30%]
	Empty               // no pills left
)

func (l Level) String() string {
	switch l {
	case Low:
		return "low"
	case Empty:
		return "empty"
	default:
		return "normal"
	}
}

// Compartment is one physical dispenser slot, identified by day index.
type Compartment struct {
	ID    int `json:"id"`
	Pills int `json:"pills"`
	Total int `json:"total"`
}

// Ratio returns the fill ratio in [0,1].
func (c Compartment) Ratio() float64 {
	if c.Total <= 0 {
		return 0
	}
	return float64(c.Pills) / float64(c.Total)
}

// Level classifies the compartment fill state.
func (c Compartment) Level() Level {
	ratio := c.Ratio() * 100
	switch {
	case ratio == 0:
		return Empty
	case ratio <= 30:
		return Low
	default:
		return Normal
	}
}

// NeedsRefill reports whether any compartment is low or empty, driving the
// refill-warning banner.
func NeedsRefill(compartments []Compartment) bool {
	for _, c := range compartments {
		if c.Level() != Normal {
			return true
		}
	}
	return false
}
