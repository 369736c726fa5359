package game

// Pass classifies one hoop against the player for a single frame.
type Pass int

const (
	PassNone Pass = iota
	PassScored
	PassMissed
)

func (p Pass) String() string {
	switch p {
	case PassScored:
		return "scored"
	case PassMissed:
		return "missed"
	default:
		return "none"
	}
}

// Verdict is the classification of the hoop at Index.
type Verdict struct {
	Index  int
	HoopID uint64
	Pass   Pass
}

// Classify tests one hoop. An overlapping hoop scores only when the player's
// vertical centre is strictly inside the hoop and the player is falling. A
// hoop whose right edge is left of the player, and which was not counted
// before, is a miss.
func Classify(player Rect, vy float64, h *Hoop) Pass {
	if h.Missed {
		return PassNone
	}
	hb := h.Bounds()
	if player.Overlaps(hb) {
		cy := player.CenterY()
		if cy > hb.Y && cy < hb.Bottom() && vy > 0 {
			return PassScored
		}
		return PassNone
	}
	if hb.Right() < player.X {
		return PassMissed
	}
	return PassNone
}

// Resolve classifies every hoop independently and returns the non-trivial
// verdicts in input order. It does not mutate the hoops.
func Resolve(player Rect, vy float64, hoops []*Hoop) []Verdict {
	var verdicts []Verdict
	for i, h := range hoops {
		if pass := Classify(player, vy, h); pass != PassNone {
			verdicts = append(verdicts, Verdict{Index: i, HoopID: h.ID, Pass: pass})
		}
	}
	return verdicts
}
