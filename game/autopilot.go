package game

// Autopilot flies the player into the next hoop. The simulator and the
// title-screen demo use it; it only reads snapshots.
type Autopilot struct {
	// Margin is how far below the aim point the player may sink before the
	// pilot jumps.
	Margin float64
}

// Decide reports whether to jump this frame.
func (a Autopilot) Decide(s Snapshot) bool {
	if s.State != StatePlaying {
		return false
	}
	p := s.Player
	if p.Y < p.H {
		return false
	}
	if p.Y+p.H*2 > s.Field.Height {
		return p.VY >= 0
	}

	aim := s.Field.Height / 2
	if h, ok := nextHoop(s); ok {
		// Centre just above the rim so gravity carries the player in.
		aim = h.Y + h.H/4
	}
	return p.VY >= 0 && p.Y+p.H/2 > aim+a.Margin
}

// nextHoop returns the closest hoop the player can still score.
func nextHoop(s Snapshot) (Hoop, bool) {
	var best Hoop
	found := false
	for _, h := range s.Hoops {
		if h.Missed || h.X+h.W < s.Player.X {
			continue
		}
		if !found || h.X < best.X {
			best = h
			found = true
		}
	}
	return best, found
}
