package game

// Player is the flying character. X never changes during a run.
type Player struct {
	X, Y     float64
	W, H     float64
	VY       float64 // Vertical velocity, positive is downward
	Rotation float64 // Visual tilt in radians, renderer only
	Alive    bool
}

func newPlayer(t PlayerTuning) Player {
	return Player{
		X:     t.X,
		Y:     t.StartY,
		W:     t.Width,
		H:     t.Height,
		Alive: true,
	}
}

// Bounds returns the collision box.
func (p *Player) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Integrate advances velocity then position by one fixed step.
func (p *Player) Integrate(ph PhysicsTuning) {
	p.VY += ph.Gravity * ph.FrameUnit
	p.Y += p.VY * ph.FrameUnit
}

// Tilt eases the rotation toward nose-up while rising and nose-down while
// falling.
func (p *Player) Tilt(ph PhysicsTuning) {
	if p.VY < 0 {
		p.Rotation = clamp(p.Rotation-ph.RotationSpeed, -ph.MaxRotation, ph.MaxRotation)
	} else {
		p.Rotation = clamp(p.Rotation+ph.RotationSpeed, -ph.MaxRotation, ph.MaxRotation)
	}
}

// Jump replaces the vertical velocity with the impulse.
func (p *Player) Jump(ph PhysicsTuning) {
	p.VY = ph.JumpImpulse
	p.Rotation = -ph.MaxRotation
}

// InBand reports whether the player box lies within [0, height].
func (p *Player) InBand(height float64) bool {
	return p.Y >= 0 && p.Y+p.H <= height
}
