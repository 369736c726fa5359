package audio

// Config is the mixer setting shared by the browser and desktop players.
type Config struct {
	MasterVolume float64
	Muted        bool
}

// DefaultConfig applies unless a front-end flag overrides it.
var DefaultConfig = Config{MasterVolume: 0.7}

// Gain is the effective output level: zero when muted, otherwise the master
// volume clamped to [0, 1].
func (c Config) Gain() float64 {
	switch {
	case c.Muted, c.MasterVolume <= 0:
		return 0
	case c.MasterVolume > 1:
		return 1
	default:
		return c.MasterVolume
	}
}
