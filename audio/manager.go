package audio

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/flappy-dunk/common"
	"github.com/simukka/flappy-dunk/game"
)

// Manager plays the synthesized effects through the Web Audio API.
type Manager struct {
	ctx     *js.Object
	master  *js.Object
	buffers map[game.Sound]*js.Object
	gains   map[game.Sound]float64
	cfg     Config
	ready   bool
	log     common.Logger
}

var _ game.SoundPlayer = (*Manager)(nil)

// NewManager creates a manager; call Init from a user gesture.
func NewManager(cfg Config, log common.Logger) *Manager {
	if log == nil {
		log = common.Nop
	}
	return &Manager{
		buffers: make(map[game.Sound]*js.Object),
		gains:   make(map[game.Sound]float64),
		cfg:     cfg,
		log:     log,
	}
}

// Init creates the AudioContext and starts decoding every effect. It reports
// false when the browser has no Web Audio support.
func (m *Manager) Init() bool {
	if m.ctx != nil {
		return m.ready
	}

	ctor := js.Global.Get("AudioContext")
	if ctor == js.Undefined {
		ctor = js.Global.Get("webkitAudioContext")
	}
	if ctor == js.Undefined {
		m.log.Warnf("Web Audio not available, sound disabled")
		return false
	}

	m.ctx = ctor.New()
	m.master = m.ctx.Call("createGain")
	m.master.Call("connect", m.ctx.Get("destination"))
	m.applyVolume()
	m.ready = true

	for _, e := range Effects {
		wav, _ := WAV(e.Sound)
		m.gains[e.Sound] = e.Gain
		m.LoadSound(e.Sound, DataURL(wav))
	}
	return true
}

// LoadSound fetches and decodes a WAV data URL into a playable buffer.
func (m *Manager) LoadSound(sound game.Sound, dataURL string) {
	if m.ctx == nil {
		return
	}
	js.Global.Call("fetch", dataURL).Call("then", func(resp *js.Object) *js.Object {
		return resp.Call("arrayBuffer")
	}).Call("then", func(buf *js.Object) *js.Object {
		return m.ctx.Call("decodeAudioData", buf)
	}).Call("then", func(decoded *js.Object) {
		m.buffers[sound] = decoded
		m.log.Debugf("sound %s decoded", sound)
	}).Call("catch", func(err *js.Object) {
		m.log.Warnf("sound %s: %s", sound, err.String())
	})
}

// PlaySound plays a decoded effect. Sounds that are not decoded yet, and all
// sounds while muted, are dropped.
func (m *Manager) PlaySound(sound game.Sound) {
	if !m.ready || m.cfg.Muted {
		return
	}
	buffer, ok := m.buffers[sound]
	if !ok {
		return
	}
	m.Resume()

	gain := m.ctx.Call("createGain")
	gain.Get("gain").Set("value", m.gains[sound])
	gain.Call("connect", m.master)

	source := m.ctx.Call("createBufferSource")
	source.Set("buffer", buffer)
	source.Call("connect", gain)
	source.Call("start", 0)
}

// Resume restarts a context the browser suspended before the first gesture.
func (m *Manager) Resume() {
	if m.ctx != nil && m.ctx.Get("state").String() == "suspended" {
		m.ctx.Call("resume")
	}
}

// SetMuted mutes or unmutes every effect.
func (m *Manager) SetMuted(muted bool) {
	m.cfg.Muted = muted
	m.applyVolume()
}

// ToggleMute flips the mute state and returns the new one.
func (m *Manager) ToggleMute() bool {
	m.SetMuted(!m.cfg.Muted)
	return m.cfg.Muted
}

// Muted reports whether sound is muted.
func (m *Manager) Muted() bool {
	return m.cfg.Muted
}

func (m *Manager) applyVolume() {
	if m.master == nil {
		return
	}
	m.master.Get("gain").Set("value", m.cfg.Gain())
}
