package desktop

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	sfx "github.com/simukka/flappy-dunk/audio"
	"github.com/simukka/flappy-dunk/common"
	"github.com/simukka/flappy-dunk/game"
)

// Sounds plays the synthesized effects through Ebiten audio players.
type Sounds struct {
	players map[game.Sound]*audio.Player
	cfg     sfx.Config
	log     common.Logger
}

var _ game.SoundPlayer = (*Sounds)(nil)

// NewSounds decodes every effect into a player on ctx.
func NewSounds(ctx *audio.Context, cfg sfx.Config, log common.Logger) (*Sounds, error) {
	s := &Sounds{
		players: make(map[game.Sound]*audio.Player, len(sfx.Effects)),
		cfg:     cfg,
		log:     log,
	}
	for _, e := range sfx.Effects {
		data, _ := sfx.WAV(e.Sound)
		stream, err := wav.DecodeWithSampleRate(sfx.SampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", e.Name, err)
		}
		pcm, err := io.ReadAll(stream)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name, err)
		}
		p := ctx.NewPlayerFromBytes(pcm)
		p.SetVolume(sfx.Config{MasterVolume: cfg.MasterVolume}.Gain() * e.Gain)
		s.players[e.Sound] = p
	}
	return s, nil
}

// PlaySound restarts the player of sound.
func (s *Sounds) PlaySound(sound game.Sound) {
	if s.cfg.Muted {
		return
	}
	p, ok := s.players[sound]
	if !ok {
		s.log.Debugf("no player for sound %s", sound)
		return
	}
	if err := p.Rewind(); err != nil {
		s.log.Warnf("rewind %s: %v", sound, err)
		return
	}
	p.Play()
}

// ToggleMute flips the mute state and returns the new one.
func (s *Sounds) ToggleMute() bool {
	s.cfg.Muted = !s.cfg.Muted
	if s.cfg.Muted {
		for _, p := range s.players {
			p.Pause()
		}
	}
	return s.cfg.Muted
}

// Muted reports whether sound is muted.
func (s *Sounds) Muted() bool {
	return s.cfg.Muted
}
