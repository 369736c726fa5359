package audio

import (
	"sync"

	"github.com/simukka/flappy-dunk/game"
)

// SoundClick is the menu click; the core never emits it.
const SoundClick game.Sound = "click"

// Effect is one synthesized sound of the game.
type Effect struct {
	Sound  game.Sound
	Name   string
	Params Params
	Gain   float64 // Per-effect playback gain
}

// Effects lists every game sound in load order.
var Effects = []Effect{
	{
		Sound:  game.SoundJump,
		Name:   "Jump",
		Params: MustParseParams("0,,.12,,.18,.36,,.22,,,,,,.38,,,,,1,,,.1,,.45"),
		Gain:   0.6,
	},
	{
		Sound:  game.SoundScore,
		Name:   "Swish",
		Params: MustParseParams("0,,.06,.42,.38,.52,,,,,,.36,.6,,,,,,1,,,,,.5"),
		Gain:   0.8,
	},
	{
		Sound:  game.SoundMissFatal,
		Name:   "Game over",
		Params: MustParseParams("3,,.36,.4,.5,.14,,-.34,,,,,,,,,,,1,,,,,.55"),
		Gain:   1,
	},
	{
		Sound:  game.SoundLevelUp,
		Name:   "Level up",
		Params: MustParseParams("1,,.3,,.44,.3,,.18,,,,,,,,.52,,,1,,,,,.45"),
		Gain:   0.8,
	},
	{
		Sound:  SoundClick,
		Name:   "Click",
		Params: MustParseParams("2,,.04,,.1,.5,,,,,,,,,,,,,1,,,.2,,.3"),
		Gain:   0.5,
	},
}

// Lookup returns the effect for sound.
func Lookup(sound game.Sound) (Effect, bool) {
	for _, e := range Effects {
		if e.Sound == sound {
			return e, true
		}
	}
	return Effect{}, false
}

var (
	bankOnce sync.Once
	bank     map[game.Sound][]byte
)

// WAV returns the rendered WAV file of sound, synthesizing every effect on
// first use.
func WAV(sound game.Sound) ([]byte, bool) {
	bankOnce.Do(func() {
		bank = make(map[game.Sound][]byte, len(Effects))
		for _, e := range Effects {
			bank[e.Sound] = EncodeWAV(Render(e.Params))
		}
	})
	data, ok := bank[sound]
	return data, ok
}
