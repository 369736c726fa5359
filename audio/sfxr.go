package audio

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/simukka/flappy-dunk/common"
)

// WaveShape is the sfxr oscillator waveform.
type WaveShape int

const (
	WaveSquare WaveShape = iota
	WaveSawtooth
	WaveSine
	WaveNoise
)

func (w WaveShape) String() string {
	switch w {
	case WaveSquare:
		return "square"
	case WaveSawtooth:
		return "sawtooth"
	case WaveSine:
		return "sine"
	case WaveNoise:
		return "noise"
	default:
		return "unknown"
	}
}

// paramCount is the number of fields in a jsfxr settings string.
const paramCount = 24

// noiseSeed makes noise waveforms reproducible.
const noiseSeed = 12345

// Params are the jsfxr synthesis parameters, in settings-string order. Values
// are nominally in [0, 1], slides and sweeps in [-1, 1].
type Params struct {
	Wave         WaveShape
	Attack       float64
	Sustain      float64
	Punch        float64
	Decay        float64
	Freq         float64
	MinFreq      float64
	Slide        float64
	DeltaSlide   float64
	VibratoDepth float64
	VibratoSpeed float64
	ArpChange    float64
	ArpSpeed     float64
	Duty         float64
	DutySweep    float64
	Repeat       float64
	PhaserOffset float64
	PhaserSweep  float64
	LPCutoff     float64
	LPSweep      float64
	LPResonance  float64
	HPCutoff     float64
	HPSweep      float64
	Volume       float64
}

func (p *Params) fields() []*float64 {
	return []*float64{
		&p.Attack, &p.Sustain, &p.Punch, &p.Decay,
		&p.Freq, &p.MinFreq, &p.Slide, &p.DeltaSlide,
		&p.VibratoDepth, &p.VibratoSpeed, &p.ArpChange, &p.ArpSpeed,
		&p.Duty, &p.DutySweep, &p.Repeat, &p.PhaserOffset, &p.PhaserSweep,
		&p.LPCutoff, &p.LPSweep, &p.LPResonance, &p.HPCutoff, &p.HPSweep,
		&p.Volume,
	}
}

// ParseParams reads a comma-separated jsfxr settings string. Empty fields are
// zero. Envelopes too short to be audible without clicks are stretched.
func ParseParams(s string) (Params, error) {
	parts := strings.Split(s, ",")
	if len(parts) != paramCount {
		return Params{}, fmt.Errorf("sfxr settings: want %d fields, got %d", paramCount, len(parts))
	}

	vals := make([]float64, paramCount)
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return Params{}, fmt.Errorf("sfxr settings field %d: %w", i, err)
		}
		vals[i] = v
	}

	var p Params
	p.Wave = WaveShape(vals[0])
	if p.Wave < WaveSquare || p.Wave > WaveNoise {
		return Params{}, fmt.Errorf("sfxr settings: unknown wave shape %d", p.Wave)
	}
	for i, f := range p.fields() {
		*f = vals[i+1]
	}
	p.normalize()
	return p, nil
}

// MustParseParams is ParseParams for compiled-in settings.
func MustParseParams(s string) Params {
	p, err := ParseParams(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Params) normalize() {
	if p.Sustain < 0.01 {
		p.Sustain = 0.01
	}
	if total := p.Attack + p.Sustain + p.Decay; total < 0.18 {
		k := 0.18 / total
		p.Attack *= k
		p.Sustain *= k
		p.Decay *= k
	}
}

// String formats p back into a jsfxr settings string.
func (p Params) String() string {
	parts := make([]string, 0, paramCount)
	parts = append(parts, strconv.Itoa(int(p.Wave)))
	for _, f := range p.fields() {
		if *f == 0 {
			parts = append(parts, "")
			continue
		}
		parts = append(parts, strconv.FormatFloat(*f, 'f', -1, 64))
	}
	return strings.Join(parts, ",")
}

// oscillator is the part of the synth state that the repeat effect restarts.
type oscillator struct {
	period       float64
	maxPeriod    float64
	slide        float64
	deltaSlide   float64
	changeAmount float64
	changeTime   float64
	changeLimit  float64
	duty         float64
	dutySweep    float64
}

func newOscillator(p *Params) oscillator {
	o := oscillator{
		period:     100 / (p.Freq*p.Freq + 0.001),
		maxPeriod:  100 / (p.MinFreq*p.MinFreq + 0.001),
		slide:      1 - p.Slide*p.Slide*p.Slide*0.01,
		deltaSlide: -p.DeltaSlide * p.DeltaSlide * p.DeltaSlide * 0.000001,
	}
	if p.Wave == WaveSquare {
		o.duty = 0.5 - p.Duty/2
		o.dutySweep = -p.DutySweep * 0.00005
	}
	if p.ArpChange > 0 {
		o.changeAmount = 1 - p.ArpChange*p.ArpChange*0.9
	} else {
		o.changeAmount = 1 + p.ArpChange*p.ArpChange*10
	}
	if p.ArpSpeed != 1 {
		o.changeLimit = (1-p.ArpSpeed)*(1-p.ArpSpeed)*20000 + 32
	}
	return o
}

// filter is the low-pass/high-pass pair applied to every sub-sample.
type filter struct {
	enabled    bool
	lpOn       bool
	lpCutoff   float64
	lpDelta    float64
	lpDamping  float64
	lpPos      float64
	lpDeltaPos float64
	hpCutoff   float64
	hpDelta    float64
	hpPos      float64
}

func newFilter(p *Params) filter {
	f := filter{
		enabled:  p.LPCutoff != 1 || p.HPCutoff != 0,
		lpOn:     p.LPCutoff != 1,
		lpCutoff: p.LPCutoff * p.LPCutoff * p.LPCutoff * 0.1,
		lpDelta:  1 + p.LPSweep*0.0001,
		hpCutoff: p.HPCutoff * p.HPCutoff * 0.1,
		hpDelta:  1 + p.HPSweep*0.0003,
	}
	damping := 5 / (1 + p.LPResonance*p.LPResonance*20) * (0.01 + f.lpCutoff)
	f.lpDamping = 1 - math.Min(damping, 0.8)
	return f
}

func (f *filter) sweepHP() {
	if f.enabled && f.hpDelta != 1 {
		f.hpCutoff = clamp(f.hpCutoff*f.hpDelta, 0.00001, 0.1)
	}
}

func (f *filter) apply(sample float64) float64 {
	if !f.enabled {
		return sample
	}
	old := f.lpPos
	f.lpCutoff = clamp(f.lpCutoff*f.lpDelta, 0, 0.1)
	if f.lpOn {
		f.lpDeltaPos += (sample - f.lpPos) * f.lpCutoff
		f.lpDeltaPos *= f.lpDamping
	} else {
		f.lpPos = sample
		f.lpDeltaPos = 0
	}
	f.lpPos += f.lpDeltaPos
	f.hpPos += f.lpPos - old
	f.hpPos *= 1 - f.hpCutoff
	return f.hpPos
}

// Render synthesizes p into 16-bit mono samples at SampleRate.
func Render(p Params) []int16 {
	env := [3]float64{
		p.Attack * p.Attack * 100000,
		p.Sustain * p.Sustain * 100000,
		p.Decay*p.Decay*100000 + 10,
	}
	out := make([]int16, 0, int(env[0]+env[1]+env[2]))

	osc := newOscillator(&p)
	flt := newFilter(&p)
	rng := common.NewSeededRNG(noiseSeed)

	var noise [32]float64
	refillNoise := func() {
		for i := range noise {
			noise[i] = rng.Random()*2 - 1
		}
	}
	refillNoise()

	var phaser [1024]float64
	phaserOn := p.PhaserOffset != 0 || p.PhaserSweep != 0
	phaserOffset := p.PhaserOffset * p.PhaserOffset * 1020
	if p.PhaserOffset < 0 {
		phaserOffset = -phaserOffset
	}
	phaserDelta := p.PhaserSweep * p.PhaserSweep * p.PhaserSweep * 0.2
	phaserInt, phaserPos := 0, 0

	repeatLimit := 0
	if p.Repeat != 0 {
		repeatLimit = int((1-p.Repeat)*(1-p.Repeat)*20000) + 32
	}
	vibratoAmp := p.VibratoDepth / 2
	vibratoSpeed := p.VibratoSpeed * p.VibratoSpeed * 0.01
	gain := p.Volume * p.Volume

	stage, stageTime, repeatTime := 0, 0.0, 0
	phase, vibratoPhase := 0.0, 0.0

	for {
		if repeatLimit != 0 {
			if repeatTime++; repeatTime >= repeatLimit {
				repeatTime = 0
				osc = newOscillator(&p)
			}
		}

		if osc.changeLimit != 0 {
			if osc.changeTime++; osc.changeTime >= osc.changeLimit {
				osc.changeLimit = 0
				osc.period *= osc.changeAmount
			}
		}

		osc.slide += osc.deltaSlide
		osc.period *= osc.slide
		if osc.period > osc.maxPeriod {
			osc.period = osc.maxPeriod
			if p.MinFreq > 0 {
				return out
			}
		}

		period := osc.period
		if vibratoAmp > 0 {
			vibratoPhase += vibratoSpeed
			period *= 1 + math.Sin(vibratoPhase)*vibratoAmp
		}
		period = math.Max(8, math.Trunc(period))

		if p.Wave == WaveSquare {
			osc.duty = clamp(osc.duty+osc.dutySweep, 0, 0.5)
		}

		// Envelope: attack, sustain with punch, decay.
		envStage := stage
		if envStage > 2 {
			envStage = 2
		}
		if stageTime++; stageTime > env[envStage] {
			stageTime = 0
			stage++
		}
		var volume float64
		switch stage {
		case 0:
			volume = stageTime / env[0]
		case 1:
			volume = 1 + (1-stageTime/env[1])*2*p.Punch
		case 2:
			volume = 1 - stageTime/env[2]
		default:
			return out
		}

		if phaserOn {
			phaserOffset += phaserDelta
			phaserInt = int(math.Abs(phaserOffset))
			if phaserInt > 1023 {
				phaserInt = 1023
			}
		}
		flt.sweepHP()

		// 8x oversampling
		sum := 0.0
		for j := 0; j < 8; j++ {
			phase++
			if phase >= period {
				phase = math.Mod(phase, period)
				if p.Wave == WaveNoise {
					refillNoise()
				}
			}
			s := flt.apply(oscillate(p.Wave, phase/period, osc.duty, &noise))
			if phaserOn {
				phaser[phaserPos&1023] = s
				s += phaser[(phaserPos-phaserInt+1024)&1023]
				phaserPos++
			}
			sum += s
		}

		out = append(out, toPCM(sum*0.125*volume*gain))
	}
}

// oscillate returns the raw waveform value at position pos in [0, 1).
func oscillate(w WaveShape, pos, duty float64, noise *[32]float64) float64 {
	switch w {
	case WaveSquare:
		if pos < duty {
			return 0.5
		}
		return -0.5
	case WaveSawtooth:
		return 1 - pos*2
	case WaveSine:
		// Parabolic sine approximation.
		x := pos * 2 * math.Pi
		if pos > 0.5 {
			x = (pos - 1) * 2 * math.Pi
		}
		s := 1.27323954*x - 0.405284735*x*math.Abs(x)
		return 0.225*(s*math.Abs(s)-s) + s
	default:
		return noise[int(math.Abs(pos*32))%32]
	}
}

func toPCM(v float64) int16 {
	switch {
	case v >= 1:
		return math.MaxInt16
	case v <= -1:
		return math.MinInt16
	default:
		return int16(v * math.MaxInt16)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
