package common

// Source is a seedable random number source. The game core only ever draws
// from a Source it was handed, so runs can be replayed from a seed.
type Source interface {
	// Random returns a float64 in [0, 1).
	Random() float64
	// SetSeed restarts the sequence from seed.
	SetSeed(seed uint32)
}

// SeededRNG is a Mulberry32 generator. Equal seeds yield equal sequences.
type SeededRNG struct {
	state       uint32
	initialSeed uint32
}

var _ Source = (*SeededRNG)(nil)

func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{state: seed, initialSeed: seed}
}

// SetSeed restarts the sequence from seed and remembers it for Reset.
func (r *SeededRNG) SetSeed(seed uint32) {
	r.state, r.initialSeed = seed, seed
}

// Seed returns the seed the current sequence started from.
func (r *SeededRNG) Seed() uint32 {
	return r.initialSeed
}

// Reset rewinds the generator to its initial seed.
func (r *SeededRNG) Reset() {
	r.state = r.initialSeed
}

// Random advances the state by one Mulberry32 step.
func (r *SeededRNG) Random() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Between returns a float in [min, max).
func Between(src Source, min, max float64) float64 {
	return src.Random()*(max-min) + min
}

// IntBetween returns an int in [min, max).
func IntBetween(src Source, min, max int) int {
	return int(src.Random()*float64(max-min)) + min
}

// Chance reports true with probability p.
func Chance(src Source, p float64) bool {
	return src.Random() < p
}

// RunSeed derives the seed of the n-th run from a base seed, so every run of a
// session gets a distinct but reproducible hoop layout.
func RunSeed(baseSeed uint32, run int) uint32 {
	seed := baseSeed ^ (uint32(run) * 2654435761)
	seed = (seed ^ (seed >> 16)) * 0x85ebca6b
	seed = (seed ^ (seed >> 13)) * 0xc2b2ae35
	return seed ^ (seed >> 16)
}
