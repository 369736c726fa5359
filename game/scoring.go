package game

import "math"

// Scorer owns score, misses and the difficulty index of one run.
type Scorer struct {
	Score  int
	Level  int
	Misses int

	tuning ScoringTuning
	levels []Level
	mark   int // Highest score/threshold multiple already consumed
}

// NewScorer creates a scorer over a non-empty difficulty table.
func NewScorer(tuning ScoringTuning, levels []Level) *Scorer {
	return &Scorer{tuning: tuning, levels: levels}
}

// Reset returns to the start-of-run values.
func (s *Scorer) Reset() {
	s.Score = 0
	s.Level = 0
	s.Misses = 0
	s.mark = 0
}

// Current returns the active difficulty table entry.
func (s *Scorer) Current() Level {
	return s.levels[s.Level]
}

// Difficulty is the bonus multiplier of the current level.
func (s *Scorer) Difficulty() float64 {
	return 1 + float64(s.Level)*s.tuning.DifficultyStep
}

// Award returns the points the next scoring pass is worth.
func (s *Scorer) Award() int {
	pts := s.tuning.Base + int(math.Floor(s.Difficulty()*s.tuning.BonusFactor))
	if s.Misses == 0 {
		pts += s.tuning.ComboBonus
	}
	return pts
}

// Scored records a scoring pass. It returns the points added and whether the
// difficulty advanced. A single event advances at most one level even if it
// crosses several thresholds; the skipped thresholds are consumed.
func (s *Scorer) Scored() (points int, levelUp bool) {
	points = s.Award()
	s.Score += points
	s.Misses = 0

	mark := s.Score / s.tuning.LevelThreshold
	if mark > s.mark {
		s.mark = mark
		if s.Level < len(s.levels)-1 {
			s.Level++
			levelUp = true
		}
	}
	return points, levelUp
}

// Missed records a missed hoop and reports whether the miss limit was hit.
func (s *Scorer) Missed() (fatal bool) {
	s.Misses++
	return s.Misses >= s.tuning.MaxMissed
}

// MaxMissed returns the configured miss limit.
func (s *Scorer) MaxMissed() int {
	return s.tuning.MaxMissed
}
