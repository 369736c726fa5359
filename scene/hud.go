package scene

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/simukka/flappy-dunk/game"
)

// ModeLabels are the menu names of the modes.
var ModeLabels = map[game.Mode]string{
	game.ModeClassic:   "Classic",
	game.ModeTime:      "Time Attack",
	game.ModeChallenge: "Challenge",
}

// FormatTimeLeft renders a countdown as M:SS, rounding partial seconds up.
func FormatTimeLeft(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	s := strconv.Itoa(secs % 60)
	if len(s) == 1 {
		s = "0" + s
	}
	return strconv.Itoa(secs/60) + ":" + s
}

// ChancesWarning returns the remaining-chances text and its alpha. ok is
// false while no hoop has been missed.
func ChancesWarning(s game.Snapshot) (text string, alpha float64, ok bool) {
	if s.Misses == 0 || s.MaxMissed == 0 {
		return "", 0, false
	}
	left := s.MaxMissed - s.Misses
	alpha = 1 - float64(s.Misses)/float64(s.MaxMissed)
	return "Chances left: " + strconv.Itoa(left), math.Max(alpha, 0.2), true
}

// best is the high score including the run in progress.
func best(s game.Snapshot) int {
	if s.Score > s.HighScore {
		return s.Score
	}
	return s.HighScore
}

// TipDuration is how long the controls tip stays up after a run starts.
const TipDuration = 5 * time.Second

// TipText explains the single control.
const TipText = "Tap, click or press Space to fly"

// TutorialTip returns the controls tip and its alpha for the first
// TipDuration of every run. It fades out over the last second.
func TutorialTip(s game.Snapshot) (text string, alpha float64, ok bool) {
	if s.State != game.StatePlaying {
		return "", 0, false
	}
	const frames, fadeFrames = uint64(TipDuration / game.FrameDuration), uint64(time.Second / game.FrameDuration)
	if s.Tick >= frames {
		return "", 0, false
	}
	alpha = 1
	if left := frames - s.Tick; left < fadeFrames {
		alpha = float64(left) / float64(fadeFrames)
	}
	return TipText, alpha, true
}

// LastChance reports whether one more miss ends the run.
func LastChance(s game.Snapshot) bool {
	return s.MaxMissed > 0 && s.Misses == s.MaxMissed-1
}

// HUDLines returns the status lines drawn in the top-left corner.
func HUDLines(s game.Snapshot) []string {
	lines := []string{
		"Score: " + strconv.Itoa(s.Score),
		"Best: " + strconv.Itoa(best(s)),
		"Level: " + strconv.Itoa(s.Level+1) + "/" + strconv.Itoa(s.Levels),
	}
	switch s.Mode {
	case game.ModeTime:
		lines = append(lines, "Time: "+FormatTimeLeft(s.TimeLeft))
	case game.ModeChallenge:
		lines = append(lines, "Target: "+strconv.Itoa(s.Score)+"/"+strconv.Itoa(s.Target))
	}
	return lines
}

// GameOverLines returns the headline and details of the game-over screen.
func GameOverLines(s game.Snapshot) (headline string, details []string) {
	headline = "GAME OVER"
	if s.Outcome == game.OutcomeSuccess {
		headline = "CHALLENGE COMPLETE"
	}
	details = []string{
		ReasonText(s.Reason),
		"Score: " + strconv.Itoa(s.Score),
		"Best: " + strconv.Itoa(best(s)),
		"Tap to play again",
	}
	return headline, details
}

// ReasonText describes why a run ended.
func ReasonText(r game.Reason) string {
	switch r {
	case game.ReasonOutOfBounds:
		return "You flew out of the court"
	case game.ReasonTooManyMisses:
		return "Too many missed hoops"
	case game.ReasonTimeUp:
		return "Time's up"
	case game.ReasonTargetReached:
		return "Target reached"
	default:
		return strings.TrimSpace(string(r))
	}
}
