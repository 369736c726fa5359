package game

import "time"

// Update advances the game by one frame. elapsed is the wall time since the
// previous frame and only drives spawn timing and the internal countdown
// clock; physics always steps by the fixed frame unit. The renderer receives
// a snapshot every frame, whatever the state.
func (g *Game) Update(elapsed time.Duration) {
	if g.ownClock != nil {
		g.ownClock.Advance(elapsed)
	}

	g.frameScored = g.frameScored[:0]
	g.frameMissed = g.frameMissed[:0]
	g.frameLevelUp = false

	if g.state == StatePlaying {
		g.step(elapsed)
	}

	g.renderer.RenderFrame(g.Snapshot())
}

// step is the ordered frame pipeline of a playing run.
func (g *Game) step(elapsed time.Duration) {
	g.tick++
	ph := g.tuning.Physics

	// Player physics
	g.player.Integrate(ph)
	g.player.Tilt(ph)

	// Scroll and prune hoops
	lvl := g.scorer.Current()
	g.hoops.ForEachReverse(func(h *Hoop, i int) {
		h.Advance(lvl.Speed, g.tuning.Hoop.MaxSwing)
		if h.Gone() {
			g.hoops.Release(i)
		}
	})

	// Spawning
	if g.spawner.Advance(elapsed, lvl.SpawnInterval) {
		g.spawnHoop()
	}

	// Collision, scoring and difficulty
	fatal := g.resolveHoops()

	// Terminal conditions
	switch {
	case fatal:
		g.terminate(ReasonTooManyMisses)
	case !g.player.InBand(g.tuning.Field.Height):
		g.terminate(ReasonOutOfBounds)
	case g.mode == ModeChallenge && g.scorer.Score >= g.tuning.Modes.ChallengeTarget:
		g.terminate(ReasonTargetReached)
	}
}

func (g *Game) spawnHoop() {
	h := g.hoops.Acquire()
	if h == nil {
		g.log.Warnf("hoop pool exhausted at %d hoops, skipping spawn", g.hoops.Len())
		return
	}
	g.nextHoopID++
	g.spawner.Place(h, g.nextHoopID, g.scorer.Level, g.scorer.Current())
	g.log.Debugf("hoop %d spawned: kind=%s y=%.0f", h.ID, h.Kind, h.Y)
}

// resolveHoops applies the collision verdicts of this frame and reports
// whether the miss limit was reached.
func (g *Game) resolveHoops() (fatal bool) {
	verdicts := Resolve(g.player.Bounds(), g.player.VY, g.hoops.Slice())

	var scored []int
	for _, v := range verdicts {
		h := g.hoops.Items[v.Index]
		switch v.Pass {
		case PassScored:
			pts, levelUp := g.scorer.Scored()
			g.lastAward = pts
			g.frameScored = append(g.frameScored, *h)
			scored = append(scored, v.Index)
			g.sound.PlaySound(SoundScore)
			if g.scorer.Score > g.highScore {
				g.highScore = g.scorer.Score
			}
			if levelUp {
				g.frameLevelUp = true
				g.sound.PlaySound(SoundLevelUp)
				lvl := g.scorer.Current()
				g.log.Infof("level %d: speed=%.1f interval=%v gap=%.0f",
					g.scorer.Level+1, lvl.Speed, lvl.SpawnInterval, lvl.Gap)
			}
		case PassMissed:
			h.Missed = true
			g.frameMissed = append(g.frameMissed, *h)
			if g.scorer.Missed() {
				fatal = true
			}
		}
	}

	// Verdicts are in ascending index order; releasing from the highest index
	// keeps the remaining indices valid under swap-and-pop.
	for i := len(scored) - 1; i >= 0; i-- {
		g.hoops.Release(scored[i])
	}
	return fatal
}
