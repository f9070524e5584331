package main

import (
	"fmt"
	"sync"

	"github.com/memmaker/tankwar/engine/util"
	"github.com/memmaker/tankwar/game"
	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"
)

type battleResult struct {
	seed         int64
	winner       string
	seconds      float64
	playerHealth int
	enemyHealth  int
	shotsFired   int
	err          error
}

func (r battleResult) String() string {
	if r.err != nil {
		return fmt.Sprintf("seed %d: %v", r.seed, r.err)
	}
	return fmt.Sprintf("seed %d: %s after %0.2fs, player %d, enemy %d, %d shot(s)", r.seed, r.winner, r.seconds, r.playerHealth, r.enemyHealth, r.shotsFired)
}

func (b *battle) result(seed int64, startingRounds int) battleResult {
	winner := "draw"
	switch {
	case b.player.IsDead() && !b.enemy.IsDead():
		winner = b.enemy.GetName()
	case b.enemy.IsDead() && !b.player.IsDead():
		winner = b.player.GetName()
	}
	shotsFired := 2*startingRounds - b.player.GetAimingComponent().GetRoundsLeft() - b.enemy.GetAimingComponent().GetRoundsLeft()
	return battleResult{
		seed:         seed,
		winner:       winner,
		seconds:      b.world.GetClock().Seconds(),
		playerHealth: b.player.GetCurrentHealth(),
		enemyHealth:  b.enemy.GetCurrentHealth(),
		shotsFired:   shotsFired,
	}
}

// runSweep simulates one battle per terrain seed, starting at the configured
// seed. Battles share nothing, each one runs on a pool worker.
func runSweep(cfg game.Config, runs, workers, ticks int, deltaTime float64) ([]battleResult, error) {
	pool, err := ants.NewPool(workers, ants.WithPanicHandler(func(p interface{}) {
		util.LogSystemError(fmt.Sprintf("[Sweep] battle panicked: %v", p))
	}))
	if err != nil {
		return nil, errors.Wrap(err, "could not create battle pool")
	}
	defer pool.Release()

	results := make([]battleResult, runs)
	var wg sync.WaitGroup
	for i := 0; i < runs; i++ {
		index := i
		runCfg := cfg
		runCfg.World.TerrainSeed = cfg.World.TerrainSeed + int64(index)
		results[index] = battleResult{seed: runCfg.World.TerrainSeed, err: errors.New("not run")}

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			b, buildErr := newBattle(runCfg)
			if buildErr != nil {
				results[index] = battleResult{seed: runCfg.World.TerrainSeed, err: buildErr}
				return
			}
			b.run(ticks, deltaTime)
			results[index] = b.result(runCfg.World.TerrainSeed, runCfg.Tank.Aiming.RoundsLeft)
		})
		if submitErr != nil {
			wg.Done()
			results[index].err = errors.Wrapf(submitErr, "could not schedule seed %d", runCfg.World.TerrainSeed)
		}
	}
	wg.Wait()
	return results, nil
}
