package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/memmaker/tankwar/engine/util"
	"github.com/memmaker/tankwar/game"
	"github.com/pkg/errors"
)

// checkFlags rejects options that only apply to a single battle when a
// sweep is requested. Sweeps log errors only.
func checkFlags(runs int, debug, realtime bool, mapOut string) error {
	if runs < 1 {
		return errors.Errorf("runs must be at least 1, got %d", runs)
	}
	if runs == 1 {
		return nil
	}
	switch {
	case debug:
		return errors.New("-debug only works with a single battle")
	case realtime:
		return errors.New("-realtime only works with a single battle")
	case mapOut != "":
		return errors.New("-map-out only works with a single battle")
	}
	return nil
}

func main() {
	configFile := flag.String("config", "", "YAML config file, defaults are used when empty")
	ticks := flag.Int("ticks", 1200, "number of frames to simulate")
	deltaTime := flag.Float64("dt", 1.0/60.0, "frame time in seconds")
	mapOut := flag.String("map-out", "", "write the battle map to this file")
	debug := flag.Bool("debug", false, "enable debug logging")
	runs := flag.Int("runs", 1, "simulate this many battles, one terrain seed each")
	workers := flag.Int("workers", 4, "battles simulated in parallel when runs > 1")
	realtime := flag.Bool("realtime", false, "pace a single battle to the wall clock, dt is the frame time")
	flag.Parse()

	if err := checkFlags(*runs, *debug, *realtime, *mapOut); err != nil {
		util.LogSystemError(fmt.Sprintf("[Main] %v", err))
		flag.Usage()
		os.Exit(2)
	}

	if *debug {
		util.GLOBAL_LOG_LEVEL = util.LogLevelDebug
	}

	cfg := game.DefaultConfig()
	if *configFile != "" {
		loaded, err := game.LoadConfig(*configFile)
		if err != nil {
			util.LogSystemError(fmt.Sprintf("[Main] %+v", err))
			os.Exit(1)
		}
		cfg = loaded
	}

	if *runs > 1 {
		util.GLOBAL_LOG_LEVEL = util.LogLevelError
		results, err := runSweep(cfg, *runs, *workers, *ticks, *deltaTime)
		if err != nil {
			util.LogSystemError(fmt.Sprintf("[Main] %+v", err))
			os.Exit(1)
		}
		for _, result := range results {
			println(result.String())
		}
		return
	}

	b, err := newBattle(cfg)
	if err != nil {
		util.LogSystemError(fmt.Sprintf("[Main] could not set up battle: %+v", err))
		os.Exit(1)
	}
	if *mapOut != "" {
		if err = b.world.GetMap().SaveToDisk(*mapOut); err != nil {
			util.LogIOError(fmt.Sprintf("[Main] %v", err))
		}
	}

	if *realtime {
		b.runRealtime(*ticks, *deltaTime)
	} else {
		b.run(*ticks, *deltaTime)
	}
	util.LogSystemInfo(b.summary())
	util.LogSystemInfo(b.world.GetTimer().String())
}
