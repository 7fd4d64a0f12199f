package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Garsondee/Fishing-Game/internal/fishing"
)

type runStats struct {
	runIndex int
	seed     int64

	score      int
	catches    int // catch commands that removed at least one creature
	emptyCasts int // catch commands that removed nothing
	remaining  int
	spawned    int
	firstCatch int // tick of the first successful catch, -1 if none
	lastCatch  int // -1 if none

	bySpecies map[fishing.Species]int
}

type aggregateStats struct {
	runs         int
	avgScore     float64
	minScore     int
	maxScore     int
	avgRemaining float64
	clearedRuns  int
	bySpecies    map[fishing.Species]int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var catchEvery int

	flag.IntVar(&runs, "runs", 5, "number of headless runs")
	flag.IntVar(&ticks, "ticks", 3600, "ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&catchEvery, "catch-every", 10, "issue a catch command every N ticks")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		os.Exit(2)
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		os.Exit(2)
	}
	if catchEvery <= 0 {
		fmt.Println("error: -catch-every must be > 0")
		os.Exit(2)
	}

	fmt.Printf("=== Headless Fishing Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d catch_every=%d\n\n", runs, ticks, seedBase, seedStep, catchEvery)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats, err := runSweep(i+1, seed, ticks, catchEvery)
		if err != nil {
			fmt.Printf("error: run %d: %v\n", i+1, err)
			os.Exit(1)
		}
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(aggregate(all))
}

// runSweep plays one seeded world with a boat that patrols edge to edge and
// casts every catchEvery ticks.
func runSweep(runIndex int, seed int64, ticks, catchEvery int) (runStats, error) {
	cfg := fishing.DefaultConfig()
	w, err := fishing.New(cfg, fishing.WithSeed(seed))
	if err != nil {
		return runStats{}, err
	}

	rs := runStats{
		runIndex:   runIndex,
		seed:       seed,
		spawned:    w.LiveCount(),
		firstCatch: -1,
		lastCatch:  -1,
	}
	maxX := float64(cfg.Width - cfg.BoatWidth)
	dir := fishing.Right
	for t := 1; t <= ticks; t++ {
		dir = sweepDirection(w.BoatState().Left, maxX, dir)
		w.MoveBoat(dir)
		w.Tick()
		if t%catchEvery != 0 {
			continue
		}
		res := w.Catch()
		if len(res.Caught) == 0 {
			rs.emptyCasts++
			continue
		}
		rs.catches++
	}

	if caught := w.Events().Filter(fishing.CategoryCatch, "caught"); len(caught) > 0 {
		rs.firstCatch = caught[0].Tick
	}
	if last, ok := w.Events().LastOf(fishing.CategoryCatch, "caught"); ok {
		rs.lastCatch = last.Tick
	}

	rs.score = w.Score()
	rs.remaining = w.LiveCount()
	rs.bySpecies = w.CaughtBySpecies()
	return rs, nil
}

// sweepDirection turns the boat around when it reaches either edge.
func sweepDirection(x, maxX float64, dir fishing.Direction) fishing.Direction {
	switch {
	case dir == fishing.Right && x >= maxX:
		return fishing.Left
	case dir == fishing.Left && x <= 0:
		return fishing.Right
	}
	return dir
}

func aggregate(all []runStats) aggregateStats {
	agg := aggregateStats{
		runs:      len(all),
		bySpecies: map[fishing.Species]int{},
	}
	if len(all) == 0 {
		return agg
	}
	agg.minScore = all[0].score
	agg.maxScore = all[0].score
	totalScore, totalRemaining := 0, 0
	for _, rs := range all {
		totalScore += rs.score
		totalRemaining += rs.remaining
		if rs.score < agg.minScore {
			agg.minScore = rs.score
		}
		if rs.score > agg.maxScore {
			agg.maxScore = rs.score
		}
		if rs.remaining == 0 {
			agg.clearedRuns++
		}
		for sp, n := range rs.bySpecies {
			agg.bySpecies[sp] += n
		}
	}
	agg.avgScore = float64(totalScore) / float64(len(all))
	agg.avgRemaining = float64(totalRemaining) / float64(len(all))
	return agg
}

func printRun(rs runStats) {
	fmt.Printf("run %d seed=%d score=%d catches=%d empty=%d remaining=%d/%d first=%d last=%d\n",
		rs.runIndex, rs.seed, rs.score, rs.catches, rs.emptyCasts, rs.remaining, rs.spawned, rs.firstCatch, rs.lastCatch)
	fmt.Printf("  caught:")
	for _, sp := range fishing.AllSpecies() {
		fmt.Printf(" %s=%d", sp, rs.bySpecies[sp])
	}
	fmt.Println()
}

func printAggregate(agg aggregateStats) {
	fmt.Printf("\n=== Aggregate over %d runs ===\n", agg.runs)
	fmt.Printf("score avg=%.1f min=%d max=%d\n", agg.avgScore, agg.minScore, agg.maxScore)
	fmt.Printf("remaining avg=%.1f cleared_runs=%d\n", agg.avgRemaining, agg.clearedRuns)
	fmt.Printf("caught:")
	for _, sp := range fishing.AllSpecies() {
		fmt.Printf(" %s=%d", sp, agg.bySpecies[sp])
	}
	fmt.Println()
}
