// Package sim runs the board entirely in software: same per-level draws as
// the physical machine, landings counted into bins instead of moved beams.
package sim

import (
	"fmt"
	"io"

	"GaltonBoardController/internal/bernoulli"
	"GaltonBoardController/internal/model"
)

// RunTrial drops balls down a board of the given number of levels and counts
// landings per bin. A ball's bin is the number of rightward draws it
// accumulated, so levels=0 or p=0 puts every ball in bin 0 and p=1 puts
// every ball in bin levels.
func RunTrial(src *bernoulli.Source, levels, balls int) model.TrialResult {
	bins := make(model.TrialResult, levels+1)
	for ball := 0; ball < balls; ball++ {
		landing := 0
		for level := 0; level < levels; level++ {
			if src.Draw() {
				landing++
			}
		}
		bins[landing]++
	}
	return bins
}

// Aggregate collects each bin's count from every trial and derives mean, min
// and max. An empty trial set is a configuration error, never a NaN report.
func Aggregate(trials []model.TrialResult, levels int) (model.AggregateStats, error) {
	if len(trials) == 0 {
		return nil, fmt.Errorf("sim: aggregate needs at least one trial")
	}
	stats := make(model.AggregateStats, levels+1)
	for bin := 0; bin <= levels; bin++ {
		bs := model.BinStats{Bin: bin, Counts: make([]int, 0, len(trials))}
		sum := 0
		for i, tr := range trials {
			count := 0
			if bin < len(tr) {
				count = tr[bin]
			}
			bs.Counts = append(bs.Counts, count)
			sum += count
			if i == 0 || count < bs.Min {
				bs.Min = count
			}
			if i == 0 || count > bs.Max {
				bs.Max = count
			}
		}
		bs.Mean = float64(sum) / float64(len(trials))
		stats[bin] = bs
	}
	return stats, nil
}

// WriteReport prints one line per bin so the builder can size the bins:
// the mean says how full they run, the max warns about overflow, the min
// about sad-looking empties.
func WriteReport(w io.Writer, stats model.AggregateStats, trials int) {
	fmt.Fprintf(w, "Number of balls in each bin, based on %d simulations:\n", trials)
	last := len(stats) - 1
	for _, bs := range stats {
		pos := "          "
		switch bs.Bin {
		case 0:
			pos = "     Left "
		case last:
			pos = "    Right "
		}
		fmt.Fprintf(w, "%s Bin %2d: Average: %.1f, Max: %d, Min: %d\n",
			pos, bs.Bin, bs.Mean, bs.Max, bs.Min)
	}
}
