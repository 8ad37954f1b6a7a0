// This file is part of msp430sim.
//
// msp430sim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// msp430sim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with msp430sim.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/msp430sim/curated"
	"github.com/jetsetilly/msp430sim/debugger/commandline"
	"github.com/jetsetilly/msp430sim/hardware/simio"
	"github.com/jetsetilly/msp430sim/hardware/simio/clock"
)

// sentinal error returned by the runner loop.
var timedOut = errors.New("performance timed out")

// the number of steps between checks of the timer.
const performanceBrake = 1000

// Result of a performance check.
type Result struct {
	Steps    int
	MCLK     uint64
	Duration time.Duration
}

func (r Result) String() string {
	secs := r.Duration.Seconds()
	return fmt.Sprintf("%d steps in %.2f seconds (%.2f steps/sec, %.2f MCLK/sec)",
		r.Steps, secs, float64(r.Steps)/secs, float64(r.MCLK)/secs)
}

// Check the performance of the clock system by stepping it for the
// specified duration. The clock system is given a 32.768kHz watch crystal so
// that ACLK is sourced. Each step advances MCLK by mclk cycles.
//
// A CPU profile, memory profile or trace is generated as defined by the
// Profile argument.
func Check(output io.Writer, p Profile, family clock.Family, mclk int, duration string) (Result, error) {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return Result{}, curated.Errorf("performance: %v", err)
	}
	if mclk <= 0 {
		return Result{}, curated.Errorf("performance: step size must be positive: %d", mclk)
	}

	clk := clock.NewClock(family)
	defer clk.Destroy()

	err = clk.Config("lfxt1", commandline.TokeniseInput("32768"))
	if err != nil {
		return Result{}, curated.Errorf("performance: %v", err)
	}

	var res Result

	runner := func() error {
		timer := time.After(dur)
		brake := 0
		start := time.Now()

		for {
			clks := simio.Clocks{MCLK: mclk}
			clk.Step(&clks)
			res.Steps++
			res.MCLK += uint64(mclk)

			// checking the timer channel every step is relatively expensive
			brake++
			if brake >= performanceBrake {
				brake = 0
				select {
				case <-timer:
					res.Duration = time.Since(start)
					return timedOut
				default:
				}
			}
		}
	}

	err = RunProfiler(p, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return res, curated.Errorf("performance: %v", err)
	}

	fmt.Fprintln(output, res.String())

	return res, nil
}
