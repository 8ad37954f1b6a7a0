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

package clock

import (
	"fmt"
	"io"

	"github.com/jetsetilly/msp430sim/hardware/simio/units"
)

func connection(hz uint32) string {
	if hz == 0 {
		return "(no connection)"
	}
	return units.FormatHz(hz)
}

// Info implements the simio.Device interface. The layout of the report is
// fixed and may be relied upon by tools that read it.
func (clk *Clock) Info(w io.Writer) {
	fmt.Fprintf(w, "Clock type: %s\n", clk.model.family())
	fmt.Fprintf(w, "LFXT1:\t    %s\n", connection(clk.lfxt1))
	fmt.Fprintf(w, "XT2:\t    %s\n", connection(clk.xt2))
	clk.model.infoOscillators(w)
	fmt.Fprintf(w, "Step RSEL:  %.6g\n", clk.srsel)
	fmt.Fprintf(w, "Step DCO:   %.6g\n", clk.sdco)
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "DCOCTL:\t     %02x\n", clk.dcoctl)
	fmt.Fprintf(w, "BCSCTL1:     %02x\n", clk.bcsctl1)
	fmt.Fprintf(w, "BCSCTL2:     %02x\n", clk.bcsctl2)
	clk.model.infoRegisters(w)
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "DCOCLK %s\n", units.FormatHz(clk.freq.DCOCLK))
	fmt.Fprintf(w, "MCLK   %s\n", units.FormatHz(clk.freq.MCLK))
	fmt.Fprintf(w, "SMCLK  %s\n", units.FormatHz(clk.freq.SMCLK))
	fmt.Fprintf(w, "ACLK   %s\n", units.FormatHz(clk.freq.ACLK))
	fmt.Fprintf(w, "ACLK counter:  %d\n", clk.aclkCounter)
	fmt.Fprintf(w, "SMCLK counter: %d\n", clk.smclkCounter)
}
