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
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/jetsetilly/msp430sim/curated"
	"github.com/jetsetilly/msp430sim/debugger/commandline"
	"github.com/jetsetilly/msp430sim/hardware/simio/units"
)

// Sentinal error patterns for configuration.
const (
	UnknownParameter  = "clock: config: unknown parameter: %s"
	ExpectedFrequency = "clock: config: expected frequency"
	IllegalFrequency  = "clock: config: illegal frequency: %s"
	ExpectedRatio     = "clock: config: expected floating point value"
	IllegalRatio      = "clock: config: illegal value: %s"
	RatioTooSmall     = "clock: config: must be greater than 1: %.6g"
	RatioTooLarge     = "clock: config: must be less than 1.8: %.6g"
)

// limits of the srsel and sdco ratios. both limits are exclusive.
const (
	minRatio = 1.0
	maxRatio = 1.8
)

// Config implements the simio.Device interface. The derived frequencies are
// updated if the parameter is applied successfully.
func (clk *Clock) Config(param string, args *commandline.Tokens) error {
	var err error

	switch {
	case strings.EqualFold(param, "lfxt1"):
		err = configFrequency(&clk.lfxt1, args)
	case strings.EqualFold(param, "xt2"):
		err = configFrequency(&clk.xt2, args)
	case strings.EqualFold(param, "srsel"):
		err = configRatio(&clk.srsel, args)
	case strings.EqualFold(param, "sdco"):
		err = configRatio(&clk.sdco, args)
	default:
		var ok bool
		ok, err = clk.model.config(param, args)
		if !ok {
			return curated.Errorf(UnknownParameter, param)
		}
	}

	if err != nil {
		return err
	}

	clk.update()

	return nil
}

// configFrequency sets hz to the value of the next token. hz is unchanged if
// an error is returned.
func configFrequency(hz *uint32, args *commandline.Tokens) error {
	s, ok := args.Get()
	if !ok {
		return curated.Errorf(ExpectedFrequency)
	}

	v, ok := units.ParseFrequency(s)
	if !ok {
		return curated.Errorf(IllegalFrequency, s)
	}

	*hz = v

	return nil
}

// configRatio sets ratio to the value of the next token. ratio is unchanged
// if an error is returned.
func configRatio(ratio *float64, args *commandline.Tokens) error {
	s, ok := args.Get()
	if !ok {
		return curated.Errorf(ExpectedRatio)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var nerr *strconv.NumError
		if errors.As(err, &nerr) {
			return curated.Errorf(IllegalRatio, nerr.Num)
		}
		return curated.Errorf(IllegalRatio, s)
	}
	if math.IsNaN(v) {
		return curated.Errorf(IllegalRatio, s)
	}

	if v <= minRatio {
		return curated.Errorf(RatioTooSmall, v)
	}
	if v >= maxRatio {
		return curated.Errorf(RatioTooLarge, v)
	}

	*ratio = v

	return nil
}
