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

// Package clock implements the basic clock system module of the MSP430 as a
// simio device. Two families are supported: the Basic clock system of the
// older devices and the Basic+ clock system, which adds the VLO oscillator, a
// third control register and factory calibration constants.
//
// The clock system derives the frequencies of the three clock domains (MCLK,
// SMCLK and ACLK) from the oscillator configuration and the register values.
// The DCO is modelled with two ratios: the frequency step between adjacent
// ranges (srsel) and between adjacent taps (sdco). Modulation mixes two
// adjacent taps and the result is the average frequency over the 32 cycle
// modulation period.
//
// The calibration constants are not stored. They are calculated when read by
// searching for the register values that best approximate the calibration
// target. See the Calibrate() function.
//
// Crystal and mode problems found when BCSCTL3 is written are logged with the
// tag "simio: clock" but never prevent the write.
package clock
