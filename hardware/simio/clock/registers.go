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

// register addresses.
const (
	DCOCTL  = 0x0056
	BCSCTL1 = 0x0057
	BCSCTL2 = 0x0058

	// Basic+ only
	BCSCTL3 = 0x0053
)

// calibration constant addresses (Basic+ only). the CALDCO address of each
// pair is even and the CALBC1 address is odd.
const (
	CALDCO_16MHZ = 0x10f8
	CALBC1_16MHZ = 0x10f9
	CALDCO_12MHZ = 0x10fa
	CALBC1_12MHZ = 0x10fb
	CALDCO_8MHZ  = 0x10fc
	CALBC1_8MHZ  = 0x10fd
	CALDCO_1MHZ  = 0x10fe
	CALBC1_1MHZ  = 0x10ff
)

// calibration targets by address.
var calibrationTargets = map[uint32]uint32{
	CALDCO_16MHZ: 16000000,
	CALBC1_16MHZ: 16000000,
	CALDCO_12MHZ: 12000000,
	CALBC1_12MHZ: 12000000,
	CALDCO_8MHZ:  8000000,
	CALBC1_8MHZ:  8000000,
	CALDCO_1MHZ:  1000000,
	CALBC1_1MHZ:  1000000,
}

// DCOCTL fields.
const (
	dcoMask   = 0xe0 // DCO tap select
	dcoShift  = 5
	modMask   = 0x1f // modulation
	modCycles = 32   // modulation is a fraction of 32 cycles
)

// BCSCTL1 fields. the width of the RSEL field depends on the family.
const (
	xt2off    = 0x80 // XT2 off
	xts       = 0x40 // LFXT1 high frequency mode
	divaMask  = 0x30 // ACLK divider
	divaShift = 4
)

// BCSCTL2 fields.
const (
	selmMask  = 0xc0 // MCLK source
	selmDCO0  = 0x00
	selmDCO1  = 0x40
	selmXT2   = 0x80 // XT2 or LFXT1 if there is no XT2
	selmLFXT  = 0xc0
	divmMask  = 0x30 // MCLK divider
	divmShift = 4
	sels      = 0x08 // SMCLK source is XT2 (or LFXT1) rather than the DCO
	divsMask  = 0x06 // SMCLK divider
	divsShift = 1
	dcor      = 0x01 // external DCO resistor
)

// BCSCTL3 fields.
const (
	xt2sMask   = 0xc0 // XT2 mode
	xt2s0      = 0x00 // 0.4 - 1MHz
	xt2s1      = 0x40 // 1 - 4MHz
	xt2s2      = 0x80 // 2 - 16MHz
	xt2s3      = 0xc0 // digital input
	lfxt1sMask = 0x30 // LFXT1 mode
	lfxt1s0    = 0x00
	lfxt1s1    = 0x10
	lfxt1s2    = 0x20 // VLO when XTS is clear
	lfxt1s3    = 0x30 // digital input
	xcapMask   = 0x0c
	xt2of      = 0x02
	lfxt1of    = 0x01
)
