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
	"strings"

	"github.com/jetsetilly/msp430sim/curated"
	"github.com/pkg/profile"
)

// Profile specifies which profiles, if any, are to be generated by
// RunProfiler().
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = iota
	ProfileCPU
	ProfileMem
	ProfileTrace
)

// UnknownProfile is the error pattern returned by ParseProfile().
const UnknownProfile = "performance: unknown profile: %s"

func (p Profile) String() string {
	switch p {
	case ProfileCPU:
		return "CPU"
	case ProfileMem:
		return "MEM"
	case ProfileTrace:
		return "TRACE"
	}
	return "NONE"
}

// ParseProfile converts a string taken from the command line into a Profile
// value. The empty string is the same as "none".
func ParseProfile(s string) (Profile, error) {
	switch strings.ToUpper(s) {
	case "", "NONE":
		return ProfileNone, nil
	case "CPU":
		return ProfileCPU, nil
	case "MEM":
		return ProfileMem, nil
	case "TRACE":
		return ProfileTrace, nil
	}
	return ProfileNone, curated.Errorf(UnknownProfile, s)
}

// RunProfiler runs the supplied function and generates the requested
// profile. Profile files are written to a directory named after the tag in
// the current working directory.
func RunProfiler(p Profile, tag string, run func() error) error {
	var mode func(*profile.Profile)

	switch p {
	case ProfileCPU:
		mode = profile.CPUProfile
	case ProfileMem:
		mode = profile.MemProfile
	case ProfileTrace:
		mode = profile.TraceProfile
	default:
		return run()
	}

	prof := profile.Start(mode, profile.ProfilePath(tag), profile.NoShutdownHook, profile.Quiet)
	defer prof.Stop()

	return run()
}
