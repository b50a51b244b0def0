package main

import (
	"github.com/pkg/profile"
)

// startProfile begins CPU profiling into the working directory and
// returns the stopper.
func startProfile() interface{ Stop() } {
	return profile.Start(profile.CPUProfile, profile.ProfilePath("."))
}
