package main

import (
	"fmt"

	"github.com/pkg/profile"
)

// startProfile starts the named profiler and returns the function that
// writes it out. An empty kind profiles nothing.
func startProfile(kind string) (func(), error) {
	var mode func(*profile.Profile)
	switch kind {
	case "":
		return func() {}, nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfileAllocs
	default:
		return nil, fmt.Errorf("unknown --profile %q (want cpu or mem)", kind)
	}

	logger.Info("profiling", "kind", kind)
	p := profile.Start(mode, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet)
	return p.Stop, nil
}
