//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package main

func peakRSS() (uint64, bool) { return 0, false }
