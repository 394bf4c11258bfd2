//go:build linux || freebsd || netbsd || openbsd || dragonfly

package main

const rssInBytes = false
