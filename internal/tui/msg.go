package tui

import "github.com/fernvale/bloomwatch/internal/garden"

// Navigator event messages — sent by the Bridge in response to
// navigator callbacks.

// MsgYearChanged is sent when the cursor's year changes.
type MsgYearChanged struct {
	Year int
}

// MsgMonthChanged is sent when the cursor's month changes. Month 0
// means no month is selected (Year mode).
type MsgMonthChanged struct {
	Month int
}

// MsgPlayingChanged is sent when playback starts or stops.
type MsgPlayingChanged struct {
	Playing bool
}

// MsgRegistryReloaded is sent when the garden registry file changes on
// disk and has been re-read.
type MsgRegistryReloaded struct {
	Gardens []garden.Garden
}

// MsgError carries a non-fatal error for the message line.
type MsgError struct {
	Err string
}
