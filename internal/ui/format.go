package ui

import "strconv"

var (
	designHelp = []string{
		"w,a,s,d: move cursor",
		"enter: mark a tile",
		"c: clear marks",
		"p: play",
		"q / esc: quit",
	}
	playHelp = []string{
		"w,a,s,d: pan chunk",
		"space: pause  n: step",
		"r: reset  e: edit",
		"m: minimap  h: help",
		"q / esc: quit",
	}
)

// HelpLines returns the key bindings for the design or play surface.
func HelpLines(play bool) []string {
	if play {
		return playHelp
	}
	return designHelp
}

func parseInt(s string) (int, bool) {
	v, err := strconv.Atoi(s)
	return v, err == nil
}
