// Package pointset reads city coordinates into []tsp.Point.
//
// Two layouts are accepted, detected per input:
//
//	Plain:   one "<id> <x> <y>" per line; blank lines and '#' comments skipped.
//	TSPLIB:  header "KEY: value" lines, then NODE_COORD_SECTION, then
//	         "<id> <x> <y>" lines until EOF (the keyword) or end of input.
//
// In both layouts the id must be an integer but is otherwise ignored: a
// city's index is its zero-based position among data lines. Every failure
// wraps tsp.ErrInvalidInput and names the 1-based line number.
package pointset
