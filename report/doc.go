// Package report renders solver results.
//
// Formats:
//
//	text  "Final Cost: <cost>" and "Optimal Tour: <i> <j> ..." lines
//	json  indented JSON object
//	yaml  YAML document
//
// Write renders a single run (Summary); WriteBench renders the aggregate of
// repeated runs (Bench), whose order statistics come from NewStats.
package report
