// Package mission reads robot missions in the plain text format and runs
// them in batch.
//
// A mission starts with the plateau bounds, then lists robots as a pose line
// ("x y O") followed by a command line. Blank lines and "#" comments are
// ignored. All robots of a mission share one navigator, so a scent left by
// one robot protects every robot after it.
package mission
