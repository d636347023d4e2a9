// Package rover models a single robot on the plateau: its coordinates, its
// heading and the scent marks it must respect.
//
// Headings are stored as bearings in degrees and exposed as an Orientation.
// Rotations always keep the bearing on one of 0, 90, 180 or 270, so
// ErrInvalidOrientationState signals a programming error rather than bad
// input.
//
// A robot never checks grid bounds. It only refuses a forward move when its
// exact pose (x, y and heading) is found among the scents it was given.
package rover
