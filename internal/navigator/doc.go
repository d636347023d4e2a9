// Package navigator drives robots over a bounded rectangular grid.
//
// What:
//
//   - Navigator owns the grid bounds [0, maxX] x [0, maxY] (each bound ≤ 50).
//   - Setup places a new robot; Navigate runs an L/R/F command string.
//   - A robot whose command would take it off the grid is lost. Its pose before
//     that command is kept as a scent, shared with every later robot.
//   - A later robot standing on a scented pose ignores forward moves there.
//
// Errors:
//
//   - ErrGridTooLarge: a bound above MaxGridBound.
//   - ErrInvalidCommand: a command other than L, R or F.
//   - ErrNoRobot: Navigate before Setup.
//   - rover.ErrOrientationType, rover.ErrOrientationValue: bad Setup heading.
//
// Getting lost is a normal Result, not an error.
//
// A Navigator is not safe for concurrent use.
package navigator
