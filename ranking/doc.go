// Package ranking scores dining venues against the current weather.
//
// Pipeline: classify weather once -> score each venue independently -> sort.
//
// A venue score is the sum of three capped sub-scores:
//   - distance: 0.40 * 1/(1+km)
//   - amenity fit: category bonuses for amenity flags, capped at 0.30
//   - cuisine fit: category bonuses for cuisine tags, capped at 0.30
//
// The total is clamped to [0, 1] and bucketed into GREAT/GOOD/OK/POOR.
// Everything here is pure: no I/O, no randomness, no shared state.
package ranking
