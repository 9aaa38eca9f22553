package calculation

import "time"

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// seedFunc supplies a seed when the settings leave it at zero.
var seedFunc = func() int64 { return time.Now().UnixNano() }

// SetSeedFunc overrides the seed provider (use only in tests).
func SetSeedFunc(f func() int64) { seedFunc = f }

// ResolveSeed returns seed unchanged unless it is zero, in which case a
// fresh seed is drawn from seedFunc.
func ResolveSeed(seed int64) int64 {
	if seed == 0 {
		return seedFunc()
	}
	return seed
}
