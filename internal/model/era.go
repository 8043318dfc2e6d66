// Package model defines the core domain models used throughout the application.
package model

// Era identifies one decade-scale historical fashion period.
type Era string

// The fixed set of eras the engine knows about. Defined at process start;
// every classification result is validated against this set before use.
const (
	Era1940s Era = "1940s"
	Era1950s Era = "1950s"
	Era1960s Era = "1960s"
	Era1970s Era = "1970s"
	Era1980s Era = "1980s"
	Era1990s Era = "1990s"
)

// Eras returns the fixed enumerated era set in timeline order.
func Eras() []Era {
	return []Era{Era1940s, Era1950s, Era1960s, Era1970s, Era1980s, Era1990s}
}

// DefaultEra is the era a fresh session starts on.
const DefaultEra = Era1940s

// Valid reports whether e is a member of the fixed enumerated set.
func (e Era) Valid() bool {
	switch e {
	case Era1940s, Era1950s, Era1960s, Era1970s, Era1980s, Era1990s:
		return true
	}
	return false
}

func (e Era) String() string {
	return string(e)
}
