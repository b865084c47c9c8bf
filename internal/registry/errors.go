// Package registry replaces the source's constructor-side-effect
// component registration (REGISTER_SOLVER / REGISTER_INPUT_SOURCE /
// REGISTER_PREPROCESS_FILTER macros, each firing a static initializer that
// registered itself in a global table) with an explicit, name-keyed table
// populated once by RegisterDefaults. Nothing here runs at init() time.
package registry

import "errors"

// ErrUnknownComponent is returned when a name looked up in a Registry has
// no matching factory.
var ErrUnknownComponent = errors.New("registry: unknown component name")
