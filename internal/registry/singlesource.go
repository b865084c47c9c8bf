package registry

import "github.com/billbird/unidom/internal/instance"

// singleInstanceSource adapts a single, already-built DominationInstance
// (as produced by internal/genboard) into an instance.InputSource that
// yields it exactly once, the same one-shot behaviour the source's
// SingleGraphGeneratorBase gives its board generators.
type singleInstanceSource struct {
	inst *instance.DominationInstance
	done bool
}

func (s *singleInstanceSource) ReadNext() (*instance.DominationInstance, bool, error) {
	if s.done {
		return nil, false, nil
	}
	s.done = true
	return s.inst, true, nil
}
