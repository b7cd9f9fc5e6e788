package slice

// runSimplifyLoop drives Normalize, PruneSubtract and ApplyLowerBound
// to a joint fixed point, running extra (a kind-specific additional
// pass, or nil) on every iteration too. It stops as soon as a full
// iteration changes nothing, or s becomes a trivial base case.
func runSimplifyLoop(s *Slice, extra func(*Slice) (bool, error)) error {
	for {
		changed := false

		c, err := s.Normalize()
		if err != nil {
			return err
		}
		changed = changed || c

		c, err = s.PruneSubtract()
		if err != nil {
			return err
		}
		changed = changed || c

		c, err = s.ApplyLowerBound()
		if err != nil {
			return err
		}
		changed = changed || c

		if extra != nil {
			c, err = extra(s)
			if err != nil {
				return err
			}
			changed = changed || c
		}

		if s.IsTrivialBaseCase() {
			return nil
		}
		if !changed {
			return nil
		}
	}
}
