package solver

// capacity is a cumulative-style redundant constraint over one axis.
// Projecting every square onto the x axis gives a set of tasks, one
// per square, whose start is the square's X coordinate, whose duration
// is its size and whose resource demand is also its size: a column of
// the rectangle crossed by the square carries size cells of it. The
// summed demand at any column can never exceed the rectangle's height,
// so Height acts as the resource capacity (and Width for the y axis).
//
// The filtering is the classic time-table scheme. Each square whose
// coordinate domain is tighter than its size has a compulsory part
// [max(C), min(C)+size) that it covers under every remaining value.
// The profile of summed compulsory demands yields three rules:
//
//   - the capacity's lower bound rises to the profile peak, since the
//     stacked squares must all fit side by side in the other dimension
//   - a peak above the capacity's upper bound is a conflict
//   - a square may not start where its own demand on top of the
//     profile (minus its own compulsory contribution) would push some
//     column above the capacity's upper bound; infeasible starts are
//     trimmed from both ends of the coordinate domain
type capacity struct {
	axis   axis
	coords []varID
	sizes  []int
	cap    varID
}

func (p *capacity) String() string { return "capacity " + p.axis.String() }

func (p *capacity) run(st *store) (bool, error) {
	horizon := 0
	for k, c := range p.coords {
		if end := st.max(c) + p.sizes[k]; end > horizon {
			horizon = end
		}
	}

	// Compulsory parts and their demand profile.
	cs := make([]int, len(p.coords))
	ce := make([]int, len(p.coords))
	profile := make([]int, horizon)
	peak := 0
	for k, c := range p.coords {
		cs[k] = st.max(c)
		ce[k] = st.min(c) + p.sizes[k]
		for t := cs[k]; t < ce[k]; t++ {
			profile[t] += p.sizes[k]
			if profile[t] > peak {
				peak = profile[t]
			}
		}
	}
	if peak > st.max(p.cap) {
		return false, errEmptyDomain
	}
	changed, err := st.setMin(p.cap, peak)
	if err != nil {
		return changed, err
	}

	// Trim coordinate bounds whose placement would overload a column.
	// The profile is not rebuilt after a trim; the stale version only
	// under-counts, so every trim it justifies stays sound and the
	// next sweep sees the updated parts.
	capHi := st.max(p.cap)
	for k, c := range p.coords {
		lo := st.min(c)
		for lo <= st.max(c) && p.overloads(profile, cs[k], ce[k], lo, p.sizes[k], capHi) {
			lo++
		}
		ch, err := st.setMin(c, lo)
		changed = changed || ch
		if err != nil {
			return changed, err
		}
		hi := st.max(c)
		for hi >= st.min(c) && p.overloads(profile, cs[k], ce[k], hi, p.sizes[k], capHi) {
			hi--
		}
		ch, err = st.setMax(c, hi)
		changed = changed || ch
		if err != nil {
			return changed, err
		}
	}
	return changed, nil
}

// overloads reports whether starting a square of the given size at
// start would raise some column above capHi, counting the profile
// minus the square's own compulsory part [cs, ce).
func (p *capacity) overloads(profile []int, cs, ce, start, size, capHi int) bool {
	for t := start; t < start+size && t < len(profile); t++ {
		load := profile[t]
		if t >= cs && t < ce {
			load -= size
		}
		if load+size > capHi {
			return true
		}
	}
	return false
}
