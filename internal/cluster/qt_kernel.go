package cluster

// growScratch holds the reusable buffers of the candidate-growth kernel, so a
// whole clustering run allocates them once. members aliases the scratch and is
// only valid until the next growCluster call.
type growScratch struct {
	cand    []int
	dcur    []float64
	members []int
}

func newGrowScratch(n int) *growScratch {
	return &growScratch{
		cand:    make([]int, 0, n),
		dcur:    make([]float64, 0, n),
		members: make([]int, 0, n),
	}
}

// growCluster grows one candidate cluster from seed: the candidate pool is
// every eligible item strictly within cutoff of the seed, and each candidate
// tracks its distance-to-cluster, the maximum distance to any accepted member
// so far. The closest candidate is accepted next (ties to the larger weight,
// then the lower index) until the closest remaining candidate would reach the
// cutoff.
//
// Accepted members only tighten a candidate's distance, so the per-acceptance
// distances are nondecreasing and the realized diameter is simply the last
// one used. The returned members slice lives in scratch.
//
// The loop is the hot path of the QT strategy; it performs no allocation and
// touches only the scratch buffers.
func growCluster(dist [][]float64, weights []float64, eligible []int, seed int, cutoff float64, s *growScratch) (weight, diameter float64) {
	s.members = append(s.members[:0], seed)
	weight = weights[seed]
	diameter = 0

	s.cand = s.cand[:0]
	s.dcur = s.dcur[:0]
	row := dist[seed]
	for _, j := range eligible {
		if j != seed && row[j] < cutoff {
			s.cand = append(s.cand, j)
			s.dcur = append(s.dcur, row[j])
		}
	}

	for len(s.cand) > 0 {
		next := 0
		for i := 1; i < len(s.cand); i++ {
			di, dn := s.dcur[i], s.dcur[next]
			if di < dn {
				next = i
			} else if di == dn {
				wi, wn := weights[s.cand[i]], weights[s.cand[next]]
				if wi > wn || (wi == wn && s.cand[i] < s.cand[next]) {
					next = i
				}
			}
		}
		if s.dcur[next] >= cutoff {
			break
		}

		accepted := s.cand[next]
		s.members = append(s.members, accepted)
		weight += weights[accepted]
		if s.dcur[next] > diameter {
			diameter = s.dcur[next]
		}

		last := len(s.cand) - 1
		s.cand[next], s.cand[last] = s.cand[last], s.cand[next]
		s.dcur[next], s.dcur[last] = s.dcur[last], s.dcur[next]
		s.cand = s.cand[:last]
		s.dcur = s.dcur[:last]

		arow := dist[accepted]
		for i, j := range s.cand {
			if arow[j] > s.dcur[i] {
				s.dcur[i] = arow[j]
			}
		}
	}
	return weight, diameter
}
