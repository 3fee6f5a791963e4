package block

// SelectEndpoints implements the endpoint selector (spec §4.2): given
// numCandidates candidate colors and numPixels tile pixels, choose the
// pair (besti, bestj), i<j, minimizing
//
//	sum over p of min(candidateDist(i,p), candidateDist(j,p)[, sentinel0(p), sentinel1(p)])
//
// sentinelDist is nil for the DXT1/DXT3/DXT5 color ramp (no free sentinel
// candidates); for the DXT5 alpha ramp it returns the distance from pixel p
// to the fixed 0 and 255 sentinels, which are always available as a "free"
// assignment regardless of which candidate pair is under test.
//
// Ties break on first-found (i outer ascending, j inner ascending), as
// required by spec §4.2. The distance matrix is precomputed once in
// O(numCandidates*numPixels), then the O(m^2*n) pair scan reads it back.
func SelectEndpoints(numCandidates, numPixels int, candidateDist func(c, p int) int, sentinelDist func(p int) (d0, d1 int)) (besti, bestj int) {
	if numCandidates < 2 {
		return 0, 0
	}

	dists := make([][]int, numCandidates)
	for c := 0; c < numCandidates; c++ {
		dists[c] = make([]int, numPixels)
		for p := 0; p < numPixels; p++ {
			dists[c][p] = candidateDist(c, p)
		}
	}

	sentinelMin := make([]int, numPixels)
	if sentinelDist != nil {
		for p := 0; p < numPixels; p++ {
			d0, d1 := sentinelDist(p)
			sentinelMin[p] = min2(d0, d1)
		}
	} else {
		for p := 0; p < numPixels; p++ {
			sentinelMin[p] = maxInt
		}
	}

	bestSum := -1
	besti, bestj = 0, 1
	for i := 0; i < numCandidates; i++ {
		for j := i + 1; j < numCandidates; j++ {
			sum := 0
			di, dj := dists[i], dists[j]
			for p := 0; p < numPixels; p++ {
				d := min2(di[p], dj[p])
				if sentinelMin[p] < d {
					d = sentinelMin[p]
				}
				sum += d
			}
			if bestSum < 0 || sum < bestSum {
				bestSum = sum
				besti, bestj = i, j
			}
		}
	}
	return besti, bestj
}

const maxInt = int(^uint(0) >> 1)

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}
