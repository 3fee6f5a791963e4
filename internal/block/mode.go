package block

// DxtMode selects the target block format (spec §3).
type DxtMode int

const (
	DXT1 DxtMode = iota
	DXT3
	DXT5
)

// String returns the mode's CLI/config name.
func (m DxtMode) String() string {
	switch m {
	case DXT1:
		return "DXT1"
	case DXT3:
		return "DXT3"
	case DXT5:
		return "DXT5"
	default:
		return "unknown"
	}
}

// BlockSize returns the packed block size in bytes: 8 for DXT1, 16 for
// DXT3/DXT5 (spec §3).
func (m DxtMode) BlockSize() int {
	if m == DXT1 {
		return 8
	}
	return 16
}

// CandidateMode selects how the endpoint selector's candidate set is built
// (spec §4.2).
type CandidateMode int

const (
	CandidateNormal CandidateMode = iota
	CandidateRandom
	CandidateFast
)

// String returns the mode's CLI/config name.
func (m CandidateMode) String() string {
	switch m {
	case CandidateNormal:
		return "normal"
	case CandidateRandom:
		return "random"
	case CandidateFast:
		return "fast"
	default:
		return "unknown"
	}
}
