package cpu

import (
	"strings"

	"golang.org/x/sys/cpu"
)

// Features lists the SIMD extensions of the host CPU.
type Features struct {
	HasSSE4    bool
	HasAVX     bool
	HasAVX2    bool
	HasFMA     bool
	HasAVX512F bool
	HasNEON    bool // ARM64 Advanced SIMD
	HasSVE     bool
}

// DetectFeatures queries the host CPU.
func DetectFeatures() Features {
	return Features{
		HasSSE4:    cpu.X86.HasSSE41 || cpu.X86.HasSSE42,
		HasAVX:     cpu.X86.HasAVX,
		HasAVX2:    cpu.X86.HasAVX2,
		HasFMA:     cpu.X86.HasFMA,
		HasAVX512F: cpu.X86.HasAVX512F,
		HasNEON:    cpu.ARM64.HasASIMD,
		HasSVE:     cpu.ARM64.HasSVE,
	}
}

// Best returns the widest vector extension available, or "scalar".
func (f Features) Best() string {
	switch {
	case f.HasAVX512F:
		return "AVX512"
	case f.HasAVX2 && f.HasFMA:
		return "AVX2"
	case f.HasSVE:
		return "SVE"
	case f.HasNEON:
		return "NEON"
	case f.HasSSE4:
		return "SSE4"
	default:
		return "scalar"
	}
}

// String returns the detected features as a space-separated list.
func (f Features) String() string {
	var names []string
	for _, e := range []struct {
		on   bool
		name string
	}{
		{f.HasSSE4, "SSE4"},
		{f.HasAVX, "AVX"},
		{f.HasAVX2, "AVX2"},
		{f.HasFMA, "FMA"},
		{f.HasAVX512F, "AVX512F"},
		{f.HasNEON, "NEON"},
		{f.HasSVE, "SVE"},
	} {
		if e.on {
			names = append(names, e.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, " ")
}
