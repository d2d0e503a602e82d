package simd

import (
	"strings"

	"golang.org/x/sys/cpu"
)

// Features returns the vector extensions reported by the host CPU, such as
// "avx2" or "asimd". The result is empty on CPUs without any of the
// extensions listed below.
//
// The search engines do not depend on these flags; they are reported by the
// benchmark driver so timings can be compared across machines.
func Features() []string {
	var features []string
	add := func(has bool, name string) {
		if has {
			features = append(features, name)
		}
	}

	add(cpu.X86.HasSSE2, "sse2")
	add(cpu.X86.HasSSE42, "sse4.2")
	add(cpu.X86.HasAVX, "avx")
	add(cpu.X86.HasAVX2, "avx2")
	add(cpu.X86.HasBMI1, "bmi1")
	add(cpu.X86.HasAVX512F, "avx512f")
	add(cpu.ARM64.HasASIMD, "asimd")
	add(cpu.ARM64.HasSVE, "sve")
	return features
}

// FeatureString returns Features joined by commas, or "generic".
func FeatureString() string {
	features := Features()
	if len(features) == 0 {
		return "generic"
	}
	return strings.Join(features, ",")
}
