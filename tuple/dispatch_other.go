//go:build !amd64 && !arm64

package tuple

func detectCPUFeatures() {
	// Other architectures report no FMA for now; math.FMA still gives
	// correctly rounded results in software.
	hasFMA = false
}
