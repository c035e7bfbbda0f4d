package spheretrace

import (
	"bytes"
	"strings"
	"testing"
)

func TestEstimateCoverage(t *testing.T) {
	empty := newTestScene(t, MaxBounces, Policy{}, mustSphere(t, 1, Vector3{1000, 1000, 50}, 10, Color{}))
	if p := estimateCoverage(empty, 16, 16, 500); p != 0 {
		t.Fatalf("off-screen sphere coverage %.4f", p)
	}
	// sphere wider than the viewport: every primary ray hits
	full := newTestScene(t, MaxBounces, Policy{}, mustSphere(t, 1, Vector3{0, 0, 100}, 50, Color{}))
	if p := estimateCoverage(full, 16, 16, 500); p != 1 {
		t.Fatalf("full coverage %.4f", p)
	}
	if p := estimateCoverage(full, 16, 16, 0); p != 0 {
		t.Fatalf("no trials %.4f", p)
	}
}

func TestCoverageStats(t *testing.T) {
	var buf bytes.Buffer
	coverageStats(&buf, 0.25)
	if got := buf.String(); got != "Coverage: 25.00% of primary rays hit a shape\n" {
		t.Fatalf("coverage line: %q", got)
	}
	full := newTestScene(t, MaxBounces, Policy{}, mustSphere(t, 1, Vector3{0, 0, 100}, 50, Color{}))
	buf.Reset()
	coverageStats(&buf, estimateCoverage(full, 8, 8, 64))
	if !strings.Contains(buf.String(), "100.00%") {
		t.Fatalf("coverage line: %q", buf.String())
	}
}
