package rate_limiter

import "testing"

func TestGetVisitorReusesLimiter(t *testing.T) {
	t.Cleanup(CleanupAllVisitors)

	first := GetVisitor("10.0.0.1")
	second := GetVisitor("10.0.0.1")
	if first != second {
		t.Error("expected the same limiter for repeat visits from one ip")
	}

	other := GetVisitor("10.0.0.2")
	if other == first {
		t.Error("expected a distinct limiter per ip")
	}
}

func TestLimiterAllowsBurst(t *testing.T) {
	t.Cleanup(CleanupAllVisitors)

	l := GetVisitor("10.0.0.3")
	for i := 0; i < 10; i++ {
		if !l.Allow() {
			t.Fatalf("request %d unexpectedly rejected within burst", i)
		}
	}
}
