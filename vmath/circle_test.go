package vmath

import "testing"

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name   string
		x1, y1 float64
		r1     float64
		x2, y2 float64
		r2     float64
		want   bool
	}{
		{"concentric", 0, 0, 5, 0, 0, 1, true},
		{"overlapping", 0, 0, 10, 15, 0, 10, true},
		{"tangent", 0, 0, 10, 20, 0, 10, false},
		{"apart", 0, 0, 10, 30, 40, 10, false},
		{"diagonal inside", 0, 0, 10, 3, 4, 0.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CirclesOverlap(tt.x1, tt.y1, tt.r1, tt.x2, tt.y2, tt.r2)
			if got != tt.want {
				t.Errorf("CirclesOverlap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Errorf("Expected 5, got %f", d)
	}
}

func TestClampCircle(t *testing.T) {
	tests := []struct {
		name         string
		x, y, r      float64
		wantX, wantY float64
	}{
		{"inside", 50, 50, 10, 50, 50},
		{"left top", -5, 3, 10, 10, 10},
		{"right bottom", 120, 90, 10, 90, 70},
		{"too wide", 40, 40, 60, 60, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := ClampCircle(tt.x, tt.y, tt.r, 100, 80)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("ClampCircle() = (%f, %f), want (%f, %f)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestClampCircleIdempotent verifies a second clamp is a no-op
func TestClampCircleIdempotent(t *testing.T) {
	x, y := ClampCircle(-20, 500, 15, 200, 100)
	x2, y2 := ClampCircle(x, y, 15, 200, 100)
	if x != x2 || y != y2 {
		t.Errorf("Second clamp moved circle: (%f, %f) -> (%f, %f)", x, y, x2, y2)
	}
}
