package core

import (
	"math"
	"testing"
)

func TestRotationSanitized(t *testing.T) {
	tests := []struct {
		mode Mode
		in   Rotation
		want Rotation
	}{
		{ModeFlat, Rotation{30, 45, 0}, Rotation{30, 0, 0}},
		{ModeFlat, Rotation{-10, 0, 12}, Rotation{-10, 0, 0}},
		{ModeGlobe, Rotation{30, 45, 5}, Rotation{30, 45, 5}},
	}

	for _, tt := range tests {
		got := tt.in.Sanitized(tt.mode)
		if got != tt.want {
			t.Errorf("%v.Sanitized(%v) = %v, want %v", tt.in, tt.mode, got, tt.want)
		}
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{180, 180},
		{-180, 180},
		{190, -170},
		{-190, 170},
		{720 + 45, 45},
		{-540, 180},
	}

	for _, tt := range tests {
		if got := WrapDegrees(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WrapDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRotationNormalized(t *testing.T) {
	r := Rotation{Yaw: 370, Pitch: 120, Roll: 3}.Normalized()
	if math.Abs(r.Yaw-10) > 1e-9 || r.Pitch != 90 || r.Roll != 3 {
		t.Errorf("Normalized = %v", r)
	}
}

func TestRotationIsFinite(t *testing.T) {
	if !(Rotation{1, 2, 3}).IsFinite() {
		t.Error("finite rotation reported as non-finite")
	}
	if (Rotation{math.NaN(), 0, 0}).IsFinite() {
		t.Error("NaN yaw reported as finite")
	}
	if (Rotation{0, math.Inf(1), 0}).IsFinite() {
		t.Error("Inf pitch reported as finite")
	}
}

func TestManualDirectionSign(t *testing.T) {
	if RotateLeft.Sign() != 1 || RotateRight.Sign() != -1 || RotateNone.Sign() != 0 {
		t.Errorf("signs = %v %v %v", RotateLeft.Sign(), RotateRight.Sign(), RotateNone.Sign())
	}
}

func TestParseMode(t *testing.T) {
	if m, ok := ParseMode("map"); !ok || m != ModeFlat {
		t.Errorf("ParseMode(map) = %v, %v", m, ok)
	}
	if m, ok := ParseMode("globe"); !ok || m != ModeGlobe {
		t.Errorf("ParseMode(globe) = %v, %v", m, ok)
	}
	if _, ok := ParseMode("cube"); ok {
		t.Error("ParseMode(cube) should fail")
	}
}
