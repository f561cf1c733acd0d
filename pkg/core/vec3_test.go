package core

import (
	"math"
	"testing"
)

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		vector Vec3
	}{
		{"unit x", NewVec3(1, 0, 0)},
		{"arbitrary", NewVec3(1, 2, 3)},
		{"negative components", NewVec3(-4, 5, -6)},
		{"tiny", NewVec3(1e-9, 0, 1e-9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Normalize()

			const tolerance = 1e-9
			if math.Abs(result.Length()-1.0) > tolerance {
				t.Errorf("Expected unit length, got %v", result.Length())
			}
		})
	}
}

func TestVec3_Normalize_ZeroVector(t *testing.T) {
	result := NewVec3(0, 0, 0).Normalize()

	if result.X != 0 || result.Y != 0 || result.Z != 0 {
		t.Errorf("Expected zero vector to normalize to itself, got %v", result)
	}
}

func TestVec3_Dot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected float64
	}{
		{"orthogonal", NewVec3(1, 0, 0), NewVec3(0, 1, 0), 0},
		{"parallel", NewVec3(0, 0, 2), NewVec3(0, 0, 3), 6},
		{"opposed", NewVec3(1, 1, 1), NewVec3(-1, -1, -1), -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Dot(tt.b); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5)
	result := v.Clamp(0, 1)

	expected := NewVec3(0, 0.5, 1)
	if result != expected {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); got != NewVec3(5, 7, 9) {
		t.Errorf("Add: expected (5,7,9), got %v", got)
	}
	if got := b.Subtract(a); got != NewVec3(3, 3, 3) {
		t.Errorf("Subtract: expected (3,3,3), got %v", got)
	}
	if got := a.Multiply(2); got != NewVec3(2, 4, 6) {
		t.Errorf("Multiply: expected (2,4,6), got %v", got)
	}
	if got := a.MultiplyVec(b); got != NewVec3(4, 10, 18) {
		t.Errorf("MultiplyVec: expected (4,10,18), got %v", got)
	}
}
