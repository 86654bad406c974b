package core

import "testing"

func TestAABBHit(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(-1, 0.5, 0.5), NewVec3(1, 0, 0))

	if !box.Hit(ray, 0, 10) {
		t.Errorf("expected hit over [0,10]")
	}
	if box.Hit(ray, 0, 0.5) {
		t.Errorf("expected miss over [0,0.5]")
	}
}

func TestAABBMonotonicity(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(-1, 0.5, 0.5), NewVec3(1, 0, 0))

	if box.Hit(ray, 2, 3) && !box.Hit(ray, 0, 10) {
		t.Errorf("narrower interval hit but wider interval missed")
	}
}

func TestAABBUnion(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-1, 2, 0), NewVec3(0.5, 3, 5))
	u := a.Union(b)

	want := NewAABB(NewVec3(-1, 0, 0), NewVec3(1, 3, 5))
	if !u.Min.Equals(want.Min) || !u.Max.Equals(want.Max) {
		t.Errorf("Union: got %v, want %v", u, want)
	}
}

func TestAABBZeroDirectionNotSpecialCased(t *testing.T) {
	// Ray parallel to the X and Y slabs but within them: should still hit,
	// relying on IEEE-754 infinities from the 1/0 division rather than
	// an explicit parallel-ray branch.
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(0.5, 0.5, -1), NewVec3(0, 0, 1))
	if !box.Hit(ray, 0, 10) {
		t.Errorf("expected hit for ray with zero-component direction inside slab")
	}

	outside := NewRay(NewVec3(0.5, 2, -1), NewVec3(0, 0, 1))
	if box.Hit(outside, 0, 10) {
		t.Errorf("expected miss for ray with zero-component direction outside slab")
	}
}

func TestAABBLongestAxis(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(5, 1, 2))
	if got := box.LongestAxis(); got != 0 {
		t.Errorf("LongestAxis: got %d, want 0", got)
	}
}
