package math

import (
	"math"
	"testing"
)

const eps = 1e-5

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 || m[12] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := RotateZ(0.7)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

// RotateZ must produce a proper rotation: orthonormal upper-left 3x3 block
// with determinant 1, for any angle.
func TestRotateZIsRotation(t *testing.T) {
	angles := []float64{0, math.Pi / 2, math.Pi, 2 * math.Pi}

	for _, a := range angles {
		m := RotateZ(float32(a)).Mat3x3()

		// Columns of the 3x3 block
		cols := [3][3]float32{
			{m[0], m[1], m[2]},
			{m[3], m[4], m[5]},
			{m[6], m[7], m[8]},
		}

		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				dot := cols[i][0]*cols[j][0] + cols[i][1]*cols[j][1] + cols[i][2]*cols[j][2]
				want := float32(0)
				if i == j {
					want = 1
				}
				if absf(dot-want) > eps {
					t.Errorf("angle %.3f: col%d . col%d = %f, want %f", a, i, j, dot, want)
				}
			}
		}

		det := m[0]*(m[4]*m[8]-m[5]*m[7]) -
			m[3]*(m[1]*m[8]-m[2]*m[7]) +
			m[6]*(m[1]*m[5]-m[2]*m[4])
		if absf(det-1) > eps {
			t.Errorf("angle %.3f: determinant = %f, want 1", a, det)
		}
	}
}

func TestRotateZFullTurnIsIdentity(t *testing.T) {
	m := RotateZ(float32(2 * math.Pi))
	id := Identity()

	for i := 0; i < 16; i++ {
		if absf(m[i]-id[i]) > eps {
			t.Errorf("RotateZ(2pi) element %d: got %f, want %f", i, m[i], id[i])
		}
	}
}

// Ortho(-a, a, -1, 1, 1, -1) must map (a,0,0) to clip x=1 and (-a,0,0) to
// clip x=-1 for any positive aspect a.
func TestOrthoMapsAspectBounds(t *testing.T) {
	for _, aspect := range []float32{0.5, 1, 4.0 / 3.0, 16.0 / 9.0, 3} {
		p := Ortho(-aspect, aspect, -1, 1, 1, -1)

		right := p.TransformPoint([3]float32{aspect, 0, 0})
		if absf(right[0]-1) > eps {
			t.Errorf("aspect %f: right edge mapped to x=%f, want 1", aspect, right[0])
		}

		left := p.TransformPoint([3]float32{-aspect, 0, 0})
		if absf(left[0]+1) > eps {
			t.Errorf("aspect %f: left edge mapped to x=%f, want -1", aspect, left[0])
		}
	}
}

// With an identity model matrix the combined transform must equal the
// projection alone.
func TestMVPWithIdentityModel(t *testing.T) {
	proj := Ortho(-4.0/3.0, 4.0/3.0, -1, 1, 1, -1)
	mvp := proj.Mul(RotateZ(0))

	for i := 0; i < 16; i++ {
		if absf(mvp[i]-proj[i]) > eps {
			t.Errorf("element %d: got %f, want %f", i, mvp[i], proj[i])
		}
	}
}
