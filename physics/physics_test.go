package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/pingpong/vmath"
)

const eps = 1e-9

var testProfile = DeflectProfile{MaxAngleDeg: 60, SpeedGain: 1.05}

func TestIntegrateExact(t *testing.T) {
	k := &Kinetic{Pos: vmath.V2(850, 490), Vel: vmath.V2(-600, 600), Radius: 10}
	Integrate(k, 0.1)

	if k.Pos != vmath.V2(790, 550) {
		t.Errorf("Expected (790, 550), got %v", k.Pos)
	}
	if k.Vel != vmath.V2(-600, 600) {
		t.Errorf("Integration must not touch velocity, got %v", k.Vel)
	}
}

func TestReflectTop(t *testing.T) {
	k := &Kinetic{Pos: vmath.V2(100, 4), Vel: vmath.V2(50, -300), Radius: 10}

	if !ReflectTop(k, 0) {
		t.Fatal("Expected top reflection")
	}
	if k.Pos.Y != 10 {
		t.Errorf("Expected y clamped to radius, got %v", k.Pos.Y)
	}
	if k.Vel.Y != 300 {
		t.Errorf("Expected downward vy=300, got %v", k.Vel.Y)
	}

	// Already moving down while overlapping: stays downward
	k.Pos.Y = 5
	ReflectTop(k, 0)
	if k.Vel.Y != 300 {
		t.Errorf("Expected vy to stay positive, got %v", k.Vel.Y)
	}
}

func TestReflectBottom(t *testing.T) {
	k := &Kinetic{Pos: vmath.V2(100, 975), Vel: vmath.V2(50, 300), Radius: 10}

	if !ReflectBottom(k, 980) {
		t.Fatal("Expected bottom reflection")
	}
	if k.Pos.Y != 970 {
		t.Errorf("Expected y=970, got %v", k.Pos.Y)
	}
	if k.Vel.Y != -300 {
		t.Errorf("Expected vy=-300, got %v", k.Vel.Y)
	}

	k.Pos.Y = 500
	if ReflectBottom(k, 980) {
		t.Error("Expected no reflection away from the wall")
	}
}

func TestReflectRight(t *testing.T) {
	k := &Kinetic{Pos: vmath.V2(1695, 300), Vel: vmath.V2(400, 10), Radius: 10}

	if !ReflectRight(k, 1700) {
		t.Fatal("Expected right reflection")
	}
	if k.Pos.X != 1690 {
		t.Errorf("Expected x=1690, got %v", k.Pos.X)
	}
	if k.Vel.X != -400 {
		t.Errorf("Expected vx inverted, got %v", k.Vel.X)
	}
}

func TestCrossedLeft(t *testing.T) {
	k := &Kinetic{Pos: vmath.V2(10, 300), Radius: 10}
	if !CrossedLeft(k, 0) {
		t.Error("Expected touching the left boundary to count")
	}
	k.Pos.X = 10.5
	if CrossedLeft(k, 0) {
		t.Error("Expected no crossing")
	}
}

func TestHitOffset(t *testing.T) {
	paddle := vmath.Rect{X: 30, Y: 440, W: 10, H: 100}

	tests := []struct {
		y    float64
		want float64
	}{
		{490, 0},
		{440, -1},
		{540, 1},
		{515, 0.5},
		{560, 1.4}, // overshoot is not clamped
	}
	for _, tt := range tests {
		if got := HitOffset(tt.y, paddle); math.Abs(got-tt.want) > eps {
			t.Errorf("HitOffset(%v) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestPaddleContactRequiresApproach(t *testing.T) {
	paddle := vmath.Rect{X: 30, Y: 440, W: 10, H: 100}
	k := &Kinetic{Pos: vmath.V2(45, 490), Vel: vmath.V2(-300, 0), Radius: 10}

	if !PaddleContact(k, paddle) {
		t.Error("Expected contact while moving toward paddle")
	}

	k.Vel.X = 300
	if PaddleContact(k, paddle) {
		t.Error("Expected no contact while moving away")
	}
}

func TestDeflect(t *testing.T) {
	paddle := vmath.Rect{X: 30, Y: 440, W: 10, H: 100}

	t.Run("center hit goes straight right", func(t *testing.T) {
		k := &Kinetic{Pos: vmath.V2(45, 490), Vel: vmath.V2(-600, 600), Radius: 10}
		prior := Speed(k)
		Deflect(k, paddle, testProfile)

		want := prior * 1.05
		if math.Abs(k.Vel.X-want) > eps || math.Abs(k.Vel.Y) > eps {
			t.Errorf("Expected (%v, 0), got %v", want, k.Vel)
		}
	})

	t.Run("edge hit uses 60 degrees", func(t *testing.T) {
		k := &Kinetic{Pos: vmath.V2(45, 540), Vel: vmath.V2(-100, 0), Radius: 10}
		Deflect(k, paddle, testProfile)

		speed := 105.0
		wantX := speed * math.Cos(60*vmath.DegToRad)
		wantY := speed * math.Sin(60*vmath.DegToRad)
		if math.Abs(k.Vel.X-wantX) > eps || math.Abs(k.Vel.Y-wantY) > eps {
			t.Errorf("Expected (%v, %v), got %v", wantX, wantY, k.Vel)
		}
	})

	t.Run("extreme overshoot still leaves rightward", func(t *testing.T) {
		// offset 2 → 120°, cos is negative
		k := &Kinetic{Pos: vmath.V2(45, 590), Vel: vmath.V2(-100, 0), Radius: 10}
		Deflect(k, paddle, testProfile)
		if k.Vel.X <= 0 {
			t.Errorf("Expected rightward vx, got %v", k.Vel.X)
		}
		if math.Abs(Speed(k)-105) > eps {
			t.Errorf("Expected speed 105, got %v", Speed(k))
		}
	})
}
