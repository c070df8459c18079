package freight

import "testing"

func TestCompare_AirCheaper(t *testing.T) {
	r := Compare(109286.25, 75000)

	if r.Winner != ModeAir {
		t.Fatalf("winner = %s, want %s", r.Winner, ModeAir)
	}
	nearlyEqual(t, "difference", r.Difference, 34286.25)
	if r.Savings < 31.37 || r.Savings > 31.38 {
		t.Fatalf("savings = %v, want ~31.37", r.Savings)
	}
}

func TestCompare_TieFavorsSea(t *testing.T) {
	for _, x := range []float64{0, 0.01, 1500, 1e9} {
		r := Compare(x, x)
		if r.Winner != ModeSea {
			t.Fatalf("Compare(%v, %v) winner = %s, want sea", x, x, r.Winner)
		}
		if r.Savings != 0 {
			t.Fatalf("Compare(%v, %v) savings = %v, want 0", x, x, r.Savings)
		}
	}
}

func TestCompare_SeaWinsWheneverCheaperOrEqual(t *testing.T) {
	cases := []struct {
		sea, air float64
		want     Mode
	}{
		{0, 10, ModeSea},
		{10, 0, ModeAir},
		{99.99, 100, ModeSea},
		{100, 99.99, ModeAir},
	}
	for _, c := range cases {
		if got := Compare(c.sea, c.air).Winner; got != c.want {
			t.Fatalf("Compare(%v, %v) winner = %s, want %s", c.sea, c.air, got, c.want)
		}
	}
}

func TestCompare_OneSideZero(t *testing.T) {
	r := Compare(0, 250)
	nearlyEqual(t, "difference", r.Difference, 250)
	nearlyEqual(t, "savings", r.Savings, 100)
}
