package world

import (
	"testing"
	"time"

	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/geom"
)

const step = 30 * time.Millisecond

func TestEarthMoonScenario(t *testing.T) {
	w := NewEarthMoon()

	items := w.DrawableItems()
	if len(items) != 2 {
		t.Fatalf("DrawableItems = %d items, want 2", len(items))
	}
	if items[0].Name() != "earth" || items[1].Name() != "moon" {
		t.Errorf("bodies = %s, %s; want earth, moon", items[0].Name(), items[1].Name())
	}

	if sb := w.DefaultScaleBase(); sb.Cmp(geom.MustParse("3.80e8")) != 0 {
		t.Errorf("scale base = %s, want 3.80e8", sb)
	}
}

func TestExecuteAdvancesTicks(t *testing.T) {
	w := NewEarthMoon()

	for i := 0; i < 5; i++ {
		if err := w.Execute(step); err != nil {
			t.Fatalf("Execute: %v", err)
		}
	}
	if w.Ticks() != 5 {
		t.Errorf("Ticks = %d, want 5", w.Ticks())
	}

	// The moon must actually have moved.
	moon := w.Bodies()[1]
	if moon.Attributes().Center.X.IsZero() {
		t.Error("moon did not move after 5 ticks")
	}
}

func TestDrawableCenterIsACopy(t *testing.T) {
	w := NewEarthMoon()
	moon := w.DrawableItems()[1]

	c := moon.Center()
	c.X.SetInt64(-12345)

	if w.Bodies()[1].Attributes().Center.X.Cmp(c.X) == 0 {
		t.Error("mutating a drawable center reached the live body")
	}
}

func TestDefaultScaleBaseFallback(t *testing.T) {
	w := NewSpaceWorld("empty", nil)
	if sb := w.DefaultScaleBase(); sb.Cmp(geom.MustParse("4.0e8")) != 0 {
		t.Errorf("scale base = %s, want package default 4.0e8", sb)
	}
}

func TestFromConfig(t *testing.T) {
	w, err := FromConfig(config.DefaultConfig())
	if err != nil {
		t.Fatalf("FromConfig(default): %v", err)
	}
	if len(w.Bodies()) != 2 {
		t.Fatalf("bodies = %d, want 2", len(w.Bodies()))
	}

	if err := w.Execute(step); err != nil {
		t.Errorf("Execute on config-built world: %v", err)
	}
}

func TestFromConfigRejectsBadScenario(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"no bodies", func(c *config.Config) { c.Bodies = nil }},
		{"bad mass", func(c *config.Config) { c.Bodies[0].Mass = "-1" }},
		{"garbage coordinate", func(c *config.Config) { c.Bodies[0].Center[1] = "wat" }},
		{"bad scale base", func(c *config.Config) { c.ScaleBase = "" }},
		{"zero step", func(c *config.Config) { c.StepMillis = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)
			if _, err := FromConfig(cfg); err == nil {
				t.Error("FromConfig accepted an invalid scenario")
			}
		})
	}
}

// Two identically-built worlds stepped in lockstep stay identical; the
// engine has no hidden randomness.
func TestWorldDeterminism(t *testing.T) {
	w1 := NewEarthMoon()
	w2 := NewEarthMoon()

	for i := 0; i < 30; i++ {
		if err := w1.Execute(step); err != nil {
			t.Fatalf("w1: %v", err)
		}
		if err := w2.Execute(step); err != nil {
			t.Fatalf("w2: %v", err)
		}
	}

	for i := range w1.Bodies() {
		s1 := w1.Bodies()[i].Snapshot().String()
		s2 := w2.Bodies()[i].Snapshot().String()
		if s1 != s2 {
			t.Errorf("body %d diverged:\n%s\n%s", i, s1, s2)
		}
	}
}
