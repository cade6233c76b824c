// Package metrics provides conservation diagnostics over body collections.
// Values are reported as float64: they feed charts and run summaries, not
// the integrator.
package metrics

import (
	"math"

	"github.com/san-kum/gravsim/internal/body"
	"github.com/san-kum/gravsim/internal/geom"
)

// Metric observes the body set after each tick and reduces it to one
// display value.
type Metric interface {
	Name() string
	Observe(objs *body.Collection)
	Value() float64
	Reset()
}

// Momentum reports the magnitude of the total linear momentum Σ m·v.
type Momentum struct {
	last float64
}

func NewMomentum() *Momentum { return &Momentum{} }

func (m *Momentum) Name() string { return "momentum" }

func (m *Momentum) Observe(objs *body.Collection) {
	mag, _ := totalMomentum(objs).Magnitude().Float64()
	m.last = mag
}

func (m *Momentum) Value() float64 { return m.last }
func (m *Momentum) Reset()         { m.last = 0 }

// MomentumDrift tracks the worst relative drift of total momentum against
// the first observation. For an isolated system any drift is numeric
// error, so this is the engine's primary precision diagnostic.
type MomentumDrift struct {
	initial  *geom.Vector
	maxDrift float64
}

func NewMomentumDrift() *MomentumDrift { return &MomentumDrift{} }

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Observe(objs *body.Collection) {
	p := totalMomentum(objs)

	if m.initial == nil {
		m.initial = &p
		return
	}

	diff, _ := p.Sub(*m.initial).Magnitude().Float64()
	base, _ := m.initial.Magnitude().Float64()
	if base == 0 {
		// Zero initial momentum: report absolute drift instead.
		m.maxDrift = math.Max(m.maxDrift, diff)
		return
	}
	m.maxDrift = math.Max(m.maxDrift, diff/base)
}

func (m *MomentumDrift) Value() float64 { return m.maxDrift }

func (m *MomentumDrift) Reset() {
	m.initial = nil
	m.maxDrift = 0
}

// Separation reports the distance in meters between the first two bodies
// of the collection; with fewer than two bodies it reports zero. Used as
// the live-view chart series for two-body scenarios.
type Separation struct {
	last float64
}

func NewSeparation() *Separation { return &Separation{} }

func (s *Separation) Name() string { return "separation" }

func (s *Separation) Observe(objs *body.Collection) {
	if objs.Len() < 2 {
		s.last = 0
		return
	}
	a := objs.At(0).Attributes()
	b := objs.At(1).Attributes()
	d, _ := a.Center.Distance(b.Center).Float64()
	s.last = d
}

func (s *Separation) Value() float64 { return s.last }
func (s *Separation) Reset()         { s.last = 0 }

func totalMomentum(objs *body.Collection) geom.Vector {
	p := geom.ZeroVector()
	for i := 0; i < objs.Len(); i++ {
		a := objs.At(i).Attributes()
		p = p.Add(a.Velocity.Scale(a.Mass))
	}
	return p
}
