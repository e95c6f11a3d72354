package components

import (
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	pulseDim    = "○"
	pulseBright = "●"

	pulseFPS              = UITicksPerSecond
	pulseAngularFrequency = 6.0
	pulseDampingRatio     = 0.6

	// one beat every pulsePeriodTicks, bright for pulseOnTicks of them
	pulsePeriodTicks = 10
	pulseOnTicks     = 4

	pulseFrameThreshold = 0.5
	pulsePositionFull   = 1.0
	pulsePositionEmpty  = 0.0
)

// Pulse drives the spring-animated Live indicator
type Pulse struct {
	spring    harmonica.Spring
	position  float64
	velocity  float64
	active    bool
	tickCount int
}

// NewPulse creates an inactive pulse
func NewPulse() *Pulse {
	return &Pulse{
		spring: harmonica.NewSpring(harmonica.FPS(pulseFPS), pulseAngularFrequency, pulseDampingRatio),
	}
}

// Start begins animating
func (p *Pulse) Start() {
	p.active = true
}

// Stop halts the animation and resets the spring
func (p *Pulse) Stop() {
	p.active = false
	p.position = pulsePositionEmpty
	p.velocity = pulsePositionEmpty
	p.tickCount = 0
}

// Update advances the spring by one UI tick
func (p *Pulse) Update() {
	if !p.active {
		return
	}

	target := pulsePositionEmpty
	if p.tickCount < pulseOnTicks {
		target = pulsePositionFull
	}

	p.tickCount = (p.tickCount + 1) % pulsePeriodTicks
	p.position, p.velocity = p.spring.Update(p.position, p.velocity, target)
}

// Frame returns the glyph for the current spring position
func (p *Pulse) Frame() string {
	if !p.active || p.position < pulseFrameThreshold {
		return pulseDim
	}

	return pulseBright
}

// Render returns the styled frame
func (p *Pulse) Render(style lipgloss.Style) string {
	return style.Render(p.Frame())
}

// IsActive returns whether the animation is running
func (p *Pulse) IsActive() bool {
	return p.active
}
