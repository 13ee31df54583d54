package editor

const (
	minZoom     = 1.0
	maxZoom     = 10.0
	initialZoom = 3.0
	resetZoom   = 3.0
	// Used instead of resetZoom when the target is already at or below it, so
	// a repeated reset still animates.
	resetZoomNudge = 3.1

	easeDivisor   = 5
	wheelDivisor  = 600
	settleEpsilon = 0.001
)

// Eased is a value that relaxes toward its target a fifth of the way per tick.
type Eased struct {
	Target  float64
	Current float64
}

func (e *Eased) step() {
	e.Current += (e.Target - e.Current) / easeDivisor
}

func (e Eased) settled() bool {
	return abs(e.Target-e.Current) < settleEpsilon
}

// View is the zoom and pan state. Offsets shift the sprite by their negation.
type View struct {
	Zoom    Eased
	OffsetX Eased
	OffsetY Eased
}

func newView() View {
	return View{Zoom: Eased{Target: initialZoom, Current: initialZoom}}
}

func (v *View) step() {
	v.Zoom.step()
	v.OffsetX.step()
	v.OffsetY.step()
}

func (v View) settled() bool {
	return v.Zoom.settled() && v.OffsetX.settled() && v.OffsetY.settled()
}

func (v *View) adjustZoom(delta float64) {
	v.Zoom.Target = clamp(v.Zoom.Target+delta, minZoom, maxZoom)
}

func (v *View) reset() {
	if v.Zoom.Target > resetZoom {
		v.Zoom.Target = resetZoom
	} else {
		v.Zoom.Target = resetZoomNudge
	}
	v.OffsetX.Target = 0
	v.OffsetY.Target = 0
}
