// Package progress carries completion percentages from long-running engines
// to the host. Reporting is best-effort: an Updater must not fail and is
// called synchronously on the engine's goroutine.
package progress

// Cadence is the number of claimed units between two reports of a Meter.
const Cadence = 1 << 18

// Updater receives completion percentages in [0, 100].
type Updater interface {
	SetProgress(percent int)
}

// Func adapts a plain function to Updater.
type Func func(percent int)

// SetProgress calls f(percent).
func (f Func) SetProgress(percent int) { f(percent) }

// Noop discards every report.
var Noop Updater = Func(func(int) {})

// Meter turns a stream of unit steps into rate-limited percentages.
// Reported values are clamped to [0, 100] and never decrease.
type Meter struct {
	u     Updater
	total int
	done  int
	since int
	last  int
}

// NewMeter returns a Meter reporting to u over total units. A nil u is Noop.
func NewMeter(u Updater, total int) *Meter {
	if u == nil {
		u = Noop
	}
	return &Meter{u: u, total: total, last: -1}
}

// Step records one finished unit and reports every Cadence steps.
func (m *Meter) Step() {
	m.done++
	m.since++
	if m.since < Cadence {
		return
	}
	m.since = 0
	if m.total > 0 {
		m.Report(m.done * 100 / m.total)
	}
}

// Report forwards percent, clamped, unless it would go backwards.
func (m *Meter) Report(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	if percent <= m.last {
		return
	}
	m.last = percent
	m.u.SetProgress(percent)
}

// Done reports 100.
func (m *Meter) Done() { m.Report(100) }

// Last returns the last reported value, or -1 if nothing was reported.
func (m *Meter) Last() int { return m.last }
