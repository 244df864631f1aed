package simulation

import (
	"time"

	"github.com/sirupsen/logrus"
)

// stepTimer reports elapsed wall time since creation and since the last
// reset, at Debug level.
type stepTimer struct {
	log     *logrus.Entry
	init    time.Time
	counter time.Time
}

func newStepTimer(log *logrus.Entry) *stepTimer {
	now := time.Now()

	return &stepTimer{log: log, init: now, counter: now}
}

// reset restarts the per-step counter.
func (t *stepTimer) reset() {
	t.counter = time.Now()
}

// report logs the elapsed times for step.
func (t *stepTimer) report(step string) {
	now := time.Now()
	t.log.WithFields(logrus.Fields{
		"step":        step,
		"since_init":  now.Sub(t.init),
		"since_reset": now.Sub(t.counter),
	}).Debug("step report")
}
