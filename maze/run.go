// SPDX-License-Identifier: MIT

package maze

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/algorithms"
	"github.com/katalvlaran/lvmaze/grid"
)

// Run drives an algorithm process over its grid. Exits are placed once,
// when the process reports it is finished; later calls are inert.
type Run struct {
	grid    *grid.Grid
	process algorithms.Process
	log     logrus.FieldLogger

	steps int
	done  bool
	err   error
}

func newRun(g *grid.Grid, p algorithms.Process, log logrus.FieldLogger) *Run {
	return &Run{grid: g, process: p, log: log}
}

// OneStep advances the process by one unit. It reports true once the
// process is exhausted and the exits have been placed.
func (r *Run) OneStep() (bool, error) {
	if r.done {
		return true, r.err
	}
	r.steps++
	if r.process.Step() {
		return false, nil
	}
	r.finish()
	return true, r.err
}

// ToCompletion steps until the process is exhausted or ctx is done.
func (r *Run) ToCompletion(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		done, err := r.OneStep()
		if done {
			return err
		}
	}
}

// Done reports whether the run has finished.
func (r *Run) Done() bool { return r.done }

// Steps returns how many units of work have been performed.
func (r *Run) Steps() int { return r.steps }

func (r *Run) finish() {
	r.done = true
	r.err = r.grid.PlaceExits()
	if r.err != nil {
		r.log.WithError(r.err).Warn("exit placement failed")
		return
	}
	start, end := r.grid.Exits()
	r.log.WithFields(logrus.Fields{
		"steps": r.steps,
		"start": start.Coords.String(),
		"end":   end.Coords.String(),
	}).Debug("maze carved")
}
