// SPDX-License-Identifier: MIT

package maze

import "github.com/sirupsen/logrus"

// Option customizes Build.
type Option func(*options)

type options struct {
	log logrus.FieldLogger
}

func defaultOptions() options {
	return options{log: logrus.StandardLogger()}
}

// WithLogger routes build and run diagnostics to log.
// Panics on nil.
func WithLogger(log logrus.FieldLogger) Option {
	if log == nil {
		panic("maze: WithLogger(nil)")
	}
	return func(o *options) { o.log = log }
}
