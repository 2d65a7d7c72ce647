// SPDX-License-Identifier: MIT

package maze

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a configuration that cannot produce a maze.
// The wrapped message names the offending property.
var ErrInvalidConfig = errors.New("maze: invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
