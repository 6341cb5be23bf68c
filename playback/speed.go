// SPDX-License-Identifier: MIT

package playback

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownSpeed indicates a speed name with no tier.
var ErrUnknownSpeed = errors.New("playback: unknown speed")

// Speed is the playback tempo tier.
type Speed int

const (
	Fast Speed = iota
	Medium
	Slow
)

// Delay returns the interval between ticks.
func (s Speed) Delay() time.Duration {
	switch s {
	case Medium:
		return 200 * time.Millisecond
	case Slow:
		return 600 * time.Millisecond
	default:
		return 50 * time.Millisecond
	}
}

// String returns "fast", "medium" or "slow".
func (s Speed) String() string {
	switch s {
	case Fast:
		return "fast"
	case Medium:
		return "medium"
	case Slow:
		return "slow"
	default:
		return fmt.Sprintf("Speed(%d)", int(s))
	}
}

// ParseSpeed maps a case-insensitive tier name to its Speed.
func ParseSpeed(s string) (Speed, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fast":
		return Fast, nil
	case "medium":
		return Medium, nil
	case "slow":
		return Slow, nil
	default:
		return Fast, fmt.Errorf("%w: %q", ErrUnknownSpeed, s)
	}
}

// UnmarshalText lets Speed be decoded from configuration.
func (s *Speed) UnmarshalText(b []byte) error {
	v, err := ParseSpeed(string(b))
	if err != nil {
		return err
	}
	*s = v

	return nil
}
