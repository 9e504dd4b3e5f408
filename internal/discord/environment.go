package discord

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEnvironment is returned by ParseEnvironment for unsupported names.
var ErrUnknownEnvironment = errors.New("unknown environment")

// Environment selects how targets behave at runtime. In Staging every target
// is redirected to the staging guild and is always considered connected.
type Environment int

const (
	Production Environment = iota
	Staging
)

// ParseEnvironment maps a configuration value to an Environment. An empty
// value means Production.
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "production", "prod":
		return Production, nil
	case "staging":
		return Staging, nil
	default:
		return Production, fmt.Errorf("%w: %q", ErrUnknownEnvironment, s)
	}
}

func (e Environment) String() string {
	if e == Staging {
		return "staging"
	}
	return "production"
}
