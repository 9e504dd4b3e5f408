package testutil

import "github.com/specialistvlad/porygon/internal/discord"

// Call is one recorded FakeAPI invocation.
type Call struct {
	Method string
	Guild  discord.Snowflake
	Name   string
}
