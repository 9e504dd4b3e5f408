// Package controller defines the targets setup operations are registered
// against. Each member guild has a controller, as does Global for operations
// without a specific guild. Controllers are comparable values and act as the
// scope of target-scoped setup steps.
package controller

import "github.com/specialistvlad/porygon/internal/discord"

// Controller is a setup target: Global, or one member guild.
type Controller struct {
	// nick is zero for Global.
	nick Nickname
}

var (
	// Global targets the application as a whole.
	Global = Controller{}
	// Pokecom targets the PokéCommunity public server.
	Pokecom = Guild(NicknamePokecom)
	// PokecomStaff targets the PokéCommunity staff server.
	PokecomStaff = Guild(NicknamePokecomStaff)
	// DuckCommunism targets the Duck Communism private server.
	DuckCommunism = Guild(NicknameDuckCommunism)
)

// Guild returns the controller for a member guild.
func Guild(nick Nickname) Controller {
	nick.properties() // panics on an unknown nickname
	return Controller{nick: nick}
}

// IsGlobal reports whether c is the Global controller.
func (c Controller) IsGlobal() bool { return c.nick == 0 }

// Nickname returns the guild nickname and false for Global.
func (c Controller) Nickname() (Nickname, bool) {
	return c.nick, c.nick != 0
}

// String returns the display name of the target.
func (c Controller) String() string {
	if c.IsGlobal() {
		return "Global"
	}
	return c.nick.Name()
}

// Format renders the target for env. Staging names are starred because every
// staging target actually points at the staging guild.
func (c Controller) Format(env discord.Environment) string {
	if env == discord.Staging {
		return "*" + c.String()
	}
	return c.String()
}

// GoString keeps %#v output readable in test failures.
func (c Controller) GoString() string {
	return "controller." + c.String()
}
