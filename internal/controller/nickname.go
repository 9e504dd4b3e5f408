package controller

import (
	"fmt"

	"github.com/specialistvlad/porygon/internal/discord"
)

// Nickname names one of the guilds the bot is a permanent member of. The set
// is fixed at compile time and can be used directly as a setup target.
type Nickname int

const (
	// NicknamePokecom is the PokéCommunity public server.
	NicknamePokecom Nickname = iota + 1
	// NicknamePokecomStaff is the PokéCommunity staff server.
	NicknamePokecomStaff
	// NicknameDuckCommunism is the Duck Communism private server.
	NicknameDuckCommunism
)

// properties are the hardcoded identity of a member guild. They are reached
// through Nickname, except for the staging guild, which is never a valid
// nickname and is used only when running in staging.
type properties struct {
	id   discord.Snowflake
	name string
}

var (
	propertiesPokecom       = properties{id: 157983957902819328, name: "Pokecom"}
	propertiesPokecomStaff  = properties{id: 193103073210662914, name: "PokcomStaff"}
	propertiesDuckCommunism = properties{id: 322199235825238017, name: "DuckCommunism"}

	// staging is the override guild every target points at in staging.
	staging = properties{id: StagingGuildID, name: "Staging"}
)

// StagingGuildID is the id of the guild used in the staging environment.
const StagingGuildID discord.Snowflake = 964389981516881920

func (n Nickname) properties() properties {
	switch n {
	case NicknamePokecom:
		return propertiesPokecom
	case NicknamePokecomStaff:
		return propertiesPokecomStaff
	case NicknameDuckCommunism:
		return propertiesDuckCommunism
	default:
		panic(fmt.Sprintf("controller: unknown guild nickname %d", int(n)))
	}
}

// ID returns the guild's id.
func (n Nickname) ID() discord.Snowflake { return n.properties().id }

// Name returns the guild's display name.
func (n Nickname) Name() string { return n.properties().name }

func (n Nickname) String() string { return n.Name() }
