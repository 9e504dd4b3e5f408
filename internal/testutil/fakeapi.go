package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/specialistvlad/porygon/internal/discord"
)

// ApplicationID is the application id used by test sessions.
const ApplicationID discord.Snowflake = 1000

// FakeAPI is an in-memory discord.API. Guilds listed in Guilds are reachable;
// every other guild lookup fails. Commands are stored per guild id, with zero
// standing for the global list.
type FakeAPI struct {
	mu sync.Mutex

	Guilds   map[discord.Snowflake]*discord.Guild
	Commands map[discord.Snowflake][]discord.Command

	// FailUploads makes every create/edit call fail with this error.
	FailUploads error

	calls  []Call
	nextID discord.Snowflake
}

var _ discord.API = (*FakeAPI)(nil)

// NewFakeAPI returns a fake that can reach exactly the given guilds.
func NewFakeAPI(reachable ...discord.Snowflake) *FakeAPI {
	f := &FakeAPI{
		Guilds:   make(map[discord.Snowflake]*discord.Guild),
		Commands: make(map[discord.Snowflake][]discord.Command),
		nextID:   5000,
	}
	for _, id := range reachable {
		f.Guilds[id] = &discord.Guild{ID: id, Name: fmt.Sprintf("guild-%d", id)}
	}
	return f
}

// Calls returns every call made so far, in order.
func (f *FakeAPI) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// CountCalls returns how many calls were made to method.
func (f *FakeAPI) CountCalls(method string) int {
	n := 0
	for _, c := range f.Calls() {
		if c.Method == method {
			n++
		}
	}
	return n
}

func (f *FakeAPI) record(method string, guild discord.Snowflake, name string) {
	f.calls = append(f.calls, Call{Method: method, Guild: guild, Name: name})
}

func (f *FakeAPI) GetGuild(_ context.Context, id discord.Snowflake) (*discord.Guild, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GetGuild", id, "")
	g, ok := f.Guilds[id]
	if !ok {
		return nil, &discord.APIError{Status: 404, Code: 10004, Message: "Unknown Guild"}
	}
	return g, nil
}

func (f *FakeAPI) ListGlobalCommands(ctx context.Context, app discord.Snowflake) ([]discord.Command, error) {
	return f.list("ListGlobalCommands", 0)
}

func (f *FakeAPI) ListGuildCommands(ctx context.Context, app, guild discord.Snowflake) ([]discord.Command, error) {
	return f.list("ListGuildCommands", guild)
}

func (f *FakeAPI) GetGlobalCommand(ctx context.Context, app, command discord.Snowflake) (*discord.Command, error) {
	return f.get("GetGlobalCommand", 0, command)
}

func (f *FakeAPI) GetGuildCommand(ctx context.Context, app, guild, command discord.Snowflake) (*discord.Command, error) {
	return f.get("GetGuildCommand", guild, command)
}

func (f *FakeAPI) CreateGlobalCommand(ctx context.Context, app discord.Snowflake, data discord.CommandData) (*discord.Command, error) {
	return f.upsert("CreateGlobalCommand", app, 0, nil, data)
}

func (f *FakeAPI) CreateGuildCommand(ctx context.Context, app, guild discord.Snowflake, data discord.CommandData) (*discord.Command, error) {
	return f.upsert("CreateGuildCommand", app, guild, nil, data)
}

func (f *FakeAPI) EditGlobalCommand(ctx context.Context, app, command discord.Snowflake, data discord.CommandData) (*discord.Command, error) {
	return f.upsert("EditGlobalCommand", app, 0, &command, data)
}

func (f *FakeAPI) EditGuildCommand(ctx context.Context, app, guild, command discord.Snowflake, data discord.CommandData) (*discord.Command, error) {
	return f.upsert("EditGuildCommand", app, guild, &command, data)
}

func (f *FakeAPI) list(method string, guild discord.Snowflake) ([]discord.Command, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(method, guild, "")
	out := make([]discord.Command, len(f.Commands[guild]))
	copy(out, f.Commands[guild])
	return out, nil
}

func (f *FakeAPI) get(method string, guild, id discord.Snowflake) (*discord.Command, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(method, guild, "")
	for _, c := range f.Commands[guild] {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, &discord.APIError{Status: 404, Code: 10063, Message: "Unknown application command"}
}

func (f *FakeAPI) upsert(method string, app, guild discord.Snowflake, id *discord.Snowflake, data discord.CommandData) (*discord.Command, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(method, guild, data.Name)
	if f.FailUploads != nil {
		return nil, f.FailUploads
	}

	cmd := discord.Command{
		ApplicationID: app,
		GuildID:       guild,
		Name:          data.Name,
		Description:   data.Description,
		Type:          data.Type,
		Options:       data.Options,
	}
	if id != nil {
		for i, existing := range f.Commands[guild] {
			if existing.ID == *id {
				cmd.ID = existing.ID
				f.Commands[guild][i] = cmd
				return &cmd, nil
			}
		}
		return nil, &discord.APIError{Status: 404, Code: 10063, Message: "Unknown application command"}
	}

	f.nextID++
	cmd.ID = f.nextID
	f.Commands[guild] = append(f.Commands[guild], cmd)
	return &cmd, nil
}
