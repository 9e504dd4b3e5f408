package setup_test

import (
	"context"
	"errors"
	"testing"

	"github.com/specialistvlad/porygon/internal/command"
	"github.com/specialistvlad/porygon/internal/controller"
	"github.com/specialistvlad/porygon/internal/discord"
	"github.com/specialistvlad/porygon/internal/initializer"
	"github.com/specialistvlad/porygon/internal/setup"
	"github.com/specialistvlad/porygon/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// journal records which initializers ran, keyed by "<target>/<name>".
type journal struct {
	entries []string
}

func (j *journal) init(name string) initializer.Init {
	return initializer.New(name, func(_ context.Context, args *initializer.Args) error {
		j.entries = append(j.entries, args.Controller().String()+"/"+name)
		return nil
	})
}

func (j *journal) count(entry string) int {
	n := 0
	for _, e := range j.entries {
		if e == entry {
			n++
		}
	}
	return n
}

func TestSetup_ScenarioA_GlobalInitsRunOnce(t *testing.T) {
	ctx, logs := testutil.LogContext(t)
	sess := testutil.NewSession(testutil.NewFakeAPI(), discord.Production)
	j := &journal{}

	err := setup.New().
		AddInit(controller.Global, j.init("a")).
		AddInit(controller.Global, j.init("b")).
		Setup(ctx, sess)

	require.NoError(t, err)
	assert.Equal(t, 1, j.count("Global/a"))
	assert.Equal(t, 1, j.count("Global/b"))
	assert.Zero(t, testutil.CountLines(logs.String(), "Setup step skipped."))
	testutil.AssertStepRan(t, logs.String(), "init:Global")
}

func TestSetup_ScenarioB_UnreachableTargetIsSkipped(t *testing.T) {
	ctx, logs := testutil.LogContext(t)
	sess := testutil.NewSession(testutil.NewFakeAPI(), discord.Production)
	j := &journal{}

	err := setup.New().
		AddInit(controller.DuckCommunism, j.init("quack")).
		Setup(ctx, sess)

	require.NoError(t, err)
	assert.Empty(t, j.entries)
	assert.Equal(t, 1, testutil.CountLines(logs.String(), "Setup step skipped."))
	assert.Equal(t, 1, testutil.CountLines(logs.String(), "level=INFO", "skip"), "exactly one info line per skipped target")
	testutil.AssertStepSkipped(t, logs.String(), "init:DuckCommunism")
	assert.Contains(t, logs.String(), "target=DuckCommunism")
}

func TestSetup_ScenarioC_OnlyReachableTargetsRun(t *testing.T) {
	ctx, logs := testutil.LogContext(t)
	api := testutil.NewFakeAPI(controller.NicknamePokecom.ID())
	sess := testutil.NewSession(api, discord.Production)
	j := &journal{}

	err := setup.New().
		AddInit(controller.PokecomStaff, j.init("staff-only")).
		AddInit(controller.Pokecom, j.init("public")).
		Setup(ctx, sess)

	require.NoError(t, err)
	assert.Equal(t, []string{"Pokecom/public"}, j.entries)
	testutil.AssertStepSkipped(t, logs.String(), "init:PokcomStaff")
	testutil.AssertStepRan(t, logs.String(), "init:Pokecom")

	// One failed staff lookup, then one pokecom lookup shared by the skip
	// check and the execution context.
	assert.Equal(t, 2, api.CountCalls("GetGuild"))
}

func TestSetup_ScenarioD_FailureAbortsRemainingTargets(t *testing.T) {
	ctx, logs := testutil.LogContext(t)
	api := testutil.NewFakeAPI(controller.NicknamePokecom.ID(), controller.NicknameDuckCommunism.ID())
	sess := testutil.NewSession(api, discord.Production)
	j := &journal{}
	boom := errors.New("platform rejected the call")

	err := setup.New().
		AddInit(controller.Global, j.init("first")).
		AddInit(controller.Pokecom, initializer.New("broken", func(context.Context, *initializer.Args) error {
			return boom
		})).
		AddInit(controller.DuckCommunism, j.init("never")).
		Setup(ctx, sess)

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "init:Pokecom")
	assert.Equal(t, []string{"Global/first"}, j.entries)
	assert.Contains(t, logs.String(), "Setup step failed.")
	assert.Zero(t, testutil.CountLines(logs.String(), "step=init:DuckCommunism"))
}

func TestSetup_NothingRegisteredRunsNothing(t *testing.T) {
	ctx, logs := testutil.LogContext(t)
	api := testutil.NewFakeAPI()
	sess := testutil.NewSession(api, discord.Production)

	require.NoError(t, setup.New().Setup(ctx, sess))
	assert.Empty(t, api.Calls(), "no scope entry means no skip check")
	assert.Zero(t, testutil.CountLines(logs.String(), "Setup step complete."))
	assert.Contains(t, logs.String(), "Setup complete.")
}

func TestSetup_OverwriteByName(t *testing.T) {
	sess := testutil.NewSession(testutil.NewFakeAPI(), discord.Production)
	var ran []string
	named := func(name, tag string) initializer.Init {
		return initializer.New(name, func(context.Context, *initializer.Args) error {
			ran = append(ran, tag)
			return nil
		})
	}

	err := setup.New().
		AddInit(controller.Global, named("a", "a1")).
		AddInit(controller.Global, named("b", "b1")).
		AddInit(controller.Global, named("a", "a2")).
		Setup(context.Background(), sess)

	require.NoError(t, err)
	assert.Equal(t, []string{"a2", "b1"}, ran)
}

func TestSetup_DeterministicOrder(t *testing.T) {
	api := testutil.NewFakeAPI(controller.NicknamePokecom.ID(), controller.NicknamePokecomStaff.ID())

	run := func() []string {
		j := &journal{}
		sess := testutil.NewSession(api, discord.Production)
		err := setup.New().
			AddInit(controller.PokecomStaff, j.init("x")).
			AddInit(controller.Global, j.init("y")).
			AddInit(controller.Pokecom, j.init("z")).
			AddInit(controller.PokecomStaff, j.init("w")).
			Setup(context.Background(), sess)
		require.NoError(t, err)
		return j.entries
	}

	first := run()
	assert.Equal(t, []string{"PokcomStaff/x", "PokcomStaff/w", "Global/y", "Pokecom/z"}, first)
	assert.Equal(t, first, run())
}

func TestSetup_CommandsRunBeforeInits(t *testing.T) {
	ctx, logs := testutil.LogContext(t)
	api := testutil.NewFakeAPI()
	sess := testutil.NewSession(api, discord.Production)

	uploadedBeforeInit := false
	err := setup.New().
		AddInit(controller.Global, initializer.New("check", func(context.Context, *initializer.Args) error {
			uploadedBeforeInit = api.CountCalls("CreateGlobalCommand") == 1
			return nil
		})).
		AddCommand(controller.Global, command.Command{Name: "ping", Description: "Pong!"}).
		Setup(ctx, sess)

	require.NoError(t, err)
	assert.True(t, uploadedBeforeInit)
	testutil.AssertStepRan(t, logs.String(), "command:Global")
}

func TestSetup_CommandFailureSkipsInits(t *testing.T) {
	api := testutil.NewFakeAPI()
	api.FailUploads = errors.New("rejected")
	sess := testutil.NewSession(api, discord.Production)
	j := &journal{}

	err := setup.New().
		AddCommand(controller.Global, command.Command{Name: "ping", Description: "Pong!"}).
		AddInit(controller.Global, j.init("a")).
		Setup(context.Background(), sess)

	require.ErrorIs(t, err, api.FailUploads)
	assert.Empty(t, j.entries)
}

func TestSetup_AddFromComposesInstallers(t *testing.T) {
	sess := testutil.NewSession(testutil.NewFakeAPI(), discord.Production)
	j := &journal{}

	feature := func(s *setup.Setup) *setup.Setup {
		return s.AddInit(controller.Global, j.init("feature"))
	}
	app := func(s *setup.Setup) *setup.Setup {
		return s.AddFrom(feature)
	}

	require.NoError(t, setup.New().AddFrom(app).Setup(context.Background(), sess))
	assert.Equal(t, []string{"Global/feature"}, j.entries)
}

func TestSetup_ConsumedBuilderPanics(t *testing.T) {
	sess := testutil.NewSession(testutil.NewFakeAPI(), discord.Production)
	j := &journal{}

	s := setup.New()
	require.NoError(t, s.Setup(context.Background(), sess))

	assert.Panics(t, func() { s.AddInit(controller.Global, j.init("late")) })
	assert.Panics(t, func() { s.AddCommand(controller.Global, command.Command{Name: "late"}) })
	assert.Panics(t, func() { s.AddFrom(func(s *setup.Setup) *setup.Setup { return s }) })
	assert.Panics(t, func() { _ = s.Setup(context.Background(), sess) })
}

func TestSetup_StagingRunsEveryTargetAgainstStagingGuild(t *testing.T) {
	api := testutil.NewFakeAPI(controller.StagingGuildID)
	sess := testutil.NewSession(api, discord.Staging)
	j := &journal{}

	err := setup.New().
		AddInit(controller.DuckCommunism, j.init("a")).
		AddCommand(controller.Pokecom, command.Command{Name: "ping", Description: "Pong!"}).
		Setup(context.Background(), sess)

	require.NoError(t, err)
	assert.Equal(t, []string{"DuckCommunism/a"}, j.entries)
	assert.Len(t, api.Commands[controller.StagingGuildID], 1)
}

func TestSetup_StagingWithoutStagingGuildFails(t *testing.T) {
	sess := testutil.NewSession(testutil.NewFakeAPI(), discord.Staging)
	j := &journal{}

	err := setup.New().
		AddInit(controller.Global, j.init("a")).
		Setup(context.Background(), sess)

	require.ErrorIs(t, err, controller.ErrStagingUnreachable)
	assert.Empty(t, j.entries)
}
