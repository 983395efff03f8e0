package discord

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aliceID = "1001"

func TestPingCommand(t *testing.T) {
	ctx := SetupTestContext(t)

	ctx.Run(PingCommand, createTestInteraction("ping", aliceID))

	responses := ctx.Responses()
	require.Len(t, responses, 1)
	assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, responses[0].Type)
	require.NotNil(t, responses[0].Data)
	assert.Contains(t, responses[0].Data.Content, "Pong")
}

func TestRegisterCommand_Success(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.SetHonor("alice", 1500)

	ctx.Run(RegisterCommand, createTestInteraction("register", aliceID, usernameOption("alice")))

	responses := ctx.Responses()
	require.NotEmpty(t, responses)
	assert.Equal(t, discordgo.InteractionResponseDeferredChannelMessageWithSource, responses[0].Type)

	embed := ctx.LastEmbed()
	require.NotNil(t, embed)
	assert.Equal(t, TitleRegistered, embed.Title)
	assert.Contains(t, embed.Description, "`alice`")
	honor, ok := fieldValue(embed, "Starting Honor")
	assert.True(t, ok)
	assert.Equal(t, "1,500", honor)

	rec, err := ctx.Store.Find(context.Background(), 1001)
	require.NoError(t, err)
	assert.Equal(t, "alice", rec.ExternalUsername)
	assert.Equal(t, 1500, rec.RegistrationHonor)
}

func TestRegisterCommand_Failures(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		username string
		setup    func(ctx *TestContext)
		expected string
	}{
		{
			name:     "missing username",
			userID:   aliceID,
			username: "  ",
			expected: MsgRegisterUsage,
		},
		{
			name:     "unknown codewars user",
			userID:   aliceID,
			username: "ghost",
			expected: MsgCodewarsUnreachable,
		},
		{
			name:     "already registered",
			userID:   aliceID,
			username: "bob",
			setup: func(ctx *TestContext) {
				ctx.SetHonor("alice", 1)
				ctx.SetHonor("bob", 1)
				ctx.Run(RegisterCommand, createTestInteraction("register", aliceID, usernameOption("alice")))
			},
			expected: MsgAlreadyRegistered,
		},
		{
			name:     "username linked to someone else",
			userID:   "2002",
			username: "alice",
			setup: func(ctx *TestContext) {
				ctx.SetHonor("alice", 1)
				ctx.Run(RegisterCommand, createTestInteraction("register", aliceID, usernameOption("alice")))
			},
			expected: MsgUsernameTaken,
		},
		{
			name:     "non numeric user id",
			userID:   "not-a-snowflake",
			username: "alice",
			expected: MsgGenericError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := SetupTestContext(t)
			if tt.setup != nil {
				tt.setup(ctx)
				ctx.Reset()
			}

			ctx.Run(RegisterCommand, createTestInteraction("register", tt.userID, usernameOption(tt.username)))

			assert.Equal(t, tt.expected, ctx.LastContent())
			assert.Nil(t, ctx.LastEmbed())
		})
	}
}

func TestProfileCommand_NotRegistered(t *testing.T) {
	ctx := SetupTestContext(t)

	ctx.Run(ProfileCommand, createTestInteraction("profile", aliceID))

	assert.Equal(t, MsgNotRegistered, ctx.LastContent())
}

func TestProfileAndUpdate_Lifecycle(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.SetHonor("alice", 500)
	ctx.Run(RegisterCommand, createTestInteraction("register", aliceID, usernameOption("alice")))

	ctx.Reset()
	ctx.Run(ProfileCommand, createTestInteraction("profile", aliceID))
	embed := ctx.LastEmbed()
	require.NotNil(t, embed)
	assert.Equal(t, TitleProfile, embed.Title)
	for _, label := range []string{"(24h)", "(7d)", "(Month)"} {
		v, ok := fieldValue(embed, label)
		require.True(t, ok, label)
		assert.Equal(t, "0", v, label)
	}
	rank, _ := fieldValue(embed, "Rank")
	assert.Equal(t, "4 Kyu", rank)

	// Two days later alice has earned 150 honor.
	ctx.Clock.Advance(48 * time.Hour)
	ctx.SetHonor("alice", 650)

	ctx.Reset()
	ctx.Run(ProfileCommand, createTestInteraction("profile", aliceID))
	embed = ctx.LastEmbed()
	require.NotNil(t, embed)
	day, _ := fieldValue(embed, "(24h)")
	week, _ := fieldValue(embed, "(7d)")
	month, _ := fieldValue(embed, "(Month)")
	current, _ := fieldValue(embed, "Current Honor")
	assert.Equal(t, "0", day)
	assert.Equal(t, "+150", week)
	assert.Equal(t, "+150", month)
	assert.Equal(t, "650", current)

	ctx.Reset()
	ctx.Run(UpdateCommand, createTestInteraction("update", aliceID))
	embed = ctx.LastEmbed()
	require.NotNil(t, embed)
	assert.Equal(t, TitleUpdated, embed.Title)
	prev, _ := fieldValue(embed, "Previous Honor")
	curr, _ := fieldValue(embed, "Current Honor")
	change, _ := fieldValue(embed, "Honor Change")
	assert.Equal(t, "500", prev)
	assert.Equal(t, "650", curr)
	assert.Equal(t, "+150", change)

	ctx.Reset()
	ctx.Run(ProfileCommand, createTestInteraction("profile", aliceID))
	embed = ctx.LastEmbed()
	require.NotNil(t, embed)
	week, _ = fieldValue(embed, "(7d)")
	assert.Equal(t, "0", week)
}

func TestUpdateCommand_NotRegistered(t *testing.T) {
	ctx := SetupTestContext(t)

	ctx.Run(UpdateCommand, createTestInteraction("update", aliceID))

	assert.Equal(t, MsgNotRegistered, ctx.LastContent())
}

func TestUpdateCommand_CodewarsDown(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.SetHonor("alice", 500)
	ctx.Run(RegisterCommand, createTestInteraction("register", aliceID, usernameOption("alice")))
	ctx.Codewars.Close()

	ctx.Reset()
	ctx.Run(UpdateCommand, createTestInteraction("update", aliceID))

	assert.Equal(t, MsgCodewarsUnreachable, ctx.LastContent())
	rec, err := ctx.Store.Find(context.Background(), 1001)
	require.NoError(t, err)
	assert.Equal(t, 500, rec.LastHonor)
}

func TestOverwriteCommand(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.SetHonor("alice", 500)
	ctx.SetHonor("alice_new", 700)
	ctx.Run(RegisterCommand, createTestInteraction("register", aliceID, usernameOption("alice")))

	t.Run("usage", func(t *testing.T) {
		ctx.Reset()
		ctx.Run(OverwriteCommand, createTestInteraction("overwrite", aliceID))
		assert.Equal(t, MsgOverwriteUsage, ctx.LastContent())
	})

	t.Run("unknown new name", func(t *testing.T) {
		ctx.Reset()
		ctx.Run(OverwriteCommand, createTestInteraction("overwrite", aliceID, usernameOption("ghost")))
		assert.Equal(t, MsgCodewarsUnreachable, ctx.LastContent())
	})

	t.Run("not registered", func(t *testing.T) {
		ctx.Reset()
		ctx.Run(OverwriteCommand, createTestInteraction("overwrite", "3003", usernameOption("alice_new")))
		assert.Equal(t, MsgNotRegistered, ctx.LastContent())
	})

	t.Run("success", func(t *testing.T) {
		ctx.Reset()
		ctx.Run(OverwriteCommand, createTestInteraction("overwrite", aliceID, usernameOption("alice_new")))
		embed := ctx.LastEmbed()
		require.NotNil(t, embed)
		assert.Equal(t, TitleOverwritten, embed.Title)
		assert.Contains(t, embed.Description, "`alice_new`")

		rec, err := ctx.Store.Find(context.Background(), 1001)
		require.NoError(t, err)
		assert.Equal(t, "alice_new", rec.ExternalUsername)
		assert.Equal(t, 500, rec.LastHonor)
	})
}

func TestUsersCommand_Empty(t *testing.T) {
	ctx := SetupTestContext(t)

	ctx.Run(UsersCommand, createTestInteraction("users", aliceID))

	assert.Equal(t, MsgNoUsers, ctx.LastContent())
}

func TestUsersCommand_Leaderboard(t *testing.T) {
	ctx := SetupTestContext(t)
	users := map[string]string{"a": "1", "b": "2", "c": "3", "d": "4", "e": "5"}
	for name, id := range users {
		ctx.SetHonor(name, 100)
		ctx.Run(RegisterCommand, createTestInteraction("register", id, usernameOption(name)))
	}

	// Three days pass: nobody is inside the 24h window any more.
	ctx.Clock.Advance(72 * time.Hour)
	ctx.SetHonor("a", 150)
	ctx.SetHonor("b", 400)
	ctx.SetHonor("c", 90)
	ctx.SetHonor("d", 300)
	ctx.SetHonor("e", 100)

	ctx.Reset()
	ctx.Run(UsersCommand, createTestInteraction("users", aliceID))

	embed := ctx.LastEmbed()
	require.NotNil(t, embed)
	assert.Equal(t, TitleLeaderboard, embed.Title)

	want := "**🏆 30-Day Top 3**\n" +
		"   1. `b` - +300 honor\n" +
		"   2. `d` - +200 honor\n" +
		"   3. `a` - +50 honor\n" +
		"\n" +
		"**🏆 7-Day Top 3**\n" +
		"   1. `b` - +300 honor\n" +
		"   2. `d` - +200 honor\n" +
		"   3. `a` - +50 honor\n" +
		"\n" +
		"**🏆 1-Day Top 3**\n" +
		"   " + MsgNoDataAvailable + "\n"
	assert.Equal(t, want, embed.Description)
}
