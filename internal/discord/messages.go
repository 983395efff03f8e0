package discord

// Friendly message constants for Discord responses
const (
	// Registration
	MsgRegisterUsage     = "❌ **Invalid Data**\n\nUsage: `/register <CodewarsUsername>`"
	MsgOverwriteUsage    = "❌ **Invalid Data**\n\nUsage: `/overwrite <newCodewarsUsername>`"
	MsgAlreadyRegistered = "⚠️ You are already registered! Use `/overwrite` if you want to update your username."
	MsgNotRegistered     = "❌ You are not registered. Use `/register` to sign up first."
	MsgUsernameTaken     = "⚠️ **Username Taken**\nThat Codewars username is already linked to another account."
	MsgInvalidInput      = "❌ **Invalid Data**"

	// Codewars
	MsgCodewarsUnreachable = "❌ Failed to fetch Codewars data. Please check the username."

	// Leaderboard
	MsgNoUsers         = "❌ No users registered yet."
	MsgNoDataAvailable = "No data available."

	MsgGenericError = "❌ Something went wrong."
	MsgPong         = "Pong! 🏓"
)

// Embed titles
const (
	TitleRegistered    = "✅ Success!"
	TitleProfile       = "👤 Your Profile"
	TitleUpdated       = "✅ Update Successful!"
	TitleOverwritten   = "✅ Success!"
	TitleLeaderboard   = "📊 Leaderboard"
	TitleLeaderboardOf = "🏆 %d-Day Top %d"
)

// Embed colors
const (
	ColorSuccess = 0x2ecc71
	ColorInfo    = 0x3498db
	ColorGold    = 0xf1c40f
)

// Command option names
const (
	OptionUsername = "username"
)

// Log messages
const (
	LogMsgCommandReceived   = "Command received"
	LogMsgCommandFailed     = "Command failed"
	LogMsgInvalidPlatformID = "Interaction user has a non-numeric ID"
)
