package sys

// @config
const (
	MsgConfigFailedToLoad = "Failed to load config: %v"
	MsgConfigMissingToken = "DISCORD_TOKEN is not set in .env file"
)

// @database
const (
	MsgDatabaseInitSuccess = "Database initialized successfully"
	MsgDatabaseTableError  = "Failed to create table: %w"
	MsgDatabasePragmaError = "Failed to set pragma %s: %w"
)

// @loader
const (
	MsgLoaderUpToDate           = "Commands are up to date. (Hash: %s)"
	MsgLoaderGuildRegister      = "Registering commands to guild: %s"
	MsgLoaderGlobalClear        = "Clearing global commands..."
	MsgLoaderGlobalClearFail    = "Failed to clear global commands: %v"
	MsgLoaderCommandRegistered  = "Registered guild command: %s"
	MsgLoaderRegisteringGlobal  = "Registering commands globally..."
	MsgLoaderRegisterGlobalFail = "failed to register global commands: %w"
	MsgLoaderGlobalRegistered   = "Registered global command: %s"
	MsgLoaderPanicRecovered     = "Recovered from panic in handler: %v"
	MsgDaemonStarting           = "Starting..."
	MsgGenericError             = "%v"
)

// @bot
const (
	MsgBotStarting     = "Starting %s..."
	MsgBotReady        = "%s is ready! (ID: %s) (PID: %d) (%dms)"
	MsgBotShutdown     = "Shutting down %s..."
	MsgBotRegisterFail = "Command registration failed: %v"
)

// @reminder
const (
	// System logs
	MsgReminderFailedToQueryDue   = "Failed to query due reminders: %v"
	MsgReminderFailedToSend       = "Failed to send reminder %d: %v"
	MsgReminderDelivered          = "Delivered reminder %d for user %s"
	MsgReminderFailedToSave       = "Failed to save reminder: %v"
	MsgReminderFailedToDeleteAll  = "Failed to delete all reminders: %v"
	MsgReminderFailedToQuery      = "Failed to query reminders: %v"
	MsgReminderAutocompleteFailed = "Failed to query reminders for autocomplete: %v"
	MsgReminderRespondError       = "Failed to respond to interaction: %v"
	MsgReminderShutdown           = "Shutting down reminder sweep..."

	// User-facing messages
	ErrReminderInvalidDuration = "❌ Invalid duration. Use a number followed by `s`, `m`, `h` or `d` (like `10m` or `2h`), or a phrase like 'tomorrow at 9am'."
	ErrReminderPastTime        = "❌ The reminder time must be in the future!"
	ErrReminderSaveFailed      = "❌ Failed to save reminder. Please try again."
	ErrReminderFetchFailed     = "❌ Failed to fetch reminders."
	ErrReminderDismissFailed   = "❌ Failed to dismiss reminder."
	MsgReminderNoActive        = "You have no active reminders."
	MsgReminderDismissed       = "Reminder dismissed!"
	MsgReminderDismissedBatch  = "Dismissed %d reminders."
	MsgReminderSetSuccess      = "✅ **Reminder set!**\n\n**Message:** %s\n**When:** <t:%d:F> (<t:%d:R>)"
	MsgReminderListHeader      = "⏰ **Your reminders (%d):**\n\n"
	MsgReminderListItem        = "**%d.** \"%s\" — %s\n"
	MsgReminderChoiceAll       = "Dismiss all (%d reminders)"
)

// @economy
const (
	// System logs
	MsgEconomyStoreError    = "Store error: %v"
	MsgEconomyTransferDone  = "Transferred %d coins from %s to %s"
	MsgEconomyDailyClaimed  = "User %s claimed daily reward of %d coins"
	MsgEconomyRespondError  = "Failed to respond to interaction: %v"

	// User-facing messages
	ErrEconomyGeneric      = "❌ Something went wrong. Please try again."
	ErrEconomyInsufficient = "❌ You don't have enough coins for that."
	ErrEconomySelfGive     = "❌ You can't give coins to yourself."
	ErrEconomyBadAmount    = "❌ The amount must be a positive number."
	MsgEconomyBalance      = "💰 <@%s> has **%d** coins."
	MsgEconomyDailyReward  = "🎁 You claimed your daily reward: **%d** coins!"
	MsgEconomyDailyWait    = "⏳ You already claimed your daily reward. Try again in %s."
	MsgEconomyGiveSuccess  = "✅ Gave **%d** coins to <@%s>."
	MsgEconomyRank         = "⭐ <@%s> is level **%d** with **%d** xp."
	MsgEconomyLevelUp      = "🎉 <@%s> leveled up to level **%d**!"
	MsgEconomyLeaderboard  = "🏆 **Coin leaderboard:**\n\n"
	MsgEconomyBoardEmpty   = "Nobody has any coins yet."
)

// @ai
const (
	// System logs
	MsgAIRequestFailed = "Completion request failed: %v"
	MsgAIRespondError  = "Failed to respond to interaction: %v"

	// User-facing messages
	ErrAIDisabled    = "❌ The AI backend is not configured."
	ErrAITimeout     = "❌ The AI took too long to answer. Try again later."
	ErrAIFailed      = "❌ AI error. Try again later."
	ErrAIRateLimited = "⏳ Slow down! Wait a moment before asking again."
)

// @trivia
const (
	MsgTriviaRespondError = "Failed to respond to interaction: %v"
	MsgTriviaQuestion     = "🧠 **Trivia:** %s"
	MsgTriviaActive       = "There's already an active trivia question in this channel!"
	MsgTriviaCorrect      = "🎉 <@%s> got it right! **+%d** coins."
)

// @rps
const (
	ErrRPSBadChoice = "Choose rock, paper or scissors."
	MsgRPSResult    = "You: %s\nBot: %s\n**%s**"
	MsgRPSTie       = "Tie!"
	MsgRPSWin       = "You win! 🎉"
	MsgRPSLose      = "I win! 😎"
)

// @poll
const (
	MsgPollRespondError = "Failed to respond to interaction: %v"
	MsgPollReactFail    = "Failed to add poll reaction: %v"
	MsgPollTallyFail    = "Failed to tally poll results: %v"
	ErrPollBadOptions   = "❌ Provide 2–5 comma-separated options."
	MsgPollResultHeader = "📊 **Results: %s**\n\n"
)

// @mod
const (
	MsgModWarnLogged     = "Warned user %s in guild %s"
	MsgModStoreError     = "Store error: %v"
	MsgModRespondError   = "Failed to respond to interaction: %v"
	ErrModGeneric        = "❌ Something went wrong. Please try again."
	MsgModWarnSuccess    = "⚠️ Warned <@%s>: %s"
	MsgModNoWarnings     = "<@%s> has no warnings. 🎉"
	MsgModWarningsHeader = "⚠️ **Warnings for <@%s> (%d):**\n\n"
)

// @roles
const (
	MsgRolesBindFail     = "Failed to store binding: %v"
	MsgRolesGrantFail    = "Failed to grant role %s to user %s: %v"
	MsgRolesRevokeFail   = "Failed to remove role %s from user %s: %v"
	MsgRolesRespondError = "Failed to respond to interaction: %v"
	ErrRolesGeneric      = "❌ Something went wrong. Please try again."
	ErrRolesBadMessageID = "❌ That doesn't look like a valid message ID."
	ErrRolesNotFound     = "❌ No binding found for that message and emoji."
	MsgRolesBound        = "✅ Reacting with %s on that message now grants <@&%s>."
	MsgRolesUnbound      = "✅ Binding removed."
)

// @levels
const (
	MsgLevelsAwardFail    = "Failed to award xp to %s: %v"
	MsgLevelsAnnounceFail = "Failed to announce level-up: %v"
)

// @heartbeat
const (
	MsgHeartbeatListening = "Listening on :%d"
	MsgHeartbeatStopped   = "Server stopped: %v"
	MsgHeartbeatShutdown  = "Shutting down heartbeat server..."
)
