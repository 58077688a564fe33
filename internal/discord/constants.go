package discord

import "time"

// Embed colors
const (
	ColorNeutral = 0x2f3136
	ColorSuccess = 0x2ecc71
	ColorError   = 0xe74c3c
	ColorInfo    = 0x3498db
	ColorGold    = 0xf1c40f
	ColorBlurple = 0x5865f2
)

// Footer constants for standardized embed footers
const (
	FooterMinesoc      = "Minesoc"
	FooterMinesocOwner = "Minesoc Owner"
)

// Friendly message constants for Discord responses
const (
	MsgGenericError       = "❌ Something went wrong."
	MsgStoreUnavailable   = "🛠️ **Storage is having a moment.**\nPlease try again shortly."
	MsgInsufficientFunds  = "⚠️ **Not enough credits!**\nYou can't afford that yet."
	MsgAlreadyOwned       = "🎒 You already own that."
	MsgNotFound           = "❓ **Not found.** Maybe check the spelling?"
	MsgInvalidCosmetic    = "🎨 That color or background isn't available to you."
	MsgInvalidPrefix      = "⚠️ A prefix must be 1-15 characters, contain no spaces and differ from the default."
	MsgCommandToggleGuard = "🔒 That command can't be disabled."
	MsgUnknownCommand     = "❓ There is no command with that name."
	MsgCooldownActive     = "⏳ **Whoa there!**\nYou need to wait a bit before doing that again."
	MsgReminderCap        = "⏰ You already have the maximum number of reminders."
	MsgReminderTime       = "⏰ I couldn't understand that time. Try `in 2 hours`, `tomorrow at 5pm` or `90m`."
	MsgReminderPast       = "⏰ That time is in the past."
	MsgInvalidInput       = "⚠️ That input isn't valid."
	MsgInvalidID          = "⚠️ That isn't a valid Discord id."

	MsgDeniedBlacklisted   = "🚫 You are blacklisted from using this bot."
	MsgDeniedDisabled      = "🔕 That command is disabled in this server."
	MsgDeniedGuildOnly     = "🏠 That command only works in a server."
	MsgOwnerOnly           = "🔒 Only the bot owner can use that."
	MsgManageGuildRequired = "🔒 You need the **Manage Server** permission for that."
)

// General and level commands
const (
	MsgPong              = "Pong! 🏓 `%dms`"
	MsgHelpTitle         = "Minesoc Commands"
	MsgHelpTextMarker    = " ✏️"
	MsgHelpFooter        = "✏️ also works with the server prefix"
	MsgSlashOnly         = "That one is a slash command, use `/%s`."
	MsgNoXPSelf          = "**%s**, you have not received XP yet."
	MsgNoXPOther         = "**%s**, this member has not received XP yet."
	MsgProfileBot        = "🤖 Bots don't earn XP."
	MsgInvalidColor      = "That's not a valid color! Try a hex value (e.g #FF0000) or Discord color (e.g blurple)."
	MsgColorChanged      = "Changed your color to `#%06X`"
	MsgBackgroundChanged = "Changed your background to `%s`"
	MsgBackgroundReset   = "Reset your profile background."
	MsgBackgroundsTitle  = "Available Backgrounds"
	MsgBackgroundsNone   = "You don't own any backgrounds yet. Visit `/shop`."
	MsgLeaderboardTitle  = "Top %d in %s"
	MsgLeaderboardTop    = "Top Member: 🏆 <@%d>"
	MsgLeaderboardSelf   = "you have not received XP yet."
	MsgLeaderboardEmpty  = "Nobody has earned XP here yet."
	MsgThisServer        = "this server"
	MsgLevelUp           = "🎉 **%s** reached level **%d**!"
	MsgGiveXP            = "Gave **%s** XP to **%s**. They are now level **%d**."
	MsgPrefixReply       = "👋 My prefix here is `%s`. Slash commands work too, try `/help`."
)

// Configuration commands
const (
	MsgPersistenceTitle       = "%s Persistence Settings"
	MsgPersistenceBody        = "XP gain on this server is %s\nLevel-Up messages on this server are %s"
	MsgXPToggled              = "**%s**, you %s the level system."
	MsgLevelupToggled         = "**%s**, you %s level-up messages."
	MsgPrefixSet              = "Successfully updated prefix to: `%s`"
	MsgPrefixReset            = "Successfully reset prefix to `%s`"
	MsgPrefixAlreadyDefault   = "The bot's prefix is already the default one. (`%s`)"
	MsgMentionToggled         = "Mentionable prefix %s."
	MsgPrefixFooter           = "Your prefix can be up to %d characters long"
	MsgCommandDisabled        = "Disabled `/%s` in this server."
	MsgCommandAlreadyDisabled = "`/%s` is already disabled."
	MsgCommandEnabled         = "Enabled `/%s` in this server."
	MsgCommandNotDisabled     = "`/%s` is not disabled."
	MsgDisabledCommandsTitle  = "Disabled Commands"
	MsgNoDisabledCommands     = "Every command is enabled."
)

// Economy commands
const (
	MsgDailyPaid         = "✅ You got **%s** daily!"
	MsgDailyStreak       = "\n\n🔥 Current Streak: `%d`"
	MsgDailyStreakLost   = "\nYour previous streak expired."
	MsgBalance           = "💎 You have **%s**"
	MsgBalanceEmpty      = "You haven't earned any credits yet."
	MsgShopTitle         = "🛒 Background Shop"
	MsgShopHint          = "Buy a background with `/buy` and equip it with `/profile background`."
	MsgShopEmpty         = "The shop is empty right now."
	MsgPurchased         = "🛍️ You bought **%s** for %s."
	MsgPurchaseEquipHint = "`/profile background %s`"
)

// Reminder commands
const (
	MsgReminderTitle      = "⏰ Reminder!"
	MsgReminderCreated    = "⏰ Reminder `#%d` set for %s."
	MsgReminderRepeats    = " It repeats every **%s**."
	MsgReminderRepeat     = "⏰ The repeat interval must be a duration like `24h`, between %s and %s."
	MsgReminderDeleted    = "🗑️ Deleted reminder `#%d`."
	MsgRemindersTitle     = "📆 Reminders"
	MsgRemindersNone      = "You have no reminders. Create one with `/remind set`."
	MsgRemindersFooter    = "%d / %d reminders"
	reminderPreviewLength = 60
)

// Tag commands
const (
	MsgTagCreated       = "🔖 Created tag `%s`."
	MsgTagEdited        = "🔖 Updated tag `%s`."
	MsgTagRenamed       = "🔖 Renamed `%s` to `%s`."
	MsgTagDeleted       = "🗑️ Deleted tag `%s`."
	MsgTagFooter        = "Created at"
	MsgTagListTitle     = "🔖 Tag List"
	MsgTagListNoneSelf  = "You don't have any tags."
	MsgTagListNoneOther = "<@%s> doesn't have any tags."
	MsgTagsNone         = "This server doesn't have tags."
	MsgTagBoardTitle    = "📋 %s's Leaderboard"
	MsgTagBoardUsages   = "%s **%s** from <@%d> with `%d` %s.\n"
	MsgTagBoardDate     = "%s **%s** from <@%d> created on `%s`.\n"
	MsgTagUsage         = "Usage: `tag <name>` or `tag raw <name>`. Manage tags with `/tag`."
	MsgTagExists        = "That tag already exists."
	MsgTagNotOwned      = "That tag belongs to another member."
	MsgTagNameInvalid   = "Tag names are 1-20 characters without spaces and can't be a `/tag` subcommand."
)

// Poll commands
const (
	MsgPollCreated     = "📊 Poll posted."
	MsgPollResultTitle = "📊 Result of %q"
	MsgPollResultLine  = "%s %s: **%d** %s\n"
	MsgPollNotAPoll    = "That message isn't one of my polls."
	MsgPollInvalid     = "⚠️ A poll needs a question and 2-10 options separated by `|`."
)

// Owner commands
const (
	MsgBlacklistAdded   = "🚫 Blacklisted %s `%d`."
	MsgBlacklistRemoved = "✅ Removed %s `%d` from the blacklist."
	MsgBlacklistMissing = "%s `%d` is not blacklisted."
	MsgBlacklistTitle   = "%s Blacklist"
	MsgBlacklistEmpty   = "Nothing is blacklisted."
)

// Blacklist notification sent to the owner of a blacklisted guild
const (
	MsgGuildBlacklistedTitle = "Leaving your server"
	MsgGuildBlacklistedBody  = "**%s** is blacklisted from using Minesoc, so I have left it."
	MsgGuildBlacklistedField = "Reason"
)

// Presence rotation entries
const (
	StatusGuildsFormat  = "%s guilds"
	StatusMembersFormat = "%s members"
	StatusHelp          = "/help"
)

// Log messages
const (
	LogMsgBotReady              = "Discord bot is ready"
	LogMsgBotStarting           = "Discord bot starting"
	LogMsgBotStopping           = "Discord bot stopping"
	LogMsgCommandsChecking      = "Checking Discord commands"
	LogMsgCommandsUnchanged     = "Commands unchanged, skipping registration"
	LogMsgCommandsUpdated       = "Commands updated"
	LogMsgCommandFailed         = "Command failed"
	LogMsgCommandDenied         = "Command denied"
	LogMsgHandlerPanic          = "Recovered panic in gateway handler"
	LogMsgRespondFailed         = "Failed to respond to interaction"
	LogMsgEditFailed            = "Failed to edit interaction response"
	LogMsgReplyFailed           = "Failed to reply to text command"
	LogMsgPollSeedFailed        = "Failed to finish setting up poll"
	LogMsgAwardFailed           = "Failed to award message XP"
	LogMsgPrefixLookupFailed    = "Failed to resolve guild prefix"
	LogMsgGuildGateBlocked      = "Leaving blacklisted guild"
	LogMsgOwnerNotifyFailed     = "Failed to notify blacklisted guild owner"
	LogMsgGuildLeaveFailed      = "Failed to leave blacklisted guild"
	LogMsgAnnounceFailed        = "Failed to post level-up announcement"
	LogMsgAnnounceThrottled     = "Level-up announcement throttled"
	LogMsgStatusUpdateFailed    = "Failed to update presence"
	LogMsgReminderDMFallback    = "Reminder channel delivery failed, trying DM"
	LogMsgAvatarFetchFailed     = "Failed to fetch avatar"
	LogMsgUnhandledAutocomplete = "Unhandled autocomplete command"
	LogMsgAutocompleteFailed    = "Failed to load autocomplete choices"
	LogMsgXPGranted             = "XP granted by owner"
)

// Error messages
const (
	ErrMsgCreateSession   = "failed to create Discord session: %w"
	ErrMsgOpenSession     = "failed to open Discord connection: %w"
	ErrMsgFetchCommands   = "failed to fetch existing commands: %w"
	ErrMsgOverwrite       = "failed to bulk overwrite commands: %w"
	ErrMsgDeliverReminder = "failed to deliver reminder %d: %w"
	ErrMsgFetchAvatar     = "failed to fetch avatar: %w"
	ErrMsgAvatarStatus    = "failed to fetch avatar: status %d"
	ErrMsgAvatarTooLarge  = "avatar exceeds %d bytes"
	ErrMsgDecodeLevelUp   = "failed to decode level-up payload: %w"
	ErrMsgUpdateStatus    = "failed to update presence: %w"
	ErrMsgPostPoll        = "failed to post poll: %w"
	ErrMsgFetchPoll       = "failed to fetch poll message: %w"
)

// Limits
const (
	maxAutocompleteChoices = 25
	maxAvatarBytes         = 8 << 20
	maxGrantXP             = 1_000_000
	avatarSize             = "256"
	profileCardFile        = "rank_card.png"
	leaderboardMedals      = 3
	maxMessageLength       = 2000
	tagDateLayout          = "2006-01-02"
	defaultGiveXPReason    = "administrative grant"
	commandTimeoutSlack    = 2 * time.Second
)
