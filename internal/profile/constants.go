package profile

import "image/color"

// Card geometry in pixels
const (
	CardWidth  = 800
	CardHeight = 296

	avatarSize = 256
	avatarX    = 48
	avatarY    = 20
	ringWidth  = 6

	textX     = 350
	textRight = 750
	nameY     = 95
	levelY    = 160

	barX      = 350
	barY      = 190
	barWidth  = 400
	barHeight = 60

	nameSize  = 48
	levelSize = 36
	xpSize    = 28
)

var (
	solidBackground   = color.RGBA{R: 44, G: 44, B: 44, A: 255}
	trackColor        = color.RGBA{R: 72, G: 72, B: 72, A: 255}
	placeholderAvatar = color.RGBA{R: 99, G: 99, B: 99, A: 255}
	textColor         = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	subtleTextColor   = color.RGBA{R: 190, G: 190, B: 190, A: 255}
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// Log messages
const (
	LogMsgCatalogLoaded       = "Background catalog loaded"
	LogMsgCatalogDirMissing   = "Background directory missing, only the default background is available"
	LogMsgBackgroundLoadError = "Failed to load background, using solid fill"
	LogMsgAvatarDecodeError   = "Failed to decode avatar, using placeholder"
	LogMsgProfileRendered     = "Profile card rendered"
)

// Error messages
const (
	ErrMsgReadCatalogDir    = "failed to read background directory: %w"
	ErrMsgUnknownBackground = "unknown background: %s"
	ErrMsgOpenBackground    = "failed to open background %s: %w"
	ErrMsgDecodeBackground  = "failed to decode background %s: %w"
	ErrMsgParseFont         = "failed to parse font: %w"
	ErrMsgCreateFace        = "failed to create font face: %w"
	ErrMsgEncodeCard        = "failed to encode profile card: %w"
)
