package profile

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // avatars can be gifs
	"image/png"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/osse101/MinesocBot_Go/internal/leveling"
	"github.com/osse101/MinesocBot_Go/internal/logger"
	"github.com/osse101/MinesocBot_Go/internal/metrics"
	"github.com/osse101/MinesocBot_Go/internal/utils"
)

const ellipsis = "…"

// Card holds what a profile card shows
type Card struct {
	DisplayName string
	Level       int
	XP          int64
	// Avatar is the encoded avatar image. Nil renders a placeholder.
	Avatar []byte
	// Accent is a 0xRRGGBB colour for the name, ring and progress fill
	Accent     uint32
	Background string
}

// Backgrounds supplies background images by key
type Backgrounds interface {
	Open(key string) (image.Image, error)
}

// Renderer draws profile cards as PNG images. It is safe for concurrent use.
type Renderer struct {
	backgrounds Backgrounds
	regular     *opentype.Font
	bold        *opentype.Font
}

// NewRenderer parses the bundled Go fonts. backgrounds may be nil.
func NewRenderer(backgrounds Backgrounds) (*Renderer, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgParseFont, err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgParseFont, err)
	}
	return &Renderer{backgrounds: backgrounds, regular: regular, bold: bold}, nil
}

// Render draws the card and returns it PNG encoded
func (r *Renderer) Render(ctx context.Context, card Card) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	// Faces carry glyph caches and are not safe to share between goroutines
	nameFace, err := r.face(r.bold, nameSize)
	if err != nil {
		return nil, err
	}
	defer nameFace.Close()
	levelFace, err := r.face(r.bold, levelSize)
	if err != nil {
		return nil, err
	}
	defer levelFace.Close()
	xpFace, err := r.face(r.regular, xpSize)
	if err != nil {
		return nil, err
	}
	defer xpFace.Close()

	accent := accentColor(card.Accent)
	canvas := image.NewRGBA(image.Rect(0, 0, CardWidth, CardHeight))

	r.drawBackground(ctx, canvas, card.Background)
	drawAvatar(ctx, canvas, card.Avatar, accent)

	name := fitText(nameFace, card.DisplayName, textRight-textX)
	drawText(canvas, nameFace, name, accent, textX, nameY)
	drawText(canvas, levelFace, fmt.Sprintf("LEVEL %d", card.Level), textColor, textX, levelY)

	xpLabel := fmt.Sprintf("%s / %s XP", utils.HumanizeCount(card.XP), utils.HumanizeCount(leveling.XPRequired(card.Level+1)))
	xpWidth := font.MeasureString(xpFace, xpLabel).Ceil()
	drawText(canvas, xpFace, xpLabel, subtleTextColor, textRight-xpWidth, levelY)

	drawProgressBar(canvas, leveling.Progress(card.XP, card.Level), accent)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf(ErrMsgEncodeCard, err)
	}

	metrics.ProfilesRendered.Inc()
	log.Debug(LogMsgProfileRendered, "level", card.Level, "background", card.Background, "bytes", buf.Len())
	return buf.Bytes(), nil
}

func (r *Renderer) face(f *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateFace, err)
	}
	return face, nil
}

// drawBackground scales the background to cover the card, cropping the overflow.
// Unknown or unreadable backgrounds fall back to a solid fill.
func (r *Renderer) drawBackground(ctx context.Context, dst *image.RGBA, key string) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(solidBackground), image.Point{}, draw.Src)
	if r.backgrounds == nil || key == "" {
		return
	}
	src, err := r.backgrounds.Open(key)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgBackgroundLoadError, "background", key, "error", err)
		return
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, coverRect(src.Bounds(), dst.Bounds()), draw.Src, nil)
}

// coverRect is the largest centred region of src with the aspect ratio of dst
func coverRect(src, dst image.Rectangle) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	dw, dh := dst.Dx(), dst.Dy()
	if sw == 0 || sh == 0 || dw == 0 || dh == 0 {
		return src
	}
	if sw*dh > sh*dw {
		w := sh * dw / dh
		x := src.Min.X + (sw-w)/2
		return image.Rect(x, src.Min.Y, x+w, src.Max.Y)
	}
	h := sw * dh / dw
	y := src.Min.Y + (sh-h)/2
	return image.Rect(src.Min.X, y, src.Max.X, y+h)
}

func drawAvatar(ctx context.Context, dst *image.RGBA, data []byte, accent color.RGBA) {
	center := image.Pt(avatarX+avatarSize/2, avatarY+avatarSize/2)
	ring := newCircleMask(center, avatarSize/2+ringWidth)
	draw.DrawMask(dst, ring.Bounds(), image.NewUniform(accent), image.Point{}, ring, ring.Bounds().Min, draw.Over)

	frame := image.Rect(avatarX, avatarY, avatarX+avatarSize, avatarY+avatarSize)
	face := image.NewRGBA(frame)
	draw.Draw(face, frame, image.NewUniform(placeholderAvatar), image.Point{}, draw.Src)

	if len(data) > 0 {
		src, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			logger.FromContext(ctx).Debug(LogMsgAvatarDecodeError, "error", err)
		} else {
			draw.CatmullRom.Scale(face, frame, src, coverRect(src.Bounds(), frame), draw.Src, nil)
		}
	}

	mask := newCircleMask(center, avatarSize/2)
	draw.DrawMask(dst, frame, face, frame.Min, mask, frame.Min, draw.Over)
}

func drawProgressBar(dst *image.RGBA, progress float64, accent color.RGBA) {
	track := image.Rect(barX, barY, barX+barWidth, barY+barHeight)
	radius := float64(barHeight) / 2
	trackMask := &roundedRectMask{rect: track, radius: radius}
	draw.DrawMask(dst, track, image.NewUniform(trackColor), image.Point{}, trackMask, track.Min, draw.Over)

	if progress <= 0 {
		return
	}
	// a fill narrower than the bar height would lose its rounded ends
	width := int(progress * barWidth)
	if width < barHeight {
		width = barHeight
	}
	fill := image.Rect(barX, barY, barX+width, barY+barHeight)
	fillMask := &roundedRectMask{rect: fill, radius: radius}
	draw.DrawMask(dst, fill, image.NewUniform(accent), image.Point{}, fillMask, fill.Min, draw.Over)
}

func drawText(dst *image.RGBA, face font.Face, s string, c color.Color, x, y int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// fitText truncates s with an ellipsis until it fits within maxWidth pixels
func fitText(face font.Face, s string, maxWidth int) string {
	limit := fixed.I(maxWidth)
	if font.MeasureString(face, s) <= limit {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + ellipsis
		if font.MeasureString(face, candidate) <= limit {
			return candidate
		}
	}
	return ellipsis
}
