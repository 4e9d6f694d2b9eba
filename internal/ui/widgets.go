package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	buttonFill  = color.RGBA{70, 70, 70, 255}
	labelColor  = color.RGBA{230, 230, 230, 255}
	toolbarFill = color.RGBA{20, 20, 20, 255}
)

type button struct {
	rect    image.Rectangle
	label   string
	onClick func()
}

func (b *button) contains(p image.Point) bool {
	return p.In(b.rect)
}

func (b *button) draw(dst *ebiten.Image) {
	vector.DrawFilledRect(dst, float32(b.rect.Min.X), float32(b.rect.Min.Y), float32(b.rect.Dx()), float32(b.rect.Dy()), buttonFill, false)
	text.Draw(dst, b.label, basicfont.Face7x13, b.rect.Min.X+10, b.rect.Min.Y+b.rect.Dy()/2+4, labelColor)
}

type confirmDialog struct {
	message   string
	visible   bool
	onConfirm func()
}

const (
	dialogW = 400
	dialogH = 160
)

func (c *confirmDialog) layout(viewW, viewH int) (box, yes, no image.Rectangle) {
	x := (viewW - dialogW) / 2
	y := (viewH - dialogH) / 2
	box = image.Rect(x, y, x+dialogW, y+dialogH)
	yes = image.Rect(x+40, y+90, x+140, y+130)
	no = image.Rect(x+dialogW-140, y+90, x+dialogW-40, y+130)
	return box, yes, no
}

func (c *confirmDialog) draw(dst *ebiten.Image) {
	if !c.visible {
		return
	}
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	vector.DrawFilledRect(dst, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 120}, false)
	box, yes, no := c.layout(w, h)
	vector.DrawFilledRect(dst, float32(box.Min.X), float32(box.Min.Y), float32(box.Dx()), float32(box.Dy()), color.RGBA{30, 30, 30, 255}, false)
	text.Draw(dst, c.message, basicfont.Face7x13, box.Min.X+20, box.Min.Y+40, labelColor)
	vector.DrawFilledRect(dst, float32(yes.Min.X), float32(yes.Min.Y), float32(yes.Dx()), float32(yes.Dy()), color.RGBA{70, 120, 70, 255}, false)
	vector.DrawFilledRect(dst, float32(no.Min.X), float32(no.Min.Y), float32(no.Dx()), float32(no.Dy()), color.RGBA{120, 70, 70, 255}, false)
	text.Draw(dst, "Yes", basicfont.Face7x13, yes.Min.X+38, yes.Min.Y+24, labelColor)
	text.Draw(dst, "No", basicfont.Face7x13, no.Min.X+42, no.Min.Y+24, labelColor)
}

// click handles a press while the dialog is open. Presses outside both
// buttons are swallowed.
func (c *confirmDialog) click(p image.Point, viewW, viewH int) {
	if !c.visible {
		return
	}
	_, yes, no := c.layout(viewW, viewH)
	switch {
	case p.In(yes):
		c.visible = false
		if c.onConfirm != nil {
			c.onConfirm()
		}
	case p.In(no):
		c.visible = false
	}
}
