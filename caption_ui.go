package main

import (
	"image/color"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/santa/ecs/component"
)

const captionPanelHeight = 160

// CaptionUI shows the active dialogue cue in a panel across the middle of
// the screen. The panel only exists while a cue is active.
type CaptionUI struct {
	ui   *ebitenui.UI
	root *widget.Container

	panel  *widget.Container
	cue    string
	hint   string
	font   *ebtext.GoTextFaceSource
	height int
}

func NewCaptionUI(hint string) *CaptionUI {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Left: 40, Right: 40}),
		)),
	)
	return &CaptionUI{
		ui:   &ebitenui.UI{Container: root},
		root: root,
		hint: hint,
	}
}

// Sync rebuilds the panel when the active cue, the font or the window
// height changed since the last call.
func (c *CaptionUI) Sync(active *component.ActiveDialogue, font *ebtext.GoTextFaceSource, height int) {
	cue := ""
	if active != nil && active.Active {
		cue = active.Cue
	}
	if cue == c.cue && font == c.font && height == c.height {
		return
	}
	c.cue, c.font, c.height = cue, font, height

	if c.panel != nil {
		c.root.RemoveChild(c.panel)
		c.panel = nil
	}
	if cue == "" {
		return
	}

	face := c.face(height)
	label := widget.NewText(
		widget.TextOpts.Text(active.Text+"\n"+c.hint, &face, color.Black),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)

	c.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(colornames.Antiquewhite)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, captionPanelHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				StretchHorizontal:  true,
			}),
		),
	)
	c.panel.AddChild(label)
	c.root.AddChild(c.panel)
}

// face sizes the caption font to the window; the basic font stands in until
// the real one has loaded.
func (c *CaptionUI) face(height int) ebtext.Face {
	if c.font == nil {
		return ebtext.NewGoXFace(basicfont.Face7x13)
	}
	size := float64(height) / 30
	if size < 14 {
		size = 14
	}
	if size > 48 {
		size = 48
	}
	return &ebtext.GoTextFace{Source: c.font, Size: size}
}

func (c *CaptionUI) Visible() bool {
	return c.panel != nil
}

func (c *CaptionUI) Update() {
	c.ui.Update()
}

func (c *CaptionUI) Draw(screen *ebiten.Image) {
	c.ui.Draw(screen)
}
