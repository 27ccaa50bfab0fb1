package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget is the interface every panel widget implements.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	GetHeight() float64
}

// sliderWrapper adapts Slider to the Widget interface.
type sliderWrapper struct {
	*Slider
}

func (s *sliderWrapper) GetHeight() float64 {
	return s.H + 25 // track height + label space
}

// checkboxWrapper adapts Checkbox to the Widget interface.
type checkboxWrapper struct {
	*Checkbox
}

func (c *checkboxWrapper) GetHeight() float64 {
	return c.Size + 5
}

// buttonWrapper adapts Button to the Widget interface.
type buttonWrapper struct {
	*Button
}

func (b *buttonWrapper) GetHeight() float64 {
	return b.Height + 10
}

// Panel manages a scrollable column of labelled widgets grouped into
// sections.
type Panel struct {
	X, Y          float64
	Width, Height float64
	Widgets       []Widget
	Labels        []string
	ScrollOffset  float64

	BGColor     color.RGBA
	BorderColor color.RGBA

	sections []section
}

// section groups a contiguous run of widgets under a header.
type section struct {
	Title      string
	StartIndex int
	EndIndex   int // exclusive
}

// NewPanel creates a new UI panel.
func NewPanel(x, y, width, height float64) *Panel {
	return &Panel{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection adds a section header.
func (p *Panel) AddSection(title string) {
	p.sections = append(p.sections, section{
		Title:      title,
		StartIndex: len(p.Widgets),
	})
}

// EndSection closes the current section.
func (p *Panel) EndSection() {
	if len(p.sections) > 0 {
		p.sections[len(p.sections)-1].EndIndex = len(p.Widgets)
	}
}

// AddSlider adds a linear slider widget to the panel.
func (p *Panel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+10, 0, p.Width-20, label, min, max, value)
	p.Widgets = append(p.Widgets, &sliderWrapper{s})
	p.Labels = append(p.Labels, label)
	return s
}

// AddLogSlider adds a logarithmic slider widget to the panel. Both bounds
// must be positive.
func (p *Panel) AddLogSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+10, 0, p.Width-20, label, min, max, value)
	s.Logarithmic = true
	p.Widgets = append(p.Widgets, &sliderWrapper{s})
	p.Labels = append(p.Labels, label)
	return s
}

// AddCheckbox adds a checkbox widget to the panel.
func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, 0, label, value)
	p.Widgets = append(p.Widgets, &checkboxWrapper{c})
	p.Labels = append(p.Labels, label)
	return c
}

// AddButton adds a button widget to the panel. Buttons draw their own
// label, so no separate label line is reserved.
func (p *Panel) AddButton(label string, onClick func()) *Button {
	b := NewButton(p.X+10, 0, p.Width-20, 24, label, onClick)
	p.Widgets = append(p.Widgets, &buttonWrapper{b})
	p.Labels = append(p.Labels, "")
	return b
}

// Contains reports whether the screen coordinate lies inside the panel.
// The game loop uses this to keep panel clicks from doubling as pointer
// forces on the flock.
func (p *Panel) Contains(x, y int) bool {
	return float64(x) >= p.X && float64(x) <= p.X+p.Width &&
		float64(y) >= p.Y && float64(y) <= p.Y+p.Height
}

// Update handles scrolling and forwards input to all widgets.
func (p *Panel) Update() {
	_, dy := ebiten.Wheel()
	if dy != 0 {
		p.ScrollOffset -= dy * 20

		maxScroll := p.totalHeight() - p.Height + 40
		if maxScroll < 0 {
			maxScroll = 0
		}
		if p.ScrollOffset < 0 {
			p.ScrollOffset = 0
		}
		if p.ScrollOffset > maxScroll {
			p.ScrollOffset = maxScroll
		}
	}

	for _, w := range p.Widgets {
		w.Update()
	}
}

// Draw renders the panel background, section headers and widgets.
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)

	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)

	ebitenutil.DebugPrintAt(screen, "Parameters", int(p.X+10), int(p.Y+5))

	currentY := p.Y + 30 - p.ScrollOffset
	widgetIdx := 0

	for sectionIdx, sec := range p.sections {
		if currentY >= p.Y-25 && currentY <= p.Y+p.Height {
			vector.FillRect(screen,
				float32(p.X+5), float32(currentY),
				float32(p.Width-10), 20,
				color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
			ebitenutil.DebugPrintAt(screen, sec.Title, int(p.X+10), int(currentY+5))
		}
		currentY += 25

		for widgetIdx < sec.EndIndex && widgetIdx < len(p.Widgets) {
			w := p.Widgets[widgetIdx]
			label := p.Labels[widgetIdx]

			if currentY >= p.Y-30 && currentY <= p.Y+p.Height {
				if label != "" {
					ebitenutil.DebugPrintAt(screen, label, int(p.X+10), int(currentY))
					p.moveWidget(w, currentY+15)
				} else {
					p.moveWidget(w, currentY)
				}
				w.Draw(screen)
			}

			currentY += w.GetHeight()
			widgetIdx++
		}

		if sectionIdx < len(p.sections)-1 {
			widgetIdx = p.sections[sectionIdx+1].StartIndex
		}
	}
}

// moveWidget repositions a widget for the current scroll offset.
func (p *Panel) moveWidget(w Widget, newY float64) {
	switch w := w.(type) {
	case *sliderWrapper:
		w.Y = newY
	case *checkboxWrapper:
		w.Y = newY
	case *buttonWrapper:
		w.Y = newY
	}
}

// totalHeight calculates the total content height.
func (p *Panel) totalHeight() float64 {
	height := 30.0 // title space
	height += float64(len(p.sections)) * 25
	for _, w := range p.Widgets {
		height += w.GetHeight()
	}
	return height
}
