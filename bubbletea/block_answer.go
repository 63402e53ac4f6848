package bubbletea

import (
	"github.com/fwojciec/study"
	studylipgloss "github.com/fwojciec/study/lipgloss"
	"github.com/fwojciec/study/markdown"
)

var _ MessageBlock = (*AnswerBlock)(nil)

// AnswerBlock renders a tutor answer as formatted Markdown. The source is
// parsed once; rendered output is cached per width.
type AnswerBlock struct {
	blocks  []study.Block
	theme   study.Theme
	byWidth map[int]string
}

// NewAnswerBlock creates an AnswerBlock for Markdown source.
func NewAnswerBlock(source string, theme study.Theme) *AnswerBlock {
	return &AnswerBlock{
		blocks:  markdown.Parse(source),
		theme:   theme,
		byWidth: make(map[int]string),
	}
}

func (b *AnswerBlock) View(width int) string {
	if width <= 0 {
		return ""
	}
	if cached, ok := b.byWidth[width]; ok {
		return cached
	}
	rendered := studylipgloss.Render(b.blocks, width, b.theme)
	b.byWidth[width] = rendered
	return rendered
}
