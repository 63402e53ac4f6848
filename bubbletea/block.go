package bubbletea

// MessageBlock is a renderable element in the conversation.
// View takes a width parameter so the root model controls layout and blocks
// are testable in isolation.
type MessageBlock interface {
	View(width int) string
}

// blockSeparator returns the gap between two adjacent blocks. A question sits
// directly above its answer; everything else is separated by a blank line.
func blockSeparator(prev, curr MessageBlock) string {
	if _, ok := prev.(*UserMessageBlock); ok {
		switch curr.(type) {
		case *AnswerBlock, *ErrorBlock:
			return "\n"
		}
	}
	return "\n\n"
}
