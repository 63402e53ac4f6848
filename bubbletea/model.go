package bubbletea

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/study"
)

var _ tea.Model = Model{}

const modeCommand = "/mode"

// Model is the Bubble Tea model for the tutor chat.
type Model struct {
	// Input is the text input component. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable output area. Exported for test access.
	Viewport viewport.Model

	ask    AskFunc
	conv   *study.Conversation
	theme  study.Theme
	styles Styles
	now    func() time.Time

	blocks []MessageBlock

	running bool
	cancel  context.CancelFunc
	err     error
	ready   bool
}

// New creates a new TUI Model. Answers are recorded into conv as they
// arrive.
func New(ask AskFunc, conv *study.Conversation, theme study.Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask a question..."
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = 0

	return Model{
		Input:  ti,
		ask:    ask,
		conv:   conv,
		theme:  theme,
		styles: NewStyles(theme),
		now:    time.Now,
	}
}

// Running returns whether a question is in flight.
func (m Model) Running() bool { return m.running }

// Err returns the last error, if any.
func (m Model) Err() error { return m.err }

// SetRunningWithCancel is a test helper that puts the model in a running state
// with a cancel function.
func SetRunningWithCancel(m Model, cancel func()) (Model, tea.Cmd) {
	m.running = true
	m.cancel = cancel
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case AskDoneMsg:
		return m.handleAskDone(msg)
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)

	if !m.running {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.Input.View())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	inputH := 1
	statusHeight := 1
	borderHeight := 2 // newlines between sections
	vpHeight := max(msg.Height-inputH-statusHeight-borderHeight, 1)

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m = m.renderConversation()
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	// Answers reflow to the new width.
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()

	m.Input.Width = msg.Width
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.running {
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		}
		return m, tea.Quit

	case tea.KeyEnter:
		if m.running {
			return m, nil
		}
		text := strings.TrimSpace(m.Input.Value())
		if text == "" {
			return m, nil
		}
		if arg, ok := strings.CutPrefix(text, modeCommand); ok {
			return m.switchMode(strings.TrimSpace(arg)), nil
		}
		return m.submitInput(text)
	}

	// Only forward non-character keys to the viewport so that typing 'j' or
	// 'k' does not scroll.
	if !m.running {
		var cmd tea.Cmd
		var cmds []tea.Cmd

		if msg.Type != tea.KeyRunes {
			m.Viewport, cmd = m.Viewport.Update(msg)
			cmds = append(cmds, cmd)
		}

		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)

		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// switchMode handles "/mode <tutor|practice|exam>".
func (m Model) switchMode(arg string) Model {
	m.Input.SetValue("")
	mode := study.Mode(arg)
	check := m.conv.Request("mode check")
	check.Mode = mode
	if err := check.Validate(); err != nil {
		m.err = err
		return m
	}
	m.conv.Mode = mode
	m.err = nil
	return m
}

func (m Model) submitInput(text string) (tea.Model, tea.Cmd) {
	req := m.conv.Request(text)
	if err := req.Validate(); err != nil {
		m.err = err
		return m, nil
	}

	m.Input.SetValue("")
	m.err = nil
	m.blocks = append(m.blocks, NewUserMessageBlock(text, m.styles))
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.running = true
	m.Input.Blur()

	return m, startAsk(ctx, m.ask, req)
}

func (m Model) handleAskDone(msg AskDoneMsg) (tea.Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
	}
	m.running = false
	m.cancel = nil

	switch {
	case errors.Is(msg.Err, context.Canceled):
		m.blocks = append(m.blocks, NewErrorBlock(errors.New("cancelled"), m.styles))
	case msg.Err != nil:
		m.err = msg.Err
		m.blocks = append(m.blocks, NewErrorBlock(msg.Err, m.styles))
	default:
		m.conv.Record(msg.Question, msg.Answer, m.now())
		m.blocks = append(m.blocks, NewAnswerBlock(msg.Answer.Response, m.theme))
	}

	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()
	return m, m.Input.Focus()
}

// renderConversation creates blocks from messages already in the
// conversation.
func (m Model) renderConversation() Model {
	for _, msg := range m.conv.Messages {
		switch msg.Role {
		case study.RoleUser:
			m.blocks = append(m.blocks, NewUserMessageBlock(msg.Content, m.styles))
		case study.RoleAssistant:
			m.blocks = append(m.blocks, NewAnswerBlock(msg.Content, m.theme))
		}
	}
	return m
}

func (m Model) renderContent() string {
	var b strings.Builder
	for i, block := range m.blocks {
		if i > 0 {
			b.WriteString(blockSeparator(m.blocks[i-1], block))
		}
		b.WriteString(block.View(m.Viewport.Width))
	}
	return b.String()
}

func (m Model) statusLine() string {
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.running {
		return m.styles.Muted.Render("Thinking... (Ctrl+C to cancel)")
	}
	mode := m.conv.Mode
	if mode == "" {
		mode = study.ModeTutor
	}
	return m.styles.Muted.Render(fmt.Sprintf("Enter to send, Ctrl+C to quit (%s mode)", mode))
}

// startAsk runs the ask in a goroutine owned by the Bubble Tea runtime.
func startAsk(ctx context.Context, ask AskFunc, req study.AskRequest) tea.Cmd {
	return func() tea.Msg {
		answer, err := ask(ctx, req)
		return AskDoneMsg{Question: req.Question, Answer: answer, Err: err}
	}
}
