package tui

import (
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/imsgtui/imsg/internal/history"
	"github.com/imsgtui/imsg/internal/paths"
	"github.com/imsgtui/imsg/internal/sender"
)

// HistorySource provides recent messages for a contact identifier,
// newest first.
type HistorySource interface {
	Messages(identifier string) ([]history.Message, error)
}

// MessageSender delivers outbound text to a contact identifier.
type MessageSender interface {
	Send(identifier, text string) error
}

const chatTickRate = 200 * time.Millisecond

// chromeRows is the fixed vertical space taken by the chat chrome: a
// three-row title box and a three-row input box.
const chromeRows = 6

// flashDuration is how long a send failure stays on screen.
const flashDuration = 5 * time.Second

// Chat is the conversation view: a scrollable transcript over a line
// input, sending on Enter.
type Chat struct {
	contact     string
	displayName string
	source      HistorySource
	sender      MessageSender
	logger      *zap.Logger
	theme       *Theme

	messages    []history.Message // oldest first
	input       string
	scroll      int
	resetScroll bool
	flash       Flash
}

// NewChat creates the chat view for a resolved contact.
func NewChat(contact, displayName string, source HistorySource, sender MessageSender, logger *zap.Logger) *Chat {
	return &Chat{
		contact:     contact,
		displayName: displayName,
		source:      source,
		sender:      sender,
		logger:      logger,
		theme:       DefaultTheme(),
		resetScroll: true,
	}
}

// Load fetches the transcript, oldest first, and queues a scroll reset so
// the newest message lands at the bottom of the viewport.
func (c *Chat) Load() error {
	msgs, err := c.source.Messages(c.contact)
	if err != nil {
		return err
	}
	slices.Reverse(msgs)
	c.messages = msgs
	c.resetScroll = true
	return nil
}

// send delivers text and reloads the transcript on success so the
// operator reads their own write.
func (c *Chat) send(text string) error {
	if err := c.sender.Send(c.contact, text); err != nil {
		return err
	}
	return c.Load()
}

// TickRate implements View.
func (c *Chat) TickRate() time.Duration { return chatTickRate }

// Tick consumes a pending scroll reset using the current viewport size.
func (c *Chat) Tick(width, height int) {
	if c.resetScroll && len(c.messages) > 0 {
		c.scroll = len(c.messages) - c.visibleRows(height)
		c.resetScroll = false
	}
}

// visibleRows is how many transcript rows fit the given height.
func (c *Chat) visibleRows(height int) int {
	return min(len(c.messages), max(0, height-chromeRows))
}

// maxScroll keeps the scroll offset from running past the transcript:
// 0 <= scroll <= max(0, len(messages)-visibleRows).
func (c *Chat) maxScroll(height int) int {
	return len(c.messages) - c.visibleRows(height)
}

// HandleKey implements View.
func (c *Chat) HandleKey(ev *tcell.EventKey, width, height int) Outcome {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit
	case tcell.KeyRune:
		c.input += string(ev.Rune())
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		c.input = trimLastRune(c.input)
	case tcell.KeyEnter:
		if c.input != "" {
			if err := c.send(c.input); err != nil {
				// Delivery failures do not end the session; the
				// transcript stays and the operator can retype.
				c.flash.Set("Send failed: "+err.Error(), flashDuration)
				c.logger.Warn("send failed",
					zap.String("contact", c.contact),
					zap.Error(err))
			} else {
				c.logger.Debug("message sent",
					zap.String("contact", c.contact),
					zap.Int("length", len(c.input)))
			}
			c.input = ""
		}
	case tcell.KeyUp:
		if c.scroll > 0 {
			c.scroll--
		}
	case tcell.KeyDown:
		if c.scroll < c.maxScroll(height) {
			c.scroll++
		}
	}
	return Continue
}

// Draw implements View.
func (c *Chat) Draw(s tcell.Screen) {
	w, h := s.Size()

	drawBox(s, 0, 0, w, 3, c.theme.Border)
	drawTextCentered(s, 1, w-1, 1, c.theme.Title, c.displayName)

	rows := max(0, h-chromeRows)
	start := min(c.scroll, len(c.messages))
	end := min(start+min(len(c.messages), rows), len(c.messages))
	for i, m := range c.messages[start:end] {
		line := m.Time.Format("15:04") + ": " + flattenLine(sanitizeForTerminal(m.Content()))
		if m.FromMe {
			drawTextRight(s, 0, w, 3+i, c.theme.Outgoing, line)
		} else {
			drawText(s, 0, 3+i, w, c.theme.Incoming, line)
		}
	}

	if h >= chromeRows {
		inputTop := h - 3
		drawBox(s, 0, inputTop, w, 3, c.theme.Border)
		drawBoxTitle(s, 0, inputTop, w, c.theme.Base, "Input")
		drawText(s, 1, inputTop+1, w-1, c.theme.Base, c.input)
		if msg := c.flash.Get(); msg != "" {
			drawTextRight(s, 1, w-1, inputTop, c.theme.Flash, " "+msg+" ")
		}
	}
}

// RunChat opens the message history and drives the chat view over it
// until the operator quits.
func RunChat(contact, displayName string, logger *zap.Logger) error {
	db, err := history.Open(paths.MessagesDB())
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	view := NewChat(contact, displayName, db, sender.New(), logger)
	return RunScoped(func(s *Session) error {
		if err := view.Load(); err != nil {
			return err
		}
		return s.Run(view)
	})
}
