package tui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/amarlabs/amar/pkg/chat"
)

const assistantWelcome = "Hello! I'm AMAR. Ask me about medications or general health questions. Please remember, I am not a doctor."

// renderAssistant rebuilds the whole transcript from the chat history on
// every frame; nothing is diffed incrementally. mdRender formats assistant
// text (markdown) and may be nil.
func renderAssistant(transcript []chat.Message, busy bool, spinnerView, inputView string, mdRender func(string) string, width int) string {
	if width <= 20 {
		width = 80
	}
	bubbleWidth := width - 8

	var b strings.Builder
	b.WriteString(titleStyle.Render("AI Assistant") + "\n\n")
	b.WriteString(assistantBubble(assistantWelcome, mdRender, bubbleWidth))

	for _, msg := range transcript {
		if msg.Role == chat.RoleUser {
			b.WriteString(userBubble(msg.Text, bubbleWidth))
		} else {
			b.WriteString(assistantBubble(msg.Text, mdRender, bubbleWidth))
		}
	}

	if busy {
		b.WriteString(faintStyle.Render("AMAR "+spinnerView+" typing...") + "\n\n")
	}

	b.WriteString(inputView + "\n")
	if busy {
		b.WriteString(faintStyle.Render("waiting for reply..."))
	} else {
		b.WriteString(faintStyle.Render("enter send · esc browse pages"))
	}
	return b.String()
}

func userBubble(text string, width int) string {
	return activeStyle.Render("You") + "\n" + wordwrap.String(text, width) + "\n\n"
}

func assistantBubble(text string, mdRender func(string) string, width int) string {
	body := text
	if mdRender != nil {
		body = strings.TrimRight(mdRender(text), "\n")
	} else {
		body = wordwrap.String(body, width)
	}
	return successStyle.Render("AMAR") + "\n" + body + "\n\n"
}
