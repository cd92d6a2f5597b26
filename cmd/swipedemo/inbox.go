package main

import (
	"fmt"

	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction"
)

var sampleSubjects = []string{
	"Welcome aboard",
	"Invoice #1042",
	"Weekly newsletter",
	"Build failed on main",
	"Lunch on Friday?",
	"Your package has shipped",
	"Security alert",
	"Meeting notes",
	"Re: quarterly report",
	"Photos from the trip",
}

// sampleItems returns n subjects, numbering repeats.
func sampleItems(n int) []string {
	items := make([]string, n)
	for i := range items {
		subject := sampleSubjects[i%len(sampleSubjects)]
		if i >= len(sampleSubjects) {
			subject = fmt.Sprintf("%s (%d)", subject, i/len(sampleSubjects)+1)
		}
		items[i] = subject
	}
	return items
}

// inbox is the demo application. A far-left swipe deletes a message, a
// normal-left swipe asks to archive and is declined, and right swipes mark
// the message without removing it.
type inbox struct {
	items    []string
	lang     string
	messages []string

	// remove deletes the host row at a position after the item is dropped.
	remove func(position int)
}

func newInbox(items []string, lang string) *inbox {
	return &inbox{items: items, lang: lang}
}

func (b *inbox) HasActions(position int) bool {
	return position >= 0 && position < len(b.items)
}

func (b *inbox) ShouldDismiss(_ int, direction swipeaction.Direction) bool {
	return direction != swipeaction.DirectionNormalLeft
}

func (b *inbox) OnSwipe(positions []int, directions []swipeaction.Direction) {
	logger := swipeaction.GetLogger()

	for i, position := range positions {
		if position < 0 || position >= len(b.items) {
			continue
		}
		direction := directions[i]
		item := b.items[position]

		switch direction {
		case swipeaction.DirectionNormalLeft:
			b.report(swipeaction.VetoMessage(direction, item, b.lang))
		case swipeaction.DirectionFarLeft:
			b.report(swipeaction.ActionMessage(direction, item, b.lang))
			b.items = append(b.items[:position], b.items[position+1:]...)
			if b.remove != nil {
				b.remove(position)
			}
		default:
			b.report(swipeaction.ActionMessage(direction, item, b.lang))
		}

		logger.Info("Swipe delivered", "position", position, "direction", direction.String(), "item", item)
	}
}

func (b *inbox) report(msg string) {
	b.messages = append(b.messages, msg)
}

// recent returns up to n of the latest messages, oldest first.
func (b *inbox) recent(n int) []string {
	if len(b.messages) <= n {
		return b.messages
	}
	return b.messages[len(b.messages)-n:]
}
