// Package notify delivers end-of-interval signals. Delivery is
// fire-and-forget: a failed notification never affects the session.
package notify

import (
	"fmt"
	"io"
)

// Sound identifies a notification sound clip.
type Sound string

const (
	SoundWorkEnd  Sound = "work_end"
	SoundBreakEnd Sound = "break_end"
)

// Notifier delivers user-facing signals. Implementations must swallow
// their own failures.
type Notifier interface {
	Notify(title, message string)
	PlaySound(clip Sound)
}

// WriterNotifier writes notifications to an io.Writer, typically stderr.
type WriterNotifier struct {
	w io.Writer
}

// NewWriterNotifier creates a Notifier writing to w.
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(title, message string) {
	fmt.Fprintf(n.w, "\a[%s] %s\n", title, message)
}

func (n *WriterNotifier) PlaySound(clip Sound) {
	// Terminal bell is the closest thing to a sound clip here.
	fmt.Fprint(n.w, "\a")
}

// BellNotifier rings the terminal bell and prints nothing. Safe to use
// under the alternate screen.
type BellNotifier struct {
	w io.Writer
}

// NewBellNotifier creates a bell-only Notifier writing to w.
func NewBellNotifier(w io.Writer) *BellNotifier {
	return &BellNotifier{w: w}
}

func (n *BellNotifier) Notify(title, message string) {
	fmt.Fprint(n.w, "\a")
}

func (n *BellNotifier) PlaySound(clip Sound) {
	fmt.Fprint(n.w, "\a")
}

// Nop is a Notifier that does nothing, for tests and headless runs.
type Nop struct{}

func (Nop) Notify(title, message string) {}
func (Nop) PlaySound(clip Sound)         {}

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	Notifications []string
	Sounds        []Sound
}

func (r *Recorder) Notify(title, message string) {
	r.Notifications = append(r.Notifications, title+": "+message)
}

func (r *Recorder) PlaySound(clip Sound) {
	r.Sounds = append(r.Sounds, clip)
}
