// Package notify delivers transient user-facing notifications: the terminal
// counterpart of the admin panel's toast messages. Every failure surfaced to
// the user goes through here, so nothing fails silently.
package notify

import (
	"fmt"
	"io"
	"sync"
)

// Notifier surfaces short title/message notices to the user.
type Notifier interface {
	Success(title, message string)
	Error(title, message string)
}

// WriterNotifier writes notices to an io.Writer (normally stdout).
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Success(title, message string) {
	n.print("ok", title, message)
}

func (n *WriterNotifier) Error(title, message string) {
	n.print("error", title, message)
}

func (n *WriterNotifier) print(kind, title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.w, "[%s] %s: %s\n", kind, title, message)
}

// Discard drops all notifications. Useful in tests.
type Discard struct{}

func (Discard) Success(string, string) {}
func (Discard) Error(string, string)   {}

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	mu      sync.Mutex
	Notices []Notice
}

type Notice struct {
	Kind    string
	Title   string
	Message string
}

func (r *Recorder) Success(title, message string) { r.record("ok", title, message) }
func (r *Recorder) Error(title, message string)   { r.record("error", title, message) }

func (r *Recorder) record(kind, title, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Notices = append(r.Notices, Notice{Kind: kind, Title: title, Message: message})
}

// Titles returns the recorded titles in order.
func (r *Recorder) Titles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	titles := make([]string, 0, len(r.Notices))
	for _, n := range r.Notices {
		titles = append(titles, n.Title)
	}
	return titles
}
