package types

import (
	"fmt"
	"iter"
	"slices"
)

// Severity classifies a notification.
type Severity int

const (
	// SeverityNone is the zero value; Worst returns it for an empty log.
	SeverityNone Severity = iota
	// SeverityDebug carries diagnostic detail only.
	SeverityDebug
	// SeverityInformation is informational.
	SeverityInformation
	// SeverityWarning marks data that was dropped or defaulted.
	SeverityWarning
	// SeverityCritical marks a failure that aborted an operation or lost a field.
	SeverityCritical
)

// String returns the lower-case severity name.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInformation:
		return "information"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "none"
	}
}

// Notification is a single entry of a tag's status log.
//
// Notifications describe problems that do not necessarily stop an
// operation, e.g. a malformed field that was skipped during parsing.
type Notification struct {
	// Context names the operation, e.g. "parsing Vorbis comment".
	Context string

	// Message describes the problem.
	Message string

	Severity Severity
}

// String returns a human-readable notification.
func (n Notification) String() string {
	if n.Context == "" {
		return fmt.Sprintf("%s: %s", n.Severity, n.Message)
	}
	return fmt.Sprintf("%s: %s: %s", n.Severity, n.Context, n.Message)
}

// Notifications is an ordered notification log.
//
// The zero value is ready to use. Notifications is not safe for concurrent
// use.
type Notifications struct {
	// onAdd observes every entry as it is recorded.
	onAdd   func(Notification)
	entries []Notification
}

// Observe registers fn to be called for every notification recorded from
// now on. Passing nil removes the observer.
func (n *Notifications) Observe(fn func(Notification)) {
	n.onAdd = fn
}

// Add records a notification.
func (n *Notifications) Add(severity Severity, message, context string) {
	entry := Notification{Severity: severity, Message: message, Context: context}
	n.entries = append(n.entries, entry)
	if n.onAdd != nil {
		n.onAdd(entry)
	}
}

// AddAll appends every entry of other, optionally overriding their context.
func (n *Notifications) AddAll(context string, other *Notifications) {
	if other == nil {
		return
	}
	for _, entry := range other.entries {
		if context != "" {
			entry.Context = context
		}
		n.Add(entry.Severity, entry.Message, entry.Context)
	}
}

// Clear drops all recorded notifications.
func (n *Notifications) Clear() {
	n.entries = n.entries[:0]
}

// Len returns the number of recorded notifications.
func (n *Notifications) Len() int {
	return len(n.entries)
}

// All returns an iterator over the notifications in recording order.
func (n *Notifications) All() iter.Seq[Notification] {
	return slices.Values(n.entries)
}

// Slice returns a copy of the recorded notifications.
func (n *Notifications) Slice() []Notification {
	return slices.Clone(n.entries)
}

// Worst returns the highest severity recorded, or SeverityNone.
func (n *Notifications) Worst() Severity {
	worst := SeverityNone
	for _, entry := range n.entries {
		worst = max(worst, entry.Severity)
	}
	return worst
}

// HasCritical reports whether any critical notification was recorded.
func (n *Notifications) HasCritical() bool {
	return n.Worst() >= SeverityCritical
}
