package vorbiscomment

import (
	"github.com/simonhull/vorbiscomment/internal/types"
)

// Notification is an alias to types.Notification.
// Re-exporting from internal/types to maintain public API.
type Notification = types.Notification

// Notifications is an alias to types.Notifications.
type Notifications = types.Notifications

// Severity is an alias to types.Severity.
type Severity = types.Severity

// Re-export all severity constants.
const (
	SeverityNone        = types.SeverityNone
	SeverityDebug       = types.SeverityDebug
	SeverityInformation = types.SeverityInformation
	SeverityWarning     = types.SeverityWarning
	SeverityCritical    = types.SeverityCritical
)
