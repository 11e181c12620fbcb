package notifications

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Severity classifies a notification for display
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityDanger
)

var severityNames = map[Severity]string{
	SeverityInfo:    "info",
	SeverityWarning: "warning",
	SeverityDanger:  "danger",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// ParseSeverity converts "info", "warning" or "danger" into a Severity
func ParseSeverity(name string) (Severity, error) {
	for s, n := range severityNames {
		if strings.EqualFold(name, n) {
			return s, nil
		}
	}
	return SeverityInfo, fmt.Errorf("unknown severity %q", name)
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Notification is a transient message shown to the user once and then discarded.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Severity  Severity  `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func New(severity Severity, message string) Notification {
	return Notification{
		ID:        uuid.New(),
		Severity:  severity,
		Message:   message,
		CreatedAt: NowTimeFunc(),
	}
}

// Sink receives notifications. Commit is the only mutation.
type Sink interface {
	Commit(n Notification)
}

// SinkFunc adapts a function to a Sink
type SinkFunc func(Notification)

func (f SinkFunc) Commit(n Notification) { f(n) }
