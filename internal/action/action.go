package action

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/symcheck/internal/triage"
)

// ErrNoAction is returned when a level has no follow-up action.
var ErrNoAction = errors.New("no action for level")

// Dialer places a call to an emergency number.
type Dialer interface {
	Dial(ctx context.Context, number string) error
}

// ClinicLocator searches for a nearby clinic.
type ClinicLocator interface {
	Locate(ctx context.Context, query string) error
}

// Kind identifies the follow-up action for a result.
type Kind int

const (
	KindNone   Kind = iota
	KindDial        // Call emergency services
	KindLocate      // Find a nearby clinic
)

// ForLevel returns the follow-up action offered for a level.
func ForLevel(l triage.Level) Kind {
	switch l {
	case triage.LevelEmergency:
		return KindDial
	case triage.LevelClinic:
		return KindLocate
	default:
		return KindNone
	}
}

// URIDialer dials by handing a tel: URI to the system and copying the
// number to the clipboard.
type URIDialer struct {
	Opener    Opener
	Clipboard Clipboard
	Logger    *zap.Logger
}

// Dial opens tel:<number>. A clipboard failure is logged, not returned.
func (d *URIDialer) Dial(ctx context.Context, number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errors.New("empty emergency number")
	}
	copyToClipboard(d.Clipboard, d.Logger, number)
	if err := d.Opener.Open(ctx, "tel:"+number); err != nil {
		return fmt.Errorf("dial %s: %w", number, err)
	}
	return nil
}

// MapsLocator opens a maps search for the query.
type MapsLocator struct {
	BaseURL   string
	Opener    Opener
	Clipboard Clipboard
	Logger    *zap.Logger
}

// Locate opens the search URL and copies it to the clipboard.
func (l *MapsLocator) Locate(ctx context.Context, query string) error {
	u, err := SearchURL(l.BaseURL, query)
	if err != nil {
		return err
	}
	copyToClipboard(l.Clipboard, l.Logger, u)
	if err := l.Opener.Open(ctx, u); err != nil {
		return fmt.Errorf("open maps search: %w", err)
	}
	return nil
}

// SearchURL returns base with the q parameter set to query.
func SearchURL(base, query string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse maps URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("maps URL %q must be absolute", base)
	}
	q := u.Query()
	q.Set("q", query)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func copyToClipboard(c Clipboard, logger *zap.Logger, text string) {
	if c == nil {
		return
	}
	if err := c.WriteAll(text); err != nil && logger != nil {
		logger.Warn("Clipboard copy failed", zap.Error(err))
	}
}

// Dispatcher runs the follow-up action for a result level with a bounded
// timeout.
type Dispatcher struct {
	Dialer          Dialer
	Locator         ClinicLocator
	EmergencyNumber string
	ClinicQuery     string
	Timeout         time.Duration
	Logger          *zap.Logger
}

// Run performs the action for the level and returns which one ran.
func (d *Dispatcher) Run(ctx context.Context, l triage.Level) (Kind, error) {
	kind := ForLevel(l)
	if d.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.Timeout)
		defer cancel()
	}

	var err error
	switch kind {
	case KindDial:
		if d.Dialer == nil {
			return kind, errors.New("no dialer configured")
		}
		err = d.Dialer.Dial(ctx, d.EmergencyNumber)
	case KindLocate:
		if d.Locator == nil {
			return kind, errors.New("no clinic locator configured")
		}
		err = d.Locator.Locate(ctx, d.ClinicQuery)
	default:
		return kind, fmt.Errorf("%w %s", ErrNoAction, l)
	}

	if d.Logger != nil {
		if err != nil {
			d.Logger.Warn("Action failed", zap.Stringer("level", l), zap.Error(err))
		} else {
			d.Logger.Info("Action dispatched", zap.Stringer("level", l))
		}
	}
	return kind, err
}
