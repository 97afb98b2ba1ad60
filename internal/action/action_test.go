package action

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/symcheck/internal/triage"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeOpener struct {
	uris []string
	err  error
}

func (f *fakeOpener) Open(_ context.Context, uri string) error {
	f.uris = append(f.uris, uri)
	return f.err
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.text = text
	return f.err
}

type fakeRunner struct {
	name string
	args []string
	err  error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	f.name = name
	f.args = args
	return f.err
}

type recordingDialer struct {
	number   string
	deadline bool
}

func (r *recordingDialer) Dial(ctx context.Context, number string) error {
	r.number = number
	_, r.deadline = ctx.Deadline()
	return nil
}

type recordingLocator struct {
	query string
	err   error
}

func (r *recordingLocator) Locate(_ context.Context, query string) error {
	r.query = query
	return r.err
}

func TestForLevel(t *testing.T) {
	assert.Equal(t, KindDial, ForLevel(triage.LevelEmergency))
	assert.Equal(t, KindNone, ForLevel(triage.LevelUrgent))
	assert.Equal(t, KindLocate, ForLevel(triage.LevelClinic))
	assert.Equal(t, KindNone, ForLevel(triage.LevelSelfCare))
}

func TestSearchURL(t *testing.T) {
	u, err := SearchURL("https://maps.google.com/", "campus health clinic near me")
	require.NoError(t, err)
	assert.Equal(t, "https://maps.google.com/?q=campus+health+clinic+near+me", u)

	u, err = SearchURL("https://maps.example.org/search?hl=en", "clinic")
	require.NoError(t, err)
	assert.Equal(t, "https://maps.example.org/search?hl=en&q=clinic", u)

	_, err = SearchURL("maps.google.com", "clinic")
	assert.Error(t, err)
}

func TestURIDialer(t *testing.T) {
	opener := &fakeOpener{}
	clip := &fakeClipboard{}
	d := &URIDialer{Opener: opener, Clipboard: clip}

	require.NoError(t, d.Dial(context.Background(), " 911 "))
	assert.Equal(t, []string{"tel:911"}, opener.uris)
	assert.Equal(t, "911", clip.text)

	assert.Error(t, d.Dial(context.Background(), "  "))
}

func TestURIDialer_ClipboardFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	d := &URIDialer{
		Opener:    &fakeOpener{},
		Clipboard: &fakeClipboard{err: errors.New("no display")},
		Logger:    zap.New(core),
	}
	require.NoError(t, d.Dial(context.Background(), "112"))
	assert.Equal(t, 1, logs.FilterMessage("Clipboard copy failed").Len())
}

func TestMapsLocator(t *testing.T) {
	opener := &fakeOpener{}
	clip := &fakeClipboard{}
	l := &MapsLocator{BaseURL: "https://maps.google.com/", Opener: opener, Clipboard: clip}

	require.NoError(t, l.Locate(context.Background(), "campus health clinic near me"))
	want := "https://maps.google.com/?q=campus+health+clinic+near+me"
	assert.Equal(t, []string{want}, opener.uris)
	assert.Equal(t, want, clip.text)

	opener.err = errors.New("no handler")
	err := l.Locate(context.Background(), "clinic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open maps search")
}

func TestSystemOpener_Commands(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{"linux", "xdg-open", []string{"tel:911"}},
		{"freebsd", "xdg-open", []string{"tel:911"}},
		{"darwin", "open", []string{"tel:911"}},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", "tel:911"}},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			r := &fakeRunner{}
			o := &SystemOpener{GOOS: tt.goos, Runner: r}
			require.NoError(t, o.Open(context.Background(), "tel:911"))
			assert.Equal(t, tt.wantName, r.name)
			assert.Equal(t, tt.wantArgs, r.args)
		})
	}
}

func TestSystemOpener_WrapsRunnerError(t *testing.T) {
	boom := errors.New("exit status 3")
	o := &SystemOpener{GOOS: "linux", Runner: &fakeRunner{err: boom}}
	err := o.Open(context.Background(), "tel:911")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestDispatcher_Run(t *testing.T) {
	dialer := &recordingDialer{}
	locator := &recordingLocator{}
	core, logs := observer.New(zapcore.InfoLevel)
	d := &Dispatcher{
		Dialer:          dialer,
		Locator:         locator,
		EmergencyNumber: "911",
		ClinicQuery:     "campus health clinic near me",
		Timeout:         time.Second,
		Logger:          zap.New(core),
	}

	kind, err := d.Run(context.Background(), triage.LevelEmergency)
	require.NoError(t, err)
	assert.Equal(t, KindDial, kind)
	assert.Equal(t, "911", dialer.number)
	assert.True(t, dialer.deadline)

	kind, err = d.Run(context.Background(), triage.LevelClinic)
	require.NoError(t, err)
	assert.Equal(t, KindLocate, kind)
	assert.Equal(t, "campus health clinic near me", locator.query)

	assert.Equal(t, 2, logs.FilterMessage("Action dispatched").Len())
}

func TestDispatcher_NoActionLevels(t *testing.T) {
	d := &Dispatcher{Dialer: &recordingDialer{}, Locator: &recordingLocator{}}
	for _, l := range []triage.Level{triage.LevelUrgent, triage.LevelSelfCare} {
		kind, err := d.Run(context.Background(), l)
		assert.Equal(t, KindNone, kind)
		assert.ErrorIs(t, err, ErrNoAction)
	}
}

func TestDispatcher_MissingCapability(t *testing.T) {
	d := &Dispatcher{}
	_, err := d.Run(context.Background(), triage.LevelEmergency)
	assert.Error(t, err)
	_, err = d.Run(context.Background(), triage.LevelClinic)
	assert.Error(t, err)
}

func TestDispatcher_LogsFailure(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	d := &Dispatcher{
		Locator: &recordingLocator{err: errors.New("offline")},
		Logger:  zap.New(core),
	}
	_, err := d.Run(context.Background(), triage.LevelClinic)
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("Action failed").Len())
}
