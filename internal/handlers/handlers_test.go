package handlers

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/nika-camp/campbot/core/logger"
	"github.com/nika-camp/campbot/core/telegram/callbacks"
	"github.com/nika-camp/campbot/core/telegram/state"
	"github.com/nika-camp/campbot/internal/content"
	"github.com/nika-camp/campbot/internal/replies"

	tele "gopkg.in/telebot.v4"
)

func TestMain(m *testing.M) {
	_ = logger.InitLogger(nil)
	os.Exit(m.Run())
}

// fakeContext implements the slice of tele.Context the handlers touch.
// Methods outside that slice panic through the embedded nil interface.
type fakeContext struct {
	tele.Context

	store   map[string]any
	message *tele.Message
	sender  *tele.User
	chat    *tele.Chat
	text    string

	sent    []sentCall
	edits   []sentCall
	deleted int
}

type sentCall struct {
	what any
	opts []any
}

func newFakeContext() *fakeContext {
	chat := &tele.Chat{ID: 5}
	return &fakeContext{
		store:   map[string]any{},
		chat:    chat,
		sender:  &tele.User{ID: 7, Username: "camper"},
		message: &tele.Message{ID: 42, Chat: chat},
	}
}

func (f *fakeContext) Get(key string) any      { return f.store[key] }
func (f *fakeContext) Set(key string, val any) { f.store[key] = val }
func (f *fakeContext) Message() *tele.Message  { return f.message }
func (f *fakeContext) Sender() *tele.User      { return f.sender }
func (f *fakeContext) Chat() *tele.Chat        { return f.chat }
func (f *fakeContext) Update() tele.Update     { return tele.Update{ID: 1, Message: f.message} }
func (f *fakeContext) Text() string            { return f.text }

func (f *fakeContext) Send(what any, opts ...any) error {
	f.sent = append(f.sent, sentCall{what: what, opts: opts})
	return nil
}

func (f *fakeContext) Edit(what any, opts ...any) error {
	f.edits = append(f.edits, sentCall{what: what, opts: opts})
	return nil
}

func (f *fakeContext) Delete() error {
	f.deleted++
	return nil
}

type replaceCall struct {
	op        string
	messageID int
	text      string
	markup    *tele.ReplyMarkup
}

type fakeMessenger struct {
	calls   []replaceCall
	editErr error
}

func (f *fakeMessenger) EditText(chatID int64, messageID int, text string, markup *tele.ReplyMarkup) error {
	f.calls = append(f.calls, replaceCall{op: "edit", messageID: messageID, text: text, markup: markup})
	return f.editErr
}

func (f *fakeMessenger) DeleteMessage(chatID int64, messageID int) error {
	f.calls = append(f.calls, replaceCall{op: "delete", messageID: messageID})
	return nil
}

func (f *fakeMessenger) SendText(chatID int64, text string, markup *tele.ReplyMarkup) error {
	f.calls = append(f.calls, replaceCall{op: "send", text: text, markup: markup})
	return nil
}

type fakeProvider struct {
	sessions []content.Session
	places   []content.Place
	infos    []content.OptionalInfo
}

func (p *fakeProvider) Sessions(ctx context.Context) ([]content.Session, error) {
	return p.sessions, nil
}

func (p *fakeProvider) SessionBySlug(ctx context.Context, slug string) (*content.Session, error) {
	for i := range p.sessions {
		if p.sessions[i].Slug == slug {
			return &p.sessions[i], nil
		}
	}
	return nil, content.ErrNotFound
}

func (p *fakeProvider) Places(ctx context.Context) ([]content.Place, error) {
	return p.places, nil
}

func (p *fakeProvider) PlaceBySlug(ctx context.Context, slug string) (*content.Place, error) {
	for i := range p.places {
		if p.places[i].Slug == slug {
			return &p.places[i], nil
		}
	}
	return nil, content.ErrNotFound
}

func (p *fakeProvider) Infos(ctx context.Context) ([]content.OptionalInfo, error) {
	return p.infos, nil
}

func (p *fakeProvider) InfoBySlug(ctx context.Context, slug string) (*content.OptionalInfo, error) {
	for i := range p.infos {
		if p.infos[i].Slug == slug {
			return &p.infos[i], nil
		}
	}
	return nil, content.ErrNotFound
}

func (p *fakeProvider) General(ctx context.Context) (*content.GeneralInfo, error) {
	return nil, content.ErrNotFound
}

type notifyCall struct {
	chatID int64
	text   string
}

type fixture struct {
	h        *Handlers
	states   state.Manager
	msgr     *fakeMessenger
	notified []notifyCall
}

func strPtr(s string) *string   { return &s }
func f64Ptr(v float64) *float64 { return &v }

func newFixture(p content.Provider) *fixture {
	fx := &fixture{
		states: state.NewMemoryManager(),
		msgr:   &fakeMessenger{},
	}
	fx.h = New(Options{
		Content:  p,
		General:  content.NewGeneralCache(p.General),
		States:   fx.states,
		MediaDir: "testdata",
		Admins:   []int64{100, 200},
		Contacts: []Contact{{Name: "Ника", URL: "https://t.me/nika"}},
	})
	fx.h.messenger = func(c tele.Context) replies.Messenger { return fx.msgr }
	fx.h.notify = func(c tele.Context, chatID int64, text string) error {
		fx.notified = append(fx.notified, notifyCall{chatID: chatID, text: text})
		return nil
	}
	return fx
}

func withCommand(c *fakeContext, ns, token string) *fakeContext {
	callbacks.Store(c, callbacks.Command{Namespace: ns, Token: token})
	return c
}

func notEditable() error {
	return &tele.Error{Code: 400, Description: "Bad Request: message can't be edited"}
}

func TestMainMenuSessionsEmptyListEdits(t *testing.T) {
	fx := newFixture(&fakeProvider{})
	c := withCommand(newFakeContext(), nsMain, tokenSessions)

	if err := fx.h.MainMenu(c); err != nil {
		t.Fatalf("MainMenu: %v", err)
	}
	if len(c.edits) != 1 {
		t.Fatalf("edits = %d, want 1", len(c.edits))
	}
	if got := c.edits[0].what; got != textSessionsEmpty {
		t.Errorf("edit text = %v", got)
	}
}

func TestMainMenuCancelClearsStateAndRestoresRoot(t *testing.T) {
	fx := newFixture(&fakeProvider{})
	c := withCommand(newFakeContext(), nsMain, tokenCancel)
	key := state.KeyFrom(c)
	fx.states.Set(key, StateHelpRequest)

	if err := fx.h.MainMenu(c); err != nil {
		t.Fatalf("MainMenu: %v", err)
	}
	if fx.states.InProgress(key) {
		t.Error("cancel left the conversation state active")
	}
	if len(fx.msgr.calls) != 1 || fx.msgr.calls[0].op != "edit" {
		t.Fatalf("calls = %+v", fx.msgr.calls)
	}
	if fx.msgr.calls[0].text != content.DefaultStartText {
		t.Errorf("cancel text = %q", fx.msgr.calls[0].text)
	}
}

func TestSessionDetailReplacesTrigger(t *testing.T) {
	fx := newFixture(&fakeProvider{sessions: []content.Session{
		{ID: 1, Title: "Летняя смена", Slug: "summer", FormURL: strPtr("https://forms.example.org/s")},
	}})
	c := withCommand(newFakeContext(), "s", "summer")

	if err := fx.h.Sessions(c); err != nil {
		t.Fatalf("Sessions: %v", err)
	}
	if len(fx.msgr.calls) != 1 || fx.msgr.calls[0].op != "edit" {
		t.Fatalf("calls = %+v", fx.msgr.calls)
	}
	got := fx.msgr.calls[0]
	if !strings.Contains(got.text, "Летняя смена") {
		t.Errorf("detail text = %q", got.text)
	}
	buttons := flattenButtons(got.markup)
	if len(buttons) != 3 || buttons[0].URL != "https://forms.example.org/s" {
		t.Errorf("buttons = %+v", buttons)
	}
}

func TestSessionDetailWithPhotoDeletesAndSends(t *testing.T) {
	fx := newFixture(&fakeProvider{sessions: []content.Session{
		{ID: 1, Title: "Летняя смена", Slug: "summer", Image: strPtr("summer.jpg")},
	}})
	c := withCommand(newFakeContext(), "s", "summer")

	if err := fx.h.Sessions(c); err != nil {
		t.Fatalf("Sessions: %v", err)
	}
	if c.deleted != 1 {
		t.Errorf("deleted = %d, want 1", c.deleted)
	}
	if len(c.sent) != 1 {
		t.Fatalf("sent = %+v", c.sent)
	}
	photo, ok := c.sent[0].what.(*tele.Photo)
	if !ok {
		t.Fatalf("sent %T, want *tele.Photo", c.sent[0].what)
	}
	if !strings.Contains(photo.Caption, "Летняя смена") {
		t.Errorf("caption = %q", photo.Caption)
	}
	if len(fx.msgr.calls) != 0 {
		t.Errorf("photo path must not run replace: %+v", fx.msgr.calls)
	}
}

func TestSessionNotFound(t *testing.T) {
	fx := newFixture(&fakeProvider{})
	c := withCommand(newFakeContext(), "s", "ghost")

	if err := fx.h.Sessions(c); err != nil {
		t.Fatalf("Sessions: %v", err)
	}
	if len(fx.msgr.calls) != 1 || fx.msgr.calls[0].text != textSessionNotFound {
		t.Fatalf("calls = %+v", fx.msgr.calls)
	}
}

func TestPlaceWithCoordinatesSendsLocation(t *testing.T) {
	fx := newFixture(&fakeProvider{places: []content.Place{
		{ID: 1, Title: "База", Slug: "base1", Latitude: f64Ptr(56.83), Longitude: f64Ptr(60.59)},
	}})
	c := withCommand(newFakeContext(), "p", "base1")

	if err := fx.h.Places(c); err != nil {
		t.Fatalf("Places: %v", err)
	}
	if len(fx.msgr.calls) != 1 || fx.msgr.calls[0].op != "edit" {
		t.Fatalf("calls = %+v", fx.msgr.calls)
	}
	if fx.msgr.calls[0].markup != nil {
		t.Error("place text before a location must not carry the keyboard")
	}
	if len(c.sent) != 1 {
		t.Fatalf("sent = %+v", c.sent)
	}
	loc, ok := c.sent[0].what.(*tele.Location)
	if !ok {
		t.Fatalf("sent %T, want *tele.Location", c.sent[0].what)
	}
	if loc.Lat != float32(56.83) || loc.Lng != float32(60.59) {
		t.Errorf("location = %+v", loc)
	}
}

func TestPlaceReturnFromLocationRemovesBothMessages(t *testing.T) {
	fx := newFixture(&fakeProvider{})
	fx.msgr.editErr = notEditable()
	c := withCommand(newFakeContext(), "p", tokenReturn)
	c.message.Location = &tele.Location{Lat: 1, Lng: 2}

	if err := fx.h.Places(c); err != nil {
		t.Fatalf("Places: %v", err)
	}
	var deleted []int
	for _, call := range fx.msgr.calls {
		if call.op == "delete" {
			deleted = append(deleted, call.messageID)
		}
	}
	if len(deleted) != 2 || deleted[0] != 41 || deleted[1] != 42 {
		t.Errorf("deleted = %v, want [41 42]", deleted)
	}
	last := fx.msgr.calls[len(fx.msgr.calls)-1]
	if last.op != "send" || last.text != textPlacesEmpty {
		t.Errorf("last call = %+v", last)
	}
}

func TestInfoWithDocumentAttachment(t *testing.T) {
	fx := newFixture(&fakeProvider{infos: []content.OptionalInfo{
		{ID: 1, Title: "Памятка", Slug: "memo", Text: "Текст памятки", File: strPtr("docs/memo.pdf")},
	}})
	c := withCommand(newFakeContext(), "i", "memo")

	if err := fx.h.Infos(c); err != nil {
		t.Fatalf("Infos: %v", err)
	}
	if c.deleted != 1 {
		t.Errorf("deleted = %d, want 1", c.deleted)
	}
	doc, ok := c.sent[0].what.(*tele.Document)
	if !ok {
		t.Fatalf("sent %T, want *tele.Document", c.sent[0].what)
	}
	if doc.FileName != "memo.pdf" {
		t.Errorf("FileName = %q", doc.FileName)
	}
	if doc.Caption != "Текст памятки" {
		t.Errorf("Caption = %q", doc.Caption)
	}
}

func TestInfoWithoutFileReplaces(t *testing.T) {
	fx := newFixture(&fakeProvider{infos: []content.OptionalInfo{
		{ID: 1, Title: "FAQ", Slug: "faq", Text: "Ответы"},
	}})
	c := withCommand(newFakeContext(), "i", "faq")

	if err := fx.h.Infos(c); err != nil {
		t.Fatalf("Infos: %v", err)
	}
	if len(fx.msgr.calls) != 1 || fx.msgr.calls[0].text != "Ответы" {
		t.Fatalf("calls = %+v", fx.msgr.calls)
	}
	if c.deleted != 0 {
		t.Errorf("text-only info must not delete the trigger")
	}
}

func TestHelpArmsState(t *testing.T) {
	fx := newFixture(&fakeProvider{})
	c := newFakeContext()

	if err := fx.h.Help(c); err != nil {
		t.Fatalf("Help: %v", err)
	}
	if got := fx.states.Get(state.KeyFrom(c)); got != StateHelpRequest {
		t.Errorf("state = %q", got)
	}
	if len(c.sent) != 1 || c.sent[0].what != textHelpPrompt {
		t.Fatalf("sent = %+v", c.sent)
	}
}

func TestHelpForwardNotifiesAllAdmins(t *testing.T) {
	fx := newFixture(&fakeProvider{})
	c := newFakeContext()
	c.text = "Потерял путёвку <скан>"
	key := state.KeyFrom(c)
	fx.states.Set(key, StateHelpRequest)

	if err := fx.h.HelpForward(c); err != nil {
		t.Fatalf("HelpForward: %v", err)
	}
	if len(fx.notified) != 2 {
		t.Fatalf("notified = %+v", fx.notified)
	}
	if fx.notified[0].chatID != 100 || fx.notified[1].chatID != 200 {
		t.Errorf("recipients = %+v", fx.notified)
	}
	forwarded := fx.notified[0].text
	if !strings.Contains(forwarded, "@camper") {
		t.Errorf("forwarded text missing username: %q", forwarded)
	}
	if !strings.Contains(forwarded, "&lt;скан&gt;") {
		t.Errorf("forwarded text not escaped: %q", forwarded)
	}

	if len(c.sent) != 1 {
		t.Fatalf("confirmation = %+v", c.sent)
	}
	confirm, _ := c.sent[0].what.(string)
	if !strings.Contains(confirm, "https://t.me/nika") {
		t.Errorf("confirmation missing contact: %q", confirm)
	}

	// Follow-up messages keep flowing to support until the user cancels.
	if !fx.states.InProgress(key) {
		t.Error("help state must stay active after forwarding")
	}
}

func TestSessionListRoundTrip(t *testing.T) {
	fx := newFixture(&fakeProvider{sessions: []content.Session{
		{ID: 1, Title: "Лето", Slug: "summer"},
		{ID: 2, Title: "Зима", Slug: "winter"},
	}})

	// Entering the list from the main menu and returning to it from a
	// detail view must produce the same rendering.
	entry := withCommand(newFakeContext(), nsMain, tokenSessions)
	if err := fx.h.MainMenu(entry); err != nil {
		t.Fatalf("MainMenu: %v", err)
	}

	back := withCommand(newFakeContext(), "s", tokenReturn)
	if err := fx.h.Sessions(back); err != nil {
		t.Fatalf("Sessions return: %v", err)
	}

	if len(entry.edits) != 1 || len(fx.msgr.calls) != 1 {
		t.Fatalf("entry edits = %+v, return calls = %+v", entry.edits, fx.msgr.calls)
	}
	entryText, _ := entry.edits[0].what.(string)
	if entryText != fx.msgr.calls[0].text {
		t.Errorf("list texts diverge: %q vs %q", entryText, fx.msgr.calls[0].text)
	}
}

func TestHelpForwardIgnoresEmptyText(t *testing.T) {
	fx := newFixture(&fakeProvider{})
	c := newFakeContext()
	c.text = "   "

	if err := fx.h.HelpForward(c); err != nil {
		t.Fatalf("HelpForward: %v", err)
	}
	if len(fx.notified) != 0 || len(c.sent) != 0 {
		t.Errorf("blank text produced traffic: %+v %+v", fx.notified, c.sent)
	}
}
