package render

import (
	"strings"
	"testing"
	"time"

	"github.com/nika-camp/campbot/internal/content"
)

func strPtr(s string) *string { return &s }

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestSessionFull(t *testing.T) {
	s := &content.Session{
		Title:       "Летняя смена",
		Slug:        "summer",
		PlaceTitle:  strPtr("База «Лесная»"),
		StartDate:   datePtr(2026, time.July, 1),
		EndDate:     datePtr(2026, time.July, 14),
		Description: strPtr("Походы & купание"),
	}

	got := Session(s)

	for _, want := range []string{
		"🏕️ Смена <strong>«Летняя смена»</strong>",
		"🗺️ Место проведения: <strong>База «Лесная»</strong>",
		"📆 Даты: <strong>01.07.2026–14.07.2026</strong>",
		"Походы &amp; купание",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Session() missing %q in:\n%s", want, got)
		}
	}
}

func TestSessionMinimal(t *testing.T) {
	got := Session(&content.Session{Title: "Смена", Slug: "s1"})

	if got != "🏕️ Смена <strong>«Смена»</strong>" {
		t.Errorf("Session() = %q", got)
	}
	for _, absent := range []string{"Место проведения", "Даты"} {
		if strings.Contains(got, absent) {
			t.Errorf("Session() leaked optional section %q", absent)
		}
	}
}

func TestSessionDatesRequireBoth(t *testing.T) {
	got := Session(&content.Session{
		Title:     "Смена",
		StartDate: datePtr(2026, time.July, 1),
	})
	if strings.Contains(got, "Даты") {
		t.Errorf("Session() rendered dates with missing end date: %q", got)
	}
}

func TestSessionEscapesTitle(t *testing.T) {
	got := Session(&content.Session{Title: "<b>X</b>"})
	if strings.Contains(got, "<b>") {
		t.Errorf("Session() did not escape title: %q", got)
	}
	if !strings.Contains(got, "&lt;b&gt;X&lt;/b&gt;") {
		t.Errorf("Session() escaped title missing: %q", got)
	}
}

func TestPlace(t *testing.T) {
	got := Place(&content.Place{
		Title:       "База",
		Description: strPtr("Сосны < озеро"),
	})
	want := "<strong>«База»</strong>\n\nСосны &lt; озеро"
	if got != want {
		t.Errorf("Place() = %q, want %q", got, want)
	}
}

func TestPlaceWithoutDescription(t *testing.T) {
	if got := Place(&content.Place{Title: "База"}); got != "<strong>«База»</strong>" {
		t.Errorf("Place() = %q", got)
	}
}

func TestInfo(t *testing.T) {
	got := Info(&content.OptionalInfo{Text: "a < b"})
	if got != "a &lt; b" {
		t.Errorf("Info() = %q", got)
	}
}
