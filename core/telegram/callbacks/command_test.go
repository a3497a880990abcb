package callbacks

import "testing"

func TestDecode(t *testing.T) {
	cases := []struct {
		raw  string
		want Command
		ok   bool
	}{
		{"main.sessions", Command{"main", "sessions"}, true},
		{"s.summer", Command{"s", "summer"}, true},
		{"\fmain.return", Command{"main", "return"}, true},
		{" p.base1 ", Command{"p", "base1"}, true},
		// The token keeps any further dots; only the first separates.
		{"i.faq.v2", Command{"i", "faq.v2"}, true},
		{"plain", Command{}, false},
		{"", Command{}, false},
		{".token", Command{}, false},
		{"ns.", Command{}, false},
	}

	for _, tc := range cases {
		got, ok := Decode(tc.raw)
		if ok != tc.ok || got != tc.want {
			t.Errorf("Decode(%q) = %v, %v; want %v, %v", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDataRoundTrip(t *testing.T) {
	cmd := Command{Namespace: "s", Token: "summer"}
	decoded, ok := Decode(cmd.Data())
	if !ok || decoded != cmd {
		t.Fatalf("round trip failed: %v, %v", decoded, ok)
	}
}
