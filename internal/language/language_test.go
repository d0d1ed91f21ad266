package language

import "testing"

func TestQualifierRecognizesThreeLetterCodes(t *testing.T) {
	cases := map[string]string{
		"eng": "en",
		"fra": "fr",
		"fre": "fr",
		"ger": "de",
		"deu": "de",
		"JPN": "ja",
		" spa ": "es",
	}
	for tag, want := range cases {
		if got := Qualifier(tag); got != want {
			t.Fatalf("Qualifier(%q) = %q, want %q", tag, got, want)
		}
	}
}

func TestQualifierPassesThroughTwoLetterCodes(t *testing.T) {
	if got := Qualifier("xx"); got != "xx" {
		t.Fatalf("expected unknown 2-letter tag to pass through, got %q", got)
	}
}

func TestQualifierRejectsUnknownInput(t *testing.T) {
	for _, tag := range []string{"", "und", "klingon"} {
		if got := Qualifier(tag); got != "" {
			t.Fatalf("Qualifier(%q) = %q, want empty", tag, got)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("fre"); got != "French" {
		t.Fatalf("DisplayName(fre) = %q", got)
	}
	if got := DisplayName(""); got != "Unknown" {
		t.Fatalf("DisplayName(empty) = %q", got)
	}
	if got := DisplayName("xyz"); got != "Xyz" {
		t.Fatalf("DisplayName(xyz) = %q", got)
	}
}

func TestQualifierMapCoversAlternateSpellings(t *testing.T) {
	m := QualifierMap()
	if m["fra"] != "fr" || m["fre"] != "fr" {
		t.Fatalf("expected both French spellings to map to fr, got fra=%q fre=%q", m["fra"], m["fre"])
	}
	if m["eng"] != "en" {
		t.Fatalf("expected eng to map to en, got %q", m["eng"])
	}
	if _, ok := m["und"]; ok {
		t.Fatal("expected undetermined tag to be absent from the map")
	}
}
