package policy

import (
	"testing"

	"mediasift/internal/config"
	"mediasift/internal/media/probe"
)

func subtitleRules(t *testing.T) SubtitleRules {
	t.Helper()
	cfg := config.Default()
	return NewSubtitleRules(&cfg)
}

func TestSubtitleMatch(t *testing.T) {
	rules := subtitleRules(t)
	decision := rules.Subtitle(probe.Stream{Index: 2, Codec: "ass", Language: "eng"})
	if !decision.Matched {
		t.Fatalf("expected match, got %+v", decision)
	}
	if decision.Qualifier != "en" {
		t.Fatalf("expected qualifier en, got %q", decision.Qualifier)
	}
}

func TestSubtitleRejectsCodecRegardlessOfLanguage(t *testing.T) {
	rules := subtitleRules(t)
	decision := rules.Subtitle(probe.Stream{Codec: "hdmv_pgs_subtitle", Language: "eng"})
	if decision.Matched {
		t.Fatal("image-based codec must never match")
	}
	if decision.Reason != ReasonRejectedCodec {
		t.Fatalf("expected codec rejection, got %v", decision.Reason)
	}
}

func TestSubtitleRejectsUnmappedLanguage(t *testing.T) {
	rules := subtitleRules(t)
	for _, tag := range []string{"", "und", "xxx"} {
		decision := rules.Subtitle(probe.Stream{Codec: "subrip", Language: tag})
		if decision.Matched {
			t.Fatalf("tag %q must not match", tag)
		}
		if decision.Reason != ReasonRejectedLanguage {
			t.Fatalf("tag %q: expected language rejection, got %v", tag, decision.Reason)
		}
	}
}

func TestSubtitleAlternateSpellingsShareQualifier(t *testing.T) {
	rules := subtitleRules(t)
	fra := rules.Subtitle(probe.Stream{Codec: "subrip", Language: "fra"})
	fre := rules.Subtitle(probe.Stream{Codec: "subrip", Language: "fre"})
	if !fra.Matched || !fre.Matched {
		t.Fatalf("expected both French spellings to match: %+v %+v", fra, fre)
	}
	if fra.Qualifier != "fr" || fre.Qualifier != "fr" {
		t.Fatalf("expected shared fr qualifier, got %q and %q", fra.Qualifier, fre.Qualifier)
	}
}

func TestSubtitleNormalizesCase(t *testing.T) {
	rules := subtitleRules(t)
	decision := rules.Subtitle(probe.Stream{Codec: "ASS", Language: " ENG "})
	if !decision.Matched || decision.Qualifier != "en" {
		t.Fatalf("expected case-insensitive match, got %+v", decision)
	}
}

func TestProfileExactMatch(t *testing.T) {
	cfg := config.Default()
	rules := NewProfileRules(&cfg)

	if !rules.Profile("Main 10@L5.1@High") {
		t.Fatal("expected target profile to match")
	}
	if rules.Profile("main 10@l5.1@high") {
		t.Fatal("profile matching must be case-sensitive")
	}
	if rules.Profile("Main@L4@Main") {
		t.Fatal("safe profile must not match")
	}
	if rules.Profile("") {
		t.Fatal("empty profile must not match")
	}
}
