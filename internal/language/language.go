package language

import (
	"strings"

	"golang.org/x/text/cases"
	xlang "golang.org/x/text/language"
)

type entry struct {
	code2   string // ISO 639-1 (2-letter)
	code3   string // ISO 639-2 primary (3-letter)
	alt3    string // ISO 639-2 alternate (e.g. "fre" vs "fra")
	display string // Human-readable name
}

var languages = []entry{
	{"en", "eng", "", "English"},
	{"es", "spa", "", "Spanish"},
	{"fr", "fra", "fre", "French"},
	{"de", "deu", "ger", "German"},
	{"it", "ita", "", "Italian"},
	{"pt", "por", "", "Portuguese"},
	{"ja", "jpn", "", "Japanese"},
	{"ko", "kor", "", "Korean"},
	{"zh", "zho", "chi", "Chinese"},
	{"ru", "rus", "", "Russian"},
	{"ar", "ara", "", "Arabic"},
	{"hi", "hin", "", "Hindi"},
	{"nl", "nld", "dut", "Dutch"},
	{"pl", "pol", "", "Polish"},
	{"sv", "swe", "", "Swedish"},
	{"da", "dan", "", "Danish"},
	{"no", "nor", "", "Norwegian"},
	{"fi", "fin", "", "Finnish"},
}

// Index maps built at init time.
var (
	byCode2 map[string]*entry
	byCode3 map[string]*entry
)

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	byCode3 = make(map[string]*entry, len(languages)*2)
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
		byCode3[e.code3] = e
		if e.alt3 != "" {
			byCode3[e.alt3] = e
		}
	}
}

func lookup(code string) *entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	if e, ok := byCode2[code]; ok {
		return e
	}
	if e, ok := byCode3[code]; ok {
		return e
	}
	return nil
}

// Qualifier converts a recognized stream language tag to the two-letter
// filename qualifier. Returns empty string for unrecognized input.
// A 2-letter tag passes through even when unknown.
func Qualifier(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return ""
	}
	if e := lookup(tag); e != nil {
		return e.code2
	}
	if len(tag) == 2 {
		return tag
	}
	return ""
}

// DisplayName returns a human-readable language name for any recognized tag.
// Returns "Unknown" for empty input, or the title-cased tag for unrecognized input.
func DisplayName(tag string) string {
	if strings.TrimSpace(tag) == "" {
		return "Unknown"
	}
	if e := lookup(tag); e != nil {
		return e.display
	}
	return cases.Title(xlang.Und).String(strings.TrimSpace(tag))
}

// QualifierMap returns the language tag to qualifier mapping for every
// recognized spelling, including ISO 639-2 alternates. Both "fre" and "fra"
// map to "fr"; callers relying on distinct artifacts per tag must account
// for that collision themselves.
func QualifierMap() map[string]string {
	m := make(map[string]string, len(languages)*2)
	for i := range languages {
		e := &languages[i]
		m[e.code3] = e.code2
		if e.alt3 != "" {
			m[e.alt3] = e.code2
		}
	}
	return m
}
