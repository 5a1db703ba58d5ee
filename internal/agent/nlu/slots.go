package nlu

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/proraahi-core/server/internal/agent/model"
)

// DefaultInterest is assigned when no interest keyword matches: nature tourism is the
// broadest offering, so an unspecified request is treated as a nature trip.
const DefaultInterest = "nature"

const (
	InterestNature    = "nature"
	InterestCultural  = "cultural"
	InterestAdventure = "adventure"
)

const digitClass = `[0-9০-৯०-९]`

// Numeric day patterns, tried in order.
var dayPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(` + digitClass + `+)\s*days?`),
	regexp.MustCompile(`(` + digitClass + `+)\s*দিন`),
	regexp.MustCompile(`(` + digitClass + `+)\s*दिन`),
}

// Day units per language. A number word only counts when a unit of its own language
// follows it.
var (
	englishDayUnits    = []string{"days", "day"}
	hinglishDayUnits   = []string{"dino", "din"}
	devanagariDayUnits = []string{"दिनों", "दिन"}
	bengaliDayUnits    = []string{"দিনের", "দিন"}
)

type numberWord struct {
	word  string
	value int
	units []string
}

// Number words 1-5, tried in order after the numeric patterns.
var numberWords = []numberWord{
	{"one", 1, englishDayUnits}, {"two", 2, englishDayUnits}, {"three", 3, englishDayUnits},
	{"four", 4, englishDayUnits}, {"five", 5, englishDayUnits},
	{"ek", 1, hinglishDayUnits}, {"do", 2, hinglishDayUnits}, {"teen", 3, hinglishDayUnits},
	{"char", 4, hinglishDayUnits}, {"panch", 5, hinglishDayUnits},
	{"एक", 1, devanagariDayUnits}, {"दो", 2, devanagariDayUnits}, {"तीन", 3, devanagariDayUnits},
	{"चार", 4, devanagariDayUnits}, {"पांच", 5, devanagariDayUnits}, {"पाँच", 5, devanagariDayUnits},
	{"এক", 1, bengaliDayUnits}, {"দুই", 2, bengaliDayUnits}, {"তিন", 3, bengaliDayUnits},
	{"চার", 4, bengaliDayUnits}, {"পাঁচ", 5, bengaliDayUnits},
}

// SlotExtractor parses day counts and interest tags out of free text. Locations and
// dates are left to the NLU provider.
type SlotExtractor struct{}

func NewSlotExtractor() *SlotExtractor {
	return &SlotExtractor{}
}

// ExtractDays returns the requested number of days. The second value is false when the
// text does not state one.
func (x *SlotExtractor) ExtractDays(text string) (int, bool) {
	lower := strings.ToLower(text)
	for _, re := range dayPatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			if n, ok := parseDigits(m[1]); ok {
				return n, true
			}
		}
	}
	for _, nw := range numberWords {
		if numberWordBeforeUnit(lower, nw) {
			return nw.value, true
		}
	}
	return 0, false
}

// ExtractInterests tests each interest category independently.
func (x *SlotExtractor) ExtractInterests(text string) []string {
	lower := strings.ToLower(text)
	var interests []string
	if containsAny(lower, natureKeywords) {
		interests = append(interests, InterestNature)
	}
	if containsAny(lower, culturalKeywords) {
		interests = append(interests, InterestCultural)
	}
	if containsAny(lower, adventureKeywords) {
		interests = append(interests, InterestAdventure)
	}
	if len(interests) == 0 {
		return []string{DefaultInterest}
	}
	return interests
}

// Extract returns the locally derivable slots. The intent is accepted for symmetry with
// the provider contract; every intent gets the same extraction.
func (x *SlotExtractor) Extract(text string, _ model.Intent) model.Entities {
	entities := model.Entities{
		model.SlotInterests: x.ExtractInterests(text),
	}
	if days, ok := x.ExtractDays(text); ok {
		entities[model.SlotDays] = days
		entities[model.SlotDuration] = FormatDuration(days)
	}
	return entities
}

// FormatDuration renders a day count the way durations are stored in entities.
func FormatDuration(days int) string {
	if days == 1 {
		return "1 day"
	}
	return strconv.Itoa(days) + " days"
}

func numberWordBeforeUnit(lower string, nw numberWord) bool {
	word := nw.word
	for from := 0; from < len(lower); {
		idx := strings.Index(lower[from:], word)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(word)
		from = start + 1
		if isASCII(word) && !(boundaryBefore(lower, start) && boundaryAfter(lower, end)) {
			continue
		}
		rest := strings.TrimLeftFunc(lower[end:], unicode.IsSpace)
		rest = strings.TrimPrefix(rest, "-")
		for _, unit := range nw.units {
			if !strings.HasPrefix(rest, unit) {
				continue
			}
			if isASCII(unit) && !boundaryAfter(rest, len(unit)) {
				continue
			}
			return true
		}
	}
	return false
}

// parseDigits converts ASCII, Bengali or Devanagari digits to an int. Zero is not a
// day count.
func parseDigits(s string) (int, bool) {
	n := 0
	for _, r := range s {
		var d rune
		switch {
		case r >= '0' && r <= '9':
			d = r - '0'
		case r >= '০' && r <= '৯':
			d = r - '০'
		case r >= '०' && r <= '९':
			d = r - '०'
		default:
			return 0, false
		}
		n = n*10 + int(d)
		if n > 365 {
			return 0, false
		}
	}
	return n, s != "" && n > 0
}
