package main

import "strings"

// Best-effort guess between Romanian and English, used only to localize
// system-level and error messages. The model gets its own instruction to
// mirror the user's language, so a wrong guess here is cosmetic.

const (
	langEnglish  = "en"
	langRomanian = "ro"
)

var romanianWords = map[string]struct{}{
	"si": {}, "sau": {}, "este": {}, "sunt": {}, "care": {}, "pentru": {},
	"despre": {}, "unde": {}, "cand": {}, "cum": {}, "ce": {}, "mai": {},
	"un": {}, "o": {}, "la": {}, "cu": {}, "din": {}, "nu": {}, "da": {},
	"vreau": {}, "poti": {}, "salut": {}, "buna": {}, "multumesc": {},
	"proiect": {}, "proiecte": {}, "te": {}, "imi": {}, "ai": {},
}

func detectLanguage(s string) string {
	if strings.ContainsAny(s, "ăâîșşțţĂÂÎȘŞȚŢ") {
		return langRomanian
	}

	hits := 0
	for _, w := range strings.Fields(normalize(s)) {
		if _, ok := romanianWords[w]; ok {
			hits++
		}
	}
	if hits >= 2 {
		return langRomanian
	}
	return langEnglish
}

func rateLimitMessage(lang, wait string) string {
	if lang == langRomanian {
		if wait != "" {
			return "Primesc prea multe întrebări chiar acum. Încearcă din nou în " + wait + "."
		}
		return "Primesc prea multe întrebări chiar acum. Încearcă din nou în câteva momente."
	}
	if wait != "" {
		return "I'm getting a lot of questions right now. Please try again in " + wait + "."
	}
	return "I'm getting a lot of questions right now. Please try again in a moment."
}

func technicalIssueMessage(lang string) string {
	if lang == langRomanian {
		return "Îmi pare rău, am o problemă tehnică momentan. Te rog încearcă mai târziu."
	}
	return "Sorry, I'm having a technical issue right now. Please try again later."
}
