package usecase

import (
	"regexp"
	"strings"

	"retail_agent/internal/domain/entities"
)

// Product resolution runs authoritative stages first (name in the message,
// token overlap, explicit id) and only then the approximate history fallback.
// When nothing resolves the router asks for clarification; it never guesses.

var wordPattern = regexp.MustCompile(`[a-z0-9]+`)

func words(s string) []string {
	return wordPattern.FindAllString(strings.ToLower(s), -1)
}

// matchProductByName finds a product whose full name appears verbatim
// (case-insensitive) in the text, preferring the longest matching name so a
// short name never shadows a longer one that contains it.
func matchProductByName(text string, products []entities.Product) (entities.Product, bool) {
	lowered := strings.ToLower(text)
	var best entities.Product
	bestLen := 0
	for _, p := range products {
		name := strings.ToLower(strings.TrimSpace(p.Name))
		if name == "" {
			continue
		}
		if strings.Contains(lowered, name) && len(name) > bestLen {
			best = p
			bestLen = len(name)
		}
	}
	return best, bestLen > 0
}

// matchProductByTokens matches on word overlap: multi-word names need at
// least two overlapping words, single-word names need the exact word present.
// Ties are broken by overlap count, then by name length.
func matchProductByTokens(text string, products []entities.Product) (entities.Product, bool) {
	messageWords := make(map[string]bool)
	for _, w := range words(text) {
		messageWords[w] = true
	}

	var best entities.Product
	bestOverlap := 0
	for _, p := range products {
		nameWords := words(p.Name)
		if len(nameWords) == 0 {
			continue
		}

		overlap := 0
		for _, w := range nameWords {
			if messageWords[w] {
				overlap++
			}
		}

		required := 2
		if len(nameWords) == 1 {
			required = 1
		}
		if overlap < required {
			continue
		}
		if overlap > bestOverlap || (overlap == bestOverlap && len(p.Name) > len(best.Name)) {
			best = p
			bestOverlap = overlap
		}
	}
	return best, bestOverlap > 0
}

// historyScanDepth bounds how far back the fallback looks for a previously
// mentioned product.
const historyScanDepth = 5

// matchProductFromHistory scans recent assistant turns, newest first, for a
// product name mentioned earlier in the conversation. This is best-effort
// context recovery, never an authoritative lookup.
func matchProductFromHistory(history []entities.ChatMessage, products []entities.Product) (entities.Product, bool) {
	scanned := 0
	for i := len(history) - 1; i >= 0 && scanned < historyScanDepth; i-- {
		if history[i].Role != entities.ChatRoleAssistant {
			continue
		}
		scanned++
		if p, ok := matchProductByName(history[i].Content, products); ok {
			return p, true
		}
	}
	return entities.Product{}, false
}
