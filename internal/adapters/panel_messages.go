package adapters

import (
	"golang.org/x/text/language"

	"shoppinglist-card/internal/core"
)

const panelTitle = "Shopping-List-with-Grocy-Card"

type panelMessages struct {
	Lang     string
	Title    string
	Subtitle string
	Hint     string
}

var panelLanguages = []language.Tag{language.English, language.French}

var panelMatcher = language.NewMatcher(panelLanguages)

var panelCatalog = map[language.Tag]panelMessages{
	language.English: {
		Lang:     "en",
		Title:    panelTitle,
		Subtitle: "Missing dependencies",
		Hint:     core.InstallHint,
	},
	language.French: {
		Lang:     "fr",
		Title:    panelTitle,
		Subtitle: "Dépendances manquantes",
		Hint:     "Installez-les via HACS (recommandé) ou ajoutez-les comme ressources Lovelace, puis rechargez l'interface.",
	},
}

// messagesFor picks the panel strings for an Accept-Language style value.
// Anything that is not French falls back to English.
func messagesFor(lang string) panelMessages {
	tags, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(tags) == 0 {
		return panelCatalog[language.English]
	}
	_, index, _ := panelMatcher.Match(tags...)
	return panelCatalog[panelLanguages[index]]
}
