package assisting

import (
	"regexp"
	"strings"

	"github.com/vfg2006/commerce-insights-api/pkg/utils"
)

var (
	blankLines    = regexp.MustCompile(`\n{3,}`)
	repeatedSpace = regexp.MustCompile(`[ \t]{2,}`)
	finalPunct    = regexp.MustCompile(`[.!?]\s*$`)
)

// FormatResponse normaliza o texto do modelo para exibição: remove aspas externas,
// reindenta JSON, junta linhas em branco e espaços repetidos e garante pontuação final.
func FormatResponse(text string) string {
	if text == "" {
		return ""
	}

	text = strings.TrimSpace(text)
	text = stripQuotes(text)

	if pretty, ok := utils.PrettyJSON(text); ok {
		return pretty
	}

	text = blankLines.ReplaceAllString(text, "\n\n")
	text = repeatedSpace.ReplaceAllString(text, " ")

	if !finalPunct.MatchString(text) {
		text = strings.TrimRight(text, " \t\r\n") + "."
	}

	return text
}

func stripQuotes(text string) string {
	for _, quote := range []string{`"`, `'`} {
		if strings.HasPrefix(text, quote) && strings.HasSuffix(text, quote) {
			if len(text) < 2 {
				return ""
			}
			return strings.TrimSpace(text[1 : len(text)-1])
		}
	}
	return text
}
