package service

import (
	"errors"
	"fmt"
	"strings"

	"lawmate-backend/llm"
	"lawmate-backend/models"
)

// FormatAnswerHTML renders a structured answer into the HTML stored as the
// assistant message content.
func FormatAnswerHTML(ans *models.Answer) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("<b>Shrnutí:</b><br>%s<br><br>", ans.Summary))
	b.WriteString("<b>Co udělat teď:</b><br>" + bullets(ans.WhatToDoNow) + "<br>")
	b.WriteString("<b>Co si připravit:</b><br>" + bullets(ans.WhatToPrepare) + "<br>")
	b.WriteString("<b>Důležité zákony / paragrafy:</b><br>" + bullets(ans.RelevantLaws) + "<br>")
	b.WriteString("<b>Lhůty:</b><br>" + bullets(ans.ImportantDeadlines) + "<br>")
	b.WriteString("<b>Kdy kontaktovat právníka:</b><br>" + bullets(ans.WhenToContactLawyer) + "<br>")
	b.WriteString("<b>Poznámky:</b><br>" + bullets(ans.Notes) + "<br>")

	if len(ans.Sources) > 0 {
		b.WriteString("<b>Zdroje (orientačně):</b><br>")
		for _, s := range ans.Sources {
			b.WriteString(fmt.Sprintf("• <a href='%s'>%s</a> – %s<br>", s.URL, s.Title, s.WhyRelevant))
		}
		b.WriteString("<br>")
	}

	b.WriteString("<i>Upozornění: Lawmate není advokát. Odpověď je orientační a nemusí být úplná.</i>")
	return b.String()
}

func bullets(items []string) string {
	if len(items) == 0 {
		return "—<br>"
	}
	var b strings.Builder
	for _, item := range items {
		b.WriteString("• " + item + "<br>")
	}
	return b.String()
}

// formatErrorHTML renders a generation failure as the assistant reply, with
// a hint toward configuration.
func formatErrorHTML(err error) string {
	label := "chyba"
	var perr *llm.ProviderError
	if errors.As(err, &perr) {
		switch perr.Kind {
		case llm.ErrKindConfig:
			label = "chyba konfigurace"
		case llm.ErrKindTransport:
			label = "chyba připojení"
		case llm.ErrKindBadResponse:
			label = "neplatná odpověď modelu"
		}
	}
	return fmt.Sprintf("Nastala chyba: <b>%s</b><br>%s<br><br>Tip: zkontroluj .env a nastavení provideru.",
		label, err.Error())
}
