package usecase

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"crisis-alert-srv/internal/alert"
	"crisis-alert-srv/internal/model"
	"crisis-alert-srv/pkg/telegram"
	"crisis-alert-srv/pkg/webhook"
)

type botTemplate struct {
	header    string
	subtitle  string
	helplines string
	footer    string
}

const (
	lineEmergency = "• Emergencias: 112"
	lineEsperanza = "• Teléfono de la Esperanza: 91 459 00 50"
	line024       = "• Línea 024: prevención del suicidio"
	linePastoral  = "• Apoyo pastoral recomendado"
)

var botTemplates = map[model.RiskLevel]botTemplate{
	model.RiskLevelCritical: {
		header:    "🚨 <b>ALERTA CRÍTICA</b>",
		subtitle:  "Usuario en riesgo detectado. Revisar inmediatamente.",
		helplines: helplineBlock(lineEmergency, lineEsperanza, line024),
		footer:    "🔴 <b>ACCIÓN REQUERIDA</b>",
	},
	model.RiskLevelHigh: {
		header:    "⚠️ <b>ALERTA ALTA</b>",
		subtitle:  "Usuario con indicadores de riesgo elevado.",
		helplines: helplineBlock(lineEmergency, lineEsperanza),
		footer:    "🟠 Intervención profesional urgente",
	},
	model.RiskLevelMedium: {
		header:    "🟡 <b>ALERTA MEDIA</b>",
		subtitle:  "Usuario con indicadores de malestar emocional.",
		helplines: helplineBlock(lineEsperanza, linePastoral),
		footer:    "Seguimiento profesional recomendado",
	},
}

var lowTemplate = botTemplate{
	header:   "ℹ️ <b>AVISO</b>",
	subtitle: "Mensaje marcado para revisión.",
}

func helplineBlock(lines ...string) string {
	return "📞 <b>Líneas de apoyo:</b>\n" + strings.Join(lines, "\n")
}

// buildBotMessage renders the HTML text sent to the responder chat.
func buildBotMessage(service string, p model.AlertPayload) string {
	tpl, ok := botTemplates[model.RiskLevel(p.RiskLevel)]
	if !ok {
		tpl = lowTemplate
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s\n", tpl.header, telegram.EscapeHTML(service))
	b.WriteString(tpl.subtitle)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "📊 Nivel: <b>%s</b> (puntuación %d)\n", p.RiskLevel, p.Score)
	fmt.Fprintf(&b, "👤 Usuario: <code>%s</code>\n", telegram.EscapeHTML(p.UserID))
	fmt.Fprintf(&b, "💬 Fragmento: \"%s\"\n", telegram.EscapeHTML(excerpt(p.Message, alert.MaxExcerptLen)))
	if tpl.helplines != "" {
		b.WriteString("\n")
		b.WriteString(tpl.helplines)
		b.WriteString("\n")
	}
	if tpl.footer != "" {
		b.WriteString("\n")
		b.WriteString(tpl.footer)
	}
	return b.String()
}

// truncateRunes cuts s to at most max runes without splitting a character.
func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max])
}

// excerpt is truncateRunes plus an ellipsis when something was cut.
func excerpt(s string, max int) string {
	cut := truncateRunes(s, max)
	if len(cut) < len(s) {
		return cut + "..."
	}
	return cut
}

// describeFailure renders a channel error for the operational log without
// echoing request bodies.
func describeFailure(err error) string {
	var se *webhook.StatusError
	if errors.As(err, &se) {
		return fmt.Sprintf("http status %d", se.StatusCode)
	}
	var ae *telegram.APIError
	if errors.As(err, &ae) {
		return fmt.Sprintf("api error %d: %s", ae.ErrorCode, ae.Description)
	}
	return err.Error()
}
