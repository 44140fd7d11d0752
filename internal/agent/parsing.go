package agent

import (
	"regexp"
	"strings"
)

// Section markers for the agent wire format. Square brackets avoid
// collisions with XML-ish text a model may produce around them.
var (
	itemSectionRegex = regexp.MustCompile(`(?s)\[ITEM\]\s*(.*?)\s*\[/ITEM\]`)
	saySectionRegex  = regexp.MustCompile(`(?s)\[SAY\]\s*(.*?)\s*\[/SAY\]`)
	fireSectionRegex = regexp.MustCompile(`(?s)\[FIRE\]\s*(.*?)\s*\[/FIRE\]`)
)

// ParseDecision extracts a Decision from raw agent output. Parsing is
// tolerant and each section defaults independently: a missing or
// unparseable item section means no item, a missing communication
// section means silence, and a missing or unrecognized fire section
// means firing at the opponent. The whole response is never rejected.
func ParseDecision(raw string) Decision {
	var d Decision

	if m := itemSectionRegex.FindStringSubmatch(raw); m != nil {
		parseItemSection(m[1], &d)
	}
	if m := saySectionRegex.FindStringSubmatch(raw); m != nil {
		parseSaySection(m[1], &d)
	}
	if m := fireSectionRegex.FindStringSubmatch(raw); m != nil {
		if strings.Contains(strings.ToLower(m[1]), "self") {
			d.Target = TargetSelf
		}
	}

	return d
}

func parseItemSection(text string, d *Decision) {
	text = strings.TrimSpace(text)
	if text == "" || strings.Contains(strings.ToLower(text), "none") {
		return
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return
	}
	d.UseItem = true
	d.Item = fields[0]
	if len(fields) > 1 {
		d.ItemParam = strings.Join(fields[1:], " ")
	}
}

func parseSaySection(text string, d *Decision) {
	text = strings.TrimSpace(text)
	lower := strings.ToLower(text)

	switch {
	case text == "" || strings.Contains(lower, "silent"):
		d.Comm = CommSilent
	case strings.HasPrefix(lower, "negotiate"):
		d.Comm = CommNegotiate
		d.Message = strings.TrimSpace(text[len("negotiate"):])
	case strings.HasPrefix(lower, "talk"):
		d.Comm = CommTalk
		d.Message = strings.TrimSpace(text[len("talk"):])
	default:
		// Anything else is treated as spoken words; losing a message to a
		// formatting slip would change the game more than keeping it.
		d.Comm = CommTalk
		d.Message = text
	}
}

// IsAcceptance classifies a negotiation response: case-insensitive
// containment of the accept keyword. Absence is a decline.
func IsAcceptance(response, acceptKeyword string) bool {
	return strings.Contains(strings.ToLower(response), strings.ToLower(acceptKeyword))
}
