package classify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/internal/model"
)

var (
	phonePattern = regexp.MustCompile(`(\+?1?[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
)

var requirementPatterns = []string{
	"need help with", "looking for", "require assistance", "help me with",
	"issue with", "problem with", "unable to", "cannot", "trouble with",
	"integration", "api", "crm", "account verification", "login", "password reset",
	"billing", "subscription", "refund", "downtime", "server", "access",
}

var sentimentPatterns = []struct {
	phrase string
	tag    string
}{
	{"frustrated", "negative"},
	{"angry", "negative"},
	{"disappointed", "negative"},
	{"urgent", "urgent"},
	{"critical", "urgent"},
	{"immediately", "urgent"},
	{"happy", "positive"},
	{"satisfied", "positive"},
	{"thank", "positive"},
	{"highly critical", "urgent"},
	{"affecting operations", "business_impact"},
	{"charged twice", "billing_issue"},
	{"never arrived", "delivery_issue"},
	{"since yesterday", "duration"},
	{"multiple attempts", "repeated_issue"},
	{"servers are down", "infrastructure"},
	{"completely inaccessible", "severe_access_issue"},
}

// ExtractInformation pulls contact strings, requirement tags and sentiment
// indicators out of the email's subject and body. Contact patterns run
// against the raw text (phone and address matching is case-sensitive by
// construction); the phrase lists match against the lower-cased text. Every
// field has a fallback value, so the result is never empty.
func ExtractInformation(email *model.Email) model.ExtractedInfo {
	text := email.Subject + " " + email.Body
	textLower := strings.ToLower(text)

	var contacts []string
	for _, m := range phonePattern.FindAllString(text, -1) {
		if m != email.Sender {
			contacts = append(contacts, m)
		}
	}
	for _, m := range emailPattern.FindAllString(text, -1) {
		if m != email.Sender {
			contacts = append(contacts, m)
		}
	}
	contactDetails := strings.Join(contacts, ", ")
	if contactDetails == "" {
		contactDetails = "None extracted"
	}

	var requirements []string
	for _, p := range requirementPatterns {
		if strings.Contains(textLower, p) {
			requirements = append(requirements, p)
		}
	}
	if len(requirements) == 0 {
		requirements = []string{"General support request"}
	}

	var indicators []string
	for _, sp := range sentimentPatterns {
		if strings.Contains(textLower, sp.phrase) {
			indicators = append(indicators, fmt.Sprintf("%s (%s)", sp.phrase, sp.tag))
		}
	}
	if len(indicators) == 0 {
		indicators = []string{"Neutral inquiry"}
	}

	return model.ExtractedInfo{
		ContactDetails:      contactDetails,
		Requirements:        requirements,
		SentimentIndicators: indicators,
	}
}
