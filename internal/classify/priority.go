package classify

import (
	"strings"

	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/internal/model"
)

var highPriorityKeywords = []string{
	"urgent", "immediately", "asap", "critical", "emergency", "cannot access",
	"down", "not working", "broken", "help me", "system access blocked",
	"completely inaccessible", "affecting operations", "highly critical",
	"servers are down", "immediate support", "immediate correction",
	"billing issue", "charged twice", "cannot reset", "never arrived",
}

var businessImpactKeywords = []string{
	"operations", "business", "server", "system", "production", "critical",
	"affecting", "impact", "downtime", "inaccessible",
}

var timeIndicators = []string{
	"today", "now", "immediate", "asap", "urgent", "yesterday", "since yesterday",
}

// DetectPriority maps text to urgent or normal. Each keyword fires at most
// once per group: high-priority phrases weigh 2, business-impact and
// time-urgency phrases weigh 1, and a repeated-issue bonus adds 2 on top of
// the group hits it overlaps with. The urgency threshold is a total of 2.
func DetectPriority(text string) model.Priority {
	t := strings.ToLower(text)

	urgencyScore := 0

	for _, kw := range highPriorityKeywords {
		if strings.Contains(t, kw) {
			urgencyScore += 2
		}
	}
	for _, kw := range businessImpactKeywords {
		if strings.Contains(t, kw) {
			urgencyScore++
		}
	}
	for _, kw := range timeIndicators {
		if strings.Contains(t, kw) {
			urgencyScore++
		}
	}

	// Repeated attempts or a day-old issue indicate urgency. These phrases
	// also appear in the lists above; the threshold was tuned with the
	// overlap in place, so it stays.
	if strings.Contains(t, "multiple attempts") || strings.Contains(t, "since yesterday") {
		urgencyScore += 2
	}

	if urgencyScore >= 2 {
		return model.PriorityUrgent
	}
	return model.PriorityNormal
}
