package classify

import (
	"strings"

	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/internal/model"
)

var positiveKeywords = []string{
	"thank", "thanks", "great", "excellent", "good", "happy", "satisfied",
	"love", "wonderful", "amazing", "appreciate", "pleased", "fantastic",
	"perfect", "awesome", "brilliant", "helpful", "support", "assist",
}

var negativeKeywords = []string{
	"angry", "frustrated", "hate", "terrible", "awful", "bad", "worst",
	"horrible", "disappointed", "urgent", "immediately", "critical",
	"cannot access", "not working", "broken", "issue", "problem", "error",
	"down", "failed", "blocked", "unable", "trouble", "help", "fix",
	"resolve", "charged twice", "billing issue", "inaccessible", "doesn't work",
	"never arrived", "multiple attempts", "completely", "affecting operations",
}

var urgencyKeywords = []string{
	"urgent", "critical", "immediate", "asap", "emergency", "now", "today",
	"immediately", "highly critical", "completely inaccessible", "affecting operations",
}

// AnalyzeSentiment scores text against weighted keyword lists and maps it to
// one of the three sentiment buckets. Positive and negative keywords count
// every occurrence; urgency keywords add a flat 2 to the negative score when
// present at all. Support requests skew negative by a 0.5 bias, and a ±1
// hysteresis band around the tie resolves to neutral.
func AnalyzeSentiment(text string) model.Sentiment {
	t := strings.ToLower(text)

	var positiveScore, negativeScore float64

	for _, w := range positiveKeywords {
		positiveScore += float64(strings.Count(t, w))
	}
	for _, w := range negativeKeywords {
		negativeScore += float64(strings.Count(t, w))
	}
	for _, w := range urgencyKeywords {
		if strings.Contains(t, w) {
			negativeScore += 2
		}
	}

	// Support requests are typically neutral/negative.
	if strings.Contains(t, "support") || strings.Contains(t, "help") || strings.Contains(t, "issue") {
		negativeScore += 0.5
	}

	switch {
	case negativeScore > positiveScore+1:
		return model.SentimentNegative
	case positiveScore > negativeScore+1:
		return model.SentimentPositive
	default:
		return model.SentimentNeutral
	}
}
