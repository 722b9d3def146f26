package ai

import (
	"regexp"
	"strings"

	"video-detective/internal/models"
)

// UnknownLevel stands in for a label the model left out.
const UnknownLevel = "Unknown"

type ReactionCategory int

const (
	ModerateMixed ReactionCategory = iota
	LowBiasHighFactual
	HighBiasOrQuestionable
)

func (c ReactionCategory) String() string {
	switch c {
	case LowBiasHighFactual:
		return "low_factual"
	case HighBiasOrQuestionable:
		return "high_questionable"
	default:
		return "moderate_mixed"
	}
}

var (
	biasPattern       = regexp.MustCompile(`Bias:\s*(\w+)`)
	factualityPattern = regexp.MustCompile(`Factuality:\s*(\w+)`)
)

var reactions = map[ReactionCategory][]string{
	LowBiasHighFactual: {
		"😽 *Jaime's Take:* This one smells fresh! Content appears credible and well-researched.",
		"😽😽 *Jaime's Take:* My whiskers approve! Solid information with minimal bias detected.",
		"😽😽😽 *Jaime's Take:* Investigation complete - this checks out as trustworthy content.",
	},
	ModerateMixed: {
		"🙀 *Jaime's Take:* Something fishy here... Mixed signals detected. Cross-reference recommended.",
		"🙀🙀 *Jaime's Take:* Partial truth alert! Contains both facts and opinions - view critically.",
		"🙀🙀🙀 *Jaime's Take:* My detective senses tingling. Not entirely objective - proceed with awareness.",
	},
	HighBiasOrQuestionable: {
		"😾😾😾 *Jaime's Take:* RED FLAG! High bias detected. This content may be misleading or agenda-driven.",
		"😾 *Jaime's Take:* Strong commercial/ideological bias present. Verify claims independently.",
		"😾😾 *Jaime's Take:* Suspicious content detected. Treat claims with significant skepticism.",
	},
}

// ParseVerdict pulls the first Bias: and Factuality: words out of the
// assessment. The captured words keep their original case.
func ParseVerdict(assessment string) models.Verdict {
	verdict := models.Verdict{Bias: UnknownLevel, Factuality: UnknownLevel}
	if m := biasPattern.FindStringSubmatch(assessment); m != nil {
		verdict.Bias = m[1]
	}
	if m := factualityPattern.FindStringSubmatch(assessment); m != nil {
		verdict.Factuality = m[1]
	}
	return verdict
}

// Classify buckets a verdict by substring match, first rule wins. A verdict
// with both labels missing lands in ModerateMixed.
func Classify(verdict models.Verdict) ReactionCategory {
	bias := strings.ToLower(verdict.Bias)
	factuality := strings.ToLower(verdict.Factuality)

	switch {
	case strings.Contains(bias, "low") && strings.Contains(factuality, "factual"):
		return LowBiasHighFactual
	case strings.Contains(bias, "high") || strings.Contains(factuality, "questionable"):
		return HighBiasOrQuestionable
	default:
		return ModerateMixed
	}
}

// Reactions returns a copy of the fixed reaction lines for category.
func Reactions(category ReactionCategory) []string {
	lines := reactions[category]
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}

// Picker is the source of randomness for cosmetic choices. *rand.Rand
// satisfies it.
type Picker interface {
	IntN(n int) int
}

func PickReaction(category ReactionCategory, rng Picker) string {
	lines := reactions[category]
	return lines[rng.IntN(len(lines))]
}
