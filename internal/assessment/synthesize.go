package assessment

import (
	"cmp"
	"slices"
	"strings"
)

// CrisisNotice opens every report whose crisis score reaches the crisis threshold.
const CrisisNotice = "**Your safety comes first.** Based on your responses, I'm concerned about your immediate " +
	"safety and wellbeing. It's crucial that you speak with a mental health professional as soon as possible. " +
	"Please consider contacting a crisis helpline (988 or 1-800-273-8255 in the US) or going to your local " +
	"emergency room if you're having thoughts of harming yourself."

const wellnessTemplate = `Based on your responses, you appear to be managing your mental health relatively well. ` +
	`However, mental health exists on a spectrum, and everyone can benefit from ongoing self-care and support.

**Key Strengths Identified:**
- Ability to regulate emotions effectively
- Healthy coping mechanisms
- Stable sleep patterns
- Good social support system

**Recommendations for Maintaining Mental Wellness:**
- Continue practicing stress management techniques
- Maintain regular sleep schedule
- Engage in regular physical activity
- Nurture social connections
- Practice mindfulness or meditation

Remember that mental health can fluctuate, and it's good to check in with yourself regularly.`

const findingsIntro = "Based on your responses, I've identified several areas that may benefit from attention " +
	"and support. Here's a detailed analysis:"

const findingsOutro = "Remember that these patterns are common and treatable with appropriate support. Many people " +
	"experience similar challenges and go on to develop effective coping strategies with help."

const disclaimer = `**Important Information About This Assessment:**
- This evaluation is meant to provide insights and guidance, not to diagnose conditions
- Mental health is complex and can change over time
- Professional assessment is recommended for a complete evaluation
- Many mental health challenges are highly treatable with appropriate support`

// observation is reported when both categories have a non-zero score.
type observation struct {
	first, second Category
	text          string
}

var observations = []observation{
	{
		first:  EmotionalRegulation,
		second: CognitivePatterns,
		text: "Your responses suggest a connection between emotional reactions and thought patterns, which is " +
			"common and treatable with appropriate support.",
	},
	{
		first:  Trauma,
		second: Anxiety,
		text: "There appears to be a relationship between past experiences and current anxiety levels, which can " +
			"be addressed through trauma-informed therapy.",
	},
	{
		first:  Sleep,
		second: EmotionalRegulation,
		text: "Your sleep patterns may be influencing your mood, or vice versa. Addressing one often helps improve " +
			"the other.",
	},
}

// Finding is a triggered condition together with the score that triggered it.
type Finding struct {
	Condition Condition `json:"condition"`
	Score     int       `json:"score"`
}

// Result is the outcome of a completed assessment.
type Result struct {
	// Triggered is ordered by descending score, ties broken by catalog category order.
	Triggered []Finding `json:"triggered"`
	Crisis    bool      `json:"crisis"`
	// Wellness is set when nothing triggered and the fixed wellness template was rendered.
	Wellness bool `json:"wellness"`
	// Text is the rendered Markdown report.
	Text string `json:"text"`
}

// Synthesize turns the final scores into a report. It is pure: the same scores always render the same text.
func (b *Bank) Synthesize(scores ScoreMap) Result {
	var result Result

	if crisis, ok := b.conditions[Crisis]; ok {
		if score, recorded := scores[Crisis]; recorded && score >= crisis.Threshold {
			result.Crisis = true
		}
	}

	for category, score := range scores {
		condition, ok := b.conditions[category]
		if ok && score >= condition.Threshold {
			result.Triggered = append(result.Triggered, Finding{Condition: condition, Score: score})
		}
	}
	slices.SortFunc(result.Triggered, func(x, y Finding) int {
		if c := cmp.Compare(y.Score, x.Score); c != 0 {
			return c
		}
		return compareCategories(b, x.Condition.Category, y.Condition.Category)
	})

	var blocks []string
	if result.Crisis {
		blocks = append(blocks, CrisisNotice)
	}
	if len(result.Triggered) == 0 && !result.Crisis {
		result.Wellness = true
		blocks = append(blocks, wellnessTemplate)
	} else {
		blocks = append(blocks, findingsIntro)
		for _, f := range result.Triggered {
			blocks = append(blocks, renderCondition(f.Condition))
		}
		if obs := renderObservations(scores); obs != "" {
			blocks = append(blocks, obs)
		}
		blocks = append(blocks, findingsOutro)
	}
	blocks = append(blocks, disclaimer)

	result.Text = strings.Join(blocks, "\n\n") + "\n"
	return result
}

func renderCondition(c Condition) string {
	var sb strings.Builder
	sb.WriteString("**" + c.Name + "**\n")
	sb.WriteString(c.Description + "\n\n")
	sb.WriteString("Why this might be happening:\n")
	sb.WriteString(c.Explanation + "\n\n")
	sb.WriteString("Recommended self-help strategies:\n")
	for _, tip := range c.SelfHelp {
		sb.WriteString("- " + tip + "\n")
	}
	sb.WriteString("\nProfessional support options:\n")
	sb.WriteString(c.ProfessionalHelp)
	return sb.String()
}

func renderObservations(scores ScoreMap) string {
	var lines []string
	for _, o := range observations {
		if scores[o.first] > 0 && scores[o.second] > 0 {
			lines = append(lines, "- "+o.text)
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return "**Overall Patterns Observed:**\n" + strings.Join(lines, "\n")
}
