package chat

import "github.com/myrjola/wellcheck/internal/models"

// Choices the user can submit outside of answering questions.
const (
	ChoiceStart     = "yes"
	ChoiceInfo      = "info"
	ChoiceDecline   = "no"
	ChoiceRestart   = "restart"
	ChoiceResources = "resources"
)

var (
	optionStart     = models.Option{Value: ChoiceStart, Label: "Yes, I'd like to start the assessment"}
	optionInfo      = models.Option{Value: ChoiceInfo, Label: "Tell me more about how this works first"}
	optionLater     = models.Option{Value: ChoiceDecline, Label: "No, maybe later"}
	optionRestart   = models.Option{Value: ChoiceRestart, Label: "Take the assessment again"}
	optionResources = models.Option{Value: ChoiceResources, Label: "Find mental health resources"}
	optionNoThanks  = models.Option{Value: ChoiceDecline, Label: "No, thank you"}
)

const greetingText = "Hello, I'm your mental health assessment assistant. I'm here to help you understand your " +
	"mental wellbeing better through a structured assessment. Would you like to begin the assessment now?"

const introText = "Great! I'll ask you a series of questions to better understand your mental wellbeing. Please " +
	"select the option that best describes your experience. Remember, this is not a diagnostic tool, but it can " +
	"help identify areas that might need attention.\n\nLet's begin with the first question:"

// infoText takes the number of questions.
const infoText = `This assessment consists of %d questions covering different aspects of mental health, including ` +
	`mood, anxiety, sleep, and more. For each question, you'll select the option that best describes your experience.

After completing the assessment, I'll provide personalized feedback based on your responses, including potential ` +
	`areas of concern and helpful resources.

Important notes:
- This is not a diagnostic tool and cannot replace professional evaluation
- Your responses are not stored permanently
- If you're in crisis, please contact emergency services or a crisis helpline immediately

Would you like to begin the assessment now?`

const analysingText = "Thank you for completing the assessment. I'm conducting a comprehensive analysis of your " +
	"responses to provide detailed feedback."

const resourcesText = `Here are some valuable mental health resources:

**Crisis Resources:**
- National Suicide Prevention Lifeline: 988 or 1-800-273-8255
- Crisis Text Line: Text HOME to 741741

**Find a Therapist:**
- Psychology Today Therapist Directory: https://www.psychologytoday.com/us/therapists
- American Psychological Association: https://locator.apa.org/

**Mental Health Organizations:**
- National Alliance on Mental Illness (NAMI): https://www.nami.org
- Mental Health America: https://www.mhanational.org
- Anxiety and Depression Association of America: https://adaa.org

**Self-Help Resources:**
- MindTools by Mental Health America: https://screening.mhanational.org/diy/
- Headspace (meditation app): https://www.headspace.com
- Calm (meditation app): https://www.calm.com

Would you like to take the assessment again?`

const farewellText = "Thank you for using the mental health assessment tool. If you have concerns about your " +
	"mental health, please don't hesitate to reach out to a qualified mental health professional. Take care of " +
	"yourself, and remember that seeking help is a sign of strength.\n\nYou can restart the assessment at any " +
	"time with the reset button."

const freeTextBeforeText = "I'm designed to provide a structured mental health assessment rather than an open " +
	"conversation. Would you like to start the assessment or learn more about how it works?"

const freeTextDuringText = "I'm designed to provide a structured mental health assessment rather than an open " +
	"conversation. Please pick the option that best describes your experience for the current question."

const freeTextAfterText = "The assessment has been completed. Would you like to take it again or find mental " +
	"health resources?"

func greeting() models.Message {
	return models.Message{
		Role:    models.RoleAssistant,
		Content: greetingText,
		Options: []models.Option{optionStart, optionInfo},
	}
}

func userSaid(content string) models.Message {
	return models.Message{Role: models.RoleUser, Content: content}
}

func assistantSaid(content string, options ...models.Option) models.Message {
	return models.Message{Role: models.RoleAssistant, Content: content, Options: options}
}
