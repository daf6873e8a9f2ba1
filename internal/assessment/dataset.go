package assessment

import "github.com/myrjola/wellcheck/internal/errors"

// DefaultBank returns the bundled wellbeing assessment. An error means the bundled dataset is broken and
// the program should not start.
func DefaultBank() (*Bank, error) {
	b, err := NewBank(defaultQuestions(), defaultConditions())
	if err != nil {
		return nil, errors.Wrap(err, "default bank")
	}
	return b, nil
}

// severityOptions lists options from most to least severe, the order they are presented in.
func severityOptions(severe, moderate, mild, none string) []Option {
	return []Option{
		{Value: SeveritySevere, Label: severe},
		{Value: SeverityModerate, Label: moderate},
		{Value: SeverityMild, Label: mild},
		{Value: SeverityNone, Label: none},
	}
}

func defaultQuestions() []Question {
	return []Question{
		// Emotional regulation
		{
			ID: "mood",
			Prompt: "When something doesn't go as planned in your day (like missing a deadline or making a mistake), " +
				"how do you typically react emotionally?",
			Category: EmotionalRegulation,
			Options: severityOptions(
				"I feel completely devastated and have trouble recovering for days",
				"I become very upset and need several hours to calm down",
				"I feel disappointed but can usually manage my emotions",
				"I can maintain perspective and regulate my emotions well",
			),
			Explanation: "This question helps assess your emotional resilience and ability to cope with daily " +
				"challenges. Strong emotional reactions to minor setbacks might indicate difficulty with emotion regulation.",
		},
		{
			ID:       "emotional_awareness",
			Prompt:   "When someone asks you how you're feeling, how easy is it for you to identify and express your emotions?",
			Category: EmotionalAwareness,
			Options: severityOptions(
				"I often feel numb or confused about what I'm feeling",
				"I struggle to identify specific emotions beyond 'good' or 'bad'",
				"I can usually identify my emotions but sometimes have trouble expressing them",
				"I can easily identify and express my emotional state",
			),
			Explanation: "Difficulty identifying emotions (alexithymia) can be associated with various mental health " +
				"conditions and may impact emotional processing and relationships.",
		},

		// Thought patterns
		{
			ID:       "self_talk",
			Prompt:   "When you make a mistake or face a setback, what kind of thoughts typically go through your mind?",
			Category: CognitivePatterns,
			Options: severityOptions(
				"I constantly berate myself and think I'm worthless/hopeless",
				"I focus on my flaws and think about past failures",
				"I feel disappointed but try to learn from the experience",
				"I maintain a balanced perspective and view it as an opportunity to grow",
			),
			Explanation: "Your internal dialogue and self-talk patterns can significantly impact mental health and " +
				"reveal cognitive distortions that may need addressing.",
		},
		{
			ID:       "future_thinking",
			Prompt:   "When thinking about your future, which pattern best describes your typical thoughts?",
			Category: Depression,
			Options: severityOptions(
				"I feel hopeless and can't imagine things ever improving",
				"I worry extensively about potential negative outcomes",
				"I have mixed feelings but generally hope things will work out",
				"I maintain an optimistic yet realistic outlook",
			),
			Explanation: "Future-oriented thinking patterns can indicate depression (hopelessness) or anxiety " +
				"(excessive worry about potential outcomes).",
		},

		// Social interactions
		{
			ID:       "social_comfort",
			Prompt:   "In group social situations (like parties or meetings), how do you typically feel and behave?",
			Category: Social,
			Options: severityOptions(
				"I feel intense anxiety and often leave early or avoid going altogether",
				"I feel very uncomfortable and stick to people I know well",
				"I feel slightly nervous but can usually manage",
				"I feel comfortable and can interact naturally",
			),
			Explanation: "Social anxiety can significantly impact quality of life and may be linked to deeper patterns " +
				"of thinking about social evaluation and judgment.",
		},
		{
			ID: "relationship_patterns",
			Prompt: "In close relationships (friends, family, or romantic partners), how do you typically handle " +
				"conflicts or disagreements?",
			Category: Interpersonal,
			Options: severityOptions(
				"I either become extremely hostile or completely shut down",
				"I get very defensive or try to avoid the conflict entirely",
				"I feel uncomfortable but try to work through it",
				"I can usually discuss issues calmly and work toward solutions",
			),
			Explanation: "Relationship patterns can reveal attachment styles and emotional regulation capabilities in " +
				"interpersonal contexts.",
		},

		// Behavioural responses
		{
			ID:       "stress_response",
			Prompt:   "When under significant stress, which behaviors do you most commonly engage in?",
			Category: CopingMechanisms,
			Options: severityOptions(
				"I engage in harmful behaviors (excessive drinking, self-harm, etc.)",
				"I withdraw completely and neglect responsibilities",
				"I might procrastinate or avoid some situations",
				"I use healthy coping strategies (exercise, talking to friends, etc.)",
			),
			Explanation: "Stress response patterns can indicate the development of healthy or unhealthy coping " +
				"mechanisms and potential risk behaviors.",
		},
		{
			ID: "routine_changes",
			Prompt: "How have your daily routines (sleep, eating, self-care) changed when you're going through " +
				"difficult periods?",
			Category: FunctionalImpact,
			Options: severityOptions(
				"Severe disruption - completely abandon normal routines",
				"Significant changes in sleep and eating patterns",
				"Minor changes but maintain basic routines",
				"Maintain consistent routines even during stress",
			),
			Explanation: "Changes in basic daily routines can be important indicators of mental health status and " +
				"functional impairment.",
		},

		// Dissociation and identity
		{
			ID: "dissociation_experiences",
			Prompt: "Have you experienced any of the following: feeling disconnected from your body, like you're " +
				"watching yourself from outside, or like the world isn't real?",
			Category: Dissociation,
			Options: severityOptions(
				"Frequently and intensely, often with memory gaps",
				"Sometimes, especially during stress",
				"Rarely, usually in specific situations",
				"Never or very rarely",
			),
			Explanation: "Dissociative experiences can range from normal stress responses to indicators of trauma or " +
				"dissociative disorders.",
		},
		{
			ID: "identity_consistency",
			Prompt: "How consistent do you feel your sense of self (personality, preferences, behaviors) is across " +
				"different situations and time?",
			Category: Identity,
			Options: severityOptions(
				"I feel like a completely different person at different times",
				"My sense of self often feels fragmented or unclear",
				"I notice some changes but maintain a core sense of self",
				"I feel consistently like myself across situations",
			),
			Explanation: "Significant identity inconsistency might indicate personality-related concerns or dissociative " +
				"experiences that warrant professional attention.",
		},

		// Trauma and triggers
		{
			ID:       "trauma_responses",
			Prompt:   "When reminded of past difficult experiences, how do you typically react?",
			Category: Trauma,
			Options: severityOptions(
				"Intense physical and emotional reactions, flashbacks",
				"Strong anxiety and need to avoid related situations",
				"Mild discomfort but can usually cope",
				"Can process memories without significant distress",
			),
			Explanation: "Trauma responses can manifest in various ways and understanding their intensity helps guide " +
				"appropriate support and intervention.",
		},

		// Physical symptoms
		{
			ID: "physical_anxiety",
			Prompt: "How often do you experience physical symptoms of anxiety (racing heart, sweating, trembling, " +
				"chest tightness)?",
			Category: Anxiety,
			Options: severityOptions(
				"Multiple times daily, often severe",
				"Several times a week",
				"Occasionally in stressful situations",
				"Rarely or never",
			),
			Explanation: "Physical anxiety symptoms can indicate the severity of anxiety and its impact on daily functioning.",
		},

		// Cognitive function
		{
			ID: "concentration",
			Prompt: "When trying to focus on tasks (work, reading, conversations), how often do you experience " +
				"difficulty concentrating?",
			Category: CognitiveFunction,
			Options: severityOptions(
				"Constantly, can barely maintain focus for short periods",
				"Frequently, especially with complex tasks",
				"Sometimes, but can usually refocus",
				"Rarely have significant concentration issues",
			),
			Explanation: "Concentration difficulties can be related to various conditions including anxiety, " +
				"depression, ADHD, or stress.",
		},

		// Sleep
		{
			ID:       "sleep_quality",
			Prompt:   "How would you describe your sleep patterns over the past month?",
			Category: Sleep,
			Options: severityOptions(
				"Severe insomnia or excessive sleeping (12+ hours)",
				"Frequent difficulty falling/staying asleep",
				"Occasional sleep issues but generally manageable",
				"Consistent, restful sleep patterns",
			),
			Explanation: "Sleep disturbances can both indicate and exacerbate mental health conditions, making it an " +
				"important area to assess.",
		},

		// Risk
		{
			ID:       "self_harm",
			Prompt:   "Have you had thoughts about harming yourself or wishing you weren't alive?",
			Category: Crisis,
			Options: severityOptions(
				"Yes, with specific plans or recent attempts",
				"Yes, frequently but no specific plans",
				"Occasionally, passive thoughts only",
				"No such thoughts",
			),
			Explanation: "This is a critical safety assessment question that helps determine the need for immediate " +
				"intervention.",
		},
	}
}

const defaultThreshold = 4

func defaultConditions() map[Category]Condition {
	return map[Category]Condition{
		EmotionalRegulation: {
			Category:    EmotionalRegulation,
			Threshold:   defaultThreshold,
			Name:        "Emotional Regulation Difficulties",
			Description: "Challenges in managing and responding to emotional experiences in healthy ways.",
			Explanation: "Emotional regulation difficulties often develop from a combination of biological " +
				"sensitivity and learned responses to emotions. Early experiences, trauma, or lack of emotional " +
				"guidance can contribute to these challenges.",
			SelfHelp: []string{
				"Practice mindfulness to observe emotions without immediate reaction",
				"Use the PLEASE skills: treat PhysicaL illness, balanced Eating, avoid mood-Altering substances, " +
					"balanced Sleep, and get Exercise",
				"Create an emotion regulation toolkit with specific strategies for different emotions",
				"Keep an emotion diary to identify triggers and patterns",
				"Learn and practice deep breathing techniques",
			},
			ProfessionalHelp: "Dialectical Behavior Therapy (DBT) is particularly effective for emotional regulation " +
				"difficulties. A mental health professional can help you develop specific skills and strategies " +
				"tailored to your needs.",
		},
		EmotionalAwareness: {
			Category:    EmotionalAwareness,
			Threshold:   defaultThreshold,
			Name:        "Emotional Awareness Difficulties",
			Description: "Trouble recognising, naming, and expressing your own emotional states.",
			Explanation: "Difficulty identifying emotions can develop when feelings were rarely discussed or " +
				"validated while growing up, or as a way of coping with overwhelming experiences. It can make " +
				"it harder to respond to your needs and to connect with others.",
			SelfHelp: []string{
				"Check in with yourself a few times a day and name what you feel",
				"Use an emotion wheel to find more specific words for your feelings",
				"Notice where emotions show up in your body",
				"Journal about situations and the feelings they brought up",
				"Share your feelings with someone you trust, starting small",
			},
			ProfessionalHelp: "Therapies such as Emotion-Focused Therapy or mentalization-based approaches can help " +
				"you build emotional awareness. A mental health professional can support you in exploring and " +
				"expressing your emotions safely.",
		},
		CognitivePatterns: {
			Category:    CognitivePatterns,
			Threshold:   defaultThreshold,
			Name:        "Negative Thought Patterns",
			Description: "Recurring patterns of negative or distorted thinking that impact mood and behavior.",
			Explanation: "Negative thought patterns often develop as a way to make sense of difficult experiences " +
				"or protect ourselves from hurt. While these patterns might have served a purpose initially, they " +
				"can become self-reinforcing and harmful over time.",
			SelfHelp: []string{
				"Practice identifying and challenging negative thoughts using thought records",
				"Look for evidence that both supports and contradicts negative thoughts",
				"Develop balanced alternative thoughts",
				"Practice self-compassion exercises",
				"Engage in activities that build mastery and positive experiences",
			},
			ProfessionalHelp: "Cognitive Behavioral Therapy (CBT) can help you identify and modify unhelpful thought " +
				"patterns. A therapist can guide you through this process and help you develop more balanced thinking.",
		},
		Interpersonal: {
			Category:    Interpersonal,
			Threshold:   defaultThreshold,
			Name:        "Interpersonal Relationship Patterns",
			Description: "Difficulties in maintaining healthy relationships and managing interpersonal conflicts.",
			Explanation: "Relationship patterns often reflect early attachment experiences and learned ways of " +
				"relating to others. These patterns can be influenced by past relationships, trauma, or family dynamics.",
			SelfHelp: []string{
				"Practice assertive communication using 'I' statements",
				"Set and maintain healthy boundaries",
				"Work on identifying your needs and expressing them clearly",
				"Practice active listening skills",
				"Learn to recognize and respect both your own and others' boundaries",
			},
			ProfessionalHelp: "Interpersonal Psychotherapy (IPT) or Schema Therapy can be particularly helpful for " +
				"addressing relationship patterns. A therapist can help you understand and modify these patterns.",
		},
		Depression: {
			Category:  Depression,
			Threshold: defaultThreshold,
			Name:      "Depression",
			Description: "Depression is characterized by persistent feelings of sadness, loss of interest in " +
				"activities, and decreased energy.",
			Explanation: "Persistent sadness, loss of interest, and low energy are key indicators of depression. " +
				"It's important to note that depression can manifest differently in individuals.",
			SelfHelp: []string{
				"Establish a regular exercise routine, even if it's just a short daily walk",
				"Practice mindfulness meditation for 10-15 minutes daily",
				"Maintain a consistent sleep schedule",
				"Connect with supportive friends or family members regularly",
				"Consider keeping a gratitude journal to focus on positive aspects of life",
			},
			ProfessionalHelp: "If your symptoms persist for more than two weeks or significantly impact your daily " +
				"functioning, please consider consulting a mental health professional for therapy options such as " +
				"Cognitive Behavioral Therapy (CBT) or medication evaluation.",
		},
		Anxiety: {
			Category:  Anxiety,
			Threshold: defaultThreshold,
			Name:      "Anxiety",
			Description: "Anxiety disorders involve excessive worry, fear, or nervousness that can interfere with " +
				"daily activities.",
			Explanation: "Excessive worry, fear, and nervousness that interfere with daily life are hallmarks of " +
				"anxiety disorders. These can range from generalized anxiety to specific phobias.",
			SelfHelp: []string{
				"Practice deep breathing exercises when feeling anxious (4-7-8 technique)",
				"Gradually expose yourself to situations that cause mild anxiety",
				"Limit caffeine and alcohol consumption",
				"Engage in regular physical activity",
				"Try progressive muscle relaxation techniques before bed",
			},
			ProfessionalHelp: "If anxiety significantly impacts your quality of life or ability to function, consider " +
				"seeking help from a mental health professional who can provide therapy approaches like Cognitive " +
				"Behavioral Therapy (CBT) or medication options.",
		},
		OCD: {
			Category:  OCD,
			Threshold: defaultThreshold,
			Name:      "Obsessive-Compulsive Tendencies",
			Description: "OCD involves unwanted, intrusive thoughts (obsessions) and repetitive behaviors or mental " +
				"acts (compulsions) performed to reduce anxiety.",
			Explanation: "Unwanted, intrusive thoughts (obsessions) and repetitive behaviors (compulsions) are " +
				"characteristic of OCD. The severity and impact on daily life vary greatly.",
			SelfHelp: []string{
				"Practice mindfulness to observe intrusive thoughts without judgment",
				"Try exposure and response prevention techniques (gradually facing fears without performing compulsions)",
				"Establish a regular exercise routine",
				"Learn and practice stress management techniques",
				"Educate yourself about OCD through reputable resources",
			},
			ProfessionalHelp: "OCD typically requires professional treatment. Consider seeking help from a mental " +
				"health professional specialized in OCD who can provide Exposure and Response Prevention (ERP) " +
				"therapy, which is highly effective for OCD.",
		},
		Trauma: {
			Category:  Trauma,
			Threshold: defaultThreshold,
			Name:      "Trauma-Related Symptoms",
			Description: "Trauma-related conditions can develop after experiencing or witnessing traumatic events, " +
				"characterized by intrusive memories, avoidance, and heightened reactivity.",
			Explanation: "Trauma-related symptoms can emerge after exposure to significant trauma. These can include " +
				"flashbacks, nightmares, avoidance behaviors, and emotional dysregulation.",
			SelfHelp: []string{
				"Practice grounding techniques when experiencing flashbacks (5-4-3-2-1 sensory exercise)",
				"Establish safety routines and identify safe spaces",
				"Engage in gentle physical activities like yoga or walking",
				"Connect with supportive people who understand trauma",
				"Practice self-compassion and patience with your healing process",
			},
			ProfessionalHelp: "Trauma processing typically requires professional support. Consider seeking help from " +
				"a trauma-informed therapist who can provide evidence-based treatments like EMDR (Eye Movement " +
				"Desensitization and Reprocessing) or trauma-focused CBT.",
		},
		Dissociation: {
			Category:  Dissociation,
			Threshold: defaultThreshold,
			Name:      "Dissociative Symptoms",
			Description: "Dissociation involves feeling disconnected from your thoughts, feelings, surroundings, or " +
				"identity. In severe cases, it may include conditions like Dissociative Identity Disorder (DID).",
			Explanation: "Dissociation involves a detachment from reality, emotions, or sense of self. It can range " +
				"from mild depersonalization to severe dissociative disorders.",
			SelfHelp: []string{
				"Practice grounding techniques using your five senses",
				"Maintain a consistent daily routine",
				"Keep a journal to track dissociative episodes and potential triggers",
				"Practice mindfulness to increase present-moment awareness",
				"Ensure adequate sleep and nutrition",
			},
			ProfessionalHelp: "Significant dissociative symptoms, especially those suggesting DID, require specialized " +
				"professional treatment. Please consult with a mental health professional who specializes in " +
				"dissociative disorders for proper assessment and treatment.",
		},
		Social: {
			Category:  Social,
			Threshold: defaultThreshold,
			Name:      "Social Anxiety",
			Description: "Social anxiety involves intense fear of social situations and being judged or evaluated " +
				"by others.",
			Explanation: "Intense fear and avoidance of social situations are key features of social anxiety. This " +
				"can significantly impact relationships and daily life.",
			SelfHelp: []string{
				"Start with small, manageable social interactions and gradually increase exposure",
				"Practice prepared responses for common social situations",
				"Focus on others rather than self-monitoring during conversations",
				"Challenge negative thoughts about social performance",
				"Practice relaxation techniques before social events",
			},
			ProfessionalHelp: "If social anxiety significantly limits your activities or causes substantial distress, " +
				"consider seeking help from a mental health professional who can provide Cognitive Behavioral " +
				"Therapy (CBT), which is highly effective for social anxiety.",
		},
		Attention: {
			Category:  Attention,
			Threshold: defaultThreshold,
			Name:      "Attention Difficulties",
			Description: "Attention difficulties may involve problems with focus, organization, completing tasks, " +
				"and managing time effectively.",
			Explanation: "Difficulties with focus, organization, and task completion can be indicative of various " +
				"conditions, including ADHD and other attention-related challenges.",
			SelfHelp: []string{
				"Break tasks into smaller, manageable steps",
				"Use organizational tools like planners or digital apps",
				"Create a structured environment with minimal distractions",
				"Implement the Pomodoro technique (25 minutes of focus followed by a 5-minute break)",
				"Engage in regular physical exercise",
			},
			ProfessionalHelp: "If attention difficulties significantly impact your daily functioning, consider seeking " +
				"an evaluation from a mental health professional who can assess for conditions like ADHD and " +
				"provide appropriate treatment options.",
		},
		Crisis: {
			Category:    Crisis,
			Threshold:   1,
			Name:        "Crisis Support Needed",
			Description: "Thoughts of self-harm or suicide require immediate attention and support.",
			Explanation: "Thoughts of self-harm or suicide are serious and require immediate attention. Please reach " +
				"out for help immediately.",
			SelfHelp: []string{
				"Contact a crisis helpline immediately (National Suicide Prevention Lifeline: 988 or 1-800-273-8255)",
				"Remove access to potential means of harm",
				"Reach out to a trusted person who can stay with you",
				"Use distraction techniques to get through immediate crisis moments",
				"Create a safety plan with emergency contacts and coping strategies",
			},
			ProfessionalHelp: "Please seek immediate professional help. Contact a crisis helpline, go to your local " +
				"emergency room, or call emergency services if you're experiencing thoughts of harming yourself. " +
				"This requires urgent professional intervention.",
		},
		CopingMechanisms: {
			Category:    CopingMechanisms,
			Threshold:   defaultThreshold,
			Name:        "Unhealthy Coping Mechanisms",
			Description: "Use of maladaptive strategies to manage stress and difficult emotions.",
			Explanation: "Unhealthy coping mechanisms can develop as ways to avoid or numb difficult emotions. While " +
				"they might provide temporary relief, they often lead to further problems.",
			SelfHelp: []string{
				"Identify your unhealthy coping mechanisms",
				"Explore healthier alternatives (exercise, mindfulness, creative expression)",
				"Seek support from friends, family, or support groups",
				"Practice self-compassion",
				"Learn stress management techniques",
			},
			ProfessionalHelp: "Therapy can help you identify and replace unhealthy coping mechanisms with healthier " +
				"strategies. A therapist can provide guidance and support.",
		},
		FunctionalImpact: {
			Category:    FunctionalImpact,
			Threshold:   defaultThreshold,
			Name:        "Functional Impairment",
			Description: "Significant disruption in daily routines and ability to perform daily tasks.",
			Explanation: "Functional impairment can be a significant indicator of mental health challenges. It " +
				"reflects the impact of mental health on daily life.",
			SelfHelp: []string{
				"Break down tasks into smaller, manageable steps",
				"Prioritize essential tasks",
				"Seek support from others",
				"Create a structured daily routine",
				"Practice self-compassion",
			},
			ProfessionalHelp: "Therapy can help you develop strategies to manage functional impairment and improve " +
				"daily functioning. A therapist can provide support and guidance.",
		},
		Identity: {
			Category:    Identity,
			Threshold:   defaultThreshold,
			Name:        "Identity Disturbances",
			Description: "Significant inconsistencies or fragmentation in sense of self.",
			Explanation: "Identity disturbances can be related to trauma, dissociation, or other mental health " +
				"conditions. It's important to address these concerns with professional support.",
			SelfHelp: []string{
				"Journaling to explore your sense of self",
				"Mindfulness practices to increase self-awareness",
				"Engaging in activities that bring you joy and a sense of purpose",
				"Connecting with supportive individuals",
				"Seeking professional guidance",
			},
			ProfessionalHelp: "Therapy, particularly trauma-informed therapy, can be very helpful in addressing " +
				"identity disturbances. A therapist can provide support and guidance.",
		},
		CognitiveFunction: {
			Category:    CognitiveFunction,
			Threshold:   defaultThreshold,
			Name:        "Cognitive Impairment",
			Description: "Significant difficulties with concentration, memory, and other cognitive functions.",
			Explanation: "Cognitive impairment can be a symptom of various mental health conditions or other " +
				"underlying medical issues. It's important to seek professional evaluation.",
			SelfHelp: []string{
				"Minimize distractions",
				"Use organizational tools",
				"Break tasks into smaller steps",
				"Get sufficient sleep",
				"Engage in brain-boosting activities",
			},
			ProfessionalHelp: "A mental health professional can assess for underlying conditions and recommend " +
				"appropriate treatment. Neuropsychological testing may be helpful.",
		},
		Sleep: {
			Category:    Sleep,
			Threshold:   defaultThreshold,
			Name:        "Sleep Disturbances",
			Description: "Significant difficulties with sleep quality, quantity, or timing.",
			Explanation: "Sleep disturbances can be a symptom of various mental health conditions or other underlying " +
				"medical issues. Addressing sleep problems is often crucial for improving overall mental health.",
			SelfHelp: []string{
				"Establish a regular sleep schedule",
				"Create a relaxing bedtime routine",
				"Improve sleep hygiene",
				"Limit screen time before bed",
				"Consider cognitive behavioral therapy for insomnia (CBT-I)",
			},
			ProfessionalHelp: "A mental health professional or sleep specialist can assess for underlying conditions " +
				"and recommend appropriate treatment.",
		},
	}
}
