package content

// Static fallbacks served when generation fails or produces nothing usable.
// Same shape as generated content, so callers can't tell the difference.

func intPtr(i int) *int { return &i }

func fallbackPlacement() []Question {
	return []Question{
		{
			Q:           "Choose the correct article: ___ apple a day keeps the doctor away.",
			Type:        "mcq",
			Options:     []string{"A", "An", "The", "—"},
			AnswerIndex: intPtr(1),
			Tag:         "grammar:articles",
		},
		{
			Q:           "I ____ coffee every morning.",
			Type:        "mcq",
			Options:     []string{"drinks", "drink", "drank", "am drinking"},
			AnswerIndex: intPtr(1),
			Tag:         "grammar:present-simple",
		},
		{
			Q:           "Complete: I'm interested ___ music.",
			Type:        "mcq",
			Options:     []string{"on", "at", "in", "for"},
			AnswerIndex: intPtr(2),
			Tag:         "grammar:prepositions",
		},
		{
			Q:          "Fill: She ____ to school yesterday.",
			Type:       "fill",
			AnswerText: "went",
			Tag:        "grammar:past-simple",
		},
		{
			Q:          "Dialog: A: Do you like tea? B: Yes, I ____.",
			Type:       "dialog",
			AnswerText: "do",
			Tag:        "grammar:aux-do",
		},
		{
			Q:           "Listening: Identify the adverb meaning 'not often'.",
			Type:        "listening",
			Transcript:  "He rarely eats meat.",
			Options:     []string{"often", "never", "sometimes", "rarely"},
			AnswerIndex: intPtr(3),
			Tag:         "vocab:frequency",
		},
		{
			Q:           "Reading: What is 'daily routine'?",
			Type:        "reading",
			Transcript:  "Daily routine means the things you do every day.",
			Options:     []string{"A party", "An accident", "Daily activities", "A holiday"},
			AnswerIndex: intPtr(2),
			Tag:         "vocab:daily-life",
		},
	}
}

func fallbackLesson(level, goal string, weaknesses string) MicroLesson {
	return MicroLesson{
		Meta: LessonMeta{Level: level, Goal: goal, Weaknesses: weaknesses, Version: "1.0"},
		Vocab: []VocabEntry{
			{Word: "greet", IPA: "ɡriːt", Meaning: "to say hello", Example: "I greet my classmates."},
			{Word: "meet", IPA: "miːt", Meaning: "to come together", Example: "Nice to meet you."},
			{Word: "daily", IPA: "ˈdeɪli", Meaning: "every day", Example: "My daily routine is simple."},
		},
		Sentences: []string{"Hello! Nice to meet you.", "I study English every day."},
		Exercises: []Exercise{
			{Type: "fill", Prompt: "Fill: Nice to ____ you.", AnswerText: "meet"},
			{
				Type:        "mcq",
				Prompt:      "Choose: I ____ English.",
				Options:     []string{"studies", "study", "studied", "studying"},
				AnswerIndex: intPtr(1),
			},
			{Type: "listening", Prompt: "What did you hear?", Transcript: "Good morning!", AnswerText: "Good morning"},
		},
		Tips: []string{"Practice speaking out loud.", "Keep sentences short and clear."},
	}
}
