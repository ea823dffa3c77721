package content

import (
	"fmt"
	"strings"
)

const placementSystemPrompt = "You are an expert English placement-test writer. " +
	"Create short, level-discriminating questions mixing grammar, vocabulary, listening, and reading. " +
	"Keep questions concise and culturally neutral. Write all questions in English."

func buildPlacementPrompt(levelHint string) string {
	return fmt.Sprintf(
		"Write a placement test for a learner around level %q.\n"+
			"Include 7-8 questions, at least one listening question with a short transcript "+
			"and one reading question with a short passage.\n"+
			"For mcq include answer_index; for fill and dialog include answer_text.\n"+
			"Tag each question with the skill it probes, like grammar:articles.",
		levelHint)
}

const lessonSystemPrompt = "You are a friendly English teacher. " +
	"Produce a compact micro-lesson. All content in English."

func buildLessonPrompt(level, goal string, weaknesses []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a short micro-lesson for a %s learner whose goal is %q.\n", level, goal)
	if len(weaknesses) > 0 {
		fmt.Fprintf(&b, "Focus extra practice on these weak areas: %s.\n", strings.Join(weaknesses, ", "))
	}
	b.WriteString("Include 3 vocabulary items with IPA and an example sentence, ")
	b.WriteString("2-3 model sentences, 2-3 exercises, and 2 short tips. ")
	fmt.Fprintf(&b, "Keep everything %s-appropriate and brief.", level)
	return b.String()
}

const gradeSystemPrompt = "You are an English teacher grading a single exercise answer."

func buildGradePrompt(exercise, answer string, weaknesses []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Exercise: %s\n", exercise)
	fmt.Fprintf(&b, "Student's answer: %s\n", answer)
	if len(weaknesses) > 0 {
		fmt.Fprintf(&b, "Weakness hints: %s\n", strings.Join(weaknesses, ", "))
	}
	b.WriteString("Return one word: CORRECT or WRONG. Then a short reason (<=15 words) and a tiny tip.")
	return b.String()
}

func buildQAPrompt(question string) string {
	return fmt.Sprintf("Answer this English learning question in simple terms: %s", question)
}
