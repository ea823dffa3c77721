// Package content produces learner-facing generated artifacts: placement
// question sets, micro-lessons, answer feedback, and free-form Q&A. All
// generation goes through the TTL cache with schema validation and static
// fallbacks.
package content

// Question is one placement-test question.
type Question struct {
	Q           string   `json:"q"`
	Type        string   `json:"type"` // mcq, fill, dialog, listening, reading
	Options     []string `json:"options,omitempty"`
	AnswerIndex *int     `json:"answer_index,omitempty"`
	AnswerText  string   `json:"answer_text,omitempty"`
	Tag         string   `json:"tag,omitempty"`
	MediaURL    string   `json:"media_url,omitempty"`
	Transcript  string   `json:"transcript,omitempty"`
}

// Usable reports whether the question satisfies the minimal structural
// contract for its kind: choice questions need options and a chosen index,
// open-answer questions need expected text. Listening/reading may use
// either form.
func (q Question) Usable() bool {
	switch q.Type {
	case "mcq":
		return len(q.Options) > 0 && q.AnswerIndex != nil
	case "fill", "dialog":
		return q.AnswerText != ""
	default:
		return true
	}
}

// MicroLesson is one generated lesson payload.
type MicroLesson struct {
	Meta      LessonMeta   `json:"meta"`
	Vocab     []VocabEntry `json:"vocab"`
	Sentences []string     `json:"sentences"`
	Exercises []Exercise   `json:"exercises"`
	Tips      []string     `json:"tips"`
}

// LessonMeta describes what the lesson targets.
type LessonMeta struct {
	Level      string `json:"level"`
	Goal       string `json:"goal"`
	Weaknesses string `json:"weaknesses"`
	Version    string `json:"version"`
}

// VocabEntry is one vocabulary item in a lesson.
type VocabEntry struct {
	Word     string `json:"word"`
	IPA      string `json:"ipa"`
	Meaning  string `json:"meaning"`
	Example  string `json:"example"`
	AudioURL string `json:"audio_url,omitempty"`
}

// Exercise is one practice exercise in a lesson.
type Exercise struct {
	Type        string   `json:"type"` // fill, mcq, dialog, listening, reading
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options,omitempty"`
	AnswerIndex *int     `json:"answer_index,omitempty"`
	AnswerText  string   `json:"answer_text,omitempty"`
	MediaURL    string   `json:"media_url,omitempty"`
	Transcript  string   `json:"transcript,omitempty"`
}
