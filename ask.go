package study

// MaxHistory is the number of trailing chat messages sent with a question.
// The backend ignores anything older.
const MaxHistory = 10

// Scope selects what material a question is asked against.
type Scope string

const (
	ScopeLecture Scope = "lecture"
	ScopeTopic   Scope = "topic"
	ScopeSubject Scope = "subject"
)

// Mode selects how the tutor answers.
type Mode string

const (
	ModeTutor    Mode = "tutor"    // Answer the question from the material.
	ModePractice Mode = "practice" // Generate practice problems.
	ModeExam     Mode = "exam"     // Generate an exam-style question set.
)

// AskRequest is a question for the AI tutor.
type AskRequest struct {
	Scope    Scope
	ID       string
	Question string
	Mode     Mode // empty = ModeTutor
	History  []ChatMessage
}

// RecentHistory returns at most MaxHistory trailing messages of History.
func (r AskRequest) RecentHistory() []ChatMessage {
	if len(r.History) <= MaxHistory {
		return r.History
	}
	return r.History[len(r.History)-MaxHistory:]
}

// Answer is the tutor's reply. Response is Markdown.
type Answer struct {
	Question string
	Mode     Mode
	Response string
}
