package models

// InterviewStatus is the server-reported life cycle stage of an interview.
type InterviewStatus string

const (
	InterviewPending    InterviewStatus = "pending"
	InterviewInProgress InterviewStatus = "in_progress"
	InterviewCompleted  InterviewStatus = "completed"
)

// Question is a single interview question. Type is a free-form category
// label ("technical", "behavioral", ...) the client treats as opaque.
type Question struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
	Type string `json:"type"`
}

// Answer is one submitted answer. The server accepts exactly one answer
// per question id; the client never attempts a second write.
type Answer struct {
	QuestionID int    `json:"question_id"`
	Answer     string `json:"answer"`
	AnsweredAt string `json:"answered_at,omitempty"`
}

// InterviewSession is the client's read-mostly copy of the server-held
// interview record. It is discarded and re-fetched after every mutation;
// CurrentQuestion always comes from the server, never from local counting.
type InterviewSession struct {
	InterviewID     int             `json:"interview_id"`
	Status          InterviewStatus `json:"status"`
	Questions       []Question      `json:"questions"`
	CurrentQuestion int             `json:"current_question"`
	Answers         []Answer        `json:"answers"`
}

// ActiveQuestion returns the question at the server-reported index, or
// nil when the index equals the question count (nothing left to answer).
func (s *InterviewSession) ActiveQuestion() *Question {
	if s.CurrentQuestion < 0 || s.CurrentQuestion >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.CurrentQuestion]
}

// Progress returns the completion percentage, clamped to [0, 100].
func (s *InterviewSession) Progress() float64 {
	if len(s.Questions) == 0 {
		return 0
	}
	p := float64(s.CurrentQuestion) / float64(len(s.Questions)) * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// QuestionByID looks up a question by id for joining answers back to
// their question text. The second return is false for dangling answers.
func (s *InterviewSession) QuestionByID(id int) (Question, bool) {
	for _, q := range s.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
