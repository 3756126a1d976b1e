// Package interview drives the sequential, resumable, server-
// authoritative question/answer workflow of one interview session.
package interview

import (
	"context"
	"strings"
	"sync"

	"ats-client/internal/api"
	"ats-client/internal/common/errors"
	"ats-client/internal/common/logger"
	"ats-client/internal/common/metrics"
	"ats-client/internal/models"
)

// Phase is the controller's state machine position.
//
//	Loading -> Active -> Submitting -> Active | Completed
//	Loading -> Error (recovery edge, retryable)
//	Submitting -> Active (recovery edge, index unchanged)
//
// Completed is terminal: nothing transitions out of it here.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseActive
	PhaseSubmitting
	PhaseCompleted
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseSubmitting:
		return "submitting"
	case PhaseCompleted:
		return "completed"
	case PhaseError:
		return "error"
	default:
		return "loading"
	}
}

// AnsweredQuestion is a previously submitted answer joined read-only to
// its originating question. QuestionText is empty for dangling answers
// whose question no longer resolves; those still render, just without a
// label.
type AnsweredQuestion struct {
	QuestionText string
	Answer       string
}

// Snapshot is an immutable view of the controller for rendering.
type Snapshot struct {
	Phase          Phase
	InterviewID    int
	Status         models.InterviewStatus
	Question       *models.Question
	QuestionNumber int // 1-based, 0 when no active question
	TotalQuestions int
	Progress       float64
	Draft          string
	Err            *errors.ClientError
	Answered       []AnsweredQuestion
}

// Controller owns the life cycle of a single interview session. It
// depends on the session store only through the bearer token already
// installed on the transport; its own data comes from the platform.
type Controller struct {
	client *api.Client
	guard  *ProgressGuard
	logger logger.Logger

	interviewID int

	mu       sync.Mutex
	phase    Phase
	session  *models.InterviewSession
	draft    string
	lastErr  *errors.ClientError
	tornDown bool
}

func NewController(client *api.Client, guard *ProgressGuard, log logger.Logger, interviewID int) *Controller {
	return &Controller{
		client:      client,
		guard:       guard,
		logger:      log.WithFields(map[string]interface{}{"component": "interview", "interviewId": interviewID}),
		interviewID: interviewID,
		phase:       PhaseLoading,
	}
}

// Load fetches the full session from the platform. On success the
// controller lands in Completed or Active at the server-reported index;
// the index is never derived or advanced locally. On failure it lands in
// Error with the retryable flag set by the taxonomy, and no partial
// session is rendered.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.phase == PhaseSubmitting {
		c.mu.Unlock()
		return errors.NewValidationError("a submission is in flight")
	}
	c.phase = PhaseLoading
	c.lastErr = nil
	c.mu.Unlock()

	session, err := c.client.Interview(ctx, c.interviewID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tornDown {
		return nil
	}

	if err != nil {
		c.session = nil
		c.phase = PhaseError
		c.lastErr = errors.Normalize(err)
		return c.lastErr
	}

	c.guard.Observe(ctx, c.interviewID, session.CurrentQuestion)
	c.applySession(session)
	return nil
}

// SubmitAnswer submits one answer for the active question. Empty or
// whitespace-only text is rejected before any network call and mutates
// nothing. Once the session is Completed the call is a silent no-op. At
// most one submission is in flight at a time; a second attempt while
// Submitting is rejected locally.
func (c *Controller) SubmitAnswer(ctx context.Context, text string) error {
	c.mu.Lock()

	if c.phase == PhaseCompleted {
		c.mu.Unlock()
		return nil
	}
	if c.phase == PhaseSubmitting {
		c.mu.Unlock()
		return errors.NewValidationError("a submission is already in flight")
	}
	if c.phase != PhaseActive || c.session == nil {
		c.mu.Unlock()
		return errors.NewValidationError("no active question to answer")
	}
	if strings.TrimSpace(text) == "" {
		c.mu.Unlock()
		metrics.AnswersSubmittedTotal.WithLabelValues("rejected_empty").Inc()
		return errors.NewValidationError("answer must not be empty")
	}

	question := c.session.ActiveQuestion()
	if question == nil {
		c.mu.Unlock()
		return errors.NewValidationError("no active question to answer")
	}

	questionID := question.ID
	c.draft = text
	c.phase = PhaseSubmitting
	c.lastErr = nil
	c.mu.Unlock()

	resp, err := c.client.SubmitAnswer(ctx, c.interviewID, questionID, text)

	c.mu.Lock()
	if c.tornDown {
		c.mu.Unlock()
		return nil
	}

	if err != nil {
		// Recovery edge: back to Active at the same index with the
		// draft retained, so no typed work is lost.
		c.phase = PhaseActive
		c.lastErr = errors.Normalize(err)
		c.mu.Unlock()
		metrics.AnswersSubmittedTotal.WithLabelValues("failed").Inc()
		return c.lastErr
	}

	c.draft = ""

	if resp.Completed {
		c.phase = PhaseCompleted
		if c.session != nil {
			c.session.Status = models.InterviewCompleted
		}
		c.mu.Unlock()
		metrics.AnswersSubmittedTotal.WithLabelValues("completed").Inc()
		c.logger.Info("interview completed", nil)
		return nil
	}

	c.phase = PhaseLoading
	c.mu.Unlock()

	metrics.AnswersSubmittedTotal.WithLabelValues("accepted").Inc()

	// Authoritative resync: reload the whole session instead of
	// advancing the index locally. Retries, duplicated submissions, and
	// other tabs all reconcile against server state this way.
	return c.Load(ctx)
}

// ClearError dismisses the surfaced error without changing the phase.
func (c *Controller) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = nil
}

// Teardown marks the controller as abandoned. In-flight requests are not
// cancelled; their results are discarded when they land, and the next
// Load by a fresh controller reconciles state.
func (c *Controller) Teardown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tornDown = true
}

// Snapshot returns the current render state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Phase:       c.phase,
		InterviewID: c.interviewID,
		Draft:       c.draft,
		Err:         c.lastErr,
	}

	if c.session == nil {
		return snap
	}

	snap.Status = c.session.Status
	snap.TotalQuestions = len(c.session.Questions)
	snap.Progress = c.session.Progress()

	if q := c.session.ActiveQuestion(); q != nil {
		question := *q
		snap.Question = &question
		snap.QuestionNumber = c.session.CurrentQuestion + 1
	}

	snap.Answered = make([]AnsweredQuestion, 0, len(c.session.Answers))
	for _, ans := range c.session.Answers {
		joined := AnsweredQuestion{Answer: ans.Answer}
		if q, ok := c.session.QuestionByID(ans.QuestionID); ok {
			joined.QuestionText = q.Text
		}
		snap.Answered = append(snap.Answered, joined)
	}

	return snap
}

// applySession installs a freshly fetched session. Caller holds the lock.
func (c *Controller) applySession(session *models.InterviewSession) {
	c.session = session
	c.lastErr = nil

	if session.Status == models.InterviewCompleted {
		c.phase = PhaseCompleted
		return
	}
	c.phase = PhaseActive
}
