// Package api is the typed client for the applicant-tracking platform
// API. Every response is schema-validated before it is decoded.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	validationrules "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"ats-client/internal/common/errors"
	"ats-client/internal/common/httpclient"
	"ats-client/internal/common/logger"
	"ats-client/internal/common/validation"
	"ats-client/internal/models"
)

type Client struct {
	transport *httpclient.Client
	logger    logger.Logger
}

func NewClient(transport *httpclient.Client, log logger.Logger) *Client {
	return &Client{
		transport: transport,
		logger:    log.WithFields(map[string]interface{}{"component": "api"}),
	}
}

// SetToken installs the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.transport.SetToken(token)
}

// ClearToken removes the bearer token.
func (c *Client) ClearToken() {
	c.transport.ClearToken()
}

// LoginRequest is the credentials payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	err := validationrules.ValidateStruct(&r,
		validationrules.Field(&r.Email, validationrules.Required, is.Email),
		validationrules.Field(&r.Password, validationrules.Required),
	)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}

// LoginResponse carries the access token and the authenticated identity.
type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	User        models.Identity `json:"user"`
}

// Login authenticates against the platform. Credentials are validated
// locally before any network call.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body, err := c.transport.DoJSON(ctx, http.MethodPost, "/auth/login", req)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateJSON(body, loginResponseSchema); err != nil {
		return nil, err
	}

	var resp LoginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.NewParseError(err.Error())
	}
	return &resp, nil
}

// Me fetches the identity attached to the current token.
func (c *Client) Me(ctx context.Context) (*models.Identity, error) {
	body, err := c.transport.DoJSON(ctx, http.MethodGet, "/auth/me", nil)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateJSON(body, identitySchema); err != nil {
		return nil, err
	}

	var identity models.Identity
	if err := json.Unmarshal(body, &identity); err != nil {
		return nil, errors.NewParseError(err.Error())
	}
	return &identity, nil
}

// CandidateStats fetches the candidate dashboard tile numbers.
func (c *Client) CandidateStats(ctx context.Context) (*models.CandidateStats, error) {
	body, err := c.transport.DoJSON(ctx, http.MethodGet, "/candidate/dashboard", nil)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateJSON(body, candidateStatsSchema); err != nil {
		return nil, err
	}

	var stats models.CandidateStats
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, errors.NewParseError(err.Error())
	}
	return &stats, nil
}

// AvailableJobs lists the active job postings open to candidates.
func (c *Client) AvailableJobs(ctx context.Context) ([]models.Job, error) {
	body, err := c.transport.DoJSON(ctx, http.MethodGet, "/candidate/jobs", nil)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateJSON(body, jobListSchema); err != nil {
		return nil, err
	}

	var jobs []models.Job
	if err := json.Unmarshal(body, &jobs); err != nil {
		return nil, errors.NewParseError(err.Error())
	}
	return jobs, nil
}

// ApplyResponse is the platform's acknowledgement of a new application.
type ApplyResponse struct {
	Message       string `json:"message"`
	ApplicationID int    `json:"application_id"`
}

// Apply submits an application for a job. A duplicate application comes
// back from the platform as a non-retryable rejection.
func (c *Client) Apply(ctx context.Context, jobID int) (*ApplyResponse, error) {
	if jobID <= 0 {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid job id %d", jobID))
	}

	body, err := c.transport.DoJSON(ctx, http.MethodPost, "/candidate/apply", map[string]int{"job_id": jobID})
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateJSON(body, applyResponseSchema); err != nil {
		return nil, err
	}

	var resp ApplyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.NewParseError(err.Error())
	}
	return &resp, nil
}

// UploadResumeResponse carries the id of the interview the platform
// creates once a resume lands.
type UploadResumeResponse struct {
	Message     string `json:"message"`
	InterviewID int    `json:"interview_id"`
}

// UploadResume sends a resume file for an application as multipart form
// data.
func (c *Client) UploadResume(ctx context.Context, applicationID int, fileName string, file io.Reader) (*UploadResumeResponse, error) {
	if applicationID <= 0 {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid application id %d", applicationID))
	}

	path := fmt.Sprintf("/candidate/upload-resume/%d", applicationID)
	body, err := c.transport.DoMultipart(ctx, path, "file", fileName, file)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateJSON(body, uploadResumeResponseSchema); err != nil {
		return nil, err
	}

	var resp UploadResumeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.NewParseError(err.Error())
	}
	return &resp, nil
}

// MyApplications lists the candidate's applications, the only place
// interview ids are discovered from. The applied-job set is always
// rebuilt from this list, never tracked optimistically client-side.
func (c *Client) MyApplications(ctx context.Context) ([]models.Application, error) {
	body, err := c.transport.DoJSON(ctx, http.MethodGet, "/candidate/my-applications", nil)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateJSON(body, applicationListSchema); err != nil {
		return nil, err
	}

	var apps []models.Application
	if err := json.Unmarshal(body, &apps); err != nil {
		return nil, errors.NewParseError(err.Error())
	}
	return apps, nil
}

// Interview fetches the full interview session. Beyond the schema check,
// the relational invariants a schema cannot express are enforced here:
// the server index must stay within [0, len(questions)] and answers must
// be unique per question id.
func (c *Client) Interview(ctx context.Context, interviewID int) (*models.InterviewSession, error) {
	path := fmt.Sprintf("/candidate/interview/%d", interviewID)
	body, err := c.transport.DoJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateJSON(body, interviewSessionSchema); err != nil {
		return nil, err
	}

	var session models.InterviewSession
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, errors.NewParseError(err.Error())
	}
	if err := checkSessionInvariants(&session); err != nil {
		return nil, err
	}
	return &session, nil
}

// SubmitAnswerResponse reports whether the submitted answer finished the
// interview.
type SubmitAnswerResponse struct {
	Completed bool   `json:"completed"`
	Message   string `json:"message"`
}

// SubmitAnswer sends one answer for one question.
func (c *Client) SubmitAnswer(ctx context.Context, interviewID, questionID int, answer string) (*SubmitAnswerResponse, error) {
	path := fmt.Sprintf("/candidate/interview/%d/answer", interviewID)
	payload := models.Answer{QuestionID: questionID, Answer: answer}

	body, err := c.transport.DoJSON(ctx, http.MethodPost, path, payload)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateJSON(body, submitAnswerResponseSchema); err != nil {
		return nil, err
	}

	var resp SubmitAnswerResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.NewParseError(err.Error())
	}
	return &resp, nil
}

func checkSessionInvariants(session *models.InterviewSession) error {
	if session.CurrentQuestion < 0 || session.CurrentQuestion > len(session.Questions) {
		return errors.NewParseError(fmt.Sprintf(
			"current_question %d out of range for %d questions",
			session.CurrentQuestion, len(session.Questions),
		))
	}

	seen := make(map[int]bool, len(session.Answers))
	for _, ans := range session.Answers {
		if seen[ans.QuestionID] {
			return errors.NewParseError(fmt.Sprintf(
				"duplicate answer for question %d", ans.QuestionID,
			))
		}
		seen[ans.QuestionID] = true
	}
	return nil
}
