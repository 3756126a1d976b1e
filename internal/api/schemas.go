package api

// JSON schemas for every platform response the client consumes. Payloads
// are rejected at the boundary when they do not match, so call sites can
// trust the decoded shape.

const loginResponseSchema = `{
	"type": "object",
	"required": ["access_token", "token_type", "user"],
	"properties": {
		"access_token": {"type": "string", "minLength": 1},
		"token_type": {"type": "string"},
		"user": {
			"type": "object",
			"required": ["id", "email", "full_name", "role"],
			"properties": {
				"id": {"type": "integer"},
				"email": {"type": "string"},
				"full_name": {"type": "string"},
				"role": {"type": "string", "enum": ["admin", "recruiter", "candidate"]}
			}
		}
	}
}`

const identitySchema = `{
	"type": "object",
	"required": ["id", "email", "full_name", "role"],
	"properties": {
		"id": {"type": "integer"},
		"email": {"type": "string"},
		"full_name": {"type": "string"},
		"role": {"type": "string", "enum": ["admin", "recruiter", "candidate"]}
	}
}`

const candidateStatsSchema = `{
	"type": "object",
	"required": ["total_applications", "pending", "interviewing", "completed"],
	"properties": {
		"total_applications": {"type": "integer", "minimum": 0},
		"pending": {"type": "integer", "minimum": 0},
		"interviewing": {"type": "integer", "minimum": 0},
		"completed": {"type": "integer", "minimum": 0}
	}
}`

const jobListSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "title", "description"],
		"properties": {
			"id": {"type": "integer"},
			"title": {"type": "string"},
			"description": {"type": "string"},
			"requirements": {"type": ["string", "null"]},
			"status": {"type": "string"},
			"created_at": {"type": "string"}
		}
	}
}`

const applyResponseSchema = `{
	"type": "object",
	"required": ["application_id"],
	"properties": {
		"message": {"type": "string"},
		"application_id": {"type": "integer"}
	}
}`

const uploadResumeResponseSchema = `{
	"type": "object",
	"required": ["interview_id"],
	"properties": {
		"message": {"type": "string"},
		"interview_id": {"type": "integer"}
	}
}`

const applicationListSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["application_id", "job_title", "status"],
		"properties": {
			"application_id": {"type": "integer"},
			"job_id": {"type": "integer"},
			"job_title": {"type": "string"},
			"job_description": {"type": "string"},
			"status": {"type": "string"},
			"applied_at": {"type": "string"},
			"has_interview": {"type": "boolean"},
			"interview_id": {"type": ["integer", "null"]},
			"interview_status": {"type": ["string", "null"]}
		}
	}
}`

const interviewSessionSchema = `{
	"type": "object",
	"required": ["interview_id", "status", "questions", "current_question"],
	"properties": {
		"interview_id": {"type": "integer"},
		"status": {"type": "string", "enum": ["pending", "in_progress", "completed"]},
		"current_question": {"type": "integer", "minimum": 0},
		"questions": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "text"],
				"properties": {
					"id": {"type": "integer"},
					"text": {"type": "string"},
					"type": {"type": "string"}
				}
			}
		},
		"answers": {
			"type": ["array", "null"],
			"items": {
				"type": "object",
				"required": ["question_id", "answer"],
				"properties": {
					"question_id": {"type": "integer"},
					"answer": {"type": "string"}
				}
			}
		}
	}
}`

const submitAnswerResponseSchema = `{
	"type": "object",
	"required": ["completed"],
	"properties": {
		"completed": {"type": "boolean"},
		"message": {"type": "string"}
	}
}`
