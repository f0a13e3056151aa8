package model

import (
	"time"

	"github.com/google/uuid"
)

type ContactForm struct {
	Name    string
	Email   string
	Message string
}

func (f ContactForm) IsEmpty() bool {
	return f.Name == "" && f.Email == "" && f.Message == ""
}

type ResultType string

const (
	ResultNone    ResultType = ""
	ResultSuccess ResultType = "success"
	ResultError   ResultType = "error"
)

type SubmissionResult struct {
	Type    ResultType `json:"type"`
	Message string     `json:"message"`
}

type SubmissionState struct {
	InFlight bool
	Result   SubmissionResult
}

const (
	OutcomeSent   = "sent"
	OutcomeFailed = "failed"
)

type SubmissionRecord struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Message   string
	Outcome   string
	CreatedAt time.Time
}
