package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// attemptDTO mirrors one entry of the evaluator queue, with the assessment
// and student records included by the server.
type attemptDTO struct {
	ID           int64   `json:"id"`
	TenantID     int64   `json:"tenant_id"`
	AssessmentID int64   `json:"assessment_id"`
	StudentID    int64   `json:"student_id"`
	StartedAt    *string `json:"started_at"`
	SubmittedAt  *string `json:"submitted_at"`
	DurationSec  *int    `json:"duration_sec"`
	// The server serializes decimals as strings; accept either form.
	Score      *scoreValue `json:"score"`
	Assessment *struct {
		ID    int64   `json:"id"`
		Title *string `json:"title"`
		Type  *string `json:"type"`
	} `json:"assessment"`
	Student *struct {
		ID     int64   `json:"id"`
		RegNo  *string `json:"reg_no"`
		Cohort *string `json:"cohort"`
		Branch *string `json:"branch"`
		User   *struct {
			ID    int64   `json:"id"`
			Name  *string `json:"name"`
			Email *string `json:"email"`
		} `json:"user"`
	} `json:"student"`
}

// scoreValue unmarshals a numeric score from either a JSON number or a
// quoted decimal string.
type scoreValue float64

func (s *scoreValue) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	raw := string(data)
	if raw[0] == '"' {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("invalid score %s: %w", raw, err)
		}
		raw = unquoted
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid score %q: %w", raw, err)
	}
	*s = scoreValue(f)
	return nil
}

// QueueItem is the flattened view of a submitted attempt awaiting
// evaluation.
type QueueItem struct {
	ID              int64
	AssessmentID    int64
	AssessmentTitle string
	AssessmentType  string
	StudentID       int64
	StudentRegNo    string
	StudentName     string
	StudentEmail    string
	Cohort          string
	Branch          string
	StartedAt       string
	SubmittedAt     string
	DurationSec     int
	// Score is nil until the attempt has been scored.
	Score *float64
}

func toQueueItem(d attemptDTO) QueueItem {
	item := QueueItem{
		ID:           d.ID,
		AssessmentID: d.AssessmentID,
		StudentID:    d.StudentID,
		StartedAt:    strOrEmpty(d.StartedAt),
		SubmittedAt:  strOrEmpty(d.SubmittedAt),
		DurationSec:  intOrZero(d.DurationSec),
	}
	if d.Score != nil {
		f := float64(*d.Score)
		item.Score = &f
	}
	if d.Assessment != nil {
		item.AssessmentTitle = strOrEmpty(d.Assessment.Title)
		item.AssessmentType = strOrEmpty(d.Assessment.Type)
	}
	if d.Student != nil {
		item.StudentRegNo = strOrEmpty(d.Student.RegNo)
		item.Cohort = strOrEmpty(d.Student.Cohort)
		item.Branch = strOrEmpty(d.Student.Branch)
		if d.Student.User != nil {
			item.StudentName = strOrEmpty(d.Student.User.Name)
			item.StudentEmail = strOrEmpty(d.Student.User.Email)
		}
	}
	return item
}

// QueueQuery narrows and pages the evaluator queue.
type QueueQuery struct {
	Search  string
	Page    int
	PerPage int
}

func (q QueueQuery) values() url.Values {
	v := url.Values{}
	setIfNotEmpty(v, "search", q.Search)
	setIfPositive(v, "page", q.Page)
	setIfPositive(v, "per_page", q.PerPage)
	return v
}

// ListQueue returns one page of submitted attempts awaiting evaluation.
func (c *Client) ListQueue(ctx context.Context, q QueueQuery) ([]QueueItem, Meta, error) {
	var envelope struct {
		Data []attemptDTO `json:"data"`
		Meta *Meta        `json:"meta"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/evaluate/queue", q.values(), nil, &envelope); err != nil {
		return nil, Meta{}, err
	}
	rows := make([]QueueItem, 0, len(envelope.Data))
	for _, d := range envelope.Data {
		rows = append(rows, toQueueItem(d))
	}
	meta := singlePageMeta(len(rows))
	if envelope.Meta != nil {
		meta = *envelope.Meta
	}
	return rows, meta, nil
}

// ScoreRow is one criterion's score within an attempt evaluation.
type ScoreRow struct {
	CriterionID int64   `json:"criterion_id"`
	Score       float64 `json:"score"`
	Comment     string  `json:"comment,omitempty"`
}

// ScoreAttempt submits per-criterion scores for an attempt.
func (c *Client) ScoreAttempt(ctx context.Context, attemptID int64, scores []ScoreRow) error {
	if len(scores) == 0 {
		return fmt.Errorf("at least one score row is required")
	}
	body := struct {
		Scores []ScoreRow `json:"scores"`
	}{Scores: scores}
	path := fmt.Sprintf("/v1/attempts/%d/scores", attemptID)
	return c.do(ctx, http.MethodPost, path, nil, body, nil)
}
