package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Assessment delivery modes as the server reports them.
const (
	AssessmentTypeOnline  = "online"
	AssessmentTypeOffline = "offline"
)

// assessmentDTO mirrors the server's assessment resource payload.
type assessmentDTO struct {
	ID          int64   `json:"id"`
	ModuleID    int64   `json:"module_id"`
	Title       string  `json:"title"`
	Type        string  `json:"type"`
	Status      *string `json:"status"`
	StartsAt    *string `json:"starts_at"`
	DurationSec *int    `json:"duration_sec"`
	TotalMarks  *int    `json:"total_marks"`
	Module      *struct {
		ID    int64  `json:"id"`
		Code  string `json:"code"`
		Title string `json:"title"`
	} `json:"module"`
	CreatedAt *string `json:"created_at"`
}

// Assessment is the flattened view of an assessment row.
type Assessment struct {
	ID          int64
	ModuleID    int64
	ModuleCode  string
	ModuleTitle string
	Title       string
	Type        string
	Status      string
	StartsAt    string
	DurationSec int
	TotalMarks  int
	CreatedAt   string
}

func toAssessment(d assessmentDTO) Assessment {
	a := Assessment{
		ID:          d.ID,
		ModuleID:    d.ModuleID,
		Title:       d.Title,
		Type:        d.Type,
		Status:      strOrEmpty(d.Status),
		StartsAt:    strOrEmpty(d.StartsAt),
		DurationSec: intOrZero(d.DurationSec),
		TotalMarks:  intOrZero(d.TotalMarks),
		CreatedAt:   strOrEmpty(d.CreatedAt),
	}
	if d.Module != nil {
		a.ModuleCode = d.Module.Code
		a.ModuleTitle = d.Module.Title
	}
	return a
}

// AssessmentListQuery narrows and pages an assessment listing.
type AssessmentListQuery struct {
	Search   string
	Type     string
	ModuleID int64
	Page     int
	PerPage  int
}

func (q AssessmentListQuery) values() url.Values {
	v := url.Values{}
	setIfNotEmpty(v, "search", q.Search)
	setIfNotEmpty(v, "type", q.Type)
	if q.ModuleID > 0 {
		v.Set("module_id", fmt.Sprintf("%d", q.ModuleID))
	}
	setIfPositive(v, "page", q.Page)
	setIfPositive(v, "per_page", q.PerPage)
	return v
}

// ListAssessments returns one page of assessments matching the query.
func (c *Client) ListAssessments(ctx context.Context, q AssessmentListQuery) ([]Assessment, Meta, error) {
	var envelope struct {
		Data []assessmentDTO `json:"data"`
		Meta *Meta           `json:"meta"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/assessments", q.values(), nil, &envelope); err != nil {
		return nil, Meta{}, err
	}
	rows := make([]Assessment, 0, len(envelope.Data))
	for _, d := range envelope.Data {
		rows = append(rows, toAssessment(d))
	}
	meta := singlePageMeta(len(rows))
	if envelope.Meta != nil {
		meta = *envelope.Meta
	}
	return rows, meta, nil
}

// GetAssessment retrieves a single assessment by ID.
func (c *Client) GetAssessment(ctx context.Context, id int64) (*Assessment, error) {
	var envelope struct {
		Data assessmentDTO `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/assessments/%d", id), nil, nil, &envelope); err != nil {
		return nil, err
	}
	a := toAssessment(envelope.Data)
	return &a, nil
}

// AssessmentInput creates or updates an assessment.
type AssessmentInput struct {
	ModuleID    int64  `json:"module_id,omitempty"`
	Title       string `json:"title,omitempty"`
	Type        string `json:"type,omitempty"`
	StartsAt    string `json:"starts_at,omitempty"`
	DurationSec int    `json:"duration_sec,omitempty"`
	TotalMarks  int    `json:"total_marks,omitempty"`
}

// CreateAssessment creates an assessment under a module.
func (c *Client) CreateAssessment(ctx context.Context, input AssessmentInput) (*Assessment, error) {
	if input.ModuleID == 0 || input.Title == "" {
		return nil, fmt.Errorf("module ID and title are required")
	}
	var envelope struct {
		Data assessmentDTO `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/assessments", nil, input, &envelope); err != nil {
		return nil, err
	}
	a := toAssessment(envelope.Data)
	return &a, nil
}

// UpdateAssessment applies a partial update.
func (c *Client) UpdateAssessment(ctx context.Context, id int64, input AssessmentInput) (*Assessment, error) {
	var envelope struct {
		Data assessmentDTO `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/v1/assessments/%d", id), nil, input, &envelope); err != nil {
		return nil, err
	}
	a := toAssessment(envelope.Data)
	return &a, nil
}

// DeleteAssessment removes an assessment.
func (c *Client) DeleteAssessment(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/v1/assessments/%d", id), nil, nil, nil)
}
