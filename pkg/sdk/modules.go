package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Module lifecycle states as the server reports them.
const (
	ModuleStatusActive   = "Active"
	ModuleStatusArchived = "Archived"
)

// moduleDTO mirrors the server's module resource payload.
type moduleDTO struct {
	ID               int64   `json:"id"`
	Code             string  `json:"code"`
	Title            string  `json:"title"`
	Credits          int     `json:"credits"`
	Status           string  `json:"status"`
	Instructor       *string `json:"instructor"`
	Cohort           *string `json:"cohort"`
	AssessmentTitle  string  `json:"assessment_title"`
	AssessmentsCount *int    `json:"assessments_count"`
	StudentsCount    *int    `json:"students_count"`
	CreatedAt        *string `json:"created_at"`
}

// Module is the flattened view of a module row.
type Module struct {
	ID               int64
	Code             string
	Title            string
	Credits          int
	Status           string
	Instructor       string
	Cohort           string
	AssessmentTitle  string
	AssessmentsCount int
	StudentsCount    int
	CreatedAt        string
}

func toModule(d moduleDTO) Module {
	return Module{
		ID:               d.ID,
		Code:             d.Code,
		Title:            d.Title,
		Credits:          d.Credits,
		Status:           d.Status,
		Instructor:       strOrEmpty(d.Instructor),
		Cohort:           strOrEmpty(d.Cohort),
		AssessmentTitle:  d.AssessmentTitle,
		AssessmentsCount: intOrZero(d.AssessmentsCount),
		StudentsCount:    intOrZero(d.StudentsCount),
		CreatedAt:        strOrEmpty(d.CreatedAt),
	}
}

// ModuleListQuery narrows and pages a module listing.
type ModuleListQuery struct {
	Search     string
	Status     string
	Instructor string
	Cohort     string
	Page       int
	PerPage    int
}

func (q ModuleListQuery) values() url.Values {
	v := url.Values{}
	setIfNotEmpty(v, "search", q.Search)
	setIfNotEmpty(v, "status", q.Status)
	setIfNotEmpty(v, "instructor", q.Instructor)
	setIfNotEmpty(v, "cohort", q.Cohort)
	setIfPositive(v, "page", q.Page)
	setIfPositive(v, "per_page", q.PerPage)
	return v
}

// ListModules returns one page of modules matching the query.
func (c *Client) ListModules(ctx context.Context, q ModuleListQuery) ([]Module, Meta, error) {
	var envelope struct {
		Data []moduleDTO `json:"data"`
		Meta *Meta       `json:"meta"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/modules", q.values(), nil, &envelope); err != nil {
		return nil, Meta{}, err
	}
	rows := make([]Module, 0, len(envelope.Data))
	for _, d := range envelope.Data {
		rows = append(rows, toModule(d))
	}
	meta := singlePageMeta(len(rows))
	if envelope.Meta != nil {
		meta = *envelope.Meta
	}
	return rows, meta, nil
}

// GetModule retrieves a single module by ID.
func (c *Client) GetModule(ctx context.Context, id int64) (*Module, error) {
	var envelope struct {
		Data moduleDTO `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/modules/%d", id), nil, nil, &envelope); err != nil {
		return nil, err
	}
	m := toModule(envelope.Data)
	return &m, nil
}

// ModuleInput creates or updates a module.
type ModuleInput struct {
	Code       string `json:"code,omitempty"`
	Title      string `json:"title,omitempty"`
	Credits    int    `json:"credits,omitempty"`
	Status     string `json:"status,omitempty"`
	Instructor string `json:"instructor,omitempty"`
	Cohort     string `json:"cohort,omitempty"`
}

// CreateModule creates a module.
func (c *Client) CreateModule(ctx context.Context, input ModuleInput) (*Module, error) {
	if input.Code == "" || input.Title == "" {
		return nil, fmt.Errorf("code and title are required")
	}
	var envelope struct {
		Data moduleDTO `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/modules", nil, input, &envelope); err != nil {
		return nil, err
	}
	m := toModule(envelope.Data)
	return &m, nil
}

// UpdateModule applies a partial update.
func (c *Client) UpdateModule(ctx context.Context, id int64, input ModuleInput) (*Module, error) {
	var envelope struct {
		Data moduleDTO `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/v1/modules/%d", id), nil, input, &envelope); err != nil {
		return nil, err
	}
	m := toModule(envelope.Data)
	return &m, nil
}

// DeleteModule removes a module.
func (c *Client) DeleteModule(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/v1/modules/%d", id), nil, nil, nil)
}
