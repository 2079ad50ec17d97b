package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// collegeDTO mirrors the server's college resource payload.
type collegeDTO struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	City          *string `json:"city"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	StudentsCount *int    `json:"students_count"`
	CreatedAt     *string `json:"created_at"`
}

// College is the flattened view of a college row.
type College struct {
	ID            int64
	Name          string
	Code          string
	City          string
	Email         string
	Phone         string
	StudentsCount int
	CreatedAt     string
}

func toCollege(d collegeDTO) College {
	return College{
		ID:            d.ID,
		Name:          d.Name,
		Code:          d.Code,
		City:          strOrEmpty(d.City),
		Email:         strOrEmpty(d.Email),
		Phone:         strOrEmpty(d.Phone),
		StudentsCount: intOrZero(d.StudentsCount),
		CreatedAt:     strOrEmpty(d.CreatedAt),
	}
}

// CollegeListQuery narrows and pages a college listing.
type CollegeListQuery struct {
	Search  string
	City    string
	Page    int
	PerPage int
}

func (q CollegeListQuery) values() url.Values {
	v := url.Values{}
	setIfNotEmpty(v, "search", q.Search)
	setIfNotEmpty(v, "city", q.City)
	setIfPositive(v, "page", q.Page)
	setIfPositive(v, "per_page", q.PerPage)
	return v
}

// ListColleges returns one page of colleges matching the query.
func (c *Client) ListColleges(ctx context.Context, q CollegeListQuery) ([]College, Meta, error) {
	var envelope struct {
		Data []collegeDTO `json:"data"`
		Meta *Meta        `json:"meta"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/colleges", q.values(), nil, &envelope); err != nil {
		return nil, Meta{}, err
	}
	rows := make([]College, 0, len(envelope.Data))
	for _, d := range envelope.Data {
		rows = append(rows, toCollege(d))
	}
	meta := singlePageMeta(len(rows))
	if envelope.Meta != nil {
		meta = *envelope.Meta
	}
	return rows, meta, nil
}

// CollegeInput creates or updates a college.
type CollegeInput struct {
	Name  string `json:"name,omitempty"`
	Code  string `json:"code,omitempty"`
	City  string `json:"city,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// CreateCollege creates a college.
func (c *Client) CreateCollege(ctx context.Context, input CollegeInput) (*College, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	var envelope struct {
		Data collegeDTO `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/colleges", nil, input, &envelope); err != nil {
		return nil, err
	}
	out := toCollege(envelope.Data)
	return &out, nil
}

// UpdateCollege applies a partial update.
func (c *Client) UpdateCollege(ctx context.Context, id int64, input CollegeInput) (*College, error) {
	var envelope struct {
		Data collegeDTO `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/v1/colleges/%d", id), nil, input, &envelope); err != nil {
		return nil, err
	}
	out := toCollege(envelope.Data)
	return &out, nil
}

// DeleteCollege removes a college.
func (c *Client) DeleteCollege(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/v1/colleges/%d", id), nil, nil, nil)
}
