package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// studentDTO mirrors the server's student resource payload.
type studentDTO struct {
	ID              int64          `json:"id"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Phone           *string        `json:"phone"`
	TenantID        int64          `json:"tenant_id"`
	UserID          *int64         `json:"user_id"`
	RegNo           string         `json:"reg_no"`
	Branch          *string        `json:"branch"`
	Cohort          *string        `json:"cohort"`
	InstitutionName *string        `json:"institution_name"`
	UniversityName  *string        `json:"university_name"`
	Gender          *string        `json:"gender"`
	DOB             *string        `json:"dob"`
	AdmissionYear   *int           `json:"admission_year"`
	CurrentSemester *int           `json:"current_semester"`
	Meta            map[string]any `json:"meta"`
	User            *struct {
		ID    int64   `json:"id"`
		Name  string  `json:"name"`
		Email *string `json:"email"`
		Phone *string `json:"phone"`
	} `json:"user"`
	CreatedAt *string `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

// Student is the flattened view of a student row: account fields from the
// linked user merged with the enrolment record.
type Student struct {
	ID              int64
	RegNo           string
	Branch          string
	Cohort          string
	UserID          *int64
	Name            string
	Email           string
	Phone           string
	InstitutionName string
	UniversityName  string
	Gender          string
	DOB             string
	AdmissionYear   int
	CurrentSemester int
	Meta            map[string]any
	CreatedAt       string
	UpdatedAt       string
}

func toStudent(d studentDTO) Student {
	s := Student{
		ID:     d.ID,
		RegNo:  d.RegNo,
		Branch: strOrEmpty(d.Branch),
		Cohort: strOrEmpty(d.Cohort),
		UserID: d.UserID,
		Name:   d.Name,
		Email:  d.Email,
		Phone:  strOrEmpty(d.Phone),

		InstitutionName: strOrEmpty(d.InstitutionName),
		UniversityName:  strOrEmpty(d.UniversityName),
		Gender:          strOrEmpty(d.Gender),
		DOB:             strOrEmpty(d.DOB),
		AdmissionYear:   intOrZero(d.AdmissionYear),
		CurrentSemester: intOrZero(d.CurrentSemester),
		Meta:            d.Meta,
		CreatedAt:       strOrEmpty(d.CreatedAt),
		UpdatedAt:       strOrEmpty(d.UpdatedAt),
	}
	// Fall back to the nested user record for account fields the resource
	// left blank.
	if d.User != nil {
		if s.Name == "" {
			s.Name = d.User.Name
		}
		if s.Email == "" {
			s.Email = strOrEmpty(d.User.Email)
		}
		if s.Phone == "" {
			s.Phone = strOrEmpty(d.User.Phone)
		}
	}
	return s
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// StudentListQuery narrows and pages a student listing.
type StudentListQuery struct {
	Search      string
	Cohort      string
	Branch      string
	University  string
	Institution string
	Page        int
	PerPage     int
	// WithUser asks the server to include the linked user record.
	WithUser bool
}

func (q StudentListQuery) values() url.Values {
	v := url.Values{}
	setIfNotEmpty(v, "search", q.Search)
	setIfNotEmpty(v, "cohort", q.Cohort)
	setIfNotEmpty(v, "branch", q.Branch)
	setIfNotEmpty(v, "university", q.University)
	setIfNotEmpty(v, "institution", q.Institution)
	setIfPositive(v, "page", q.Page)
	setIfPositive(v, "per_page", q.PerPage)
	if q.WithUser {
		v.Set("with", "user")
	}
	return v
}

// ListStudents returns one page of students matching the query.
func (c *Client) ListStudents(ctx context.Context, q StudentListQuery) ([]Student, Meta, error) {
	var envelope struct {
		Data []studentDTO `json:"data"`
		Meta *Meta        `json:"meta"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/students", q.values(), nil, &envelope); err != nil {
		return nil, Meta{}, err
	}
	rows := make([]Student, 0, len(envelope.Data))
	for _, d := range envelope.Data {
		rows = append(rows, toStudent(d))
	}
	meta := singlePageMeta(len(rows))
	if envelope.Meta != nil {
		meta = *envelope.Meta
	}
	return rows, meta, nil
}

// GetStudent retrieves a single student by ID.
func (c *Client) GetStudent(ctx context.Context, id int64) (*Student, error) {
	var envelope struct {
		Data studentDTO `json:"data"`
	}
	path := fmt.Sprintf("/v1/students/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &envelope); err != nil {
		return nil, err
	}
	s := toStudent(envelope.Data)
	return &s, nil
}

// StudentInput creates or updates a student together with its linked user
// account in one call.
type StudentInput struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	RegNo  string `json:"reg_no,omitempty"`
	Branch string `json:"branch,omitempty"`
	Cohort string `json:"cohort,omitempty"`

	Meta map[string]any `json:"meta,omitempty"`
}

// CreateStudent creates a student and, when needed, its user account.
func (c *Client) CreateStudent(ctx context.Context, input StudentInput) (*Student, error) {
	if input.Name == "" || input.Email == "" || input.RegNo == "" {
		return nil, fmt.Errorf("name, email and registration number are required")
	}
	var envelope struct {
		Data studentDTO `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/students", nil, input, &envelope); err != nil {
		return nil, err
	}
	s := toStudent(envelope.Data)
	return &s, nil
}

// UpdateStudent applies a partial update; zero-valued fields are omitted.
func (c *Client) UpdateStudent(ctx context.Context, id int64, input StudentInput) (*Student, error) {
	var envelope struct {
		Data studentDTO `json:"data"`
	}
	path := fmt.Sprintf("/v1/students/%d", id)
	if err := c.do(ctx, http.MethodPut, path, nil, input, &envelope); err != nil {
		return nil, err
	}
	s := toStudent(envelope.Data)
	return &s, nil
}

// DeleteStudent removes a student.
func (c *Client) DeleteStudent(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/v1/students/%d", id), nil, nil, nil)
}
