package models

import "math"

// StudentQueryParams carries paging, sorting, and search filters for the
// student list endpoint.
type StudentQueryParams struct {
	Page      int    `json:"page" query:"page" example:"1"`                     // page number, 1-based
	Limit     int    `json:"limit" query:"limit" example:"5"`                   // records per page
	SortField string `json:"sortField" query:"sortField" example:"firstName"`   // field to sort by
	SortOrder string `json:"sortOrder" query:"sortOrder" example:"asc"`         // asc / desc
	Name      string `json:"name" query:"name" example:""`                      // substring match on firstName or lastName
	ID        string `json:"id" query:"id" example:""`                          // exact match on _id
}

// DefaultStudentQuery returns the list defaults.
func DefaultStudentQuery() StudentQueryParams {
	return StudentQueryParams{
		Page:      1,
		Limit:     5,
		SortField: "firstName",
		SortOrder: "asc",
	}
}

// GetSkip computes the number of records to skip for the current page.
func (p *StudentQueryParams) GetSkip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// GetSortOrder builds the sort document. 1 = asc, -1 = desc; anything
// other than "desc" sorts ascending.
func (p *StudentQueryParams) GetSortOrder() map[string]int {
	order := 1
	if p.SortOrder == "desc" {
		order = -1
	}
	return map[string]int{p.SortField: order}
}

// StudentListResponse is the paginated list body. CurrentPage echoes the
// requested page even when it lies past the last one.
type StudentListResponse struct {
	Students    []Student `json:"students"`
	TotalPages  int       `json:"totalPages"`
	CurrentPage int       `json:"currentPage"`
}

// NewStudentListResponse builds the list body from one page of records and
// the filtered total.
func NewStudentListResponse(students []Student, total int64, params StudentQueryParams) *StudentListResponse {
	totalPages := int(math.Ceil(float64(total) / float64(params.Limit)))

	return &StudentListResponse{
		Students:    students,
		TotalPages:  totalPages,
		CurrentPage: params.Page,
	}
}
