package export

import (
	"strings"
	"time"

	"hireboard/internal/domain/candidate"

	"github.com/xuri/excelize/v2"
)

const candidateSheet = "Candidates"

var candidateHeader = []any{
	"ID", "Name", "Email", "Phone", "Location", "Status", "Tags", "Skills",
	"Experience", "LinkedIn", "Added", "Recruiter", "Organization",
}

// Candidates renders the records as a single-sheet workbook.
func Candidates(items []candidate.Candidate) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", candidateSheet); err != nil {
		return nil, err
	}
	if err := setRow(f, 1, candidateHeader); err != nil {
		return nil, err
	}
	for i, c := range items {
		if err := setRow(f, i+2, candidateRow(c)); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(candidateSheet, cell, &values)
}

func candidateRow(c candidate.Candidate) []any {
	added := ""
	if c.AddedAt != nil {
		added = c.AddedAt.UTC().Format(time.RFC3339)
	}
	return []any{
		c.ID,
		c.Name,
		c.Email,
		deref(c.Phone),
		deref(c.Location),
		string(c.Status),
		strings.Join(c.Tags, ", "),
		strings.Join(c.Skills, ", "),
		deref(c.Experience),
		deref(c.LinkedInURL),
		added,
		c.RecruiterName,
		c.OrganizationName,
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Exporter adapts Candidates to the interface the candidate usecase expects.
type Exporter struct{}

func (Exporter) Candidates(items []candidate.Candidate) ([]byte, error) {
	return Candidates(items)
}
