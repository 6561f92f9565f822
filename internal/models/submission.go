package models

import "time"

// Placeholder stands in for optional fields the visitor left empty.
const Placeholder = "N/A"

// TimestampLayout renders the submission time as a medium date and short time,
// e.g. "17 Oct 2026, 3:04 pm".
const TimestampLayout = "2 Jan 2006, 3:04 pm"

// Field names as they travel in the request body.
const (
	FieldFullName      = "fullName"
	FieldEmail         = "email"
	FieldContactNumber = "contactNumber"
	FieldLocation      = "location"
	FieldBusinessName  = "businessName"
	FieldTeamSize      = "teamSize"
)

// Fields lists every form field in row order.
var Fields = []string{
	FieldFullName,
	FieldEmail,
	FieldContactNumber,
	FieldLocation,
	FieldBusinessName,
	FieldTeamSize,
}

type TeamSizeOption struct {
	Value string
	Label string
}

// TeamSizes is the enumeration offered by the form.
var TeamSizes = []TeamSizeOption{
	{Value: "0-3", Label: "0 to 3"},
	{Value: "4-10", Label: "4 to 10"},
	{Value: "11-50", Label: "11 to 50"},
	{Value: "51-200", Label: "51 to 200"},
	{Value: "200+", Label: "200+"},
}

// Submission is one visitor's form entry.
type Submission struct {
	FullName      string
	Email         string
	ContactNumber string
	Location      string
	BusinessName  string
	TeamSize      string
}

// FromFields builds a Submission from a field-name mapping.
func FromFields(fields map[string]string) Submission {
	return Submission{
		FullName:      fields[FieldFullName],
		Email:         fields[FieldEmail],
		ContactNumber: fields[FieldContactNumber],
		Location:      fields[FieldLocation],
		BusinessName:  fields[FieldBusinessName],
		TeamSize:      fields[FieldTeamSize],
	}
}

// MissingFields returns the names of empty required fields, in form order.
func (s Submission) MissingFields() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{FieldFullName, s.FullName},
		{FieldEmail, s.Email},
		{FieldContactNumber, s.ContactNumber},
		{FieldLocation, s.Location},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Row is one spreadsheet row: timestamp followed by the form fields.
type Row []string

// Row lays the submission out in sheet column order, stamped with at.
func (s Submission) Row(at time.Time) Row {
	return Row{
		at.Format(TimestampLayout),
		s.FullName,
		s.Email,
		s.ContactNumber,
		s.Location,
		orPlaceholder(s.BusinessName),
		orPlaceholder(s.TeamSize),
	}
}

// Values converts the row to the cell type the Sheets API expects.
func (r Row) Values() []interface{} {
	out := make([]interface{}, len(r))
	for i, v := range r {
		out[i] = v
	}
	return out
}

func orPlaceholder(v string) string {
	if v == "" {
		return Placeholder
	}
	return v
}
