package models_test

import (
	"testing"
	"time"

	"landing-leads/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSubmission_Row_Placeholders(t *testing.T) {
	ist := time.FixedZone("IST", 5*60*60+30*60)
	at := time.Date(2026, time.October, 17, 15, 4, 0, 0, ist)

	s := models.Submission{
		FullName:      "A",
		Email:         "a@b.com",
		ContactNumber: "9999999999",
		Location:      "City",
	}

	row := s.Row(at)

	assert.Equal(t, models.Row{
		"17 Oct 2026, 3:04 pm",
		"A",
		"a@b.com",
		"9999999999",
		"City",
		models.Placeholder,
		models.Placeholder,
	}, row)
}

func TestSubmission_Row_Optionals(t *testing.T) {
	at := time.Date(2026, time.January, 5, 9, 30, 0, 0, time.UTC)

	s := models.Submission{
		FullName:      "Asha Rao",
		Email:         "asha@example.com",
		ContactNumber: "9876543210",
		Location:      "Pune, MH",
		BusinessName:  "Rao Academy",
		TeamSize:      "11-50",
	}

	row := s.Row(at)

	assert.Len(t, row, 7)
	assert.Equal(t, "5 Jan 2026, 9:30 am", row[0])
	assert.Equal(t, "Rao Academy", row[5])
	assert.Equal(t, "11-50", row[6])
}

func TestSubmission_MissingFields(t *testing.T) {
	cases := []struct {
		name string
		in   models.Submission
		want []string
	}{
		{
			name: "complete",
			in:   models.Submission{FullName: "A", Email: "a@b.com", ContactNumber: "1", Location: "C"},
			want: nil,
		},
		{
			name: "empty",
			in:   models.Submission{BusinessName: "Biz", TeamSize: "0-3"},
			want: []string{"fullName", "email", "contactNumber", "location"},
		},
		{
			name: "location only",
			in:   models.Submission{FullName: "A", Email: "a@b.com", ContactNumber: "1"},
			want: []string{"location"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.MissingFields())
		})
	}
}

func TestFromFields(t *testing.T) {
	s := models.FromFields(map[string]string{
		"fullName":      "A",
		"email":         "a@b.com",
		"contactNumber": "9999999999",
		"location":      "City",
		"teamSize":      "200+",
		"unknown":       "ignored",
	})

	assert.Equal(t, models.Submission{
		FullName:      "A",
		Email:         "a@b.com",
		ContactNumber: "9999999999",
		Location:      "City",
		TeamSize:      "200+",
	}, s)
}

func TestRow_Values(t *testing.T) {
	vals := models.Row{"a", "b"}.Values()
	assert.Equal(t, []interface{}{"a", "b"}, vals)
}
