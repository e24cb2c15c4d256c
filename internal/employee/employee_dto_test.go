package employee_test

import (
	"encoding/json"
	"testing"

	"github.com/indocarisinternational/admin-caris/internal/employee"

	"github.com/stretchr/testify/assert"
)

func TestBadgeInput_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want employee.BadgeInput
	}{
		{name: "comma separated", body: `{"badges":"Data, Cloud"}`, want: "Data, Cloud"},
		{name: "list from a fetched employee", body: `{"badges":["Data","Cloud"]}`, want: "Data,Cloud"},
		{name: "empty list", body: `{"badges":[]}`, want: ""},
		{name: "null", body: `{"badges":null}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req employee.EmployeeRequest
			assert.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.Badges)
			assert.Equal(t, employee.ParseBadges(string(tt.want)), employee.ParseBadges(string(req.Badges)))
		})
	}

	t.Run("other types are rejected", func(t *testing.T) {
		var req employee.EmployeeRequest
		assert.Error(t, json.Unmarshal([]byte(`{"badges":42}`), &req))
	})
}

func TestBadgeInput_RoundTrip(t *testing.T) {
	fetched, err := json.Marshal(employee.EmployeeResponse{
		FullName:   "Budi Santoso",
		Position:   "Engineer",
		Department: "IT",
		Badges:     []string{"Data", "Cloud"},
	})
	assert.NoError(t, err)

	var req employee.UpdateEmployeeRequest
	assert.NoError(t, json.Unmarshal(fetched, &req))
	assert.Equal(t, []string{"Data", "Cloud"}, employee.ParseBadges(string(req.Badges)))
}
