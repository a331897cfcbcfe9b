package tardiness

import (
	"testing"

	"github.com/bizdesk/tardiness-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       CreateRequest
		wantField string
	}{
		{
			name:      "missing employee",
			req:       CreateRequest{Date: "2024-06-03", ActualIn: "08:10"},
			wantField: "employee_id",
		},
		{
			name:      "missing date",
			req:       CreateRequest{EmployeeID: "e1", ActualIn: "08:10"},
			wantField: "date",
		},
		{
			name:      "malformed date",
			req:       CreateRequest{EmployeeID: "e1", Date: "03/06/2024", ActualIn: "08:10"},
			wantField: "date",
		},
		{
			name:      "missing time",
			req:       CreateRequest{EmployeeID: "e1", Date: "2024-06-03"},
			wantField: "actual_in",
		},
		{
			name:      "malformed time",
			req:       CreateRequest{EmployeeID: "e1", Date: "2024-06-03", ActualIn: "eightish"},
			wantField: "actual_in",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.wantField)
		})
	}
}

func TestCreateRequest_Validate_OK(t *testing.T) {
	t.Parallel()

	req := CreateRequest{EmployeeID: "e1", EmployeeName: "Juan", Date: "2024-06-03", ActualIn: "8:10 AM"}
	require.NoError(t, req.Validate())
	assert.Equal(t, 2024, req.ParsedDate().Year())

	// Name-only rows are valid; the name becomes the grouping key.
	nameOnly := CreateRequest{EmployeeName: "Juan Dela Cruz", Date: "2024-06-03", ActualIn: "08:10"}
	assert.NoError(t, nameOnly.Validate())
}

func TestRecord_EmployeeKey(t *testing.T) {
	t.Parallel()

	withID := Record{EmployeeID: "e1", EmployeeName: "Juan"}
	assert.Equal(t, "e1", withID.EmployeeKey())

	nameOnly := Record{EmployeeName: "Juan"}
	assert.Equal(t, "Juan", nameOnly.EmployeeKey())
}
