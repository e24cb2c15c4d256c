package project_test

import (
	"testing"

	"github.com/indocarisinternational/admin-caris/internal/project"
	projecterrors "github.com/indocarisinternational/admin-caris/internal/project/errors"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in   string
		want project.Status
	}{
		{"pending", project.StatusPending},
		{"PENDING", project.StatusPending},
		{"inprogress", project.StatusInProgress},
		{"In-Progress", project.StatusInProgress},
		{"in_progress", project.StatusInProgress},
		{" Completed ", project.StatusCompleted},
		{"cancelled", project.StatusCancelled},
	}
	for _, tc := range cases {
		got, err := project.ParseStatus(tc.in)
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := project.ParseStatus("archived")
	assert.ErrorIs(t, err, projecterrors.ErrInvalidStatus)
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "success", project.StatusColor("Active"))
	assert.Equal(t, "warning", project.StatusColor("pending"))
	assert.Equal(t, "info", project.StatusColor("completed"))
	assert.Equal(t, "failure", project.StatusColor("cancelled"))
	assert.Equal(t, "gray", project.StatusColor("inprogress"))
	assert.Equal(t, "gray", project.StatusColor(""))
}

func TestProgress(t *testing.T) {
	assert.Equal(t, "0%", project.Progress(0, 10))
	assert.Equal(t, "0%", project.Progress(3, 0))
	assert.Equal(t, "30.0%", project.Progress(3, 10))
	assert.Equal(t, "66.7%", project.Progress(2, 3))
	assert.Equal(t, "100.0%", project.Progress(8, 8))
}
