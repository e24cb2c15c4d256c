package project

import (
	"fmt"
	"strings"

	projecterrors "github.com/indocarisinternational/admin-caris/internal/project/errors"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "inprogress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}

// ParseStatus accepts any casing plus the "in-progress" and "in_progress" spellings.
func ParseStatus(raw string) (Status, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", projecterrors.ErrInvalidStatus
}

func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

// StatusColor maps a status to its badge color. Unknown values render gray.
func StatusColor(status string) string {
	switch strings.ToLower(status) {
	case "active":
		return "success"
	case "pending":
		return "warning"
	case "completed":
		return "info"
	case "cancelled":
		return "failure"
	default:
		return "gray"
	}
}

// Progress renders completed/total as a percentage with one decimal.
func Progress(completed, total int) string {
	if completed == 0 || total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(completed)/float64(total)*100)
}
