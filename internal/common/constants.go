package common

// AuthorizationHeader is the HTTP header carrying the bearer token on
// protected requests.
const AuthorizationHeader = "Authorization"

// BearerPrefix is the scheme prefix expected in the Authorization header.
const BearerPrefix = "Bearer "

// Task status values. The server validates membership; the client uses them
// for the status filter.
const (
	StatusActive    = "Active"
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

// TaskStatuses lists the valid task statuses in display order.
var TaskStatuses = []string{StatusActive, StatusPending, StatusCompleted}

// ValidTaskStatus reports whether s is one of the known task statuses.
func ValidTaskStatus(s string) bool {
	for _, v := range TaskStatuses {
		if s == v {
			return true
		}
	}
	return false
}
