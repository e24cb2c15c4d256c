// Package cachekey names the redis keys shared across features.
package cachekey

const (
	EmployeeOptions  = "employees:options"
	ProjectOptions   = "projects:options"
	ClientOptions    = "clients:options"
	DashboardSummary = "dashboard:summary"
)
