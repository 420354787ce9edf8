// Package domain defines the core business entities of the job board
// (companies, jobs, users, applications) together with their validation
// rules and the sentinel errors those rules produce.
package domain
