// Package api implements the HTTP handlers for the job-board API and the
// terminal error mapping that converts any failure raised by a pipeline
// stage or handler into the stable JSON error envelope.
package api
