// Package review implements validation and cleaning of raw reviews.
//
// Clean strips special characters, enforces the minimum token count,
// normalizes the rating into [0,5], and fills in date/timestamp defaults.
// Rejection is an ok-return, not an error.
package review
