// Package otp generates one-time numeric codes for email-delivered
// challenges.
//
// Codes are short-lived and stored alongside the flow that issued them;
// the package only covers generation, not storage or expiry.
package otp
