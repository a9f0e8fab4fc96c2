// Package login provides HTTP handlers and helpers for admin authentication.
//
// This file defines the messages returned by the login flow.
package login

const (
	// MsgInvalidCredentials is returned when the username is unknown or the password is wrong.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgLoginSuccessful confirms a login.
	MsgLoginSuccessful = "Login successful"
)
