// Package main provides the entry point of the portfolio application.
// It serves a server-rendered portfolio website with a contact form and an
// admin panel for projects, contact messages and site settings, backed by
// a JSON API on the Fiber framework and gorm for persistence.
package main
