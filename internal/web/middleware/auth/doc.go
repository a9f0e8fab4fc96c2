// Package auth provides page level authentication middleware for the admin pages.
//
// Unlike the API middleware, which answers 401, these handlers redirect:
//   - RedirectUnauthenticated sends visitors without a valid session token to the login page
//   - RedirectAuthenticated sends a logged in admin from the login page to the dashboard
//
// Both add the current profile to fiber.Locals for template access.
//
// Usage:
//
//	app.Get("/admin/dashboard", authmiddleware.RedirectUnauthenticated(tokens, "/admin"), handler)
package auth
