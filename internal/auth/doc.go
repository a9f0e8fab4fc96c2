// Package auth authenticates the site administrator.
//
// LocalProvider checks username and password against the users table. Passwords
// are Argon2id hashes; bcrypt hashes written by older installations are still
// accepted.
//
// TokenService issues and verifies the HS256 signed session token carried in the
// "token" cookie. Tokens are stateless: logout only clears the cookie, a copied
// token stays valid until it expires.
//
// RequireAuthenticated protects API routes. It answers 401 for a missing,
// malformed or expired token and stores the caller's Profile in the request
// locals otherwise.
//
// Example usage:
//
//	tokens, err := auth.NewTokenServiceFromConfig(cfg)
//	provider := auth.NewLocalProvider(db)
//
//	user, err := provider.Authenticate(username, password)
//	token, err := tokens.Issue(user)
//
//	app.Get("/api/contacts", auth.RequireAuthenticated(tokens), handler)
package auth
