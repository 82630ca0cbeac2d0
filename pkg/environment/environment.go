package environment

import "strings"

// Environment represents the deployment environment the server runs in.
type Environment string

const (
	// Development enables verbose logging, error stacks in responses and disables script caching.
	Development Environment = "development"
	// Staging behaves like production but is labelled separately in logs.
	Staging Environment = "staging"
	// Production hides error details and caches everything it can.
	Production Environment = "production"
)

// Parse normalizes an environment name, accepting the short aliases
// "dev", "stage" and "prod". Unknown or empty values resolve to Production
// so that a missing setting never leaks stack traces to clients.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Development), "dev", "local":
		return Development
	case string(Staging), "stage":
		return Staging
	default:
		return Production
	}
}

// IsDevelopment reports whether e is the development environment.
func (e Environment) IsDevelopment() bool { return e == Development }

// IsProduction reports whether e is the production environment.
func (e Environment) IsProduction() bool { return e == Production }

// String implements fmt.Stringer.
func (e Environment) String() string { return string(e) }
