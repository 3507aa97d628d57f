// Package config holds the runtime configuration for srcweld.
//
// Configuration flows in from CLI flags and an optional YAML file
// (.srcweld, searched in the working directory and then the home
// directory), is validated once up front, and is passed through the
// application by value rather than global state. The ignore list of
// generated file names lives here deliberately: it is a policy choice the
// user can change, not a constant baked into the discovery code.
package config
