// Package config provides configuration loading, merging, and validation
// facilities for the actor.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for every non-zero field):
//  1. Command-line arguments
//  2. Environment variables (a .env file in the working directory is loaded
//     into the environment first, never overriding variables already set)
//  3. Settings file (JSON or YAML)
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
