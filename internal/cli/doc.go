// Package cli scans command-line arguments into a loose key/value set and
// renders the usage text. Unknown flags are collected, never rejected; the
// consumers decide which keys they care about.
package cli
