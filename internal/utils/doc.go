// Package utils provides small helpers shared by the transport layers:
// JSON response writing, the resty-based HTTP client and trace id
// generation.
package utils
