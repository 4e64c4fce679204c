// Package keys defines the key vault: metadata of stored textbook RSA keys, the
// query used to list them, and the service and repository contracts around them.
package keys
