// Package app implements the key vault services on top of the key repository
// and the textbook RSA processor.
package app
