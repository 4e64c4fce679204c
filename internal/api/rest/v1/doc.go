// Package v1 exposes the key vault and the prime oracle over HTTP using gin.
package v1
