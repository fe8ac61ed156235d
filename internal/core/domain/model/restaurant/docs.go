// Package restaurant models the tenant of the ordering platform.
//
// A Restaurant is addressed publicly by its Slug (the path segment encoded in
// table QR codes) and internally by its UUID. Staff access is guarded by a
// Credential, which only ever holds a bcrypt hash of the password; the
// plaintext is discarded right after hashing. Authenticate compares through
// bcrypt, which runs in constant time with respect to the stored hash.
//
// Menu items and orders belong to exactly one restaurant and are removed
// with it.
package restaurant
