// Package mapper converts between API DTOs and stored entities.
//
// Create mappings copy every field. Update mappings apply only the fields the
// caller sent: a value overwrites, an explicit null clears where the entity
// allows it, and an absent field leaves the entity untouched. Non-nullable
// fields sent as null must be rejected by validation before mapping.
package mapper

// PasswordHasher turns a clear-text password into the digest that is stored.
type PasswordHasher func(password string) (string, error)
