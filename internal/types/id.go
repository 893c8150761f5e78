// README: Common identifier type shared across modules.
package types

// ID is an opaque, client-generated user or entity identifier.
type ID string
