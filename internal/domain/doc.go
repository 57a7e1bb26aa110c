// Package domain contains the core model for addrbook: validated fields,
// contact records and the address book that keys them by name.
//
// The domain does not depend on YAML parsing, the terminal or the filesystem.
// Infra/adapters map into/from these types.
package domain
