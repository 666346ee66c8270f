// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Fingerprint is the predicate function for entfingerprint builders.
type Fingerprint func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
