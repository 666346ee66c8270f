// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"
	entfingerprint "visitor-identity-api/ent/fingerprint"
	"visitor-identity-api/ent/schema"
	"visitor-identity-api/ent/user"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	entfingerprintFields := schema.Fingerprint{}.Fields()
	_ = entfingerprintFields
	// entfingerprintDescHash is the schema descriptor for hash field.
	entfingerprintDescHash := entfingerprintFields[1].Descriptor()
	// entfingerprint.HashValidator is a validator for the "hash" field. It is called by the builders before save.
	entfingerprint.HashValidator = func() func(string) error {
		validators := entfingerprintDescHash.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(hash string) error {
			for _, fn := range fns {
				if err := fn(hash); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// entfingerprintDescIP is the schema descriptor for ip field.
	entfingerprintDescIP := entfingerprintFields[3].Descriptor()
	// entfingerprint.IPValidator is a validator for the "ip" field. It is called by the builders before save.
	entfingerprint.IPValidator = entfingerprintDescIP.Validators[0].(func(string) error)
	// entfingerprintDescConfidence is the schema descriptor for confidence field.
	entfingerprintDescConfidence := entfingerprintFields[4].Descriptor()
	// entfingerprint.DefaultConfidence holds the default value on creation for the confidence field.
	entfingerprint.DefaultConfidence = entfingerprintDescConfidence.Default.(float64)
	// entfingerprintDescSuspicious is the schema descriptor for suspicious field.
	entfingerprintDescSuspicious := entfingerprintFields[5].Descriptor()
	// entfingerprint.DefaultSuspicious holds the default value on creation for the suspicious field.
	entfingerprint.DefaultSuspicious = entfingerprintDescSuspicious.Default.(bool)
	// entfingerprintDescSeenCount is the schema descriptor for seen_count field.
	entfingerprintDescSeenCount := entfingerprintFields[7].Descriptor()
	// entfingerprint.DefaultSeenCount holds the default value on creation for the seen_count field.
	entfingerprint.DefaultSeenCount = entfingerprintDescSeenCount.Default.(int)
	// entfingerprintDescCreatedAt is the schema descriptor for created_at field.
	entfingerprintDescCreatedAt := entfingerprintFields[8].Descriptor()
	// entfingerprint.DefaultCreatedAt holds the default value on creation for the created_at field.
	entfingerprint.DefaultCreatedAt = entfingerprintDescCreatedAt.Default.(func() time.Time)
	// entfingerprintDescLastSeenAt is the schema descriptor for last_seen_at field.
	entfingerprintDescLastSeenAt := entfingerprintFields[9].Descriptor()
	// entfingerprint.DefaultLastSeenAt holds the default value on creation for the last_seen_at field.
	entfingerprint.DefaultLastSeenAt = entfingerprintDescLastSeenAt.Default.(func() time.Time)
	// entfingerprintDescID is the schema descriptor for id field.
	entfingerprintDescID := entfingerprintFields[0].Descriptor()
	// entfingerprint.DefaultID holds the default value on creation for the id field.
	entfingerprint.DefaultID = entfingerprintDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescPublicID is the schema descriptor for public_id field.
	userDescPublicID := userFields[1].Descriptor()
	// user.PublicIDValidator is a validator for the "public_id" field. It is called by the builders before save.
	user.PublicIDValidator = func() func(string) error {
		validators := userDescPublicID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(public_id string) error {
			for _, fn := range fns {
				if err := fn(public_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[2].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescLastSeenAt is the schema descriptor for last_seen_at field.
	userDescLastSeenAt := userFields[3].Descriptor()
	// user.DefaultLastSeenAt holds the default value on creation for the last_seen_at field.
	user.DefaultLastSeenAt = userDescLastSeenAt.Default.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
