// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// FingerprintsColumns holds the columns for the "fingerprints" table.
	FingerprintsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "hash", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "ip", Type: field.TypeString, Nullable: true, Size: 45},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "suspicious", Type: field.TypeBool, Default: false},
		{Name: "suspicion_reasons", Type: field.TypeJSON, Nullable: true},
		{Name: "seen_count", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime},
		{Name: "user_fingerprints", Type: field.TypeUUID},
	}
	// FingerprintsTable holds the schema information for the "fingerprints" table.
	FingerprintsTable = &schema.Table{
		Name:       "fingerprints",
		Columns:    FingerprintsColumns,
		PrimaryKey: []*schema.Column{FingerprintsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "fingerprints_users_fingerprints",
				Columns:    []*schema.Column{FingerprintsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "fingerprint_last_seen_at",
				Unique:  false,
				Columns: []*schema.Column{FingerprintsColumns[9]},
			},
			{
				Name:    "fingerprint_ip_last_seen_at",
				Unique:  false,
				Columns: []*schema.Column{FingerprintsColumns[3], FingerprintsColumns[9]},
			},
			{
				Name:    "fingerprint_user_fingerprints",
				Unique:  false,
				Columns: []*schema.Column{FingerprintsColumns[10]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "public_id", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		FingerprintsTable,
		UsersTable,
	}
)

func init() {
	FingerprintsTable.ForeignKeys[0].RefTable = UsersTable
}
