// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// PathEventsColumns holds the columns for the "path_events" table.
	PathEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "data", Type: field.TypeJSON},
	}
	// PathEventsTable holds the schema information for the "path_events" table.
	PathEventsTable = &schema.Table{
		Name:       "path_events",
		Columns:    PathEventsColumns,
		PrimaryKey: []*schema.Column{PathEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pathevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PathEventsColumns[1]},
			},
			{
				Name:    "pathevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PathEventsColumns[2]},
			},
			{
				Name:    "pathevent_learner_id_subject",
				Unique:  false,
				Columns: []*schema.Column{PathEventsColumns[3], PathEventsColumns[4]},
			},
		},
	}
	// ProfileSnapshotsColumns holds the columns for the "profile_snapshots" table.
	ProfileSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// ProfileSnapshotsTable holds the schema information for the "profile_snapshots" table.
	ProfileSnapshotsTable = &schema.Table{
		Name:       "profile_snapshots",
		Columns:    ProfileSnapshotsColumns,
		PrimaryKey: []*schema.Column{ProfileSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profilesnapshot_learner_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ProfileSnapshotsColumns[1], ProfileSnapshotsColumns[2]},
			},
		},
	}
	// RiskEventsColumns holds the columns for the "risk_events" table.
	RiskEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "level", Type: field.TypeString},
		{Name: "factors", Type: field.TypeJSON},
		{Name: "data", Type: field.TypeJSON},
	}
	// RiskEventsTable holds the schema information for the "risk_events" table.
	RiskEventsTable = &schema.Table{
		Name:       "risk_events",
		Columns:    RiskEventsColumns,
		PrimaryKey: []*schema.Column{RiskEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "riskevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RiskEventsColumns[1]},
			},
			{
				Name:    "riskevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RiskEventsColumns[2]},
			},
			{
				Name:    "riskevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{RiskEventsColumns[3]},
			},
			{
				Name:    "riskevent_level",
				Unique:  false,
				Columns: []*schema.Column{RiskEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PathEventsTable,
		ProfileSnapshotsTable,
		RiskEventsTable,
	}
)

func init() {
}
