// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// PathEvent is the predicate function for pathevent builders.
type PathEvent func(*sql.Selector)

// ProfileSnapshot is the predicate function for profilesnapshot builders.
type ProfileSnapshot func(*sql.Selector)

// RiskEvent is the predicate function for riskevent builders.
type RiskEvent func(*sql.Selector)
