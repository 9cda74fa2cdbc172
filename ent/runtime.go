// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mach-hub-g1/edugamers-engine/ent/pathevent"
	"github.com/mach-hub-g1/edugamers-engine/ent/profilesnapshot"
	"github.com/mach-hub-g1/edugamers-engine/ent/riskevent"
	"github.com/mach-hub-g1/edugamers-engine/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	patheventMixin := schema.PathEvent{}.Mixin()
	patheventMixinFields0 := patheventMixin[0].Fields()
	_ = patheventMixinFields0
	patheventFields := schema.PathEvent{}.Fields()
	_ = patheventFields
	// patheventDescTimestamp is the schema descriptor for timestamp field.
	patheventDescTimestamp := patheventMixinFields0[1].Descriptor()
	// pathevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	pathevent.DefaultTimestamp = patheventDescTimestamp.Default.(func() time.Time)
	// patheventDescLearnerID is the schema descriptor for learner_id field.
	patheventDescLearnerID := patheventFields[0].Descriptor()
	// pathevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	pathevent.LearnerIDValidator = patheventDescLearnerID.Validators[0].(func(string) error)
	// patheventDescSubject is the schema descriptor for subject field.
	patheventDescSubject := patheventFields[1].Descriptor()
	// pathevent.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	pathevent.SubjectValidator = patheventDescSubject.Validators[0].(func(string) error)
	profilesnapshotFields := schema.ProfileSnapshot{}.Fields()
	_ = profilesnapshotFields
	// profilesnapshotDescLearnerID is the schema descriptor for learner_id field.
	profilesnapshotDescLearnerID := profilesnapshotFields[0].Descriptor()
	// profilesnapshot.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	profilesnapshot.LearnerIDValidator = profilesnapshotDescLearnerID.Validators[0].(func(string) error)
	// profilesnapshotDescTimestamp is the schema descriptor for timestamp field.
	profilesnapshotDescTimestamp := profilesnapshotFields[1].Descriptor()
	// profilesnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	profilesnapshot.DefaultTimestamp = profilesnapshotDescTimestamp.Default.(func() time.Time)
	riskeventMixin := schema.RiskEvent{}.Mixin()
	riskeventMixinFields0 := riskeventMixin[0].Fields()
	_ = riskeventMixinFields0
	riskeventFields := schema.RiskEvent{}.Fields()
	_ = riskeventFields
	// riskeventDescTimestamp is the schema descriptor for timestamp field.
	riskeventDescTimestamp := riskeventMixinFields0[1].Descriptor()
	// riskevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	riskevent.DefaultTimestamp = riskeventDescTimestamp.Default.(func() time.Time)
	// riskeventDescLearnerID is the schema descriptor for learner_id field.
	riskeventDescLearnerID := riskeventFields[0].Descriptor()
	// riskevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	riskevent.LearnerIDValidator = riskeventDescLearnerID.Validators[0].(func(string) error)
	// riskeventDescLevel is the schema descriptor for level field.
	riskeventDescLevel := riskeventFields[1].Descriptor()
	// riskevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	riskevent.LevelValidator = riskeventDescLevel.Validators[0].(func(string) error)
}
