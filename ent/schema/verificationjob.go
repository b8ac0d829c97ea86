package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/trustlane/vetd/pkg/models"
)

// VerificationJob holds the schema definition for the durable job queue.
// Workers claim pending rows oldest-first with FOR UPDATE SKIP LOCKED;
// redelivery happens by resetting a row back to pending.
type VerificationJob struct {
	ent.Schema
}

// Fields of the VerificationJob.
func (VerificationJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("company_id").
			Immutable(),
		field.Enum("retry_mode").
			Values(models.RetryModeValues()...).
			Default(string(models.RetryFull)),
		field.JSON("failed_checks", []string{}).
			Optional().
			Comment("Stage tags to re-run when retry_mode is failed_only"),
		field.String("correlation_id"),
		field.Time("enqueued_at").
			Default(time.Now).
			Comment("The job-message timestamp"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed").
			Default("pending"),
		field.Int("attempts").
			Default(0),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Text("error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the VerificationJob.
func (VerificationJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("jobs").
			Field("company_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the VerificationJob.
func (VerificationJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
	}
}
