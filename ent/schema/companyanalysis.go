package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/trustlane/vetd/pkg/models"
)

// CompanyAnalysis holds the schema definition for one versioned, immutable
// verification run snapshot. Rows are inserted once and never updated.
type CompanyAnalysis struct {
	ent.Schema
}

// Fields of the CompanyAnalysis.
func (CompanyAnalysis) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("analysis_id").
			Unique().
			Immutable(),
		field.String("company_id").
			Immutable(),
		field.Int("version").
			Min(1).
			Immutable().
			Comment("Monotonic per company, assigned under a row lock"),
		field.String("algorithm_version").
			Immutable(),
		field.JSON("submitted_data", models.SubmittedData{}).
			Immutable().
			Comment("Declared inputs used for this run"),
		field.JSON("discovered_data", models.DiscoveredData{}).
			Immutable().
			Comment("Per-stage probe output keyed by stage data key"),
		field.JSON("signals", []models.Signal{}).
			Immutable(),
		field.Int("risk_score").
			Min(0).
			Max(100).
			Immutable(),
		field.Text("llm_summary").
			Optional().
			Nillable().
			Immutable(),
		field.Text("llm_details").
			Optional().
			Nillable().
			Immutable(),
		field.Bool("is_complete").
			Immutable(),
		field.JSON("failed_checks", []string{}).
			Immutable().
			Comment("Stage tags that failed in this run (sorted)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CompanyAnalysis.
func (CompanyAnalysis) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("analyses").
			Field("company_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CompanyAnalysis.
func (CompanyAnalysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id", "version").
			Unique(),
		index.Fields("company_id", "created_at"),
	}
}
