package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/trustlane/vetd/pkg/models"
)

// Company holds the schema definition for the Company entity.
type Company struct {
	ent.Schema
}

// Fields of the Company.
func (Company) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("company_id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			Comment("Declared company name"),
		field.String("domain").
			NotEmpty().
			Comment("Declared apex domain (lowercased)"),
		field.String("website_url").
			Optional().
			Nillable(),
		field.String("email").
			Optional().
			Nillable(),
		field.String("phone").
			Optional().
			Nillable(),
		field.Enum("status").
			Values(models.CompanyStatusValues()...).
			Default(string(models.CompanyStatusPending)),
		field.Int("risk_score").
			Default(0).
			Min(0).
			Max(100),
		field.Enum("analysis_status").
			Values(models.AnalysisStatusValues()...).
			Default(string(models.AnalysisStatusPending)),
		field.String("current_step").
			Optional().
			Nillable().
			Comment("Last-reached pipeline stage tag"),
		field.Time("last_analyzed_at").
			Optional().
			Nillable().
			Comment("Set on first completed run; declared attributes freeze once set"),
		field.Bool("is_deleted").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Company.
func (Company) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("analyses", CompanyAnalysis.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("jobs", VerificationJob.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Company.
func (Company) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("analysis_status"),
		index.Fields("domain"),

		// Partial index for soft deletes
		index.Fields("is_deleted").
			Annotations(entsql.IndexWhere("is_deleted")),
	}
}
