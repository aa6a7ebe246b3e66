package knowledge

import (
	"context"
	"fmt"

	"medequip-support-be/internal/model"
	"medequip-support-be/internal/repository/contract"
	"medequip-support-be/pkg/embedding"
	"medequip-support-be/pkg/utils"

	"github.com/pgvector/pgvector-go"
)

const (
	chunkSize    = 500
	chunkOverlap = 50
)

// Document is one knowledge-base entry before chunking and embedding.
type Document struct {
	Title   string
	Content string
}

// CoreDocuments are the baseline MedEquip knowledge-base entries covering
// policies, compliance certificates, manuals and contact information.
var CoreDocuments = []Document{
	{
		Title:   "Returns & Refunds Policy",
		Content: "MedEquip offers a 30-day return policy on most equipment. Returns require an RMA number and original packaging.",
	},
	{
		Title:   "Warranty Policy",
		Content: "Standard warranty coverage is 12 months from installation date, covering defects in materials and workmanship.",
	},
	{
		Title:   "AMC Tiers",
		Content: "MedEquip offers Basic, Standard, and Premium Annual Maintenance Contracts with varying response times and coverage.",
	},
	{
		Title:   "Installation Requirements",
		Content: "Site preparation guidelines include power, grounding, room dimensions, and HVAC requirements for imaging equipment.",
	},
	{
		Title:   "ISO 13485 Certificate",
		Content: "MedEquip Solutions is certified to ISO 13485 for medical device quality management systems.",
	},
	{
		Title:   "FDA 510(k) Summary DL-4000",
		Content: "DiagnosticLab DL-4000 has FDA 510(k) clearance for diagnostic imaging applications.",
	},
	{
		Title:   "CE Declaration SR-2000",
		Content: "Surgical Robot SR-2000 bears the CE mark and conforms to applicable EU directives.",
	},
	{
		Title:   "Patient Monitor PM-800 Manual",
		Content: "PM-800 operator manual including alarm limits, parameter descriptions, and safety warnings.",
	},
	{
		Title:   "Contact Information",
		Content: "MedEquip global support: North America +1-800-555-0100, EMEA +44-20-5550-1000, APAC +65-6555-0100. Support hours 24/7 for critical issues.",
	},
	{
		Title:   "CT Scanner CT-4000 Specs",
		Content: "CT-4000 specifications: 128-slice detector, 0.35s rotation time, 78cm gantry aperture.",
	},
}

// Seeder chunks, embeds and persists knowledge-base documents.
type Seeder struct {
	provider  embedding.EmbeddingProvider
	knowledge contract.KnowledgeRepository
}

func NewSeeder(provider embedding.EmbeddingProvider, knowledge contract.KnowledgeRepository) *Seeder {
	return &Seeder{
		provider:  provider,
		knowledge: knowledge,
	}
}

// AddDocument replaces any previously stored chunks for the document's title
// with freshly embedded ones.
func (s *Seeder) AddDocument(ctx context.Context, doc Document) error {
	if err := s.knowledge.DeleteByTitle(ctx, doc.Title); err != nil {
		return fmt.Errorf("clearing existing chunks for %q: %w", doc.Title, err)
	}

	chunks := utils.SplitText(doc.Content, chunkSize, chunkOverlap)
	for i, chunk := range chunks {
		vector, err := s.provider.Generate(ctx, chunk, embedding.TaskDocument)
		if err != nil {
			return fmt.Errorf("embedding chunk %d of %q: %w", i, doc.Title, err)
		}

		entry := &model.KnowledgeEmbedding{
			Title:          doc.Title,
			Document:       chunk,
			EmbeddingValue: pgvector.NewVector(vector),
			ChunkIndex:     i,
		}
		if err := s.knowledge.Create(ctx, entry); err != nil {
			return fmt.Errorf("storing chunk %d of %q: %w", i, doc.Title, err)
		}
	}
	return nil
}

// SeedCore loads the baseline documents. Idempotent: existing chunks per
// title are replaced, not duplicated.
func (s *Seeder) SeedCore(ctx context.Context) error {
	for _, doc := range CoreDocuments {
		if err := s.AddDocument(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}
