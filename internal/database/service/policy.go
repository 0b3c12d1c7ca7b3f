package service

import (
	"context"
	"strings"

	"github.com/giftcraft/authentiq/internal/database/models"
	"github.com/giftcraft/authentiq/internal/database/types/enum"
	"github.com/giftcraft/authentiq/pkg/utils"
)

// ReviewPolicy decides whether a freshly ingested flag needs a human in the
// loop. The ingestor never hard-codes this.
type ReviewPolicy interface {
	RequiresReview(ctx context.Context, risk enum.RiskLevel, score float64, matchCount int) (bool, error)
}

// ThresholdPolicy applies the operator-edited thresholds from the settings
// table. Thresholds are loaded fresh on every call so edits apply to the very
// next ingestion.
type ThresholdPolicy struct {
	settings *models.SettingModel
}

// NewThresholdPolicy creates a ThresholdPolicy backed by stored settings.
func NewThresholdPolicy(settings *models.SettingModel) *ThresholdPolicy {
	return &ThresholdPolicy{settings: settings}
}

// RequiresReview loads current thresholds and applies them.
func (p *ThresholdPolicy) RequiresReview(
	ctx context.Context, risk enum.RiskLevel, score float64, matchCount int,
) (bool, error) {
	thresholds, err := p.settings.GetReviewThresholds(ctx)
	if err != nil {
		return false, err
	}

	return thresholds.RequiresReview(risk, score, matchCount), nil
}

// CategoryResolver maps a flag without an explicit category onto one.
// Swappable so the keyword heuristics can be replaced without touching the
// ingestor.
type CategoryResolver interface {
	Resolve(ctx context.Context, title string) string
}

// FallbackCategory is used when no keyword matches.
const FallbackCategory = "uncategorized"

// CategoryKeyword maps one title keyword to a category. Earlier entries win.
type CategoryKeyword struct {
	Keyword  string
	Category string
}

// defaultCategoryKeywords is the stock keyword mapping for the crafts catalog.
var defaultCategoryKeywords = []CategoryKeyword{
	{"embroidery", "embroidery"},
	{"stitch", "embroidery"},
	{"knit", "knitting"},
	{"crochet", "crochet"},
	{"pottery", "ceramics"},
	{"ceramic", "ceramics"},
	{"woodwork", "woodworking"},
	{"carving", "woodworking"},
	{"watercolor", "painting"},
	{"paint", "painting"},
	{"leather", "leatherwork"},
	{"jewelry", "jewelry"},
	{"bead", "jewelry"},
}

// KeywordCategoryResolver resolves categories by substring keyword matching
// on the submission title.
type KeywordCategoryResolver struct {
	keywords []CategoryKeyword
}

// NewKeywordCategoryResolver creates a resolver. A nil mapping uses the stock
// keyword table.
func NewKeywordCategoryResolver(keywords []CategoryKeyword) *KeywordCategoryResolver {
	if keywords == nil {
		keywords = defaultCategoryKeywords
	}

	return &KeywordCategoryResolver{keywords: keywords}
}

// Resolve returns the first matching category or the fallback.
func (r *KeywordCategoryResolver) Resolve(_ context.Context, title string) string {
	lowered := strings.ToLower(utils.CompressAllWhitespace(title))
	for _, entry := range r.keywords {
		if strings.Contains(lowered, entry.Keyword) {
			return entry.Category
		}
	}

	return FallbackCategory
}
