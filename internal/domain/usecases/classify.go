// Package usecases contains application business rules.
// Usecases orchestrate entities and depend on port interfaces only.
package usecases

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/finquery/finquery-go/internal/domain/entities"
	"github.com/finquery/finquery-go/internal/domain/ports"
)

// candidateLabels are the zero-shot candidates, in the order the original
// model was prompted with.
var candidateLabels = []string{"crypto", "stock", "weather"}

// cryptoVocabulary forces the crypto label when any term appears in the
// query. The generic classifier confuses crypto assets with equities; this
// keeps the correction auditable.
var cryptoVocabulary = map[string]struct{}{
	"crypto": {}, "cryptocurrency": {}, "cryptocurrencies": {},
	"coin": {}, "coins": {}, "token": {}, "tokens": {},
	"blockchain": {}, "defi": {}, "stablecoin": {}, "satoshi": {},
	"btc": {}, "bitcoin": {},
	"eth": {}, "ethereum": {},
	"sol": {}, "solana": {},
	"xrp": {}, "ripple": {},
	"ada": {}, "cardano": {},
	"doge": {}, "dogecoin": {},
	"bnb": {},
	"ltc": {}, "litecoin": {},
	"dot": {}, "polkadot": {},
	"usdt": {}, "tether": {},
	"usdc": {},
}

// ClassifyUseCase maps a query to exactly one category.
type ClassifyUseCase struct {
	classifier ports.Classifier
	log        *zap.Logger
}

// NewClassifyUseCase creates a ClassifyUseCase with injected dependencies.
func NewClassifyUseCase(classifier ports.Classifier, log *zap.Logger) *ClassifyUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ClassifyUseCase{classifier: classifier, log: log}
}

// Classify returns the top-ranked label, then applies the crypto keyword
// override. A label outside the candidate set is a capability violation and
// surfaces as an error, never as a user-facing branch.
func (uc *ClassifyUseCase) Classify(ctx context.Context, query string) (entities.Category, error) {
	ranked, err := uc.classifier.Classify(ctx, query, candidateLabels)
	if err != nil {
		return "", fmt.Errorf("classifying query: %w", err)
	}
	if len(ranked) == 0 {
		return "", fmt.Errorf("classifier returned no labels")
	}

	category := entities.Category(ranked[0].Label)
	if !category.Valid() {
		return "", fmt.Errorf("classifier returned unknown label %q", ranked[0].Label)
	}

	if forced := ApplyCryptoOverride(query, category); forced != category {
		uc.log.Debug("crypto override applied",
			zap.String("classified", string(category)),
			zap.Float64("score", ranked[0].Score))
		category = forced
	}

	return category, nil
}

// ApplyCryptoOverride forces the crypto category when the query contains a
// crypto-vocabulary term. Idempotent: applying it twice yields the same label.
func ApplyCryptoOverride(query string, category entities.Category) entities.Category {
	if containsCryptoTerm(query) {
		return entities.CategoryCrypto
	}
	return category
}

func containsCryptoTerm(query string) bool {
	tokens := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, tok := range tokens {
		if _, ok := cryptoVocabulary[tok]; ok {
			return true
		}
	}
	return false
}
