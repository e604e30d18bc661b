package repository

import (
	"context"
	"strings"
	"unicode"

	"quarterfetch/internal/domain"
)

//go:generate mockgen -source=statement.repository.go -destination=mocks/mock_statement.repository.go

// StatementRepository supplies a quarterly income statement for a
// symbol. A nil or empty statement with a nil error means the source
// has nothing for that symbol.
type StatementRepository interface {
	Name() string
	GetQuarterly(ctx context.Context, symbol string) (*domain.Statement, error)
}

// humanizeLabel turns provider identifiers like "DilutedEPS" into
// line-item labels like "Diluted EPS".
func humanizeLabel(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextIsLower) {
				b.WriteRune(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
