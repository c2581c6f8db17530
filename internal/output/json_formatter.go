package output

import (
	"github.com/goccy/go-json"
	"github.com/rgehrsitz/ley73/internal/domain"
)

// JSONFormatter emits the analysis as indented JSON
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(analysis *domain.Analysis) ([]byte, error) {
	return json.MarshalIndent(analysis, "", "  ")
}
