package service

import (
	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/domain/model"
)

// Scorer defines the interface for asset scoring strategies.
type Scorer interface {
	Score(record model.AssetRecord) (ScoreOutput, error)
}
