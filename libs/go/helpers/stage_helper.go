package helpers

import (
	"fmt"
	"strings"

	"github.com/amped-finance/amped-api/libs/go/constants"
)

// Deployment stages. Only prod turns on JSON logs, secret lookups and the
// production validation in config.
const (
	StageProd  = constants.ProdEnvironment
	StageDev   = "dev"
	StageLocal = "local"
)

var stageAliases = map[string]string{
	"":            StageLocal,
	"production":  StageProd,
	"development": StageDev,
}

// ParseStage normalizes a STAGE value. Case and surrounding space are
// ignored, the long names map to their short form and empty means local.
func ParseStage(raw string) (string, error) {
	stage := strings.ToLower(strings.TrimSpace(raw))
	if alias, ok := stageAliases[stage]; ok {
		stage = alias
	}
	switch stage {
	case StageProd, StageDev, StageLocal:
		return stage, nil
	}
	return "", fmt.Errorf("invalid STAGE '%s': must be one of %s, %s, %s", raw, StageProd, StageDev, StageLocal)
}
