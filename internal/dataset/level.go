package dataset

import (
	"fmt"
	"path/filepath"

	"github.com/testforge/testforge/internal/models"
)

// Level is the granularity of a metrics file: which dimensions its rows are
// broken down by besides the LLM.
type Level string

const (
	LevelLLM           Level = "llm"
	LevelLLMPrompt     Level = "llm_prompt"
	LevelLLMTest       Level = "llm_test"
	LevelLLMPromptComp Level = "llm_prompt_comp"
	LevelLLMPromptTest Level = "llm_prompt_test"
	LevelFullConfig    Level = "full_config"
)

// Levels lists every granularity, coarsest first.
var Levels = []Level{
	LevelLLM,
	LevelLLMPrompt,
	LevelLLMTest,
	LevelLLMPromptComp,
	LevelLLMPromptTest,
	LevelFullConfig,
}

// ParseLevel validates a level name.
func ParseLevel(s string) (Level, error) {
	for _, l := range Levels {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown level %q", s)
}

// Dimensions returns the optional dimensions every row of this level carries.
func (l Level) Dimensions() []models.Dimension {
	switch l {
	case LevelLLMPrompt:
		return []models.Dimension{models.DimensionPrompt}
	case LevelLLMTest:
		return []models.Dimension{models.DimensionTestType}
	case LevelLLMPromptComp:
		return []models.Dimension{models.DimensionPrompt, models.DimensionComplexity}
	case LevelLLMPromptTest:
		return []models.Dimension{models.DimensionPrompt, models.DimensionTestType}
	case LevelFullConfig:
		return []models.Dimension{models.DimensionPrompt, models.DimensionTestType, models.DimensionComplexity}
	}
	return nil
}

// Family distinguishes the two metric files kept per level.
type Family string

const (
	FamilySet  Family = "set"
	FamilyCase Family = "case"
)

// Families lists both metric families.
var Families = []Family{FamilySet, FamilyCase}

// Path returns the location of the family's file for level under dataDir.
func Path(dataDir string, family Family, level Level) string {
	if family == FamilyCase {
		return filepath.Join(dataDir, "Test case metrics", "tcm_"+string(level)+".csv")
	}
	return filepath.Join(dataDir, "Test set metrics", "tsm_"+string(level)+".csv")
}
