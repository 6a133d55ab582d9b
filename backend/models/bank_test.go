package models_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"quizlab/backend/models"
)

func writeBankFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.json")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBank(t *testing.T) {
	path := writeBankFile(t, `{
		"tiers": {
			"easy": [
				{"kind": "single", "prompt": "1+1?", "options": ["2", "3"], "answer": "2", "points": 1},
				{"kind": "text", "prompt": "keyword?", "answer": "const"},
				{"kind": "multi", "prompt": "even?", "options": ["1", "2", "4"], "answers": ["2", "4"], "points": 2},
				{"kind": "match", "prompt": "pair up", "pairs": {"a": "1", "b": "2"}, "points": 2}
			]
		}
	}`)

	bank, err := models.LoadBank(path)
	assert.NoError(t, err)
	assert.True(t, bank.HasTier("easy"))
	assert.Len(t, bank.Tier("easy"), 4)

	// Points default to 1 when the file omits them.
	assert.Equal(t, 1, bank.Tier("easy")[1].Points())
}

func TestLoadBankRejectsUnknownKind(t *testing.T) {
	path := writeBankFile(t, `{
		"tiers": {
			"easy": [{"kind": "essay", "prompt": "write a lot", "points": 5}]
		}
	}`)

	_, err := models.LoadBank(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "essay")
}

func TestLoadBankRejectsEmptyAndMissingFiles(t *testing.T) {
	path := writeBankFile(t, `{"tiers": {}}`)

	_, err := models.LoadBank(path)
	assert.Error(t, err)

	_, err = models.LoadBank(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestDefaultBank(t *testing.T) {
	bank := models.DefaultBank()

	counts := bank.Tiers()
	assert.Equal(t, map[string]int{"easy": 10, "medium": 10, "hard": 10}, counts)
	assert.True(t, bank.HasTier(models.DefaultTier))

	pointsPerTier := map[string]int{"easy": 1, "medium": 2, "hard": 3}
	for tier, points := range pointsPerTier {
		for _, q := range bank.Tier(tier) {
			assert.Equal(t, points, q.Points(), "tier %s", tier)
		}
	}
}
