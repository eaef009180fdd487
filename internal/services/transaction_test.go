package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"equipment-system/pkg/constants"
)

func TestClassifyCondition(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"excellent", "Excellent condition", constants.ReleaseConditionBrandNew},
		{"brand new", "brand new, still in box", constants.ReleaseConditionBrandNew},
		{"perfect", "PERFECT", constants.ReleaseConditionBrandNew},
		{"damaged", "slightly damaged on the corner", constants.ReleaseConditionDamaged},
		{"broken", "Broken screen", constants.ReleaseConditionDamaged},
		{"defective", "defective battery", constants.ReleaseConditionDamaged},
		{"plain good", "good", constants.ReleaseConditionGood},
		{"unknown text", "совершенно обычное состояние", constants.ReleaseConditionGood},
		{"empty", "", constants.ReleaseConditionGood},
		{"mixed case", "ExCeLlEnT", constants.ReleaseConditionBrandNew},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ClassifyCondition(tc.input))
		})
	}
}

func TestParseDateField(t *testing.T) {
	t.Run("nil дает невалидный null.Time", func(t *testing.T) {
		res, err := parseDateField(nil)
		assert.NoError(t, err)
		assert.False(t, res.Valid)
	})

	t.Run("пустая строка дает невалидный null.Time", func(t *testing.T) {
		empty := ""
		res, err := parseDateField(&empty)
		assert.NoError(t, err)
		assert.False(t, res.Valid)
	})

	t.Run("корректная дата разбирается", func(t *testing.T) {
		val := "2026-03-15"
		res, err := parseDateField(&val)
		assert.NoError(t, err)
		assert.True(t, res.Valid)
		assert.Equal(t, 2026, res.Time.Year())
		assert.Equal(t, 15, res.Time.Day())
	})

	t.Run("мусор дает ошибку", func(t *testing.T) {
		val := "15.03.2026"
		_, err := parseDateField(&val)
		assert.Error(t, err)
	})
}
