package personality

import (
	"testing"

	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraits_ClampsLikeClampedInput(t *testing.T) {
	for f := -20; f <= 20; f++ {
		assert.Equal(t, Traits(domain.ClampLevel(f)), Traits(f), "f=%d", f)
		assert.Equal(t, Phrases(domain.ClampLevel(f)), Phrases(f), "f=%d", f)
	}
}

func TestTraits_LevelsStayInRange(t *testing.T) {
	for f := 0; f <= 9; f++ {
		tr := Traits(f)
		require.NotEmpty(t, tr.Name)
		assert.GreaterOrEqual(t, tr.EncouragementLevel, 0)
		assert.LessOrEqual(t, tr.EncouragementLevel, 10)
		assert.GreaterOrEqual(t, tr.StrictnessLevel, 0)
		assert.LessOrEqual(t, tr.StrictnessLevel, 10)
		assert.GreaterOrEqual(t, tr.NurturingLevel, 0)
		assert.LessOrEqual(t, tr.NurturingLevel, 10)
	}
}

func TestTraits_StrictnessRisesWithFierceness(t *testing.T) {
	for f := 1; f <= 9; f++ {
		assert.GreaterOrEqual(t, Traits(f).StrictnessLevel, Traits(f-1).StrictnessLevel, "f=%d", f)
		assert.LessOrEqual(t, Traits(f).NurturingLevel, Traits(f-1).NurturingLevel, "f=%d", f)
	}
}

func TestPhrases_EveryCategoryCovered(t *testing.T) {
	require.NoError(t, Validate())
	for f := 0; f <= 9; f++ {
		bank := Phrases(f)
		for _, c := range Categories {
			assert.NotEmpty(t, bank.Get(c), "level %d category %s", f, c)
		}
	}
}

func TestPhrases_UnknownCategory(t *testing.T) {
	assert.Nil(t, Phrases(3).Get(PhraseCategory("limericks")))
}

func TestStyleName(t *testing.T) {
	assert.Equal(t, "Warm", StyleName(-3))
	assert.Equal(t, "Sarcastic", StyleName(4))
	assert.Equal(t, "Robot", StyleName(42))
}
