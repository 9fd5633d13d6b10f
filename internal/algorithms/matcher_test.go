package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("  ,.!?  "))
}

func TestTokenize_Basic(t *testing.T) {
	tokens := Tokenize("Hello, World! 123")

	assert.Len(t, tokens, 3)
	assert.Contains(t, tokens, "hello")
	assert.Contains(t, tokens, "world")
	assert.Contains(t, tokens, "123")
}

func TestTokenize_SeparatorsAndDuplicates(t *testing.T) {
	// Punctuation and unicode symbols act purely as separators,
	// duplicates collapse into one token.
	tokens := Tokenize("go,go;GO — go… java/python\tjava")

	assert.Len(t, tokens, 3)
	assert.Contains(t, tokens, "go")
	assert.Contains(t, tokens, "java")
	assert.Contains(t, tokens, "python")
}

func TestTokenize_MixedAlnumRuns(t *testing.T) {
	tokens := Tokenize("C++ dev with web3 and k8s")

	assert.Contains(t, tokens, "c")
	assert.Contains(t, tokens, "web3")
	assert.Contains(t, tokens, "k8s")
	assert.NotContains(t, tokens, "c++")
}

func TestScore_EmptyInputs(t *testing.T) {
	assert.Equal(t, 0.0, ScoreResumeAgainstJob("", "java python"))
	assert.Equal(t, 0.0, ScoreResumeAgainstJob("java python", ""))
	assert.Equal(t, 0.0, ScoreResumeAgainstJob("", ""))
	assert.Equal(t, 0.0, ScoreResumeAgainstJob("...", "java"))
}

func TestScore_PartialCoverage(t *testing.T) {
	// 2 of 3 job tokens covered -> round(2/3*100, 2)
	assert.Equal(t, 66.67, ScoreResumeAgainstJob("java python", "java python sql"))
}

func TestScore_FullCoverage(t *testing.T) {
	assert.Equal(t, 100.0, ScoreResumeAgainstJob("java", "java"))
	assert.Equal(t, 100.0, ScoreResumeAgainstJob("java sql python extra tokens", "java python sql"))
}

func TestScore_CaseInsensitive(t *testing.T) {
	assert.Equal(t,
		ScoreResumeAgainstJob("java", "java"),
		ScoreResumeAgainstJob("Java", "JAVA"),
	)
}

func TestScore_Deterministic(t *testing.T) {
	resume := "senior golang engineer with postgres and kafka experience"
	job := "golang engineer, postgres, docker"

	first := ScoreResumeAgainstJob(resume, job)
	second := ScoreResumeAgainstJob(resume, job)

	assert.Equal(t, first, second)
}

func TestScore_Monotonicity(t *testing.T) {
	job := "golang postgres docker kubernetes"
	base := ScoreResumeAgainstJob("golang postgres", job)

	// Adding a token present in the job never decreases the score.
	withJobToken := ScoreResumeAgainstJob("golang postgres docker", job)
	assert.GreaterOrEqual(t, withJobToken, base)

	// Adding unrelated tokens never changes the score.
	withNoise := ScoreResumeAgainstJob("golang postgres gardening chess", job)
	assert.Equal(t, base, withNoise)
}

func TestScore_AsymmetricDenominator(t *testing.T) {
	// The score answers "what fraction of the job's vocabulary does the
	// resume cover"; swapping arguments changes the denominator.
	a := ScoreResumeAgainstJob("java python sql", "java")
	b := ScoreResumeAgainstJob("java", "java python sql")

	assert.Equal(t, 100.0, a)
	assert.Equal(t, 33.33, b)
}
