package algorithms

import (
	"math"
)

// Tokenize splits text into the set of maximal runs of ASCII letters and
// digits, lowercased. Every other character is a separator and is
// discarded. Duplicates collapse; order does not exist.
func Tokenize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})

	start := -1
	for i := 0; i < len(text); i++ {
		if isAlnum(text[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens[lower(text[start:i])] = struct{}{}
			start = -1
		}
	}
	if start >= 0 {
		tokens[lower(text[start:])] = struct{}{}
	}

	return tokens
}

// ScoreResumeAgainstJob computes how much of the job description's
// vocabulary the resume covers, as a percentage rounded to two decimals.
// The denominator is the job token count, not the union: a resume is not
// penalized for extra tokens, only for missing job vocabulary. Returns
// 0.0 when either side tokenizes to nothing.
func ScoreResumeAgainstJob(resumeText, jobDescription string) float64 {
	resumeTokens := Tokenize(resumeText)
	jobTokens := Tokenize(jobDescription)
	if len(resumeTokens) == 0 || len(jobTokens) == 0 {
		return 0.0
	}

	overlap := 0
	for token := range jobTokens {
		if _, ok := resumeTokens[token]; ok {
			overlap++
		}
	}

	score := float64(overlap) / float64(len(jobTokens)) * 100.0
	return math.Round(score*100) / 100
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func lower(s string) string {
	buf := []byte(s)
	changed := false
	for i, b := range buf {
		if b >= 'A' && b <= 'Z' {
			buf[i] = b + ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(buf)
}
