package domain

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// CoalesceDifficulty returns d, or medium when d is empty.
func CoalesceDifficulty(d Difficulty) Difficulty {
	return Difficulty(CoalesceStr(string(d), string(DifficultyMedium)))
}

// CoalesceSource returns s, or manual when s is empty.
func CoalesceSource(s TaskSource) TaskSource {
	return TaskSource(CoalesceStr(string(s), string(SourceManual)))
}
