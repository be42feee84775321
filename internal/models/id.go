package models

import "github.com/google/uuid"

// Identifier prefixes. Every row id is an opaque string built from the
// entity's prefix and a random suffix, so ids are self-describing in logs.
const (
	PrefixTeacher      = "teach"
	PrefixStudent      = "stud"
	PrefixSubject      = "subj"
	PrefixChapter      = "chap"
	PrefixQuestion     = "ques"
	PrefixOption       = "opt"
	PrefixTest         = "test"
	PrefixTestQuestion = "testq"
	PrefixAttempt      = "att"
	PrefixAnswer       = "ans"
)

// NewID generates a unique identifier carrying the given type prefix.
func NewID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
