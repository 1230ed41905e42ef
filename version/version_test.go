package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString_ContainsTagCommitAndBuildTime(t *testing.T) {
	s := String()
	assert.Contains(t, s, "strtab "+Tag)
	assert.Contains(t, s, "commit ")
	assert.Contains(t, s, "built ")
}

func TestString_PrefersLdflagsValues(t *testing.T) {
	origCommit, origTime := GitCommit, BuildTime
	t.Cleanup(func() { GitCommit, BuildTime = origCommit, origTime })

	GitCommit = "abc1234def5678"
	BuildTime = "2026-08-30T00:00:00Z"

	s := String()
	assert.Contains(t, s, "commit abc1234d") // truncated to 8 characters
	assert.Contains(t, s, "built 2026-08-30T00:00:00Z")
}
