package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResumeArtifact_JoinsLines(t *testing.T) {
	a := ResumeArtifact([]string{"Jane Doe", "", "SUMMARY"}, "Acme Corp")

	assert.Equal(t, "resume_acme_corp.txt", a.Filename)
	assert.Equal(t, "text/plain; charset=utf-8", a.ContentType)
	assert.Equal(t, "Jane Doe\n\nSUMMARY\n", string(a.Data))
}

func TestResumeArtifact_NoCompany(t *testing.T) {
	a := ResumeArtifact([]string{"x"}, "")
	assert.Equal(t, "resume.txt", a.Filename)
}

func TestCoverLetterArtifact_NormalizesTrailingNewlines(t *testing.T) {
	a := CoverLetterArtifact("Dear team,\n\nRegards\n\n\n", "Acme")

	assert.Equal(t, "cover_letter_acme.txt", a.Filename)
	assert.Equal(t, "Dear team,\n\nRegards\n", string(a.Data))
}

func TestSanitizeFilePart(t *testing.T) {
	assert.Equal(t, "acme_corp", sanitizeFilePart("  Acme Corp!  "))
	assert.Equal(t, "a_b_c", sanitizeFilePart("A---B   C"))
	assert.Equal(t, "", sanitizeFilePart("!!!"))
}
