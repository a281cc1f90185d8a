// Package export turns rendered resume output into downloadable artifacts.
package export

import (
	"fmt"
	"strings"
)

// Artifact is a downloadable file produced from a generation result
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

const textContentType = "text/plain; charset=utf-8"

// ResumeArtifact joins rendered resume lines into a plain-text file. The line
// slice is written verbatim, one line per entry, with a trailing newline.
func ResumeArtifact(lines []string, companyName string) Artifact {
	return Artifact{
		Filename:    artifactFilename("resume", companyName),
		ContentType: textContentType,
		Data:        []byte(strings.Join(lines, "\n") + "\n"),
	}
}

// CoverLetterArtifact wraps generated cover letter text as a plain-text file
func CoverLetterArtifact(text, companyName string) Artifact {
	body := strings.TrimRight(text, "\n") + "\n"
	return Artifact{
		Filename:    artifactFilename("cover_letter", companyName),
		ContentType: textContentType,
		Data:        []byte(body),
	}
}

// artifactFilename builds "resume_acme_corp.txt" style names. The company part
// is dropped when it sanitizes to nothing.
func artifactFilename(base, companyName string) string {
	slug := sanitizeFilePart(companyName)
	if slug == "" {
		return base + ".txt"
	}
	return fmt.Sprintf("%s_%s.txt", base, slug)
}

func sanitizeFilePart(s string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimRight(b.String(), "_")
}
