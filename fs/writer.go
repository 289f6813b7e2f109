// Package fs provides file-based storage for parsed vacancies.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/jobparse"
	"github.com/samber/lo"
)

// URLToPath converts a posting URL to a relative file path rooted at the host.
// Example: https://unjobs.org/vacancies/1738685020313 → unjobs.org/vacancies/1738685020313.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", jobparse.WrapError(jobparse.EINVALID, err, "invalid URL")
	}
	if u.Host == "" {
		return "", jobparse.Errorf(jobparse.EINVALID, "URL has no host: %q", rawURL)
	}

	if u.Host == ".." || lo.Contains(strings.Split(u.Path, "/"), "..") {
		return "", jobparse.Errorf(jobparse.EINVALID, "URL path escapes host directory: %q", rawURL)
	}

	path := strings.TrimPrefix(u.Path, "/")

	switch {
	case path == "":
		path = "index.md"
	case strings.HasSuffix(path, "/"):
		path += "index.md"
	default:
		path += ".md"
	}

	return u.Host + "/" + path, nil
}

// FormatVacancy formats a vacancy with YAML frontmatter. Values are written
// as double-quoted scalars so titles such as "UNICEF: Data Analyst" stay valid.
func FormatVacancy(v *jobparse.Vacancy, parsedAt time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: " + strconv.Quote(v.URL) + "\n")
	b.WriteString("title: " + strconv.Quote(v.Title) + "\n")
	if v.Deadline != "" {
		b.WriteString("deadline: " + strconv.Quote(v.Deadline) + "\n")
	}
	b.WriteString("parsed: " + parsedAt.Format("2006-01-02") + "\n")
	b.WriteString("---\n\n")
	b.WriteString(jobparse.FormatVacancy(v))
	b.WriteString("\n")
	return b.String()
}

// Ensure Writer implements jobparse.VacancyWriter at compile time.
var _ jobparse.VacancyWriter = (*Writer)(nil)

// Writer writes vacancies as markdown files to a directory.
type Writer struct {
	baseDir string

	// Now returns the parse date recorded in the frontmatter.
	Now func() time.Time
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir, Now: time.Now}
}

// WriteVacancy writes a vacancy to disk and returns the file path.
func (w *Writer) WriteVacancy(ctx context.Context, v *jobparse.Vacancy) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if v == nil || v.URL == "" {
		return "", jobparse.Errorf(jobparse.EINVALID, "vacancy URL required")
	}

	relPath, err := URLToPath(v.URL)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(relPath))
	if rel, err := filepath.Rel(w.baseDir, fullPath); err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", jobparse.Errorf(jobparse.EINVALID, "vacancy path outside output directory: %q", relPath)
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(fullPath, []byte(FormatVacancy(v, w.Now())), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
