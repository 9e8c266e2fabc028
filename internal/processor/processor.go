// Package processor reads the files a caller names, drops the ones matched by
// ignore patterns and counts the rest. It never walks directories: the list
// of paths is the whole input.
package processor

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	log "github.com/sirupsen/logrus"

	"github.com/umwelt-studio/countstat/internal/counter"
	"github.com/umwelt-studio/countstat/internal/report"
)

// IgnoreFileName is the project-level ignore file, preferred over .gitignore.
const IgnoreFileName = ".countstatignore"

// ErrOutsideRoot is returned for paths that resolve outside the root directory.
var ErrOutsideRoot = errors.New("path is outside the root directory")

// extraIgnores defines patterns for files that never hold countable prose
const extraIgnores = `
# === Tool and VCS files
.countstat
.countstatignore
.git*

# === Lock files and logs
*.lock
*-lock.json
*-lock.yaml
go.sum
*.log

# === Binary files
# Image files
*.png
*.jpg
*.jpeg
*.gif
*.bmp
*.ico
*.webp

# Document files
*.pdf
*.doc
*.docx
*.xls
*.xlsx
*.ppt
*.pptx

# Archive files
*.zip
*.tar
*.gz
*.7z
*.rar

# Executable and library files
*.exe
*.dll
*.so
*.dylib

# Media files
*.mp3
*.mp4
*.avi
*.mov
*.wav

# Font files
*.ttf
*.otf
*.woff
*.woff2

# Generic binary files
*.bin
`

// Processor counts words and characters in a list of files below rootDir.
type Processor struct {
	rootDir    string
	ignoreFile string
	encoding   string
	counter    *counter.Counter
	matcher    gitignore.Matcher
}

// New creates a Processor. When ignoreFile is empty, .countstatignore is used
// if present in rootDir, then .gitignore. The built-in patterns apply unless
// a custom ignore file is given. A nil counter means the default one.
func New(rootDir, ignoreFile string, c *counter.Counter, encoding string) (*Processor, error) {
	if c == nil {
		c = counter.New()
	}

	p := &Processor{
		rootDir:    filepath.Clean(rootDir),
		ignoreFile: ignoreFile,
		encoding:   encoding,
		counter:    c,
	}

	var patterns []gitignore.Pattern

	addExtraIgnores := ignoreFile == "" ||
		filepath.Base(ignoreFile) == ".gitignore" ||
		filepath.Base(ignoreFile) == IgnoreFileName

	if addExtraIgnores {
		patterns = append(patterns, parsePatterns(extraIgnores)...)
	}

	if ignoreFile == "" {
		for _, name := range []string{IgnoreFileName, ".gitignore"} {
			candidate := filepath.Join(p.rootDir, name)
			if _, err := os.Stat(candidate); err == nil {
				p.ignoreFile = candidate
				break
			}
		}
	}

	if p.ignoreFile != "" {
		data, err := os.ReadFile(p.ignoreFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read ignore file: %w", err)
		}
		patterns = append(patterns, parsePatterns(string(data))...)
		log.Debugf("processor: using ignore file %s", p.ignoreFile)
	}

	p.matcher = gitignore.NewMatcher(patterns)
	return p, nil
}

// IgnoreFile returns the ignore file in effect, or "" when there is none.
func (p *Processor) IgnoreFile() string {
	return p.ignoreFile
}

// Process counts every path that is not ignored and returns the results in
// input order. Paths may be absolute or relative to the root directory; the
// returned paths are always slash-separated and relative to it.
func (p *Processor) Process(paths []string) ([]report.File, error) {
	files := make([]report.File, 0, len(paths))

	for _, path := range paths {
		relPath, err := p.relative(path)
		if err != nil {
			return nil, err
		}

		if p.Ignored(relPath) {
			log.Debugf("processor: ignoring %s", relPath)
			continue
		}

		content, err := os.ReadFile(filepath.Join(p.rootDir, filepath.FromSlash(relPath)))
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", relPath, err)
		}

		counts, err := p.counter.CountBytes(content, p.encoding)
		if err != nil {
			return nil, fmt.Errorf("failed to count file %s: %w", relPath, err)
		}

		log.Tracef("processor: %s: %s", relPath, counts)
		files = append(files, report.File{Path: relPath, Counts: counts})
	}

	return files, nil
}

// Ignored reports whether the slash-separated relative path matches an
// ignore pattern.
func (p *Processor) Ignored(relPath string) bool {
	return p.matcher.Match(strings.Split(relPath, "/"), false)
}

func (p *Processor) relative(path string) (string, error) {
	relPath := filepath.Clean(path)
	if filepath.IsAbs(path) {
		var err error
		relPath, err = filepath.Rel(p.rootDir, path)
		if err != nil {
			return "", fmt.Errorf("failed to get relative path: %w", err)
		}
	}

	relPath = filepath.ToSlash(relPath)
	if relPath == ".." || strings.HasPrefix(relPath, "../") {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, path)
	}
	return relPath, nil
}

func parsePatterns(content string) []gitignore.Pattern {
	var patterns []gitignore.Pattern

	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}

	return patterns
}
