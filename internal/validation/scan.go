package validation

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"go.uber.org/zap"
)

// ErrRootNotFound is matched by errors.Is for every RootNotFoundError.
var ErrRootNotFound = errors.New("root not found")

// RootNotFoundError reports that the configuration root is missing or is not
// a directory. It is the only fatal lint condition.
type RootNotFoundError struct {
	Path string
	Err  error // underlying stat error, nil when the path is a regular file
}

func (e *RootNotFoundError) Error() string {
	return fmt.Sprintf("%s is not a directory", e.Path)
}

// Unwrap returns the underlying stat error.
func (e *RootNotFoundError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrRootNotFound) succeed.
func (e *RootNotFoundError) Is(target error) bool { return target == ErrRootNotFound }

// Entry is one discovered candidate, in discovery order.
type Entry struct {
	Path    string // root joined with RelPath, used for display
	RelPath string // slash-separated path relative to the root
	Layer   Layer

	// Missing marks an expected file that is absent: the root CLAUDE.md or a
	// skill directory's SKILL.md. Only strict mode reports these.
	Missing bool
	// HasReferences is set on skill entries whose directory has references/.
	HasReferences bool
	// Err is set when the directory holding this entry could not be listed.
	Err error
}

// Scanner enumerates candidate files beneath a configuration root.
type Scanner struct {
	root    string
	logger  *zap.Logger
	entries []Entry
}

// NewScanner creates a scanner for root. A nil logger disables tracing.
func NewScanner(root string, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{root: root, logger: logger}
}

// Scan walks the root and returns candidates ordered alphabetically within
// each directory. Only agents/, references/, skills/*/ and
// skills/*/references/ are descended into.
func (s *Scanner) Scan() ([]Entry, error) {
	info, err := os.Stat(s.root)
	if err != nil {
		return nil, &RootNotFoundError{Path: s.root, Err: err}
	}
	if !info.IsDir() {
		return nil, &RootNotFoundError{Path: s.root}
	}

	dirEntries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.root, err)
	}

	s.entries = nil
	sawRootFile := false
	for _, de := range dirEntries {
		name := de.Name()
		isDir := s.isDir(name, de)
		switch {
		case name == RootFileName && !isDir:
			sawRootFile = true
			s.add(name, false)
		case name == AgentsDir && isDir, name == ReferencesDir && isDir:
			s.scanFlat(name)
		case name == SkillsDir && isDir:
			s.scanSkills()
		default:
			s.logger.Debug("skipping entry", zap.String("path", s.join(name)))
		}
	}

	if !sawRootFile {
		// CLAUDE.md sorts before every lower-case directory name.
		missing := s.entry(RootFileName)
		missing.Missing = true
		s.entries = append([]Entry{missing}, s.entries...)
	}

	s.logger.Debug("scan complete", zap.String("root", s.root), zap.Int("entries", len(s.entries)))
	return s.entries, nil
}

// scanFlat adds every markdown file directly inside dir.
func (s *Scanner) scanFlat(dir string) {
	dirEntries, err := os.ReadDir(s.join(dir))
	if err != nil {
		s.addUnreadable(dir, err)
		return
	}
	for _, de := range dirEntries {
		rel := path.Join(dir, de.Name())
		if s.isDir(rel, de) {
			continue
		}
		s.add(rel, false)
	}
}

func (s *Scanner) scanSkills() {
	dirEntries, err := os.ReadDir(s.join(SkillsDir))
	if err != nil {
		s.addUnreadable(SkillsDir, err)
		return
	}
	for _, de := range dirEntries {
		rel := path.Join(SkillsDir, de.Name())
		if s.isDir(rel, de) {
			s.scanSkill(rel)
		}
	}
}

// scanSkill handles one skills/<name>/ directory. SKILL.md sorts before
// references/, so the skill entry always precedes its references.
func (s *Scanner) scanSkill(dir string) {
	dirEntries, err := os.ReadDir(s.join(dir))
	if err != nil {
		s.addUnreadable(dir, err)
		return
	}

	hasSkillFile, hasReferences := false, false
	for _, de := range dirEntries {
		switch name := de.Name(); {
		case name == SkillFileName && !s.isDir(path.Join(dir, name), de):
			hasSkillFile = true
		case name == ReferencesDir && s.isDir(path.Join(dir, name), de):
			hasReferences = true
		}
	}

	rel := path.Join(dir, SkillFileName)
	if hasSkillFile {
		s.add(rel, hasReferences)
	} else {
		missing := s.entry(rel)
		missing.Missing = true
		s.entries = append(s.entries, missing)
	}
	if hasReferences {
		s.scanFlat(path.Join(dir, ReferencesDir))
	}
}

// add appends rel when it classifies; anything else is silently ignored.
func (s *Scanner) add(rel string, hasReferences bool) {
	if _, ok := Classify(rel); !ok {
		s.logger.Debug("not a candidate", zap.String("path", s.join(rel)))
		return
	}
	e := s.entry(rel)
	e.HasReferences = hasReferences
	s.entries = append(s.entries, e)
}

func (s *Scanner) addUnreadable(dir string, err error) {
	s.entries = append(s.entries, Entry{
		Path:    s.join(dir),
		RelPath: dir,
		Err:     err,
	})
}

func (s *Scanner) entry(rel string) Entry {
	layer, _ := Classify(rel)
	return Entry{
		Path:    s.join(rel),
		RelPath: rel,
		Layer:   layer,
	}
}

// isDir reports whether de is a directory, following symlinks.
func (s *Scanner) isDir(rel string, de fs.DirEntry) bool {
	if de.Type()&fs.ModeSymlink == 0 {
		return de.IsDir()
	}
	info, err := os.Stat(s.join(rel))
	return err == nil && info.IsDir()
}

// join resolves rel against the root; the result doubles as display path.
func (s *Scanner) join(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}
