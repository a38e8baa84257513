package application

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/opencode-milestone-cli/internal/domain"
)

// Names of the project documents a run depends on. Each may live at the
// project root or under docs/.
const (
	DocPRD       = "PRD.md"
	DocSpec      = "SPEC.md"
	DocChecklist = "IMPLEMENTATION_PLAN.md"

	docsSubdir = "docs"
)

// DocumentSet holds the resolved paths of the three project documents. The
// checklist doubles as the loop condition: the run keeps cycling while it
// has unchecked tasks.
type DocumentSet struct {
	PRD       string
	Spec      string
	Checklist string
}

// ResolveDocuments locates each required document, preferring the project
// root over docs/. A document missing from both locations is a configuration
// error naming every path that was checked.
func ResolveDocuments(root string) (DocumentSet, error) {
	var docs DocumentSet
	var err error

	if docs.PRD, err = resolveDocument(root, DocPRD); err != nil {
		return DocumentSet{}, err
	}
	if docs.Spec, err = resolveDocument(root, DocSpec); err != nil {
		return DocumentSet{}, err
	}
	if docs.Checklist, err = resolveDocument(root, DocChecklist); err != nil {
		return DocumentSet{}, err
	}

	return docs, nil
}

func resolveDocument(root, name string) (string, error) {
	candidates := []string{
		filepath.Join(root, name),
		filepath.Join(root, docsSubdir, name),
	}

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s (checked %s)", domain.ErrDocumentMissing, name, strings.Join(candidates, ", "))
}

// UnfinishedTasks re-reads the checklist from disk and reports whether any
// unchecked task remains. Reading fresh on every call is what lets the agent
// mark progress between cycles.
func (d DocumentSet) UnfinishedTasks() (bool, error) {
	data, err := os.ReadFile(d.Checklist)
	if err != nil {
		return false, fmt.Errorf("read checklist: %w", err)
	}

	return domain.HasUnfinishedTasks(string(data)), nil
}
