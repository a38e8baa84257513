package application

import (
	"fmt"
	"path/filepath"
)

// Prompt builders for the three phases of a cycle. They reference documents
// by base name because the agent session already runs inside the project
// directory.

func milestonePrompt(docs DocumentSet) string {
	return fmt.Sprintf(`Read %s, %s and %s.

Implement exactly ONE milestone from %s: the first milestone that still has unchecked tasks. Complete every task belonging to that milestone and nothing beyond it.

Rules:
- Do not edit %s. Task state is updated in a separate step.
- Do not commit or push. Committing happens in a separate step.
- Follow the requirements in %s and the design in %s.`,
		filepath.Base(docs.PRD),
		filepath.Base(docs.Spec),
		filepath.Base(docs.Checklist),
		filepath.Base(docs.Checklist),
		filepath.Base(docs.Checklist),
		filepath.Base(docs.PRD),
		filepath.Base(docs.Spec),
	)
}

func fixPrompt(findings string) string {
	return fmt.Sprintf(`A code review of your latest changes reported the findings below. Address every finding, then stop. Do not commit.

%s`, findings)
}

func markTasksPrompt(docs DocumentSet) string {
	return fmt.Sprintf(`Open %s and check off every task of the milestone you just implemented: change its "[ ]" to "[x]". Leave tasks you did not complete unchecked, and do not touch any other content. Do not commit.`,
		filepath.Base(docs.Checklist))
}

func commitPrompt() string {
	return `Commit all outstanding changes and push them. Stage everything that belongs to the milestone, write a concise commit message describing what was implemented, commit, and push to the current branch.`
}
