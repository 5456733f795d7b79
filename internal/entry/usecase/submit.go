package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"timeclerk/internal/entry"
	"timeclerk/internal/model"
	"timeclerk/pkg/clockify"
)

// Submit posts time entries to the workspace. Project and task names are
// resolved case-insensitively, first match wins; unresolved names submit
// with null IDs.
func (uc *implUseCase) Submit(ctx context.Context, input entry.SubmitInput) (entry.SubmitOutput, error) {
	if len(input.Entries) == 0 {
		return entry.SubmitOutput{}, entry.ErrNoEntries
	}

	// Unlike parsing, submission cannot degrade to an empty catalog: a
	// credential problem surfaces as ErrMissingCredential, an upstream
	// failure keeps its original error.
	catalog, err := uc.fetchCatalog(ctx)
	if err != nil {
		return entry.SubmitOutput{}, err
	}

	uc.l.Infof(ctx, "Submit: %d entries to workspace %s", len(input.Entries), catalog.WorkspaceID)

	totalHours := 0.0
	projects := map[string]struct{}{}

	for _, e := range input.Entries {
		projectID, taskID := resolveIDs(catalog, e.Project, e.Task)
		if e.Project != "" && projectID == nil {
			uc.l.Warnf(ctx, "Submit: project %q not found, submitting without project", e.Project)
		}
		if e.Task != "" && taskID == nil {
			uc.l.Warnf(ctx, "Submit: task %q not found in project %q, submitting without task", e.Task, e.Project)
		}

		req := clockify.CreateTimeEntryRequest{
			Start:       e.Start.UTC().Format(time.RFC3339),
			End:         e.End.UTC().Format(time.RFC3339),
			Description: e.Description,
			ProjectID:   projectID,
			TaskID:      taskID,
		}

		if _, err := uc.tracker.CreateTimeEntry(ctx, catalog.WorkspaceID, req); err != nil {
			// First failure aborts; already-submitted entries stay.
			return entry.SubmitOutput{}, fmt.Errorf("failed to submit entry %q: %w", e.Description, err)
		}

		totalHours += e.Duration().Hours()
		if e.Project != "" {
			projects[strings.ToLower(e.Project)] = struct{}{}
		}
	}

	out := entry.SubmitOutput{
		Count:        len(input.Entries),
		TotalHours:   totalHours,
		ProjectCount: len(projects),
	}

	uc.l.Infof(ctx, "Submit: done count=%d hours=%.2f projects=%d", out.Count, out.TotalHours, out.ProjectCount)

	return out, nil
}

// resolveIDs maps project and task names to catalog IDs. Matching is
// case-insensitive and the first match wins; the task is only looked up
// inside the matched project.
func resolveIDs(catalog model.Catalog, projectName, taskName string) (projectID, taskID *string) {
	if projectName == "" {
		return nil, nil
	}
	for _, p := range catalog.Projects {
		if !strings.EqualFold(p.Name, projectName) {
			continue
		}
		id := p.ID
		projectID = &id
		if taskName != "" {
			for _, t := range p.Tasks {
				if strings.EqualFold(t.Name, taskName) {
					tid := t.ID
					taskID = &tid
					break
				}
			}
		}
		return projectID, taskID
	}
	return nil, nil
}
