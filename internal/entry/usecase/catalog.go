package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"timeclerk/internal/entry"
	"timeclerk/internal/model"
)

// Catalog fetches the workspace's projects and tasks.
func (uc *implUseCase) Catalog(ctx context.Context) (entry.CatalogOutput, error) {
	return entry.CatalogOutput{Catalog: uc.catalogOrEmpty(ctx)}, nil
}

// catalogOrEmpty degrades any catalog failure to an empty catalog with a
// warning so that parsing can proceed project-less.
func (uc *implUseCase) catalogOrEmpty(ctx context.Context) model.Catalog {
	catalog, err := uc.fetchCatalog(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "fetchCatalog: proceeding without catalog: %v", err)
		return model.Catalog{}
	}
	return catalog
}

// fetchCatalog builds the project/task catalog from the first workspace.
// Credential problems surface as ErrMissingCredential; upstream API
// failures keep their original error so callers can tell the two apart.
// A per-project task failure degrades to an empty task list only.
func (uc *implUseCase) fetchCatalog(ctx context.Context) (model.Catalog, error) {
	if !uc.tracker.HasKey() {
		return model.Catalog{}, entry.ErrMissingCredential
	}

	ok, err := uc.tracker.ValidateToken(ctx)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("failed to validate token: %w", err)
	}
	if !ok {
		return model.Catalog{}, fmt.Errorf("API key rejected: %w", entry.ErrMissingCredential)
	}

	workspaces, err := uc.tracker.ListWorkspaces(ctx)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("failed to list workspaces: %w", err)
	}
	if len(workspaces) == 0 {
		return model.Catalog{}, fmt.Errorf("no workspaces visible to this key: %w", entry.ErrMissingCredential)
	}
	workspaceID := workspaces[0].ID

	projects, err := uc.tracker.ListProjects(ctx, workspaceID)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("failed to list projects: %w", err)
	}

	catalogProjects := make([]model.CatalogProject, len(projects))

	var g errgroup.Group
	for i, p := range projects {
		i, p := i, p
		g.Go(func() error {
			cp := model.CatalogProject{ID: p.ID, Name: p.Name}

			tasks, taskErr := uc.tracker.ListTasks(ctx, workspaceID, p.ID)
			if taskErr != nil {
				// A project without tasks is still useful for matching.
				uc.l.Warnf(ctx, "fetchCatalog: failed to list tasks for project %q: %v", p.Name, taskErr)
			} else {
				cp.Tasks = make([]model.CatalogTask, 0, len(tasks))
				for _, t := range tasks {
					cp.Tasks = append(cp.Tasks, model.CatalogTask{ID: t.ID, Name: t.Name})
				}
			}

			catalogProjects[i] = cp
			return nil
		})
	}
	_ = g.Wait()

	return model.Catalog{
		WorkspaceID: workspaceID,
		Projects:    catalogProjects,
	}, nil
}
