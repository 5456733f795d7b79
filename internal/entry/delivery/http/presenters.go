package http

import (
	"errors"
	"time"

	"timeclerk/internal/entry"
	"timeclerk/internal/model"
)

// --- Request DTOs ---

type parseReq struct {
	Command string `json:"command" binding:"required,min=1,max=2000"`
}

func (r parseReq) toInput() entry.ParseInput {
	return entry.ParseInput{Command: r.Command}
}

// ---

type entryReq struct {
	Project     string `json:"project"`
	Task        string `json:"task"`
	Description string `json:"description" binding:"required"`
	Start       string `json:"start"       binding:"required"`
	End         string `json:"end"         binding:"required"`
}

type submitReq struct {
	Entries []entryReq `json:"entries" binding:"required,min=1,dive"`
}

func (r submitReq) toInput() (entry.SubmitInput, error) {
	entries := make([]model.TimeEntry, 0, len(r.Entries))
	for _, e := range r.Entries {
		start, err := time.Parse(time.RFC3339, e.Start)
		if err != nil {
			return entry.SubmitInput{}, errors.New("start must be RFC3339")
		}
		end, err := time.Parse(time.RFC3339, e.End)
		if err != nil {
			return entry.SubmitInput{}, errors.New("end must be RFC3339")
		}
		if !start.Before(end) {
			return entry.SubmitInput{}, errors.New("start must be before end")
		}
		entries = append(entries, model.TimeEntry{
			Project:     e.Project,
			Task:        e.Task,
			Description: e.Description,
			Start:       start,
			End:         end,
		})
	}
	return entry.SubmitInput{Entries: entries}, nil
}

// ---

type importReq struct {
	From           string `json:"from"            binding:"required"`
	To             string `json:"to"              binding:"required"`
	Provider       string `json:"provider"        binding:"omitempty,oneof=microsoft google"`
	DefaultProject string `json:"default_project"`
}

func (r importReq) toInput() (entry.ImportInput, error) {
	from, err := time.Parse(time.RFC3339, r.From)
	if err != nil {
		return entry.ImportInput{}, errors.New("from must be RFC3339")
	}
	to, err := time.Parse(time.RFC3339, r.To)
	if err != nil {
		return entry.ImportInput{}, errors.New("to must be RFC3339")
	}
	return entry.ImportInput{
		From:           from,
		To:             to,
		Provider:       model.MeetingProvider(r.Provider),
		DefaultProject: r.DefaultProject,
	}, nil
}

// --- Response DTOs ---

type entryResp struct {
	Project     string `json:"project"`
	Task        string `json:"task"`
	Description string `json:"description"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Source      string `json:"source"`
}

func newEntryResp(e model.TimeEntry) entryResp {
	return entryResp{
		Project:     e.Project,
		Task:        e.Task,
		Description: e.Description,
		Start:       e.Start.Format(time.RFC3339),
		End:         e.End.Format(time.RFC3339),
		Source:      string(e.Source),
	}
}

func newEntryResps(entries []model.TimeEntry) []entryResp {
	resps := make([]entryResp, len(entries))
	for i, e := range entries {
		resps[i] = newEntryResp(e)
	}
	return resps
}

type parseResp struct {
	Entries []entryResp `json:"entries"`
	Count   int         `json:"count"`
}

func (h *handler) newParseResp(out entry.ParseOutput) parseResp {
	return parseResp{
		Entries: newEntryResps(out.Entries),
		Count:   len(out.Entries),
	}
}

type submitResp struct {
	Count        int     `json:"count"`
	TotalHours   float64 `json:"total_hours"`
	ProjectCount int     `json:"project_count"`
}

func (h *handler) newSubmitResp(out entry.SubmitOutput) submitResp {
	return submitResp{
		Count:        out.Count,
		TotalHours:   out.TotalHours,
		ProjectCount: out.ProjectCount,
	}
}

type importResp struct {
	Entries []entryResp `json:"entries"`
	Count   int         `json:"count"`
	Skipped int         `json:"skipped"`
}

func (h *handler) newImportResp(out entry.ImportOutput) importResp {
	return importResp{
		Entries: newEntryResps(out.Entries),
		Count:   len(out.Entries),
		Skipped: out.Skipped,
	}
}

type transcribeResp struct {
	Text string `json:"text"`
}

type catalogProjectResp struct {
	Name  string   `json:"name"`
	Tasks []string `json:"tasks"`
}

type catalogResp struct {
	WorkspaceID string               `json:"workspace_id"`
	Projects    []catalogProjectResp `json:"projects"`
}

func (h *handler) newCatalogResp(out entry.CatalogOutput) catalogResp {
	projects := make([]catalogProjectResp, len(out.Catalog.Projects))
	for i, p := range out.Catalog.Projects {
		tasks := make([]string, len(p.Tasks))
		for j, t := range p.Tasks {
			tasks[j] = t.Name
		}
		projects[i] = catalogProjectResp{Name: p.Name, Tasks: tasks}
	}
	return catalogResp{
		WorkspaceID: out.Catalog.WorkspaceID,
		Projects:    projects,
	}
}
