package usecase

import (
	"fmt"
	"strings"
	"time"

	"timeclerk/internal/model"
	"timeclerk/pkg/datemath"
)

// buildProjectsSection renders the catalog for the system prompt.
func buildProjectsSection(catalog model.Catalog) string {
	if len(catalog.Projects) == 0 {
		return "No projects available."
	}

	var b strings.Builder
	b.WriteString("Available Projects and Tasks:\n")
	for _, p := range catalog.Projects {
		fmt.Fprintf(&b, "- Project: %q", p.Name)
		if len(p.Tasks) > 0 {
			names := make([]string, 0, len(p.Tasks))
			for _, t := range p.Tasks {
				names = append(names, fmt.Sprintf("%q", t.Name))
			}
			fmt.Fprintf(&b, "\n  Tasks: %s", strings.Join(names, ", "))
		} else {
			b.WriteString("\n  Tasks: No tasks available")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// buildSystemPrompt assembles the parser instruction document. Pure string
// work; all temporal inputs come from the caller.
func (uc *implUseCase) buildSystemPrompt(now time.Time, week datemath.WeekInfo, roundedNow time.Time, catalog model.Catalog) string {
	day := func(i int) string { return week.Days[i].Date.Format(datemath.DateFormatISO) }
	roundedClock := roundedNow.Format("15:04:05")

	return fmt.Sprintf(`You are a time entry parser for Clockify. Convert natural language instructions into JSON arrays of time entries.

Current date/time context:
- Today is %s (%s)
- Current time is %s
- Current time rounded to 15min: %s
- Default timezone is %s

CRITICAL: THIS WEEK's dates (Monday to Sunday):
- Monday this week = %s
- Tuesday this week = %s
- Wednesday this week = %s
- Thursday this week = %s
- Friday this week = %s
- Saturday this week = %s
- Sunday this week = %s

%s
Task Assignment Rules:
1. If the user explicitly mentions a task name that matches exactly, use it
2. If no task is explicitly mentioned, try to guess the most appropriate task based on:
   - The activity description (e.g., "meeting" might match "Daily Standup")
   - The context (e.g., "bug fix" might match "Development" or "Bug Fixes")
3. If you cannot confidently match a task, leave the task field as null
4. Task matching should be case-insensitive
5. Prefer exact matches over partial matches

Week interpretation rules:
- "This week" = the 7-day period containing today (Monday to Sunday)
- "Next week" = the 7-day period after this week
- "Last week" = the 7-day period before this week
- ALWAYS use the exact dates provided above for "this week" references

Default time behaviors:
1. If NO time period mentioned (e.g., "Log 2 hours working with marketer"):
   - Start time: current time rounded to 15-minute intervals (%s)
   - Duration: as specified in command
2. If NO time specified but period mentioned (e.g., "Log meeting this week"):
   - Default to "this week" (Monday %s to Friday %s)
   - Default time: 9:00 AM if no specific time given
3. Always round start/end times to 15-minute intervals: :00, :15, :30, :45

Rules:
1. Output ONLY a JSON array, no other text
2. Each entry must have: project, task, description, start, end (ISO 8601 format with timezone)
3. If project is missing, set to null
4. If task cannot be identified/guessed, set to null
5. For recurring entries (e.g., "every workday this week"), expand to separate entries
6. Default to current year dates only
7. Handle relative dates carefully - "this week" means the week containing TODAY
8. Round all times to 15-minute intervals (:00, :15, :30, :45)
9. For "workdays", use Monday-Friday only
10. If no time specified, start from current rounded time: %s
11. NEVER confuse Sunday with Monday - double-check day calculations

Output schema:
[{"project":"ProjectName","task":"TaskName","description":"Task description","start":"2025-01-13T09:00:00-08:00","end":"2025-01-13T10:00:00-08:00"}]

Examples with current context (today is %s):
- "Log 2 hours coding to Project Alpha starting now" → start from %s, duration 2h, try to guess development-related task
- "Log 30 minutes standup every workday this week 9-9:30am" → Mon-Fri of current week, try to match "standup" to appropriate task
- "Log 2 hours working with marketer" → start from %s, duration 2h, no project, task=null
- "Monday this week meeting" → Monday %s at 9:00 AM, try to guess meeting-related task
- "Lock 2 hours researching Monday 10am this week" → Monday %s 10:00-12:00 AM, try to guess research-related task
- "Yesterday 3pm to 5pm working on bug fixes for BETA project" → yesterday with specified times, try to match bug-related task`,
		now.Format(datemath.DateFormatISO), now.Weekday().String(),
		now.Format("15:04:05"),
		roundedClock,
		uc.dateMath.Location().String(),
		day(0), day(1), day(2), day(3), day(4), day(5), day(6),
		buildProjectsSection(catalog),
		roundedClock,
		week.Monday.Format(datemath.DateFormatISO), week.Friday.Format(datemath.DateFormatISO),
		roundedNow.Format(time.RFC3339),
		now.Weekday().String(),
		roundedNow.Format(time.RFC3339),
		roundedNow.Format(time.RFC3339),
		day(0),
		day(0),
	)
}
