package usecase

import (
	"time"

	"timeclerk/internal/entry/repository"
	"timeclerk/internal/model"
	"timeclerk/pkg/datemath"
	pkgLog "timeclerk/pkg/log"
	"timeclerk/pkg/openai"
)

type implUseCase struct {
	l               pkgLog.Logger
	ai              openai.IOpenAI
	tracker         repository.TimeTracker
	msCalendar      repository.MicrosoftCalendar
	gCalendar       repository.GoogleCalendar
	dateMath        *datemath.Parser
	defaultProvider model.MeetingProvider
	clock           func() time.Time
}

// New creates a new entry UseCase instance. msCalendar and gCalendar may
// be nil when the corresponding provider is not configured.
func New(
	l pkgLog.Logger,
	ai openai.IOpenAI,
	tracker repository.TimeTracker,
	msCalendar repository.MicrosoftCalendar,
	gCalendar repository.GoogleCalendar,
	dateMath *datemath.Parser,
	defaultProvider model.MeetingProvider,
) *implUseCase {
	return &implUseCase{
		l:               l,
		ai:              ai,
		tracker:         tracker,
		msCalendar:      msCalendar,
		gCalendar:       gCalendar,
		dateMath:        dateMath,
		defaultProvider: defaultProvider,
		clock:           time.Now,
	}
}
