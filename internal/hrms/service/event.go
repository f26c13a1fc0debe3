package service

import (
	"context"
	"strings"
	"time"

	"github.com/aussiebroadwan/hrms/internal/hrms/domain"
	"github.com/aussiebroadwan/hrms/internal/hrms/store"
	"github.com/aussiebroadwan/hrms/pkg/idx"
	"github.com/aussiebroadwan/hrms/pkg/slogx"
)

type EventService struct {
	Store store.Store
	Now   func() time.Time
}

type EventInput struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time // defaults to Start
	AllDay      bool
	Color       string
}

func (in *EventInput) normalize() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Color = strings.TrimSpace(in.Color)
	if in.Title == "" {
		return invalid("title is required")
	}
	if in.Start.IsZero() {
		return invalid("start is required")
	}
	if in.End.IsZero() {
		in.End = in.Start
	}
	if in.End.Before(in.Start) {
		return invalid("end must not be before start")
	}
	return nil
}

// List returns events overlapping [from, to]. Zero bounds are open.
func (s *EventService) List(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, invalid("end must not be before start")
	}
	return s.Store.Events().List(ctx, from, to)
}

func (s *EventService) Get(ctx context.Context, id string) (domain.Event, error) {
	e, err := s.Store.Events().GetByID(ctx, id)
	return e, mapStoreErr(err, "event")
}

func (s *EventService) Create(ctx context.Context, actor Actor, in EventInput) (domain.Event, error) {
	if err := in.normalize(); err != nil {
		return domain.Event{}, err
	}
	now := clockOrNow(s.Now)

	e := domain.Event{
		ID:          idx.NewAt(now).String(),
		Title:       in.Title,
		Description: in.Description,
		Start:       in.Start.UTC(),
		End:         in.End.UTC(),
		AllDay:      in.AllDay,
		Color:       in.Color,
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Events().Create(ctx, e); err != nil {
		return domain.Event{}, mapStoreErr(err, "event")
	}
	slogx.FromContext(ctx).Info("event created", "event", e.ID, "by", actor.ID)
	return e, nil
}

// Update replaces every editable field of an event.
func (s *EventService) Update(ctx context.Context, id string, in EventInput) (domain.Event, error) {
	if err := in.normalize(); err != nil {
		return domain.Event{}, err
	}
	e, err := s.Get(ctx, id)
	if err != nil {
		return domain.Event{}, err
	}

	e.Title = in.Title
	e.Description = in.Description
	e.Start = in.Start.UTC()
	e.End = in.End.UTC()
	e.AllDay = in.AllDay
	e.Color = in.Color
	e.UpdatedAt = clockOrNow(s.Now)

	if err := s.Store.Events().Update(ctx, e); err != nil {
		return domain.Event{}, mapStoreErr(err, "event")
	}
	return e, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	return mapStoreErr(s.Store.Events().Delete(ctx, id), "event")
}
