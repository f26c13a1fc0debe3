package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/hrms/internal/hrms/domain"
	"github.com/aussiebroadwan/hrms/internal/hrms/service"
	"github.com/stretchr/testify/require"
)

func TestEvents(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	hr := f.hire(t, "hr@example.com", domain.RoleHR)

	start := time.Date(2026, 4, 10, 14, 0, 0, 0, time.UTC)
	ev, err := f.events.Create(ctx, actorOf(hr), service.EventInput{Title: " Offsite ", Start: start})
	require.NoError(t, err)
	require.Equal(t, "Offsite", ev.Title)
	require.Equal(t, start, ev.End, "end defaults to start")
	require.Equal(t, hr.ID, ev.CreatedBy)

	_, err = f.events.Create(ctx, actorOf(hr), service.EventInput{Title: " ", Start: start})
	requireKind(t, err, service.ErrInvalidInput)
	_, err = f.events.Create(ctx, actorOf(hr), service.EventInput{Title: "x"})
	requireKind(t, err, service.ErrInvalidInput)
	_, err = f.events.Create(ctx, actorOf(hr), service.EventInput{Title: "x", Start: start, End: start.Add(-time.Minute)})
	requireKind(t, err, service.ErrInvalidInput)

	updated, err := f.events.Update(ctx, ev.ID, service.EventInput{
		Title: "Offsite", Start: start, End: start.Add(3 * time.Hour), Color: "#ff0000",
	})
	require.NoError(t, err)
	require.Equal(t, "#ff0000", updated.Color)

	list, err := f.events.List(ctx, start.Add(2*time.Hour), start.Add(5*time.Hour))
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = f.events.List(ctx, start.Add(4*time.Hour), start.Add(5*time.Hour))
	require.NoError(t, err)
	require.Empty(t, list)

	_, err = f.events.List(ctx, start, start.Add(-time.Hour))
	requireKind(t, err, service.ErrInvalidInput)

	require.NoError(t, f.events.Delete(ctx, ev.ID))
	requireKind(t, f.events.Delete(ctx, ev.ID), service.ErrNotFound)
	_, err = f.events.Update(ctx, ev.ID, service.EventInput{Title: "x", Start: start})
	requireKind(t, err, service.ErrNotFound)
}
