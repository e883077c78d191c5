package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_MigratesIdempotently(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Reopening runs Migrate again over existing tables.
	s, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func TestUserRepo_GetOrCreate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	repo := s.UserRepo()

	u, err := repo.GetOrCreate(ctx, "local", "local")
	require.NoError(t, err)
	require.Equal(t, "local", u.ID)
	require.Equal(t, 1, u.Level)
	require.Zero(t, u.XP)
	require.Zero(t, u.Streak)
	require.Nil(t, u.LastActive)
	require.Empty(t, u.Badges)

	// Second call returns the same record, not a reset one.
	require.NoError(t, repo.UpdateStats(ctx, "local", 30, 2, []string{"stone"}))
	again, err := repo.GetOrCreate(ctx, "local", "local")
	require.NoError(t, err)
	require.Equal(t, 30, again.XP)
	require.Equal(t, 2, again.Level)
	require.Equal(t, []string{"stone"}, again.Badges)
}

func TestUserRepo_UpdateStreak(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	repo := s.UserRepo()

	_, err := repo.GetOrCreate(ctx, "local", "local")
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.UpdateStreak(ctx, "local", 7, now))

	u, err := repo.Get(ctx, "local")
	require.NoError(t, err)
	require.Equal(t, 7, u.Streak)
	require.NotNil(t, u.LastActive)
	require.True(t, u.LastActive.Equal(now))
}

func TestUserRepo_GetAbsent(t *testing.T) {
	s := newTestStore(t)

	u, err := s.UserRepo().Get(context.Background(), "nobody")
	require.NoError(t, err)
	require.Nil(t, u)
}

// seedUser creates the user row that plans reference.
func seedUser(t *testing.T, s *Store) {
	t.Helper()
	_, err := s.UserRepo().GetOrCreate(context.Background(), "local", "local")
	require.NoError(t, err)
}

// seedPlans creates plan rows that tasks reference.
func seedPlans(t *testing.T, s *Store, ids ...string) {
	t.Helper()
	seedUser(t, s)
	for _, id := range ids {
		require.NoError(t, s.PlanRepo().Insert(context.Background(), Plan{
			ID: id, UserID: "local", Skill: "skill-" + id, Confidence: 3, CreatedAt: time.Now().UTC(),
		}))
	}
}

func TestPlanRepo_CRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	repo := s.PlanRepo()
	seedUser(t, s)

	first := Plan{ID: "p1", UserID: "local", Skill: "chess", Confidence: 3, CreatedAt: time.Now().UTC().Add(-time.Hour)}
	second := Plan{ID: "p2", UserID: "local", Skill: "piano", Confidence: 5, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Insert(ctx, first))
	require.NoError(t, repo.Insert(ctx, second))

	got, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "chess", got.Skill)
	require.Equal(t, 3, got.Confidence)

	list, err := repo.ListByUser(ctx, "local")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "p1", list[0].ID, "plans should list in creation order")

	require.NoError(t, repo.UpdateProgress(ctx, "p1", 40))
	got, err = repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, 40, got.Progress)

	require.NoError(t, repo.Delete(ctx, "p1"))
	got, err = repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestTaskRepo_ListOrderAndToggle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	repo := s.TaskRepo()
	seedPlans(t, s, "p1", "p2")

	tasks := []Task{
		{ID: "t3", PlanID: "p1", MilestoneIndex: 1, MilestoneTitle: "B", Day: 1, Description: "b1"},
		{ID: "t2", PlanID: "p1", MilestoneIndex: 0, MilestoneTitle: "A", Day: 2, Description: "a2", ResourceLink: "https://example.com"},
		{ID: "t1", PlanID: "p1", MilestoneIndex: 0, MilestoneTitle: "A", Day: 1, Description: "a1"},
		{ID: "x1", PlanID: "p2", MilestoneIndex: 0, MilestoneTitle: "Other", Day: 1, Description: "other"},
	}
	for _, task := range tasks {
		require.NoError(t, repo.Insert(ctx, task))
	}

	list, err := repo.ListByPlan(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, []string{"t1", "t2", "t3"}, []string{list[0].ID, list[1].ID, list[2].ID})
	require.Equal(t, "https://example.com", list[1].ResourceLink)

	require.NoError(t, repo.SetCompleted(ctx, "t1", true))
	got, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	require.True(t, got.Completed)

	require.NoError(t, repo.SetCompleted(ctx, "t1", false))
	got, err = repo.Get(ctx, "t1")
	require.NoError(t, err)
	require.False(t, got.Completed)
}

func TestTaskRepo_DeleteByPlan(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	repo := s.TaskRepo()
	seedPlans(t, s, "p1", "p2")

	require.NoError(t, repo.Insert(ctx, Task{ID: "t1", PlanID: "p1", MilestoneTitle: "A", Day: 1, Description: "a"}))
	require.NoError(t, repo.Insert(ctx, Task{ID: "t2", PlanID: "p1", MilestoneTitle: "A", Day: 2, Description: "b"}))
	require.NoError(t, repo.Insert(ctx, Task{ID: "x1", PlanID: "p2", MilestoneTitle: "C", Day: 1, Description: "c"}))

	require.NoError(t, repo.DeleteByPlan(ctx, "p1"))

	gone, err := repo.ListByPlan(ctx, "p1")
	require.NoError(t, err)
	require.Empty(t, gone)

	kept, err := repo.ListByPlan(ctx, "p2")
	require.NoError(t, err)
	require.Len(t, kept, 1)
}

func TestEventRepo_AppendAndQuery(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      "plan-generation",
			InputTokens:  100,
			OutputTokens: 500,
			LatencyMs:    int64(10 * (i + 1)),
			Success:      true,
		}))
	}
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "expert-qa",
		Success:      false,
		ErrorMessage: "rate limited",
	}))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "expert-qa", events[0].Purpose, "newest first")

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "plan-generation"})
	require.NoError(t, err)
	require.Len(t, filtered, 3)

	one, err := repo.GetLLMEvent(ctx, events[0].ID)
	require.NoError(t, err)
	require.NotNil(t, one)
	require.Equal(t, "rate limited", one.ErrorMessage)
	require.False(t, one.Success)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestEventRepo_UsageAggregation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "plan-generation",
		InputTokens: 200, OutputTokens: 1000, LatencyMs: 100, Success: true,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "plan-generation",
		InputTokens: 300, OutputTokens: 2000, LatencyMs: 300, Success: true,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "expert-qa",
		InputTokens: 50, OutputTokens: 400, LatencyMs: 80, Success: true,
	}))

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	// Ordered by purpose: expert-qa, plan-generation.
	require.Equal(t, "expert-qa", byPurpose[0].Purpose)
	require.Equal(t, "plan-generation", byPurpose[1].Purpose)
	require.Equal(t, 2, byPurpose[1].Calls)
	require.Equal(t, 500, byPurpose[1].InputTokens)
	require.Equal(t, 3000, byPurpose[1].OutputTokens)
	require.Equal(t, int64(200), byPurpose[1].AvgLatencyMs)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 1)
	require.Equal(t, 3, byModel[0].Calls)
}
