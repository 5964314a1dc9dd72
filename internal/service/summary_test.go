package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mindwell/backend/internal/models"
	"github.com/mindwell/backend/pkg/supabase"
)

// mockCheckInRepository is an in-memory CheckInRepository for testing
type mockCheckInRepository struct {
	checkins    []models.CheckIn
	createCalls int
	upsertCalls int
	nextID      int
	createErr   error
}

func (m *mockCheckInRepository) assignID(c *models.CheckIn) {
	if c.ID == "" {
		m.nextID++
		c.ID = fmt.Sprintf("checkin-%d", m.nextID)
	}
}

func (m *mockCheckInRepository) Create(ctx context.Context, checkin *models.CheckIn) (*models.CheckIn, error) {
	m.createCalls++
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.assignID(checkin)
	m.checkins = append(m.checkins, *checkin)
	return checkin, nil
}

func (m *mockCheckInRepository) Upsert(ctx context.Context, checkin *models.CheckIn) (*models.CheckIn, error) {
	m.upsertCalls++
	for i := range m.checkins {
		if m.checkins[i].UserID == checkin.UserID && m.checkins[i].Date.Equal(checkin.Date) {
			checkin.ID = m.checkins[i].ID
			m.checkins[i] = *checkin
			return checkin, nil
		}
	}
	m.assignID(checkin)
	m.checkins = append(m.checkins, *checkin)
	return checkin, nil
}

func (m *mockCheckInRepository) GetRecent(ctx context.Context, userID string, limit int) ([]models.CheckIn, error) {
	var result []models.CheckIn
	for i := len(m.checkins) - 1; i >= 0 && len(result) < limit; i-- {
		if m.checkins[i].UserID == userID {
			result = append(result, m.checkins[i])
		}
	}
	return result, nil
}

func (m *mockCheckInRepository) GetByDateRange(ctx context.Context, userID string, start, end time.Time, ascending bool) ([]models.CheckIn, error) {
	var result []models.CheckIn
	for _, c := range m.checkins {
		if c.UserID == userID && !c.Date.Before(start) && !c.Date.After(end) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *mockCheckInRepository) GetHistory(ctx context.Context, userID string, since time.Time, limit, offset int) ([]models.CheckIn, int, error) {
	all, _ := m.GetByDateRange(ctx, userID, since, time.Now().AddDate(1, 0, 0), false)
	total := len(all)
	if offset >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, total, nil
}

// mockSummaryRepository is an in-memory WeeklySummaryRepository for testing
type mockSummaryRepository struct {
	summaries   map[string]*models.WeeklySummary // userID|weekStart -> summary
	upsertCalls int
	updateCalls int
	deleteCalls int
	upsertErr   error
}

func newMockSummaryRepository() *mockSummaryRepository {
	return &mockSummaryRepository{summaries: make(map[string]*models.WeeklySummary)}
}

func summaryKey(userID string, weekStart time.Time) string {
	return userID + "|" + weekStart.Format("2006-01-02")
}

func (m *mockSummaryRepository) GetByUserAndWeek(ctx context.Context, userID string, weekStart time.Time) (*models.WeeklySummary, error) {
	if s, ok := m.summaries[summaryKey(userID, weekStart)]; ok {
		cached := *s
		return &cached, nil
	}
	return nil, nil
}

func (m *mockSummaryRepository) Upsert(ctx context.Context, summary *models.WeeklySummary) (*models.WeeklySummary, error) {
	m.upsertCalls++
	if m.upsertErr != nil {
		err := m.upsertErr
		m.upsertErr = nil
		return nil, err
	}
	if summary.ID == "" {
		summary.ID = fmt.Sprintf("summary-%d", len(m.summaries)+1)
	}
	stored := *summary
	m.summaries[summaryKey(summary.UserID, summary.WeekStartDate)] = &stored
	return summary, nil
}

func (m *mockSummaryRepository) Update(ctx context.Context, summary *models.WeeklySummary) (*models.WeeklySummary, error) {
	m.updateCalls++
	key := summaryKey(summary.UserID, summary.WeekStartDate)
	if existing, ok := m.summaries[key]; ok {
		summary.ID = existing.ID
	}
	stored := *summary
	m.summaries[key] = &stored
	return summary, nil
}

func (m *mockSummaryRepository) Delete(ctx context.Context, id string) error {
	m.deleteCalls++
	for key, s := range m.summaries {
		if s.ID == id {
			delete(m.summaries, key)
		}
	}
	return nil
}

// mockInsightClient counts calls and returns a canned response or error
type mockInsightClient struct {
	response string
	err      error
	calls    int
}

func (m *mockInsightClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func testWeekStart() time.Time {
	return time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local) // a Monday
}

func weekCheckin(offset int, score float64, mood string, written time.Time) models.CheckIn {
	date := testWeekStart().AddDate(0, 0, offset)
	return models.CheckIn{
		ID:            fmt.Sprintf("c-%d", offset),
		UserID:        "u1",
		Date:          date,
		WellnessScore: score,
		FeelingScale:  6,
		SleepQuality:  6,
		StressLevel:   4,
		Mood:          mood,
		Timestamp:     written,
	}
}

func TestGenerateWeeklySummaryEmptyWeek(t *testing.T) {
	checkinRepo := &mockCheckInRepository{}
	summaryRepo := newMockSummaryRepository()
	insight := &mockInsightClient{response: "should not be called"}
	svc := NewWeeklySummaryService(checkinRepo, summaryRepo, insight)

	summary, err := svc.GenerateWeeklySummary(context.Background(), "u1", testWeekStart())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Summary.Period.TotalDays != 0 {
		t.Errorf("TotalDays = %d, want 0", summary.Summary.Period.TotalDays)
	}
	if len(summary.DailyCheckinIDs) != 0 {
		t.Errorf("DailyCheckinIDs should be empty: %v", summary.DailyCheckinIDs)
	}
	if summary.Summary.Insights.AISummary == "" {
		t.Error("expected a no-data summary message")
	}
	if insight.calls != 0 {
		t.Errorf("insight client called %d times for empty week", insight.calls)
	}
	if summaryRepo.upsertCalls != 0 {
		t.Error("empty-week summary must not be persisted")
	}
}

func TestGenerateWeeklySummaryEmptyWeekDeletesOrphan(t *testing.T) {
	checkinRepo := &mockCheckInRepository{}
	summaryRepo := newMockSummaryRepository()
	svc := NewWeeklySummaryService(checkinRepo, summaryRepo, &mockInsightClient{})

	// a summary persisted before its only check-in was deleted
	summaryRepo.summaries[summaryKey("u1", testWeekStart())] = &models.WeeklySummary{
		ID:              "summary-1",
		UserID:          "u1",
		WeekStartDate:   testWeekStart(),
		DailyCheckinIDs: []string{"gone"},
		LastUpdated:     time.Now(),
	}

	if _, err := svc.GenerateWeeklySummary(context.Background(), "u1", testWeekStart()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summaryRepo.deleteCalls != 1 {
		t.Errorf("deleteCalls = %d, want 1", summaryRepo.deleteCalls)
	}
	if len(summaryRepo.summaries) != 0 {
		t.Error("orphaned summary should have been removed")
	}
}

func TestGenerateWeeklySummaryFreshCacheHit(t *testing.T) {
	written := time.Date(2025, 6, 3, 9, 0, 0, 0, time.Local)
	checkinRepo := &mockCheckInRepository{checkins: []models.CheckIn{
		weekCheckin(0, 6.0, "calm", written),
		weekCheckin(1, 7.0, "happy", written),
	}}
	summaryRepo := newMockSummaryRepository()
	insight := &mockInsightClient{response: "fresh hit should not regenerate"}
	svc := NewWeeklySummaryService(checkinRepo, summaryRepo, insight)

	cached := &models.WeeklySummary{
		ID:              "summary-1",
		UserID:          "u1",
		WeekStartDate:   testWeekStart(),
		DailyCheckinIDs: []string{"c-0", "c-1"},
		LastUpdated:     written.Add(time.Hour),
	}
	summaryRepo.summaries[summaryKey("u1", testWeekStart())] = cached

	summary, err := svc.GenerateWeeklySummary(context.Background(), "u1", testWeekStart())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.ID != "summary-1" {
		t.Errorf("expected cached summary, got %q", summary.ID)
	}
	if insight.calls != 0 {
		t.Errorf("insight client called %d times on cache hit", insight.calls)
	}
	if summaryRepo.upsertCalls != 0 {
		t.Error("cache hit must not rewrite the summary")
	}
}

func TestGenerateWeeklySummaryStaleAfterNewCheckIn(t *testing.T) {
	written := time.Date(2025, 6, 3, 9, 0, 0, 0, time.Local)
	checkinRepo := &mockCheckInRepository{checkins: []models.CheckIn{
		weekCheckin(0, 6.0, "calm", written),
		weekCheckin(1, 7.0, "happy", written.Add(2*time.Hour)),
	}}
	summaryRepo := newMockSummaryRepository()
	insight := &mockInsightClient{response: "This week showed steady progress."}
	svc := NewWeeklySummaryService(checkinRepo, summaryRepo, insight)

	// summary predates the second check-in
	summaryRepo.summaries[summaryKey("u1", testWeekStart())] = &models.WeeklySummary{
		ID:              "summary-1",
		UserID:          "u1",
		WeekStartDate:   testWeekStart(),
		DailyCheckinIDs: []string{"c-0"},
		LastUpdated:     written.Add(time.Hour),
	}

	summary, err := svc.GenerateWeeklySummary(context.Background(), "u1", testWeekStart())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if insight.calls != 1 {
		t.Errorf("insight calls = %d, want 1", insight.calls)
	}
	if summaryRepo.upsertCalls != 1 {
		t.Errorf("upsertCalls = %d, want 1", summaryRepo.upsertCalls)
	}
	if len(summary.DailyCheckinIDs) != 2 {
		t.Errorf("DailyCheckinIDs = %v, want both check-ins", summary.DailyCheckinIDs)
	}
	if summary.Summary.Insights.AISummary != "This week showed steady progress." {
		t.Errorf("AISummary = %q", summary.Summary.Insights.AISummary)
	}
	// regenerated summary keeps the existing row id
	if summary.ID != "summary-1" {
		t.Errorf("ID = %q, want summary-1", summary.ID)
	}
}

func TestGenerateWeeklySummaryStaleAfterEdit(t *testing.T) {
	written := time.Date(2025, 6, 3, 9, 0, 0, 0, time.Local)
	edited := weekCheckin(1, 9.0, "happy", written)
	edited.UpdatedAt = written.Add(3 * time.Hour)

	checkinRepo := &mockCheckInRepository{checkins: []models.CheckIn{
		weekCheckin(0, 6.0, "calm", written),
		edited,
	}}
	summaryRepo := newMockSummaryRepository()
	insight := &mockInsightClient{response: "updated"}
	svc := NewWeeklySummaryService(checkinRepo, summaryRepo, insight)

	// same count, but one check-in was edited after the summary was written
	summaryRepo.summaries[summaryKey("u1", testWeekStart())] = &models.WeeklySummary{
		ID:              "summary-1",
		UserID:          "u1",
		WeekStartDate:   testWeekStart(),
		DailyCheckinIDs: []string{"c-0", "c-1"},
		LastUpdated:     written.Add(time.Hour),
	}

	if _, err := svc.GenerateWeeklySummary(context.Background(), "u1", testWeekStart()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if insight.calls != 1 {
		t.Errorf("edited check-in should force regeneration, insight calls = %d", insight.calls)
	}
}

func TestGenerateWeeklySummaryConflictRetry(t *testing.T) {
	written := time.Date(2025, 6, 3, 9, 0, 0, 0, time.Local)
	checkinRepo := &mockCheckInRepository{checkins: []models.CheckIn{
		weekCheckin(0, 6.0, "calm", written),
	}}
	summaryRepo := newMockSummaryRepository()
	summaryRepo.upsertErr = supabase.ErrConflict
	svc := NewWeeklySummaryService(checkinRepo, summaryRepo, &mockInsightClient{response: "ok"})

	summary, err := svc.GenerateWeeklySummary(context.Background(), "u1", testWeekStart())
	if err != nil {
		t.Fatalf("conflict should be resolved by the retry: %v", err)
	}
	if summaryRepo.upsertCalls != 1 || summaryRepo.updateCalls != 1 {
		t.Errorf("upsert/update calls = %d/%d, want 1/1", summaryRepo.upsertCalls, summaryRepo.updateCalls)
	}
	if summary == nil {
		t.Fatal("expected a summary after retry")
	}
}

func TestGenerateWeeklySummaryFallbackOnInsightError(t *testing.T) {
	written := time.Date(2025, 6, 3, 9, 0, 0, 0, time.Local)
	checkinRepo := &mockCheckInRepository{checkins: []models.CheckIn{
		weekCheckin(0, 6.0, "calm", written),
		weekCheckin(1, 7.0, "happy", written),
	}}
	summaryRepo := newMockSummaryRepository()
	insight := &mockInsightClient{err: errors.New("quota exceeded")}
	svc := NewWeeklySummaryService(checkinRepo, summaryRepo, insight)

	summary, err := svc.GenerateWeeklySummary(context.Background(), "u1", testWeekStart())
	if err != nil {
		t.Fatalf("insight failure must not fail the request: %v", err)
	}
	if summary.Summary.Insights.AISummary == "" {
		t.Error("expected deterministic fallback text")
	}
	if summaryRepo.upsertCalls != 1 {
		t.Error("fallback summary should still be persisted")
	}
}

func TestSaveDailyCheckIn(t *testing.T) {
	checkinRepo := &mockCheckInRepository{}
	svc := NewWeeklySummaryService(checkinRepo, newMockSummaryRepository(), nil)

	saved, err := svc.SaveDailyCheckIn(context.Background(), &models.SaveCheckInRequest{
		UserID:        "u1",
		WellnessScore: 6.4,
		FeelingScale:  7,
		Mood:          "Calm",
		SleepQuality:  6,
		StressLevel:   4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved.Mood != "calm" {
		t.Errorf("mood should be normalized to lowercase, got %q", saved.Mood)
	}
	if h, m, s := saved.Date.Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("date should be normalized to midnight, got %v", saved.Date)
	}

	// a second save for the same day replaces rather than duplicates
	if _, err := svc.SaveDailyCheckIn(context.Background(), &models.SaveCheckInRequest{
		UserID:        "u1",
		WellnessScore: 7.0,
		FeelingScale:  8,
		Mood:          "happy",
		SleepQuality:  7,
		StressLevel:   3,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(checkinRepo.checkins) != 1 {
		t.Errorf("expected one stored check-in, got %d", len(checkinRepo.checkins))
	}
}
