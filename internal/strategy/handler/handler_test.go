package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	programmodels "growthsphere/internal/program/models"
	programservice "growthsphere/internal/program/service"
	programstore "growthsphere/internal/program/store"
	"growthsphere/internal/strategy/models"
	"growthsphere/internal/strategy/service"
	"growthsphere/internal/strategy/store"
	"growthsphere/internal/transport/http/shared"
	"growthsphere/pkg/testutil"
)

type fixture struct {
	router     http.Handler
	strategies *store.InMemory
	programs   *programstore.InMemory
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	programs := programstore.NewInMemory()
	strategies := store.NewInMemory()
	programSvc := programservice.New(programs, nil)
	svc := service.New(strategies, programSvc, nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := New(svc, logger)
	r := chi.NewRouter()
	h.Register(r)
	return &fixture{router: r, strategies: strategies, programs: programs}
}

func (f *fixture) seedProgram(t *testing.T) string {
	t.Helper()
	p := &programmodels.OrganizationProgram{
		OrganizationName: "Acme",
		OrganizationType: programmodels.OrgTypeFoundation,
		PrimaryContact:   programmodels.PrimaryContact{Name: "Jo", Email: "jo@example.com"},
		DomicileRegion:   programmodels.RegionUK,
	}
	p.Normalize()
	id, err := f.programs.Insert(context.Background(), p)
	require.NoError(t, err)
	return id.String()
}

func strategyPayload(programID string) map[string]any {
	return map[string]any{
		"program_id": programID,
		"metadata":   map[string]any{"name": "Buyout"},
		"sectors":    []string{"Industrials", "Healthcare"},
	}
}

func TestCreateStrategy(t *testing.T) {
	t.Run("creates when parent program exists", func(t *testing.T) {
		f := newFixture(t)
		programID := f.seedProgram(t)

		rec := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodPost, "/api/strategies", strategyPayload(programID)))
		testutil.AssertStatus(t, rec, http.StatusOK)

		created := testutil.UnmarshalResponse[struct {
			ID string `json:"id"`
		}](t, rec)
		assert.NotEmpty(t, created.ID)

		stored, err := f.strategies.List(context.Background(), store.ListFilter{}, 0)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, programID, stored[0].ProgramID)
	})

	t.Run("malformed program_id is 400 and nothing is persisted", func(t *testing.T) {
		f := newFixture(t)

		rec := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodPost, "/api/strategies", strategyPayload("not-an-id")))
		testutil.AssertStatus(t, rec, http.StatusBadRequest)

		errResp := testutil.UnmarshalResponse[shared.ErrorResponse](t, rec)
		assert.Equal(t, "invalid_input", errResp.Error)

		stored, err := f.strategies.List(context.Background(), store.ListFilter{}, 0)
		require.NoError(t, err)
		assert.Empty(t, stored)
	})

	t.Run("well-formed but absent program_id is 404 and nothing is persisted", func(t *testing.T) {
		f := newFixture(t)

		rec := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodPost, "/api/strategies", strategyPayload(primitive.NewObjectID().Hex())))
		testutil.AssertStatus(t, rec, http.StatusNotFound)

		stored, err := f.strategies.List(context.Background(), store.ListFilter{}, 0)
		require.NoError(t, err)
		assert.Empty(t, stored)
	})

	t.Run("missing metadata name is 400 with field path", func(t *testing.T) {
		f := newFixture(t)
		programID := f.seedProgram(t)

		payload := strategyPayload(programID)
		payload["metadata"] = map[string]any{"notes": "unnamed"}
		rec := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodPost, "/api/strategies", payload))
		testutil.AssertStatus(t, rec, http.StatusBadRequest)

		errResp := testutil.UnmarshalResponse[shared.ErrorResponse](t, rec)
		assert.Equal(t, "validation_error", errResp.Error)
		assert.Contains(t, errResp.Details, "metadata.name: must not be empty")
	})

	t.Run("overrides are stored as-is, never merged", func(t *testing.T) {
		f := newFixture(t)
		programID := f.seedProgram(t)

		payload := strategyPayload(programID)
		payload["overrides"] = map[string]any{"domicile_region": "APAC"}
		rec := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodPost, "/api/strategies", payload))
		testutil.AssertStatus(t, rec, http.StatusOK)

		stored, err := f.strategies.List(context.Background(), store.ListFilter{}, 0)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		require.NotNil(t, stored[0].Overrides.DomicileRegion)
		assert.Equal(t, programmodels.RegionAPAC, *stored[0].Overrides.DomicileRegion)
		// Parent fields that were not overridden stay absent.
		assert.Nil(t, stored[0].Overrides.OrganizationType)
		assert.Nil(t, stored[0].Overrides.MarketingEligibility)
	})
}

func TestListStrategies(t *testing.T) {
	f := newFixture(t)
	progA := f.seedProgram(t)
	progB := f.seedProgram(t)

	create := func(programID string) {
		rec := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodPost, "/api/strategies", strategyPayload(programID)))
		testutil.AssertStatus(t, rec, http.StatusOK)
	}
	create(progA)
	create(progA)
	create(progB)

	type list struct {
		Items []models.StrategyProfile `json:"items"`
	}

	t.Run("no filter returns everything", func(t *testing.T) {
		rec := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodGet, "/api/strategies", nil))
		testutil.AssertStatus(t, rec, http.StatusOK)
		got := testutil.UnmarshalResponse[list](t, rec)
		assert.Len(t, got.Items, 3)
	})

	t.Run("program_id filter returns exactly the matching strategies", func(t *testing.T) {
		rec := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodGet, "/api/strategies?program_id="+progA, nil))
		got := testutil.UnmarshalResponse[list](t, rec)
		require.Len(t, got.Items, 2)
		for _, st := range got.Items {
			assert.Equal(t, progA, st.ProgramID)
		}
	})

	t.Run("filter on unknown program matches nothing", func(t *testing.T) {
		rec := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodGet, "/api/strategies?program_id="+primitive.NewObjectID().Hex(), nil))
		got := testutil.UnmarshalResponse[list](t, rec)
		require.NotNil(t, got.Items)
		assert.Empty(t, got.Items)
	})

	t.Run("limit bounds the result", func(t *testing.T) {
		rec := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodGet, "/api/strategies?limit=1", nil))
		got := testutil.UnmarshalResponse[list](t, rec)
		assert.Len(t, got.Items, 1)
	})
}
