package pipeline

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardline/leads-cli/internal/lead"
	"github.com/guardline/leads-cli/internal/model"
	"github.com/guardline/leads-cli/internal/source"
	"github.com/guardline/leads-cli/internal/store"
)

func newTestPipeline(t *testing.T) (*Pipeline, store.Store) {
	t.Helper()
	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))

	return New(st, lead.NewValidator()), st
}

func goodRecord(url string) source.RawRecord {
	return source.RawRecord{
		Title:       "Armed Security Guard",
		Company:     "Acme Security Services",
		Location:    "Reno, NV",
		Description: "Armed security patrol, overnight shifts.",
		ContactInfo: "jobs@acmesecurity.com",
		SourceURL:   url,
	}
}

func TestProcess_Accepts(t *testing.T) {
	p, st := newTestPipeline(t)
	ctx := context.Background()

	l := Assemble("jobs", goodRecord("https://jobs.example/1"))
	res, err := p.Process(ctx, l, nil)
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Empty(t, res.Issues)

	stored, err := st.GetLead(ctx, res.Lead.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Acme Security Services", stored.Organization.Name)
	// Enrichment ran before storage.
	assert.Equal(t, "Security Services", stored.Organization.Industry)
}

func TestProcess_RejectsInvalid(t *testing.T) {
	p, st := newTestPipeline(t)
	ctx := context.Background()

	l := Assemble("jobs", source.RawRecord{
		Title:     "Forklift Operator",
		Company:   "Acme Logistics",
		SourceURL: "https://jobs.example/2",
	})

	res, err := p.Process(ctx, l, nil)
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.Contains(t, res.Issues, lead.IssueNotSecurity)

	leads, _, err := st.ListLeads(ctx, store.Filter{})
	require.NoError(t, err)
	assert.Empty(t, leads, "rejected leads are not stored")
}

func TestProcess_SkipsDuplicate(t *testing.T) {
	p, st := newTestPipeline(t)
	ctx := context.Background()

	first := Assemble("jobs", goodRecord("https://jobs.example/1"))
	res1, err := p.Process(ctx, first, nil)
	require.NoError(t, err)
	require.True(t, res1.Accepted)

	second := Assemble("jobs", goodRecord("https://jobs.example/other"))
	res2, err := p.Process(ctx, second, []model.Lead{res1.Lead})
	require.NoError(t, err)
	assert.False(t, res2.Accepted)
	assert.True(t, res2.Duplicate)
	assert.Equal(t, res1.Lead.ID, res2.MatchedID)
	assert.Greater(t, res2.Similarity, 0.8)

	_, total, err := st.ListLeads(ctx, store.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

// stubSource yields fixed records or a fixed error.
type stubSource struct {
	name    string
	records []source.RawRecord
	err     error
}

func (s stubSource) Name() string { return s.name }

func (s stubSource) Fetch(context.Context) ([]source.RawRecord, error) {
	return s.records, s.err
}

func TestRunBatch(t *testing.T) {
	p, st := newTestPipeline(t)
	ctx := context.Background()

	sources := []source.Source{
		stubSource{name: "jobs", records: []source.RawRecord{
			goodRecord("https://jobs.example/1"),
			// Same posting seen again within the run: intra-run duplicate.
			goodRecord("https://jobs.example/dup"),
			{Title: "Forklift Operator", Company: "Acme Logistics", SourceURL: "https://jobs.example/3"},
		}},
		stubSource{name: "down", err: eris.New("connection refused")},
	}

	summary, err := p.RunBatch(ctx, sources, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Sources)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 3, summary.Found)
	assert.Equal(t, 1, summary.Accepted)
	assert.Equal(t, 1, summary.Duplicates)
	assert.Equal(t, 1, summary.Rejected)

	_, total, err := st.ListLeads(ctx, store.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestRunBatch_DeduplicatesAgainstStore(t *testing.T) {
	p, _ := newTestPipeline(t)
	ctx := context.Background()

	first := []source.Source{stubSource{name: "jobs", records: []source.RawRecord{
		goodRecord("https://jobs.example/1"),
	}}}
	summary, err := p.RunBatch(ctx, first, 1)
	require.NoError(t, err)
	require.Equal(t, 1, summary.Accepted)

	// A second run sees the stored lead in its snapshot.
	second := []source.Source{stubSource{name: "jobs", records: []source.RawRecord{
		goodRecord("https://jobs.example/rerun"),
	}}}
	summary, err = p.RunBatch(ctx, second, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Accepted)
	assert.Equal(t, 1, summary.Duplicates)
}
