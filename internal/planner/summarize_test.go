package planner_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-planner/internal/model"
	"event-planner/internal/planner"
	"event-planner/pkg/extract"
	"event-planner/pkg/llmprovider"
)

type fakeCompleter struct {
	reply  string
	err    error
	calls  atomic.Int32
	prompt atomic.Value
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string, _ llmprovider.Options) (string, error) {
	f.calls.Add(1)
	f.prompt.Store(prompt)
	return f.reply, f.err
}

func venuesUpstream() planner.Upstream {
	return planner.Upstream{
		"venues": planner.Succeeded([]model.PlaceGroup{{
			Type:    "banquet hall",
			Options: []model.Place{{Name: "Pearl Continental", Rating: 4.5}},
		}}),
	}
}

func TestSummarizer_Digest(t *testing.T) {
	client := &fakeCompleter{reply: "Final Answer:\n```json\n{\"top\": [\"Pearl Continental\"]}\n```"}
	d := planner.Summarizer("venues", "venues", client, llmprovider.Options{})

	assert.Equal(t, "venues.summary", d.Name)
	assert.Equal(t, []string{"venues"}, d.Upstream)
	assert.True(t, d.IsSummarizer())

	out := d.Produce(context.Background(), wedding, venuesUpstream())
	require.True(t, out.OK(), out.Err)
	assert.Equal(t, model.Digest{"top": []any{"Pearl Continental"}}, out.Value)
	assert.Contains(t, client.prompt.Load().(string), "Pearl Continental")
	assert.Contains(t, client.prompt.Load().(string), "wedding")
}

func TestSummarizer_Failures(t *testing.T) {
	tests := map[string]struct {
		client    *fakeCompleter
		upstream  planner.Upstream
		wantKind  planner.ErrorKind
		wantCalls int32
	}{
		"upstream failed": {
			client:    &fakeCompleter{reply: "{}"},
			upstream:  planner.Upstream{"venues": planner.Failed(planner.KindServiceError, errors.New("down"))},
			wantKind:  planner.KindUpstreamFailure,
			wantCalls: 0,
		},
		"malformed reply": {
			client:    &fakeCompleter{reply: "I could not decide."},
			upstream:  venuesUpstream(),
			wantKind:  planner.KindMalformedOutput,
			wantCalls: 1,
		},
		"list instead of object": {
			client:    &fakeCompleter{reply: `["a", "b"]`},
			upstream:  venuesUpstream(),
			wantKind:  planner.KindMalformedOutput,
			wantCalls: 1,
		},
		"provider error": {
			client:    &fakeCompleter{err: llmprovider.ErrAllProvidersFailed},
			upstream:  venuesUpstream(),
			wantKind:  planner.KindServiceError,
			wantCalls: 1,
		},
		"per-call timeout": {
			client:    &fakeCompleter{err: context.DeadlineExceeded},
			upstream:  venuesUpstream(),
			wantKind:  planner.KindTimeout,
			wantCalls: 1,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			d := planner.Summarizer("venues", "venues", tc.client, llmprovider.Options{})
			out := d.Produce(context.Background(), wedding, tc.upstream)
			assert.False(t, out.OK())
			assert.Equal(t, tc.wantKind, out.Kind)
			assert.Equal(t, tc.wantCalls, tc.client.calls.Load())
		})
	}
}

func TestSummarizer_MalformedIsExtractError(t *testing.T) {
	d := planner.Summarizer("theme", "theme", &fakeCompleter{reply: "nope"}, llmprovider.Options{})
	out := d.Produce(context.Background(), wedding, planner.Upstream{"theme": planner.Succeeded(map[string]any{"name": "Mughal"})})
	assert.ErrorIs(t, out.Err, extract.ErrMalformedOutput)
}
