package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/predict-colleges", "200"))

	RecordAPIRequest("POST", "/api/predict-colleges", 200, 15*time.Millisecond)
	RecordAPIRequest("POST", "/api/predict-colleges", 200, 5*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/predict-colleges", "200"))
	assert.Equal(t, before+2, after)
}

func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		err       error
		wantErrs  float64
	}{
		{name: "successful query", operation: "find_all_ok", err: nil, wantErrs: 0},
		{name: "failed query", operation: "find_all_fail", err: errors.New("connection refused"), wantErrs: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordDBQuery(tt.operation, time.Millisecond, tt.err)
			assert.Equal(t, tt.wantErrs, testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation)))
		})
	}
}

func TestRecordPrediction(t *testing.T) {
	rankBefore := testutil.ToFloat64(PredictionsTotal.WithLabelValues("rank"))
	noRankBefore := testutil.ToFloat64(PredictionsTotal.WithLabelValues("no_rank"))

	RecordPrediction(true, 12)
	RecordPrediction(false, 0)
	RecordPrediction(false, 95)

	assert.Equal(t, rankBefore+1, testutil.ToFloat64(PredictionsTotal.WithLabelValues("rank")))
	assert.Equal(t, noRankBefore+2, testutil.ToFloat64(PredictionsTotal.WithLabelValues("no_rank")))
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits.WithLabelValues("test:key"))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues("test:key"))

	RecordCacheLookup("test:key", true)
	RecordCacheLookup("test:key", false)
	RecordCacheLookup("test:key", false)

	assert.Equal(t, hits+1, testutil.ToFloat64(CacheHits.WithLabelValues("test:key")))
	assert.Equal(t, misses+2, testutil.ToFloat64(CacheMisses.WithLabelValues("test:key")))
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	assert.Equal(t, before+1, testutil.ToFloat64(APIActiveRequests))
	TrackActiveRequest(false)
	assert.Equal(t, before, testutil.ToFloat64(APIActiveRequests))
}
