package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromMap_Empty(t *testing.T) {
	a := FromMap(nil)

	assert.True(t, a.FirstContact())
	assert.Equal(t, StateStart, a.State)
	assert.False(t, a.IsSubscriber)
	assert.Empty(t, a.ProductID)
}

func TestFromMap_NumberTypes(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
	}{
		{
			name: "json session attributes",
			data: map[string]any{
				"visitCount":      float64(4),
				"freeCount":       float64(2),
				"subscriberCount": float64(0),
				"isSubscriber":    true,
				"productId":       "prod-1",
				"state":           "TONE_FOLLOWUP",
			},
		},
		{
			name: "restored store values",
			data: map[string]any{
				"visitCount":      4,
				"freeCount":       2,
				"subscriberCount": 0,
				"isSubscriber":    true,
				"productId":       "prod-1",
				"state":           "TONE_FOLLOWUP",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := FromMap(tt.data)

			assert.Equal(t, 4, a.VisitCount)
			assert.Equal(t, 2, a.FreeCount)
			assert.Equal(t, 0, a.SubscriberCount)
			assert.True(t, a.IsSubscriber)
			assert.Equal(t, "prod-1", a.ProductID)
			assert.Equal(t, StateToneFollowup, a.State)
			assert.False(t, a.FirstContact())
		})
	}
}

func TestAttributes_RoundTrip(t *testing.T) {
	a := Attributes{
		VisitCount:      7,
		FreeCount:       3,
		SubscriberCount: 1,
		IsSubscriber:    true,
		ProductID:       "prod-9",
		State:           StateToneFollowup,
		Extra:           map[string]any{"legacyField": "kept"},
	}

	got := FromMap(a.ToMap())
	assert.Equal(t, a, got)
}

func TestToMap_KeepsUnknownFields(t *testing.T) {
	a := FromMap(map[string]any{
		"visitCount": 1,
		"mixIndex":   5,
	})

	data := a.ToMap()
	assert.Equal(t, 5, data["mixIndex"])
	assert.Equal(t, 1, data["visitCount"])
}

func TestFromMap_UnknownStateKept(t *testing.T) {
	a := FromMap(map[string]any{"state": "SOMETHING_ELSE"})
	assert.Equal(t, State("SOMETHING_ELSE"), a.State)
}
