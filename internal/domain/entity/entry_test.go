package entity_test

import (
	"testing"

	"techdiet/internal/domain/entity"
)

func TestConsumptionEntry_Validate(t *testing.T) {
	entry := entity.ConsumptionEntry{
		SourceID:   "tldr",
		Title:      "AI chips roundup",
		KeyInsight: "Inference cost is the new battleground",
	}
	if err := entry.Validate(); err != nil {
		t.Fatalf("valid entry rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*entity.ConsumptionEntry)
		field  string
	}{
		{"missing source", func(e *entity.ConsumptionEntry) { e.SourceID = "" }, "sourceId"},
		{"missing title", func(e *entity.ConsumptionEntry) { e.Title = "" }, "title"},
		{"missing insight", func(e *entity.ConsumptionEntry) { e.KeyInsight = "" }, "keyInsight"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := entry
			tc.mutate(&e)
			err := e.Validate()
			verr, ok := err.(*entity.ValidationError)
			if !ok {
				t.Fatalf("want *ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("want field %q, got %q", tc.field, verr.Field)
			}
		})
	}
}
