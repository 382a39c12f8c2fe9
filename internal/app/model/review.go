package model

import "time"

// Review is a customer review. The four-image cap is enforced by the
// upload widget, not here.
type Review struct {
	ID        string    `json:"id"`
	UserName  string    `json:"userName"`
	Text      string    `json:"text"`
	Images    []string  `json:"images"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewRecord is the flat stored representation under reviews/{id}.
type ReviewRecord struct {
	UserName  string   `json:"userName"`
	Text      string   `json:"text"`
	Images    []string `json:"images,omitempty"`
	CreatedAt string   `json:"createdAt"`
}

func (r ReviewRecord) Normalize(id string) Review {
	rev := Review{
		ID:        id,
		UserName:  r.UserName,
		Text:      r.Text,
		Images:    r.Images,
		CreatedAt: ParseTimestamp(r.CreatedAt),
	}
	if rev.Images == nil {
		rev.Images = []string{}
	}
	return rev
}

func NewReviewRecord(r Review, createdAt time.Time) ReviewRecord {
	return ReviewRecord{
		UserName:  r.UserName,
		Text:      r.Text,
		Images:    emptyIfNil(r.Images),
		CreatedAt: FormatTimestamp(createdAt),
	}
}
