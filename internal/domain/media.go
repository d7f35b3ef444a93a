package domain

// LiveStatus represents the broadcast state of a media item.
type LiveStatus string

const (
	LiveStatusNotLive  LiveStatus = "not_live"
	LiveStatusIsLive   LiveStatus = "is_live"
	LiveStatusWasLive  LiveStatus = "was_live"
	LiveStatusUpcoming LiveStatus = "upcoming"
)

// ParseLiveStatus maps an extractor-reported status string onto the known
// enumeration. Unknown or empty values return nil (status unknown).
func ParseLiveStatus(s string) *LiveStatus {
	switch LiveStatus(s) {
	case LiveStatusNotLive, LiveStatusIsLive, LiveStatusWasLive, LiveStatusUpcoming:
		ls := LiveStatus(s)
		return &ls
	}
	return nil
}

// MediaRecord is the canonical shaped metadata result returned by both the
// HTTP and bot surfaces. Every field is independently optional; absence is
// encoded as nil and serialized as JSON null.
type MediaRecord struct {
	ID         *string     `json:"id"`
	Title      *string     `json:"title"`
	Duration   *int64      `json:"duration"`
	Thumbnail  *string     `json:"thumbnail"`
	WebpageURL *string     `json:"webpage_url"`
	StreamURL  *string     `json:"stream_url"`
	Uploader   *string     `json:"uploader"`
	ChannelID  *string     `json:"channel_id"`
	ViewCount  *int64      `json:"view_count"`
	LiveStatus *LiveStatus `json:"live_status"`
}

// Empty reports whether every field of the record is absent. An all-absent
// record is treated as a resolution failure by callers, never returned as a
// valid result.
func (r *MediaRecord) Empty() bool {
	return r.ID == nil &&
		r.Title == nil &&
		r.Duration == nil &&
		r.Thumbnail == nil &&
		r.WebpageURL == nil &&
		r.StreamURL == nil &&
		r.Uploader == nil &&
		r.ChannelID == nil &&
		r.ViewCount == nil &&
		r.LiveStatus == nil
}

// SearchHit is the compact result of a search query. It is a strict subset of
// MediaRecord and is re-resolved to a full record before being returned by
// resolve-style flows.
type SearchHit struct {
	ID         *string `json:"id"`
	Title      *string `json:"title"`
	Duration   *int64  `json:"duration"`
	WebpageURL *string `json:"webpage_url"`
	Thumbnail  *string `json:"thumbnail"`
}
