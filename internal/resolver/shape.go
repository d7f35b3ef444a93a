package resolver

import "github.com/iconidentify/tunelink/internal/domain"

// rawInfo mirrors the subset of yt-dlp's -J output this service consumes.
type rawInfo struct {
	Type       string         `json:"_type"`
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Duration   *float64       `json:"duration"`
	Thumbnail  string         `json:"thumbnail"`
	Thumbnails []rawThumbnail `json:"thumbnails"`
	WebpageURL string         `json:"webpage_url"`
	URL        string         `json:"url"`
	Uploader   string         `json:"uploader"`
	ChannelID  string         `json:"channel_id"`
	ViewCount  *int64         `json:"view_count"`
	LiveStatus string         `json:"live_status"`
	IsLive     *bool          `json:"is_live"`
	Entries    []*rawInfo     `json:"entries"`
}

type rawThumbnail struct {
	URL string `json:"url"`
}

// thumbnailOf picks a thumbnail URL: a direct thumbnail field wins, otherwise
// the last entry of the thumbnails list (highest resolution by convention),
// otherwise absent.
func thumbnailOf(raw *rawInfo) *string {
	if raw.Thumbnail != "" {
		return &raw.Thumbnail
	}
	if n := len(raw.Thumbnails); n > 0 {
		last := raw.Thumbnails[n-1].URL
		if last != "" {
			return &last
		}
	}
	return nil
}

// shape maps raw extractor output onto the canonical MediaRecord. It is
// total: missing fields become nil and a fully unrecognized input yields an
// all-absent record, which callers treat as a failure.
func shape(raw *rawInfo) *domain.MediaRecord {
	rec := &domain.MediaRecord{}

	if raw.ID != "" {
		rec.ID = &raw.ID
	}
	if raw.Title != "" {
		rec.Title = &raw.Title
	}
	if raw.Duration != nil && *raw.Duration >= 0 {
		d := int64(*raw.Duration)
		rec.Duration = &d
	}
	rec.Thumbnail = thumbnailOf(raw)
	if raw.WebpageURL != "" {
		rec.WebpageURL = &raw.WebpageURL
	}
	if raw.URL != "" {
		rec.StreamURL = &raw.URL
	}
	if raw.Uploader != "" {
		rec.Uploader = &raw.Uploader
	}
	if raw.ChannelID != "" {
		rec.ChannelID = &raw.ChannelID
	}
	if raw.ViewCount != nil && *raw.ViewCount >= 0 {
		v := *raw.ViewCount
		rec.ViewCount = &v
	}

	rec.LiveStatus = domain.ParseLiveStatus(raw.LiveStatus)
	if rec.LiveStatus == nil && raw.IsLive != nil {
		// Older extractor output only carries the boolean flag.
		if *raw.IsLive {
			rec.LiveStatus = domain.ParseLiveStatus(string(domain.LiveStatusIsLive))
		} else {
			rec.LiveStatus = domain.ParseLiveStatus(string(domain.LiveStatusNotLive))
		}
	}

	return rec
}

// shapeHit maps a flat search entry onto a SearchHit.
func shapeHit(raw *rawInfo) domain.SearchHit {
	hit := domain.SearchHit{}

	if raw.ID != "" {
		id := raw.ID
		hit.ID = &id
	}
	if raw.Title != "" {
		title := raw.Title
		hit.Title = &title
	}
	if raw.Duration != nil && *raw.Duration >= 0 {
		d := int64(*raw.Duration)
		hit.Duration = &d
	}
	hit.WebpageURL = pageURLOf(raw)
	hit.Thumbnail = thumbnailOf(raw)

	return hit
}

// pageURLOf derives the canonical page URL of a flat search entry. Flat
// playlist entries report it in the url field rather than webpage_url.
func pageURLOf(raw *rawInfo) *string {
	if raw.WebpageURL != "" {
		u := raw.WebpageURL
		return &u
	}
	if raw.URL != "" {
		u := raw.URL
		return &u
	}
	return nil
}
