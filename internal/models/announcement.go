package models

import "time"

// AnnouncementPriority orders announcements within a pinned group.
type AnnouncementPriority string

const (
	AnnouncementPriorityLow      AnnouncementPriority = "Low"
	AnnouncementPriorityMedium   AnnouncementPriority = "Medium"
	AnnouncementPriorityHigh     AnnouncementPriority = "High"
	AnnouncementPriorityCritical AnnouncementPriority = "Critical"
)

// AnnouncementStatus gates public visibility: only Published announcements
// that have not expired are served to the public site.
type AnnouncementStatus string

const (
	AnnouncementStatusDraft     AnnouncementStatus = "Draft"
	AnnouncementStatusScheduled AnnouncementStatus = "Scheduled"
	AnnouncementStatusPublished AnnouncementStatus = "Published"
	AnnouncementStatusExpired   AnnouncementStatus = "Expired"
)

// Announcement is the admin-authored record. Type, TargetAudience, IsPinned
// and Tags bridge the authoring shape to the public display shape; the public
// projection fills them from Category/Audience when absent.
type Announcement struct {
	ID             string               `json:"id"`
	Title          string               `json:"title"`
	Content        string               `json:"content"`
	Category       string               `json:"category"`
	Priority       AnnouncementPriority `json:"priority"`
	Audience       string               `json:"audience"`
	Status         AnnouncementStatus   `json:"status"`
	PublishDate    time.Time            `json:"publishDate"`
	ExpiryDate     *time.Time           `json:"expiryDate,omitempty"`
	Author         string               `json:"author"`
	Views          int                  `json:"views"`
	Type           string               `json:"type,omitempty"`
	TargetAudience string               `json:"targetAudience,omitempty"`
	IsPinned       bool                 `json:"isPinned,omitempty"`
	Tags           []string             `json:"tags,omitempty"`
}

// EntityID implements store.Entity.
func (a Announcement) EntityID() string { return a.ID }

// AnnouncementQuery captures the public listing filter state.
type AnnouncementQuery struct {
	Search   string
	Category string
}
