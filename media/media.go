// Package media defines the domain models shared by the normalization core, the CLI, and the HTTP server.
package media

// Type classifies a downloadable resource.
type Type string

const (
	TypeVideo Type = "video"
	TypeAudio Type = "audio"
	TypeImage Type = "image"
)

// Variant represents one downloadable rendition of a media resource.
type Variant struct {
	URL        string `json:"url"`
	Quality    string `json:"quality,omitempty"`
	Type       Type   `json:"type,omitempty"`
	Format     string `json:"format,omitempty"`
	Resolution string `json:"resolution,omitempty"`
}

// Item is a single entry of a multi-media carousel (Instagram albums, Kuaishou atlases).
type Item struct {
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Type      Type   `json:"type,omitempty"`
	Quality   string `json:"quality,omitempty"`
	Format    string `json:"format,omitempty"`
}

// Buckets groups variants per resource type, the canonical shape for
// platforms whose upstream splits renditions by kind.
type Buckets struct {
	Video []Variant `json:"video"`
	Audio []Variant `json:"audio"`
	Image []Variant `json:"image"`
}

// Empty reports whether no variant of any kind is present.
func (b Buckets) Empty() bool {
	return len(b.Video) == 0 && len(b.Audio) == 0 && len(b.Image) == 0
}

// Media is the common intermediate shape every platform normalizer produces.
// Insertion order of all slices is significant: the first entry is the default.
type Media struct {
	Title      string `json:"title,omitempty"`
	Author     string `json:"author,omitempty"`
	Thumbnail  string `json:"thumbnail,omitempty"`
	AudioTitle string `json:"audio_title,omitempty"`

	// Duration is expressed in milliseconds regardless of the upstream unit.
	Duration int `json:"duration,omitempty"`

	// Downloads is the flat variant list used by single-resource platforms.
	Downloads []Variant `json:"downloads,omitempty"`

	// Buckets is the per-type variant grouping used by TikTok and YouTube.
	Buckets Buckets `json:"buckets"`

	// Items carries carousel entries for multi-media platforms.
	Items []Item `json:"media,omitempty"`
}

// Empty reports the "no media" outcome: a valid result carrying nothing downloadable.
// Callers must treat it as "media unavailable", never as a transport error.
func (m Media) Empty() bool {
	return len(m.Downloads) == 0 && m.Buckets.Empty() && len(m.Items) == 0
}

// Link is the externally exposed unified record for one downloadable URL.
type Link struct {
	URL        string `json:"url"`
	Quality    string `json:"quality"`
	Type       Type   `json:"type"`
	Format     string `json:"format"`
	Resolution string `json:"resolution,omitempty"`
}

// Result is the platform-agnostic outcome of one resolution request.
type Result struct {
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	Author    string `json:"author"`
	Duration  int    `json:"duration"`
	Platform  string `json:"platform"`
	Links     []Link `json:"links"`
}
