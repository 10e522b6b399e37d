package models

import "time"

type BoundingBox struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

type TrimmedImage struct {
	ID             string      `json:"id"`
	OriginalName   string      `json:"original_name"`
	URL            string      `json:"url,omitempty"`
	Box            BoundingBox `json:"box"`
	Width          int         `json:"width"`
	Height         int         `json:"height"`
	OriginalWidth  int         `json:"original_width"`
	OriginalHeight int         `json:"original_height"`
	FileSize       int64       `json:"file_size"`
	ProcessedAt    time.Time   `json:"processed_at"`
}
