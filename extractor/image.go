package extractor

import "time"

// ImageSizeUnknown marks an image dimension the service did not report.
const ImageSizeUnknown = -1

// Image is one rendition of a thumbnail or avatar.
type Image struct {
	URL    string
	Width  int
	Height int
}

// DateWrapper is a point in time that may only be an estimate,
// e.g. when parsed from "3 weeks ago".
type DateWrapper struct {
	Time          time.Time
	Approximation bool
}

// Description is free text together with the markup it uses.
type Description struct {
	Content string
	Type    DescriptionType
}

// Unknown counters are reported as -1 across all domain objects.
const Unknown = -1
