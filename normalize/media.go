package normalize

import (
	"github.com/KRTirtho/NewPipeCLI/extractor"
)

// Thumbnails maps images to {url, width, height}. It never returns nil.
func Thumbnails(images []extractor.Image) []Record {
	records := make([]Record, 0, len(images))
	for _, image := range images {
		r := newRecord()
		r.Set("url", image.URL)
		r.Set("width", image.Width)
		r.Set("height", image.Height)
		records = append(records, r)
	}
	return records
}

// Date maps a DateWrapper to epoch seconds plus the approximation flag.
func Date(date extractor.DateWrapper) Record {
	r := newRecord()
	r.Set("offsetDateTime", date.Time.Unix())
	r.Set("isApproximation", date.Approximation)
	return r
}

// Description maps a description; the type is rendered by name.
func Description(d extractor.Description) Record {
	r := newRecord()
	r.Set("content", d.Content)
	r.Set("type", d.Type.String())
	return r
}

func optionalDate(date *extractor.DateWrapper) any {
	if date == nil {
		return nil
	}
	return Date(*date)
}

func optionalDescription(d *extractor.Description) any {
	if d == nil {
		return nil
	}
	return Description(*d)
}
