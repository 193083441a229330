package normalize

import (
	"github.com/KRTirtho/NewPipeCLI/extractor"
)

// ItagItem maps a technical profile. Every key is present except audioLocale,
// which is only emitted when the profile knows it.
func ItagItem(v *extractor.ItagItem) Record {
	r := newRecord()
	r.Set("mediaFormat", name(v.MediaFormat))
	r.Set("id", v.ID)
	r.Set("itagType", name(v.ItagType))
	r.Set("avgBitrate", deref(v.AverageBitrate))
	r.Set("sampleRate", deref(v.SampleRate))
	r.Set("audioChannels", deref(v.AudioChannels))
	r.Set("resolutionString", deref(v.ResolutionString))
	r.Set("fps", deref(v.FPS))
	r.Set("bitrate", deref(v.Bitrate))
	r.Set("width", deref(v.Width))
	r.Set("height", deref(v.Height))
	r.Set("initStart", deref(v.InitStart))
	r.Set("initEnd", deref(v.InitEnd))
	r.Set("indexStart", deref(v.IndexStart))
	r.Set("indexEnd", deref(v.IndexEnd))
	r.Set("quality", deref(v.Quality))
	r.Set("codec", deref(v.Codec))
	r.Set("targetDurationSec", deref(v.TargetDurationSec))
	r.Set("approxDurationMs", deref(v.ApproxDurationMs))
	r.Set("contentLength", deref(v.ContentLength))
	r.Set("audioTrackId", deref(v.AudioTrackID))
	r.Set("audioTrackName", deref(v.AudioTrackName))
	r.Set("audioTrackType", name(v.AudioTrackType))
	if v.AudioLocale != nil {
		r.Set("audioLocale", *v.AudioLocale)
	}
	return r
}

func optionalItagItem(v *extractor.ItagItem) any {
	if v == nil {
		return nil
	}
	return ItagItem(v)
}

// Stream maps the fields every stream kind shares.
func Stream(v *extractor.Stream) Record {
	r := newRecord()
	r.Set("id", v.ID)
	r.Set("mediaFormat", name(v.Format))
	r.Set("content", v.Content)
	r.Set("isUrl", v.IsURL)
	r.Set("deliveryMethod", v.DeliveryMethod.String())
	r.Set("manifestUrl", deref(v.ManifestURL))
	return r
}

// VideoStream extends the Stream record with video fields.
func VideoStream(v *extractor.VideoStream) Record {
	r := extend(Stream(&v.Stream))
	r.Set("resolution", v.Resolution)
	r.Set("isVideoOnly", v.IsVideoOnly)
	r.Set("itag", v.Itag)
	r.Set("bitrate", v.Bitrate)
	r.Set("initStart", v.InitStart)
	r.Set("initEnd", v.InitEnd)
	r.Set("indexStart", v.IndexStart)
	r.Set("indexEnd", v.IndexEnd)
	r.Set("width", v.Width)
	r.Set("height", v.Height)
	r.Set("fps", v.FPS)
	r.Set("quality", v.Quality)
	r.Set("codec", deref(v.Codec))
	r.Set("itagItem", optionalItagItem(v.ItagItem))
	return r
}

// AudioStream extends the Stream record with audio fields.
func AudioStream(v *extractor.AudioStream) Record {
	r := extend(Stream(&v.Stream))
	r.Set("itag", v.Itag)
	r.Set("bitrate", v.Bitrate)
	r.Set("initStart", v.InitStart)
	r.Set("initEnd", v.InitEnd)
	r.Set("indexStart", v.IndexStart)
	r.Set("indexEnd", v.IndexEnd)
	r.Set("quality", deref(v.Quality))
	r.Set("codec", deref(v.Codec))
	r.Set("audioTrackId", deref(v.AudioTrackID))
	r.Set("audioTrackName", deref(v.AudioTrackName))
	if v.AudioLocale != nil {
		r.Set("audioLocale", *v.AudioLocale)
	}
	r.Set("audioTrackType", name(v.AudioTrackType))
	r.Set("itagItem", optionalItagItem(v.ItagItem))
	return r
}

func mapAll[T any](items []T, fn func(T) Record) []Record {
	records := make([]Record, 0, len(items))
	for _, item := range items {
		records = append(records, fn(item))
	}
	return records
}
