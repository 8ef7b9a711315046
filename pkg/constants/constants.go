package constants

const (
	DataFormate = "2006-01-02 15:04:05"

	// Upper bound enforced on an uploaded video payload.
	MaxVideoSize = 100 * 1024 * 1024

	VideoBucket = "video"
)
