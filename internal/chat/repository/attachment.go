package repository

import (
	"strings"

	models "github.com/amalpanikulangara/arreWhatsapp/internal/chat/model"
)

var mediaExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true,
	".mp4": true, ".mov": true, ".webm": true, ".mp3": true, ".ogg": true,
}

var docExtensions = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
	".ppt": true, ".pptx": true, ".txt": true, ".csv": true, ".zip": true,
}

// detectAttachment classifies the first URL in a message body so the
// group's media/docs/links index can be maintained alongside the append.
// A body with no URL carries no attachment.
func detectAttachment(body string) (kind, url string, ok bool) {
	for _, token := range strings.Fields(body) {
		if !strings.HasPrefix(token, "http://") && !strings.HasPrefix(token, "https://") {
			continue
		}
		url = strings.TrimRight(token, ".,;:!?)")

		path := url
		if i := strings.IndexAny(path, "?#"); i >= 0 {
			path = path[:i]
		}
		if i := strings.LastIndex(path, "."); i >= 0 {
			ext := strings.ToLower(path[i:])
			if mediaExtensions[ext] {
				return models.AttachmentMedia, url, true
			}
			if docExtensions[ext] {
				return models.AttachmentDoc, url, true
			}
		}
		return models.AttachmentLink, url, true
	}
	return "", "", false
}
