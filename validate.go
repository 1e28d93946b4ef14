package filedepot

// Content types accepted on initial upload. Documents are only allowed here;
// updates are restricted to images.
var uploadContentTypes = map[string]struct{}{
	"image/jpeg":         {},
	"image/jpg":          {},
	"image/png":          {},
	"image/gif":          {},
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

var updateContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/gif":  {},
}

// IsAllowedUploadType reports whether a declared content type is accepted
// for a new upload. The declared type is trusted as-is; no sniffing.
func IsAllowedUploadType(contentType string) bool {
	_, ok := uploadContentTypes[contentType]
	return ok
}

// IsAllowedUpdateType reports whether a declared content type is accepted
// when replacing an existing file.
func IsAllowedUpdateType(contentType string) bool {
	_, ok := updateContentTypes[contentType]
	return ok
}
