// Package filedepot provides a small file storage library that keeps uploaded
// binary files and their metadata in a single relational table.
//
// Filedepot implements the core upload operations (upload, get, list, update,
// delete) with in-memory buffering, size ceilings, and a MIME-type allow-list.
//
// # Key Components
//
//   - FileService: Main service validating uploads and delegating persistence
//   - FileRepo: Interface for file persistence (PostgreSQL, SQLite)
//   - FileRecord / FileInfo: Stored row and its metadata projection
//
// # Validation
//
// Uploads are rejected when the stream is missing or empty, when the buffered
// payload exceeds MaxUploadBytes (10 MiB), or when the declared content type
// is not on the allow-list. The client-declared MIME type is trusted as-is;
// no content sniffing is performed.
//
// # Example Usage
//
//	service := filedepot.NewFileService(repo)
//
//	// Upload a file
//	info, err := service.Upload(ctx, filedepot.FileUpload{
//	    Name:        "photo.png",
//	    ContentType: "image/png",
//	    Content:     reader,
//	})
//
//	// Fetch it back, payload included
//	rec, err := service.Get(ctx, info.ID)
//
// See the http package for the REST API and the database package for the
// persistence backends.
package filedepot
