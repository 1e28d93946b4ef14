// Package http provides the HTTP server for filedepot.
//
// This package implements the REST API for file upload, retrieval, listing,
// update, and deletion. Uploads and updates are multipart requests carrying a
// single "file" field; validation (empty stream, size ceiling, MIME
// allow-list) happens in the service layer before anything is persisted.
//
// # Routes
//
//	POST   /api/FileUpload/Upload   multipart upload, returns metadata JSON
//	GET    /api/FileUpload/All      metadata listing (404 when empty)
//	GET    /api/FileUpload/{id}     raw stored bytes with stored Content-Type
//	PUT    /api/FileUpload/{id}     multipart wholesale replace
//	DELETE /api/FileUpload/{id}     removes the record, 204 on success
//
// # Errors
//
// Errors are JSON bodies of the form {"error": code, "message": text}.
// Validation failures map to 400 with a human-readable message, missing
// records to 404, and persistence failures to 500 with a generic message;
// the underlying cause is only logged server-side.
//
// # Usage
//
//	handlerCfg := http.HandlerConfig{MaxUploadBytes: filedepot.MaxUploadBytes}
//	handler := http.NewHandler(&handlerCfg, service)
//	http.ListenAndServe(":8080", handler.Router())
//
// The service parameter must implement the Service interface with Upload,
// Get, List, Update, and Delete methods.
package http
